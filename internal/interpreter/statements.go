package interpreter

import (
	"github.com/colinhart/plc/internal/ast"
	"github.com/colinhart/plc/internal/control"
	"github.com/colinhart/plc/internal/diagnostics"
	"github.com/colinhart/plc/internal/runtime"
	"github.com/colinhart/plc/internal/scope"
)

// execStatements runs stmts in order, stopping as soon as one produces a
// Returning outcome and propagating it unchanged (spec §5: Return must
// propagate through arbitrary nested statement constructs).
func (i *Interpreter) execStatements(stmts []ast.Statement) (control.Outcome, *diagnostics.Error) {
	for _, s := range stmts {
		outcome, e := i.execStatement(s)
		if e != nil {
			return control.Outcome{}, e
		}
		if outcome.Signal == control.Returning {
			return outcome, nil
		}
	}
	return control.Fallthrough(), nil
}

// execBlock runs stmts inside a fresh child scope, restoring the prior
// scope on every exit path including a propagating Return.
func (i *Interpreter) execBlock(stmts []ast.Statement) (control.Outcome, *diagnostics.Error) {
	outer := i.scope
	i.scope = outer.Child()
	defer func() { i.scope = outer }()
	return i.execStatements(stmts)
}

func (i *Interpreter) execStatement(s ast.Statement) (control.Outcome, *diagnostics.Error) {
	switch st := s.(type) {
	case *ast.ExpressionStatement:
		_, e := i.evalExpression(st.Expr)
		return control.Fallthrough(), e
	case *ast.Declaration:
		return control.Fallthrough(), i.execDeclaration(st)
	case *ast.Assignment:
		return control.Fallthrough(), i.execAssignment(st)
	case *ast.If:
		return i.execIf(st)
	case *ast.Switch:
		return i.execSwitch(st)
	case *ast.While:
		return i.execWhile(st)
	case *ast.Return:
		return i.execReturn(st)
	default:
		return control.Outcome{}, runtimeErr(diagnostics.ErrA003, "unrecognized statement")
	}
}

// execDeclaration evaluates the initializer (defaulting to NIL) and
// defines a variable in the current scope. LET always binds a mutable
// variable (spec §4.5: Declaration honors the mutable flag it is given,
// and LET's grammar never carries anything else).
func (i *Interpreter) execDeclaration(st *ast.Declaration) *diagnostics.Error {
	value := runtime.NIL
	if st.Value != nil {
		v, e := i.evalExpression(st.Value)
		if e != nil {
			return e
		}
		value = v
	}
	i.scope.DefineVariable(&scope.Variable{Name: st.Name, Mutable: true, Value: value})
	return nil
}

// execAssignment writes to a plain variable, or replaces one element of a
// list in place when the receiver is indexed (spec §4.5 Assignment).
func (i *Interpreter) execAssignment(st *ast.Assignment) *diagnostics.Error {
	access := st.Receiver.(*ast.Access)
	v, lookupErr := i.scope.LookupVariable(access.Name)
	if lookupErr != nil {
		return runtimeErr(diagnostics.ErrA001, access.Name)
	}

	value, e := i.evalExpression(st.Value)
	if e != nil {
		return e
	}

	if access.Offset == nil {
		if !v.Mutable {
			return runtimeErr(diagnostics.ErrR003, access.Name)
		}
		v.Value = value
		return nil
	}

	offset, e := i.evalExpression(access.Offset)
	if e != nil {
		return e
	}
	idx := int(offset.AsInt().Int64())
	list := v.Value.(*runtime.Value).AsList()
	if idx < 0 || idx >= len(list) {
		return runtimeErr(diagnostics.ErrR002, access.Name)
	}
	list[idx] = value
	return nil
}

// execIf evaluates the condition and runs the chosen branch in a child
// scope (spec §4.5 If).
func (i *Interpreter) execIf(st *ast.If) (control.Outcome, *diagnostics.Error) {
	cond, e := i.evalExpression(st.Condition)
	if e != nil {
		return control.Outcome{}, e
	}
	if cond.AsBool() {
		return i.execBlock(st.Then)
	}
	if st.Else != nil {
		return i.execBlock(st.Else)
	}
	return control.Fallthrough(), nil
}

// execWhile re-evaluates the condition each iteration, running the body
// in a fresh child scope every time (spec §4.5 While).
func (i *Interpreter) execWhile(st *ast.While) (control.Outcome, *diagnostics.Error) {
	for {
		cond, e := i.evalExpression(st.Condition)
		if e != nil {
			return control.Outcome{}, e
		}
		if !cond.AsBool() {
			return control.Fallthrough(), nil
		}
		outcome, e := i.execBlock(st.Statements)
		if e != nil {
			return control.Outcome{}, e
		}
		if outcome.Signal == control.Returning {
			return outcome, nil
		}
	}
}

// execSwitch compares the scrutinee against each case's value by deep
// value-equality, running the first match's body (or DEFAULT, if none
// match) in its own child scope (spec §4.5 Switch).
func (i *Interpreter) execSwitch(st *ast.Switch) (control.Outcome, *diagnostics.Error) {
	scrutinee, e := i.evalExpression(st.Condition)
	if e != nil {
		return control.Outcome{}, e
	}

	for _, c := range st.Cases {
		if c.Value == nil {
			return i.execBlock(c.Statements) // DEFAULT, always last
		}
		caseValue, e := i.evalExpression(c.Value)
		if e != nil {
			return control.Outcome{}, e
		}
		if runtime.Equal(scrutinee, caseValue) {
			return i.execBlock(c.Statements)
		}
	}
	return control.Fallthrough(), nil
}

func (i *Interpreter) execReturn(st *ast.Return) (control.Outcome, *diagnostics.Error) {
	v, e := i.evalExpression(st.Value)
	if e != nil {
		return control.Outcome{}, e
	}
	return control.Return(v), nil
}
