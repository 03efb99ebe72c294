package analyzer

import (
	"github.com/colinhart/plc/internal/ast"
	"github.com/colinhart/plc/internal/diagnostics"
	"github.com/colinhart/plc/internal/scope"
	"github.com/colinhart/plc/internal/types"
)

func (a *Analyzer) analyzeStatements(stmts []ast.Statement) *diagnostics.Error {
	for _, s := range stmts {
		if e := a.analyzeStatement(s); e != nil {
			return e
		}
	}
	return nil
}

func (a *Analyzer) analyzeStatement(s ast.Statement) *diagnostics.Error {
	switch st := s.(type) {
	case *ast.ExpressionStatement:
		return a.analyzeExpressionStatement(st)
	case *ast.Declaration:
		return a.analyzeDeclaration(st)
	case *ast.Assignment:
		return a.analyzeAssignment(st)
	case *ast.If:
		return a.analyzeIf(st)
	case *ast.Switch:
		return a.analyzeSwitch(st)
	case *ast.While:
		return a.analyzeWhile(st)
	case *ast.Return:
		return a.analyzeReturn(st)
	default:
		return err(diagnostics.ErrA008)
	}
}

// analyzeExpressionStatement requires the expression be a function call
// (spec §4.4: no side-effect-free dead expressions).
func (a *Analyzer) analyzeExpressionStatement(st *ast.ExpressionStatement) *diagnostics.Error {
	if _, ok := st.Expr.(*ast.Call); !ok {
		return err(diagnostics.ErrA008)
	}
	return a.analyzeExpression(st.Expr)
}

// analyzeDeclaration implements spec §4.4 Declaration: infer from value
// when no type is annotated, else resolve the declared type; require the
// value (if any) be assignable into it. LET always defines a mutable
// variable, regardless of the surrounding VAR/VAL distinction globals use
// (the grammar gives LET no such keyword at all).
func (a *Analyzer) analyzeDeclaration(st *ast.Declaration) *diagnostics.Error {
	var declared types.Type
	hasDeclared := false
	if st.TypeName != "" {
		t, ok := types.Lookup(st.TypeName)
		if !ok {
			return err(diagnostics.ErrA002, st.TypeName)
		}
		declared = t
		hasDeclared = true
	}

	if st.Value == nil && !hasDeclared {
		return err(diagnostics.ErrA003, "declaration of "+st.Name+" needs a type or an initializer")
	}

	target := declared
	if st.Value != nil {
		if e := a.analyzeExpression(st.Value); e != nil {
			return e
		}
		if hasDeclared {
			if !types.Assignable(declared, st.Value.ResolvedType()) {
				return err(diagnostics.ErrA003, "cannot assign "+st.Value.ResolvedType().String()+" to "+st.Name+" of type "+declared.String())
			}
		} else {
			target = st.Value.ResolvedType()
		}
	}

	st.Variable = &scope.Variable{Name: st.Name, Type: target, Mutable: true}
	a.scope.DefineVariable(st.Variable)
	return nil
}

// analyzeAssignment requires the receiver be an Access and the value be
// assignable into the receiver's type (spec §4.4 Assignment).
func (a *Analyzer) analyzeAssignment(st *ast.Assignment) *diagnostics.Error {
	access, ok := st.Receiver.(*ast.Access)
	if !ok {
		return err(diagnostics.ErrA003, "assignment target must be a variable or indexed access")
	}
	if e := a.analyzeExpression(access); e != nil {
		return e
	}
	if e := a.analyzeExpression(st.Value); e != nil {
		return e
	}
	if !types.Assignable(access.ResolvedType(), st.Value.ResolvedType()) {
		return err(diagnostics.ErrA003, "cannot assign "+st.Value.ResolvedType().String()+" to "+access.Name+" of type "+access.ResolvedType().String())
	}
	return nil
}

// analyzeIf requires a Boolean condition and visits each branch in its own
// child scope (spec §4.4 If/While).
func (a *Analyzer) analyzeIf(st *ast.If) *diagnostics.Error {
	if e := a.analyzeExpression(st.Condition); e != nil {
		return e
	}
	if st.Condition.ResolvedType().Kind != types.Boolean {
		return err(diagnostics.ErrA003, "IF condition must be Boolean")
	}

	a.pushScope()
	e := a.analyzeStatements(st.Then)
	a.popScope()
	if e != nil {
		return e
	}

	if st.Else != nil {
		a.pushScope()
		e := a.analyzeStatements(st.Else)
		a.popScope()
		if e != nil {
			return e
		}
	}
	return nil
}

// analyzeWhile mirrors analyzeIf with a single body branch.
func (a *Analyzer) analyzeWhile(st *ast.While) *diagnostics.Error {
	if e := a.analyzeExpression(st.Condition); e != nil {
		return e
	}
	if st.Condition.ResolvedType().Kind != types.Boolean {
		return err(diagnostics.ErrA003, "WHILE condition must be Boolean")
	}
	a.pushScope()
	e := a.analyzeStatements(st.Statements)
	a.popScope()
	return e
}

// analyzeSwitch requires each case's value (if any) match the scrutinee's
// type, and that DEFAULT (if present) is the last case (spec §4.4 Switch;
// the parser already rejects a non-trailing DEFAULT).
func (a *Analyzer) analyzeSwitch(st *ast.Switch) *diagnostics.Error {
	if e := a.analyzeExpression(st.Condition); e != nil {
		return e
	}
	condType := st.Condition.ResolvedType()

	for _, c := range st.Cases {
		if c.Value != nil {
			if e := a.analyzeExpression(c.Value); e != nil {
				return e
			}
			if c.Value.ResolvedType().Kind != condType.Kind {
				return err(diagnostics.ErrA007, "case value must match switch type "+condType.String())
			}
		}
		a.pushScope()
		e := a.analyzeStatements(c.Statements)
		a.popScope()
		if e != nil {
			return e
		}
	}
	return nil
}

// analyzeReturn requires the value be assignable into the function's
// declared return type (spec §4.4 Return).
func (a *Analyzer) analyzeReturn(st *ast.Return) *diagnostics.Error {
	if e := a.analyzeExpression(st.Value); e != nil {
		return e
	}
	if !types.Assignable(a.returnType, st.Value.ResolvedType()) {
		return err(diagnostics.ErrA003, "cannot return "+st.Value.ResolvedType().String()+" from function declared to return "+a.returnType.String())
	}
	return nil
}
