// Package interpreter tree-walks an analyzed AST, producing runtime
// values and performing the program's only observable side effects:
// writes via print and in-place list mutation (spec §4.5, §5).
package interpreter

import (
	"io"

	"github.com/colinhart/plc/internal/ast"
	"github.com/colinhart/plc/internal/control"
	"github.com/colinhart/plc/internal/diagnostics"
	"github.com/colinhart/plc/internal/runtime"
	"github.com/colinhart/plc/internal/scope"
	"github.com/colinhart/plc/internal/types"
)

// Interpreter owns its own scope tree, independent of the analyzer's
// (spec §9: "the Interpreter and Analyzer each own their scope tree").
type Interpreter struct {
	globalScope *scope.Scope
	scope       *scope.Scope // current execution scope; mutated on block/call entry and exit
	stdout      io.Writer
}

// New creates an Interpreter writing print() output to stdout, with its
// root scope seeded with the print/1 builtin (spec §4.3).
func New(stdout io.Writer) *Interpreter {
	root := scope.New()
	i := &Interpreter{globalScope: root, scope: root, stdout: stdout}
	registerBuiltins(i)
	return i
}

func runtimeErr(code diagnostics.Code, args ...interface{}) *diagnostics.Error {
	return diagnostics.NewAt(diagnostics.PhaseRuntime, code, args...)
}

// Run binds every global and function declaration, then invokes
// `main()` and returns its result (spec §3 Invariants: exactly one such
// function is guaranteed to exist once analysis has succeeded).
func Run(src *ast.Source, stdout io.Writer) (*runtime.Value, *diagnostics.Error) {
	i := New(stdout)

	for _, f := range src.Functions {
		i.globalScope.DefineFunction(&scope.Function{
			Name:           f.Name,
			ParameterTypes: make([]types.Type, len(f.Parameters)),
			ReturnType:     types.Type{},
			Body:           f,
		})
	}
	for _, g := range src.Globals {
		if e := i.bindGlobal(g); e != nil {
			return nil, e
		}
	}

	mainFn, lookupErr := i.globalScope.LookupFunction("main", 0)
	if lookupErr != nil {
		return nil, runtimeErr(diagnostics.ErrA006, "missing main")
	}
	return i.callFunction(mainFn, nil)
}

// bindGlobal evaluates a global's initializer (or defaults to NIL/empty
// list) and defines its runtime variable in the global scope.
func (i *Interpreter) bindGlobal(g *ast.Global) *diagnostics.Error {
	var value *runtime.Value
	if g.IsList {
		list := g.Value.(*ast.PlcList)
		elems := make([]*runtime.Value, len(list.Elements))
		for idx, elemExpr := range list.Elements {
			v, e := i.evalExpression(elemExpr)
			if e != nil {
				return e
			}
			elems[idx] = v
		}
		value = runtime.List(g.Variable.Type, elems)
	} else if g.Value != nil {
		v, e := i.evalExpression(g.Value)
		if e != nil {
			return e
		}
		value = v
	} else {
		value = runtime.NIL
	}

	i.globalScope.DefineVariable(&scope.Variable{
		Name:    g.Name,
		Type:    g.Variable.Type,
		Mutable: g.Mutable,
		Value:   value,
	})
	return nil
}

// callFunction dispatches to a builtin or user-defined function body,
// creating a fresh child scope rooted at the global scope (PLC has no
// nested function declarations or closures, so call frames never nest
// under the caller's local scope) and restoring the caller's scope
// pointer on every exit path (spec §5).
func (i *Interpreter) callFunction(fn *scope.Function, args []*runtime.Value) (*runtime.Value, *diagnostics.Error) {
	switch body := fn.Body.(type) {
	case BuiltinFunc:
		return body(i, args)
	case *ast.Function:
		callScope := i.globalScope.Child()
		for idx, pname := range body.Parameters {
			callScope.DefineVariable(&scope.Variable{Name: pname, Mutable: true, Value: args[idx]})
		}

		outer := i.scope
		i.scope = callScope
		defer func() { i.scope = outer }()

		outcome, e := i.execStatements(body.Statements)
		if e != nil {
			return nil, e
		}
		if outcome.Signal == control.Returning {
			return outcome.Value, nil
		}
		return runtime.NIL, nil
	default:
		return nil, runtimeErr(diagnostics.ErrA005, "uncallable function body")
	}
}
