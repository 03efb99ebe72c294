// Package analyzer performs the single semantic pass over a parsed Source:
// name resolution, type assignment, and well-formedness checks (spec §4.4).
package analyzer

import (
	"github.com/colinhart/plc/internal/ast"
	"github.com/colinhart/plc/internal/diagnostics"
	"github.com/colinhart/plc/internal/scope"
	"github.com/colinhart/plc/internal/types"
)

// Analyzer holds the mutable state threaded through one analysis pass: the
// current scope and the return type in effect inside the function body
// being visited.
type Analyzer struct {
	scope      *scope.Scope
	returnType types.Type
}

// New creates an Analyzer with a fresh root scope seeded with the built-in
// print function (spec §4.3: the analyzer registers print(Any): Nil).
func New() *Analyzer {
	root := scope.New()
	root.DefineFunction(&scope.Function{
		Name:           "print",
		ParameterTypes: []types.Type{types.T(types.Any)},
		ReturnType:     types.T(types.Nil),
	})
	return &Analyzer{scope: root}
}

// Analyze runs the full pass over src, returning the first diagnostic
// encountered, or nil on success.
func Analyze(src *ast.Source) *diagnostics.Error {
	a := New()
	return a.analyzeSource(src)
}

func err(code diagnostics.Code, args ...interface{}) *diagnostics.Error {
	return diagnostics.NewAt(diagnostics.PhaseAnalyzer, code, args...)
}

func (a *Analyzer) pushScope() {
	a.scope = a.scope.Child()
}

func (a *Analyzer) popScope() {
	a.scope = a.scope.Parent()
}

// analyzeSource visits globals then functions, then verifies the main
// contract (spec §3 Invariants, §4.4 Source).
func (a *Analyzer) analyzeSource(src *ast.Source) *diagnostics.Error {
	for _, g := range src.Globals {
		if e := a.analyzeGlobal(g); e != nil {
			return e
		}
	}
	for _, f := range src.Functions {
		if e := a.analyzeFunction(f); e != nil {
			return e
		}
	}
	return a.checkMain(src)
}

// checkMain verifies exactly one zero-parameter `main` returning Integer.
func (a *Analyzer) checkMain(src *ast.Source) *diagnostics.Error {
	var mains []*ast.Function
	for _, f := range src.Functions {
		if f.Name == "main" {
			mains = append(mains, f)
		}
	}
	if len(mains) != 1 {
		return err(diagnostics.ErrA006, "exactly one function named main is required")
	}
	m := mains[0]
	if len(m.Parameters) != 0 {
		return err(diagnostics.ErrA006, "main must take zero parameters")
	}
	if m.FuncRef.ReturnType.Kind != types.Integer {
		return err(diagnostics.ErrA006, "main must declare return type Integer")
	}
	return nil
}

// analyzeGlobal resolves typeName, visits the initializer if present, and
// defines the global's variable (spec §4.4 Global).
func (a *Analyzer) analyzeGlobal(g *ast.Global) *diagnostics.Error {
	declared, ok := types.Lookup(g.TypeName)
	if !ok {
		return err(diagnostics.ErrA002, g.TypeName)
	}

	if g.IsList {
		list := g.Value.(*ast.PlcList)
		if e := a.analyzeListLiteral(list, declared); e != nil {
			return e
		}
	} else if g.Value != nil {
		if e := a.analyzeExpression(g.Value); e != nil {
			return e
		}
		if !types.Assignable(declared, g.Value.ResolvedType()) {
			return err(diagnostics.ErrA003, "cannot assign "+g.Value.ResolvedType().String()+" to global "+g.Name+" of type "+declared.String())
		}
	}

	g.Variable = &scope.Variable{Name: g.Name, Type: declared, Mutable: g.Mutable}
	a.scope.DefineVariable(g.Variable)
	return nil
}

// analyzeFunction resolves the signature, defines it in the enclosing
// scope, then visits the body in a fresh child scope (spec §4.4 Function).
func (a *Analyzer) analyzeFunction(f *ast.Function) *diagnostics.Error {
	paramTypes := make([]types.Type, len(f.ParameterTypeNames))
	for i, name := range f.ParameterTypeNames {
		t, ok := types.Lookup(name)
		if !ok {
			return err(diagnostics.ErrA002, name)
		}
		paramTypes[i] = t
	}
	returnType, ok := types.Lookup(f.ReturnTypeName)
	if !ok {
		return err(diagnostics.ErrA002, f.ReturnTypeName)
	}

	f.FuncRef = &scope.Function{Name: f.Name, ParameterTypes: paramTypes, ReturnType: returnType}
	a.scope.DefineFunction(f.FuncRef)

	a.pushScope()
	defer a.popScope()
	for i, pname := range f.Parameters {
		a.scope.DefineVariable(&scope.Variable{Name: pname, Type: paramTypes[i], Mutable: true})
	}

	outerReturn := a.returnType
	a.returnType = returnType
	defer func() { a.returnType = outerReturn }()

	return a.analyzeStatements(f.Statements)
}
