// Package scope implements the lexical-scope chain shared by the analyzer
// and interpreter (spec §4.3). Both stages own independent scope trees
// built from the same non-generic Scope type, whose value and body slots
// are typed interface{}: the analyzer only needs a variable's Type field,
// the interpreter also stores a live runtime value.
package scope

import (
	"fmt"

	"github.com/colinhart/plc/internal/types"
)

// Variable is a named binding: its declared type, its mutability, and a
// value slot of whatever shape the owning stage needs.
type Variable struct {
	Name    string
	Type    types.Type
	Mutable bool
	Value   interface{} // *runtime.Value in the interpreter; unused by the analyzer
}

// Function is a named, arity-dispatched callable: its signature, and a
// body slot of whatever shape the owning stage needs.
type Function struct {
	Name           string
	ParameterTypes []types.Type
	ReturnType     types.Type
	Body           interface{} // interpreter.BuiltinFunc or *ast.Function in the interpreter; unused by the analyzer
}

type funcKey struct {
	name  string
	arity int
}

// Scope is one node of the lexical-scope tree: a map of variables, a map
// of arity-dispatched functions, and an optional parent. Lookups climb the
// parent chain; definitions always write to the local scope, so a child
// scope can shadow a parent's bindings without touching them.
type Scope struct {
	parent    *Scope
	variables map[string]*Variable
	functions map[funcKey]*Function
}

// New creates a root scope with no parent.
func New() *Scope {
	return &Scope{
		variables: make(map[string]*Variable),
		functions: make(map[funcKey]*Function),
	}
}

// Child creates a new scope nested under s.
func (s *Scope) Child() *Scope {
	return &Scope{
		parent:    s,
		variables: make(map[string]*Variable),
		functions: make(map[funcKey]*Function),
	}
}

// Parent returns s's enclosing scope, or nil at the root.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// DefineVariable binds name in the local scope, shadowing any outer
// binding of the same name.
func (s *Scope) DefineVariable(v *Variable) {
	s.variables[v.Name] = v
}

// DefineFunction binds a (name, arity) pair in the local scope.
func (s *Scope) DefineFunction(f *Function) {
	key := funcKey{name: f.Name, arity: len(f.ParameterTypes)}
	s.functions[key] = f
}

// LookupVariable climbs the scope chain for name, returning an error if no
// enclosing scope defines it.
func (s *Scope) LookupVariable(name string) (*Variable, error) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.variables[name]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("undeclared variable: %s", name)
}

// LookupFunction climbs the scope chain for a (name, arity) pair.
func (s *Scope) LookupFunction(name string, arity int) (*Function, error) {
	key := funcKey{name: name, arity: arity}
	for cur := s; cur != nil; cur = cur.parent {
		if f, ok := cur.functions[key]; ok {
			return f, nil
		}
	}
	return nil, fmt.Errorf("undeclared function: %s/%d", name, arity)
}
