package scope

import (
	"testing"

	"github.com/colinhart/plc/internal/types"
)

func TestLookupVariableClimbsParentChain(t *testing.T) {
	root := New()
	root.DefineVariable(&Variable{Name: "x", Type: types.T(types.Integer), Mutable: true})

	child := root.Child()
	v, err := child.LookupVariable("x")
	if err != nil {
		t.Fatalf("LookupVariable(x) from child failed: %s", err)
	}
	if v.Type != types.T(types.Integer) {
		t.Errorf("x has type %v, want Integer", v.Type)
	}
}

func TestChildShadowsParentWithoutMutatingIt(t *testing.T) {
	root := New()
	root.DefineVariable(&Variable{Name: "x", Type: types.T(types.Integer), Mutable: true})

	child := root.Child()
	child.DefineVariable(&Variable{Name: "x", Type: types.T(types.String), Mutable: false})

	childVar, err := child.LookupVariable("x")
	if err != nil {
		t.Fatalf("LookupVariable(x) from child failed: %s", err)
	}
	if childVar.Type != types.T(types.String) {
		t.Errorf("child's x has type %v, want String", childVar.Type)
	}

	rootVar, err := root.LookupVariable("x")
	if err != nil {
		t.Fatalf("LookupVariable(x) from root failed: %s", err)
	}
	if rootVar.Type != types.T(types.Integer) {
		t.Errorf("shadowing mutated the parent's x: got %v, want Integer", rootVar.Type)
	}
}

func TestLookupVariableUndeclaredFails(t *testing.T) {
	root := New()
	if _, err := root.LookupVariable("missing"); err == nil {
		t.Fatal("LookupVariable(missing) should fail")
	}
}

func TestFunctionDispatchIsArityKeyed(t *testing.T) {
	root := New()
	root.DefineFunction(&Function{Name: "f", ParameterTypes: nil, ReturnType: types.T(types.Integer)})
	root.DefineFunction(&Function{Name: "f", ParameterTypes: []types.Type{types.T(types.Integer)}, ReturnType: types.T(types.String)})

	zero, err := root.LookupFunction("f", 0)
	if err != nil {
		t.Fatalf("LookupFunction(f, 0) failed: %s", err)
	}
	if zero.ReturnType != types.T(types.Integer) {
		t.Errorf("f/0 returns %v, want Integer", zero.ReturnType)
	}

	one, err := root.LookupFunction("f", 1)
	if err != nil {
		t.Fatalf("LookupFunction(f, 1) failed: %s", err)
	}
	if one.ReturnType != types.T(types.String) {
		t.Errorf("f/1 returns %v, want String", one.ReturnType)
	}

	if _, err := root.LookupFunction("f", 2); err == nil {
		t.Fatal("LookupFunction(f, 2) should fail: no such arity defined")
	}
}

func TestFunctionLookupClimbsParentChain(t *testing.T) {
	root := New()
	root.DefineFunction(&Function{Name: "g", ParameterTypes: nil, ReturnType: types.T(types.Boolean)})

	child := root.Child()
	f, err := child.LookupFunction("g", 0)
	if err != nil {
		t.Fatalf("LookupFunction(g, 0) from child failed: %s", err)
	}
	if f.ReturnType != types.T(types.Boolean) {
		t.Errorf("g/0 returns %v, want Boolean", f.ReturnType)
	}
}

func TestParentReturnsNilAtRoot(t *testing.T) {
	root := New()
	if root.Parent() != nil {
		t.Error("a root scope should have a nil parent")
	}
	child := root.Child()
	if child.Parent() != root {
		t.Error("Child() should set the new scope's parent to the receiver")
	}
}
