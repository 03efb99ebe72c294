package interpreter

import (
	"fmt"

	"github.com/colinhart/plc/internal/diagnostics"
	"github.com/colinhart/plc/internal/runtime"
	"github.com/colinhart/plc/internal/scope"
	"github.com/colinhart/plc/internal/types"
)

// BuiltinFunc is the shape of a native function body, stored in a
// scope.Function's Body slot alongside the *ast.Function shape used for
// source-defined functions.
type BuiltinFunc func(i *Interpreter, args []*runtime.Value) (*runtime.Value, *diagnostics.Error)

// registerBuiltins defines print/1, writing the argument's string form
// followed by a newline to i.stdout and returning NIL (spec §4.3, §6).
func registerBuiltins(i *Interpreter) {
	i.globalScope.DefineFunction(&scope.Function{
		Name:           "print",
		ParameterTypes: []types.Type{types.T(types.Any)},
		ReturnType:     types.T(types.Nil),
		Body: BuiltinFunc(func(i *Interpreter, args []*runtime.Value) (*runtime.Value, *diagnostics.Error) {
			fmt.Fprintln(i.stdout, args[0].String())
			return runtime.NIL, nil
		}),
	})
}
