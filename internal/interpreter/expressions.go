package interpreter

import (
	"math/big"
	"strings"

	"github.com/colinhart/plc/internal/ast"
	"github.com/colinhart/plc/internal/decimal"
	"github.com/colinhart/plc/internal/diagnostics"
	"github.com/colinhart/plc/internal/runtime"
	"github.com/colinhart/plc/internal/types"
)

func (i *Interpreter) evalExpression(e ast.Expression) (*runtime.Value, *diagnostics.Error) {
	switch ex := e.(type) {
	case *ast.Literal:
		return i.evalLiteral(ex)
	case *ast.Group:
		return i.evalExpression(ex.Inner)
	case *ast.Binary:
		return i.evalBinary(ex)
	case *ast.Access:
		return i.evalAccess(ex)
	case *ast.Call:
		return i.evalCall(ex)
	case *ast.PlcList:
		return i.evalPlcList(ex)
	default:
		return nil, runtimeErr(diagnostics.ErrA003, "unrecognized expression")
	}
}

func (i *Interpreter) evalLiteral(l *ast.Literal) (*runtime.Value, *diagnostics.Error) {
	switch v := l.Value.(type) {
	case nil:
		return runtime.NIL, nil
	case bool:
		return runtime.Bool(v), nil
	case *big.Int:
		return runtime.Int(v), nil
	case decimal.Decimal:
		return runtime.Dec(v), nil
	case rune:
		return runtime.Char(v), nil
	case string:
		return runtime.Str(v), nil
	default:
		return nil, runtimeErr(diagnostics.ErrA003, "unrecognized literal value")
	}
}

func (i *Interpreter) evalPlcList(l *ast.PlcList) (*runtime.Value, *diagnostics.Error) {
	elems := make([]*runtime.Value, len(l.Elements))
	for idx, elemExpr := range l.Elements {
		v, e := i.evalExpression(elemExpr)
		if e != nil {
			return nil, e
		}
		elems[idx] = v
	}
	return runtime.List(l.ResolvedType(), elems), nil
}

func (i *Interpreter) evalAccess(ac *ast.Access) (*runtime.Value, *diagnostics.Error) {
	v, lookupErr := i.scope.LookupVariable(ac.Name)
	if lookupErr != nil {
		return nil, runtimeErr(diagnostics.ErrA001, ac.Name)
	}
	value := v.Value.(*runtime.Value)

	if ac.Offset == nil {
		return value, nil
	}

	offset, e := i.evalExpression(ac.Offset)
	if e != nil {
		return nil, e
	}
	idx := int(offset.AsInt().Int64())
	list := value.AsList()
	if idx < 0 || idx >= len(list) {
		return nil, runtimeErr(diagnostics.ErrR002, ac.Name)
	}
	return list[idx], nil
}

func (i *Interpreter) evalCall(c *ast.Call) (*runtime.Value, *diagnostics.Error) {
	args := make([]*runtime.Value, len(c.Args))
	for idx, argExpr := range c.Args {
		v, e := i.evalExpression(argExpr)
		if e != nil {
			return nil, e
		}
		args[idx] = v
	}
	fn, lookupErr := i.globalScope.LookupFunction(c.Name, len(c.Args))
	if lookupErr != nil {
		return nil, runtimeErr(diagnostics.ErrA005, "undeclared function "+c.Name)
	}
	return i.callFunction(fn, args)
}

// evalBinary implements the runtime semantics of spec §4.5 Binary,
// including short-circuit evaluation of && and ||.
func (i *Interpreter) evalBinary(b *ast.Binary) (*runtime.Value, *diagnostics.Error) {
	switch b.Op {
	case "&&":
		left, e := i.evalExpression(b.Left)
		if e != nil {
			return nil, e
		}
		if !left.AsBool() {
			return runtime.FALSE, nil
		}
		right, e := i.evalExpression(b.Right)
		if e != nil {
			return nil, e
		}
		return runtime.Bool(right.AsBool()), nil
	case "||":
		left, e := i.evalExpression(b.Left)
		if e != nil {
			return nil, e
		}
		if left.AsBool() {
			return runtime.TRUE, nil
		}
		right, e := i.evalExpression(b.Right)
		if e != nil {
			return nil, e
		}
		return runtime.Bool(right.AsBool()), nil
	}

	left, e := i.evalExpression(b.Left)
	if e != nil {
		return nil, e
	}
	right, e := i.evalExpression(b.Right)
	if e != nil {
		return nil, e
	}

	switch b.Op {
	case "==":
		return runtime.Bool(runtime.Equal(left, right)), nil
	case "!=":
		return runtime.Bool(!runtime.Equal(left, right)), nil
	case "<":
		cmp, e := compare(left, right)
		if e != nil {
			return nil, e
		}
		return runtime.Bool(cmp < 0), nil
	case ">":
		cmp, e := compare(left, right)
		if e != nil {
			return nil, e
		}
		return runtime.Bool(cmp > 0), nil
	case "+":
		return evalAdd(left, right)
	case "-":
		return evalArith(left, right, decimal.Sub, func(a, b *big.Int) (*big.Int, *diagnostics.Error) {
			return new(big.Int).Sub(a, b), nil
		})
	case "*":
		return evalArith(left, right, decimal.Mul, func(a, b *big.Int) (*big.Int, *diagnostics.Error) {
			return new(big.Int).Mul(a, b), nil
		})
	case "/":
		return evalDivide(left, right)
	case "^":
		return evalPow(left, right)
	default:
		return nil, runtimeErr(diagnostics.ErrA003, "unrecognized operator "+b.Op)
	}
}

// compare orders two equal-typed comparable values for `<`/`>`.
func compare(left, right *runtime.Value) (int, *diagnostics.Error) {
	switch left.Type.Kind {
	case types.Integer:
		return left.AsInt().Cmp(right.AsInt()), nil
	case types.Decimal:
		return decimal.Cmp(left.AsDecimal(), right.AsDecimal()), nil
	case types.Character:
		return int(left.AsChar()) - int(right.AsChar()), nil
	case types.String:
		return strings.Compare(left.AsString(), right.AsString()), nil
	default:
		return 0, runtimeErr(diagnostics.ErrA003, "values of type "+left.Type.String()+" are not ordered")
	}
}

// evalAdd implements `+`: String concatenation if either side is String,
// else same-typed Integer/Decimal addition (spec §4.5).
func evalAdd(left, right *runtime.Value) (*runtime.Value, *diagnostics.Error) {
	if left.Type.Kind == types.String || right.Type.Kind == types.String {
		return runtime.Str(left.String() + right.String()), nil
	}
	return evalArith(left, right, decimal.Add, func(a, b *big.Int) (*big.Int, *diagnostics.Error) {
		return new(big.Int).Add(a, b), nil
	})
}

// evalArith applies decOp or intOp depending on the (shared) operand type.
func evalArith(left, right *runtime.Value, decOp func(a, b decimal.Decimal) decimal.Decimal, intOp func(a, b *big.Int) (*big.Int, *diagnostics.Error)) (*runtime.Value, *diagnostics.Error) {
	if left.Type.Kind == types.Decimal {
		return runtime.Dec(decOp(left.AsDecimal(), right.AsDecimal())), nil
	}
	result, e := intOp(left.AsInt(), right.AsInt())
	if e != nil {
		return nil, e
	}
	return runtime.Int(result), nil
}

func evalDivide(left, right *runtime.Value) (*runtime.Value, *diagnostics.Error) {
	if left.Type.Kind == types.Decimal {
		quotient, err := decimal.Div(left.AsDecimal(), right.AsDecimal())
		if err != nil {
			return nil, runtimeErr(diagnostics.ErrR001)
		}
		return runtime.Dec(quotient), nil
	}
	if right.AsInt().Sign() == 0 {
		return nil, runtimeErr(diagnostics.ErrR001)
	}
	return runtime.Int(new(big.Int).Quo(left.AsInt(), right.AsInt())), nil
}

func evalPow(left, right *runtime.Value) (*runtime.Value, *diagnostics.Error) {
	exponent := right.AsInt()
	if exponent.Sign() < 0 {
		return nil, runtimeErr(diagnostics.ErrR004, exponent.String())
	}
	return runtime.Int(new(big.Int).Exp(left.AsInt(), exponent, nil)), nil
}
