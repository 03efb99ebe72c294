package analyzer

import (
	"math/big"
	"strconv"

	"github.com/colinhart/plc/internal/ast"
	"github.com/colinhart/plc/internal/decimal"
	"github.com/colinhart/plc/internal/diagnostics"
	"github.com/colinhart/plc/internal/types"
)

var (
	int32Min = big.NewInt(-1 << 31)
	int32Max = big.NewInt(1<<31 - 1)
)

func (a *Analyzer) analyzeExpression(e ast.Expression) *diagnostics.Error {
	switch ex := e.(type) {
	case *ast.Literal:
		return a.analyzeLiteral(ex)
	case *ast.Group:
		return a.analyzeGroup(ex)
	case *ast.Binary:
		return a.analyzeBinary(ex)
	case *ast.Access:
		return a.analyzeAccess(ex)
	case *ast.Call:
		return a.analyzeCall(ex)
	case *ast.PlcList:
		return err(diagnostics.ErrA003, "list literals may only appear in a LIST declaration")
	default:
		return err(diagnostics.ErrA003, "unrecognized expression")
	}
}

// analyzeLiteral assigns the type implied by the literal's Go
// representation; Integer literals must fit signed 32-bit bounds
// (spec §4.4 Literal, §9 arbitrary-precision numbers).
func (a *Analyzer) analyzeLiteral(l *ast.Literal) *diagnostics.Error {
	switch v := l.Value.(type) {
	case nil:
		l.SetResolvedType(types.T(types.Nil))
	case bool:
		l.SetResolvedType(types.T(types.Boolean))
	case *big.Int:
		if v.Cmp(int32Min) < 0 || v.Cmp(int32Max) > 0 {
			return err(diagnostics.ErrA003, "integer literal "+v.String()+" out of 32-bit signed range")
		}
		l.SetResolvedType(types.T(types.Integer))
	case decimal.Decimal:
		l.SetResolvedType(types.T(types.Decimal))
	case rune:
		l.SetResolvedType(types.T(types.Character))
	case string:
		l.SetResolvedType(types.T(types.String))
	default:
		return err(diagnostics.ErrA003, "unrecognized literal value")
	}
	return nil
}

// analyzeGroup requires the inner expression be a Binary (spec §4.4 Group).
func (a *Analyzer) analyzeGroup(g *ast.Group) *diagnostics.Error {
	if _, ok := g.Inner.(*ast.Binary); !ok {
		return err(diagnostics.ErrA003, "parenthesized expression must be a binary operator expression")
	}
	if e := a.analyzeExpression(g.Inner); e != nil {
		return e
	}
	g.SetResolvedType(g.Inner.ResolvedType())
	return nil
}

// analyzeBinary implements the operator-driven typing rules of spec §4.4.
func (a *Analyzer) analyzeBinary(b *ast.Binary) *diagnostics.Error {
	if e := a.analyzeExpression(b.Left); e != nil {
		return e
	}
	if e := a.analyzeExpression(b.Right); e != nil {
		return e
	}
	left, right := b.Left.ResolvedType(), b.Right.ResolvedType()

	switch b.Op {
	case "&&", "||":
		if left.Kind != types.Boolean || right.Kind != types.Boolean {
			return err(diagnostics.ErrA003, "operands of "+b.Op+" must be Boolean")
		}
		b.SetResolvedType(types.T(types.Boolean))
	case "<", ">", "==", "!=":
		if left.Kind != right.Kind || !types.EqualityComparable(left) {
			return err(diagnostics.ErrA003, "operands of "+b.Op+" must share a comparable type")
		}
		b.SetResolvedType(types.T(types.Boolean))
	case "+":
		if left.Kind == types.String || right.Kind == types.String {
			b.SetResolvedType(types.T(types.String))
		} else if left.Kind == right.Kind && types.Numeric(left) {
			b.SetResolvedType(left)
		} else {
			return err(diagnostics.ErrA003, "operands of + must both be numeric of the same type, or either side String")
		}
	case "-", "*", "/":
		if left.Kind != right.Kind || !types.Numeric(left) {
			return err(diagnostics.ErrA003, "operands of "+b.Op+" must both be Integer or both Decimal")
		}
		b.SetResolvedType(left)
	case "^":
		if left.Kind != types.Integer || right.Kind != types.Integer {
			return err(diagnostics.ErrA003, "operands of ^ must be Integer")
		}
		b.SetResolvedType(types.T(types.Integer))
	default:
		return err(diagnostics.ErrA003, "unrecognized operator "+b.Op)
	}
	return nil
}

// analyzeAccess resolves the variable and, if indexed, requires an
// Integer offset (spec §4.4 Access). The resolved type is always the
// variable's declared type: PLC's closed Type enum carries no separate
// list Kind, so a list-typed variable's element type doubles as the type
// of both the whole-list and the indexed-element access.
func (a *Analyzer) analyzeAccess(ac *ast.Access) *diagnostics.Error {
	v, lookupErr := a.scope.LookupVariable(ac.Name)
	if lookupErr != nil {
		return err(diagnostics.ErrA001, ac.Name)
	}
	ac.Variable = v
	ac.SetResolvedType(v.Type)

	if ac.Offset != nil {
		if e := a.analyzeExpression(ac.Offset); e != nil {
			return e
		}
		if ac.Offset.ResolvedType().Kind != types.Integer {
			return err(diagnostics.ErrA003, "list index must be Integer")
		}
	}
	return nil
}

// analyzeCall resolves the callee by (name, arity) and requires each
// argument be assignable into the corresponding parameter type
// (spec §4.4 Function call).
func (a *Analyzer) analyzeCall(c *ast.Call) *diagnostics.Error {
	for _, arg := range c.Args {
		if e := a.analyzeExpression(arg); e != nil {
			return e
		}
	}
	fn, lookupErr := a.scope.LookupFunction(c.Name, len(c.Args))
	if lookupErr != nil {
		return err(diagnostics.ErrA005, "undeclared function "+c.Name+" with "+strconv.Itoa(len(c.Args))+" argument(s)")
	}
	c.Function = fn
	for i, arg := range c.Args {
		if !types.Assignable(fn.ParameterTypes[i], arg.ResolvedType()) {
			return err(diagnostics.ErrA005, "argument "+strconv.Itoa(i+1)+" to "+c.Name+" is not assignable to "+fn.ParameterTypes[i].String())
		}
	}
	c.SetResolvedType(fn.ReturnType)
	return nil
}

// analyzeListLiteral visits a LIST global's literal elements, requiring
// each share the global's declared element type (spec §4.4 PlcList).
func (a *Analyzer) analyzeListLiteral(l *ast.PlcList, elementType types.Type) *diagnostics.Error {
	for _, elem := range l.Elements {
		if e := a.analyzeExpression(elem); e != nil {
			return e
		}
		if !types.Assignable(elementType, elem.ResolvedType()) {
			return err(diagnostics.ErrA003, "list element is not assignable to declared element type "+elementType.String())
		}
	}
	l.SetResolvedType(elementType)
	return nil
}
