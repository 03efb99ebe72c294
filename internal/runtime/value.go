// Package runtime holds the interpreter's dynamic value representation.
package runtime

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/colinhart/plc/internal/decimal"
	"github.com/colinhart/plc/internal/types"
)

// Value is a single dynamic PLC value: a static Type tag plus the Go
// representation backing it.
//
//   - Nil        -> Data is nil
//   - Boolean    -> bool
//   - Integer    -> *big.Int
//   - Decimal    -> decimal.Decimal
//   - Character  -> rune
//   - String     -> string
//   - list types -> []*Value
//
// Lists carry a reference-typed Go slice deliberately: spec §9(d)'s
// aliasing behavior (two variables bound to "the same" list observe each
// other's in-place mutations) falls out for free from Go slice semantics
// rather than needing a special case.
type Value struct {
	Type types.Type
	Data interface{}
}

// NIL is the canonical nil value.
var NIL = &Value{Type: types.T(types.Nil), Data: nil}

// TRUE and FALSE are the canonical boolean values.
var (
	TRUE  = &Value{Type: types.T(types.Boolean), Data: true}
	FALSE = &Value{Type: types.T(types.Boolean), Data: false}
)

// Bool returns the canonical TRUE or FALSE for a Go bool.
func Bool(b bool) *Value {
	if b {
		return TRUE
	}
	return FALSE
}

// Int wraps a *big.Int as an Integer value.
func Int(v *big.Int) *Value {
	return &Value{Type: types.T(types.Integer), Data: v}
}

// IntFromInt64 wraps a Go int64 as an Integer value.
func IntFromInt64(v int64) *Value {
	return Int(big.NewInt(v))
}

// Dec wraps a decimal.Decimal as a Decimal value.
func Dec(d decimal.Decimal) *Value {
	return &Value{Type: types.T(types.Decimal), Data: d}
}

// Char wraps a rune as a Character value.
func Char(r rune) *Value {
	return &Value{Type: types.T(types.Character), Data: r}
}

// Str wraps a Go string as a String value.
func Str(s string) *Value {
	return &Value{Type: types.T(types.String), Data: s}
}

// List builds a list value of the given element type, backed by elems.
// The element Type is carried so an empty list still knows what it holds.
func List(elementType types.Type, elems []*Value) *Value {
	return &Value{Type: elementType, Data: elems}
}

// AsInt returns the underlying *big.Int. Callers must only call this on a
// Value known (by static type or a prior IsList check) to hold an Integer.
func (v *Value) AsInt() *big.Int { return v.Data.(*big.Int) }

// AsDecimal returns the underlying decimal.Decimal.
func (v *Value) AsDecimal() decimal.Decimal { return v.Data.(decimal.Decimal) }

// AsBool returns the underlying bool.
func (v *Value) AsBool() bool { return v.Data.(bool) }

// AsChar returns the underlying rune.
func (v *Value) AsChar() rune { return v.Data.(rune) }

// AsString returns the underlying string.
func (v *Value) AsString() string { return v.Data.(string) }

// IsList reports whether v's Data is a Go slice of elements (a PLC list),
// as opposed to a scalar. PLC's closed Type enum has no separate "List"
// Kind: a list expression's resolved static type is its element type
// (spec §4.4), so "list-ness" is a runtime/representation distinction
// only, detected here rather than on the Type.
func (v *Value) IsList() bool {
	_, ok := v.Data.([]*Value)
	return ok
}

// AsList returns the underlying element slice.
func (v *Value) AsList() []*Value { return v.Data.([]*Value) }

// IsNil reports whether v is the Nil value.
func (v *Value) IsNil() bool { return v.Type.Kind == types.Nil }

// Equal implements PLC's structural `==` for comparable values, including
// deep element-wise comparison for lists.
func Equal(a, b *Value) bool {
	if a.IsNil() || b.IsNil() {
		return a.IsNil() && b.IsNil()
	}
	if a.IsList() && b.IsList() {
		ae, be := a.AsList(), b.AsList()
		if len(ae) != len(be) {
			return false
		}
		for i := range ae {
			if !Equal(ae[i], be[i]) {
				return false
			}
		}
		return true
	}
	if a.Type.Kind != b.Type.Kind {
		return false
	}
	switch a.Type.Kind {
	case types.Integer:
		return a.AsInt().Cmp(b.AsInt()) == 0
	case types.Decimal:
		return decimal.Equal(a.AsDecimal(), b.AsDecimal())
	case types.Boolean:
		return a.AsBool() == b.AsBool()
	case types.Character:
		return a.AsChar() == b.AsChar()
	case types.String:
		return a.AsString() == b.AsString()
	default:
		return a == b
	}
}

// String renders v for print()/the REPL, per spec §4.5's display rules.
func (v *Value) String() string {
	if v.IsList() {
		elems := v.AsList()
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	switch v.Type.Kind {
	case types.Nil:
		return "nil"
	case types.Boolean:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case types.Integer:
		return v.AsInt().String()
	case types.Decimal:
		return v.AsDecimal().String()
	case types.Character:
		return string(v.AsChar())
	case types.String:
		return v.AsString()
	default:
		return fmt.Sprintf("<%s>", v.Type)
	}
}
