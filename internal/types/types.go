// Package types implements PLC's closed enumeration of built-in types and
// the requireAssignable predicate.
package types

// Kind names one of the closed set of built-in types.
type Kind string

const (
	Any             Kind = "Any"
	Nil             Kind = "Nil"
	Comparable      Kind = "Comparable"
	Integer         Kind = "Integer"
	Decimal         Kind = "Decimal"
	Boolean         Kind = "Boolean"
	Character       Kind = "Character"
	String          Kind = "String"
	IntegerIterable Kind = "IntegerIterable"
)

// Type wraps a Kind; it is the unit of typing carried on every AST
// expression's resolved-type slot.
type Type struct {
	Kind Kind
}

func (t Type) String() string { return string(t.Kind) }

// IsZero reports whether t is the unset zero value (no type assigned yet).
func (t Type) IsZero() bool { return t.Kind == "" }

// T constructs a Type from a Kind; a small convenience to avoid repeating
// the struct literal everywhere.
func T(k Kind) Type { return Type{Kind: k} }

// byName is the closed set of type names source programs may reference.
var byName = map[string]Type{
	string(Any):             T(Any),
	string(Nil):             T(Nil),
	string(Comparable):      T(Comparable),
	string(Integer):         T(Integer),
	string(Decimal):         T(Decimal),
	string(Boolean):         T(Boolean),
	string(Character):       T(Character),
	string(String):          T(String),
	string(IntegerIterable): T(IntegerIterable),
}

// Lookup resolves a built-in type name, as written in source, to its Type.
// Unknown names are analysis errors (spec §6), signalled by the second
// return value being false.
func Lookup(name string) (Type, bool) {
	t, ok := byName[name]
	return t, ok
}

// comparableKinds is the set of concrete types assignable to Comparable.
var comparableKinds = map[Kind]bool{
	Integer: true, Decimal: true, Character: true, String: true,
}

// Assignable implements requireAssignable(target, actual) from spec §4.3:
// total and exhaustive over the closed Kind set.
//
//   - target = Any           -> always assignable.
//   - target = Comparable    -> assignable iff actual is one of
//     {Integer, Decimal, Character, String}.
//   - otherwise              -> assignable iff target == actual by name.
func Assignable(target, actual Type) bool {
	switch target.Kind {
	case Any:
		return true
	case Comparable:
		return comparableKinds[actual.Kind]
	default:
		return target.Kind == actual.Kind
	}
}

// EqualityComparable reports whether a type supports `< >` ordering and
// `== !=` equality per the Binary operator rules in spec §4.4.
func EqualityComparable(t Type) bool {
	return comparableKinds[t.Kind]
}

// Numeric reports whether a type is one of the two arithmetic types.
func Numeric(t Type) bool {
	return t.Kind == Integer || t.Kind == Decimal
}
