// Package regexdemo exposes the five compiled regular expressions named in
// spec.md §6 as an external collaborator of the PLC core, with its own
// test vectors rather than any dependency on the lexer/parser (spec §1:
// "the regex homework module" is out of scope for the interpreter itself).
package regexdemo

import "regexp"

// Email matches addresses with a user part of at least two characters and
// a TLD of at least three (spec §8 scenario 1).
var Email = regexp.MustCompile(`^[a-zA-Z0-9._%+-]{2,}@[a-zA-Z0-9.-]+\.[a-zA-Z]{3,}$`)

// OddLength matches strings whose total length is odd.
var OddLength = regexp.MustCompile(`^(?s)(..)*.$`)

// CharacterLiteral matches a PLC CHARACTER token's surface form: a single
// quoted character, or one of the recognized backslash escapes.
var CharacterLiteral = regexp.MustCompile(`^'(\\[bnrt'"\\]|[^'\\])'$`)

// Decimal matches a PLC DECIMAL token's surface form: an optionally
// negative integer part with no invalid leading zero, a dot, and one or
// more fractional digits.
var Decimal = regexp.MustCompile(`^-?(0|[1-9][0-9]*)\.[0-9]+$`)

// StringLiteral matches a PLC STRING token's surface form: a
// double-quoted run of non-quote, non-newline characters with
// backslash-escapes.
var StringLiteral = regexp.MustCompile(`^"(\\[bnrt'"\\]|[^"\\\n])*"$`)

// MatchEmail reports whether s is a well-formed email address per Email.
func MatchEmail(s string) bool { return Email.MatchString(s) }

// MatchOddLength reports whether s has odd length per OddLength.
func MatchOddLength(s string) bool { return OddLength.MatchString(s) }

// MatchCharacterLiteral reports whether s is a well-formed CHARACTER
// literal surface form.
func MatchCharacterLiteral(s string) bool { return CharacterLiteral.MatchString(s) }

// MatchDecimal reports whether s is a well-formed DECIMAL literal surface
// form.
func MatchDecimal(s string) bool { return Decimal.MatchString(s) }

// MatchStringLiteral reports whether s is a well-formed STRING literal
// surface form.
func MatchStringLiteral(s string) bool { return StringLiteral.MatchString(s) }
