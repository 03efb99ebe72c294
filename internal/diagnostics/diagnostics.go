// Package diagnostics defines the error taxonomy shared across the PLC
// pipeline: lex errors and parse errors carry a character/token index,
// analyzer and runtime errors carry a human-readable message.
package diagnostics

import "fmt"

// Phase identifies which pipeline stage raised an error.
type Phase string

const (
	PhaseLexer    Phase = "lexer"
	PhaseParser   Phase = "parser"
	PhaseAnalyzer Phase = "analyzer"
	PhaseRuntime  Phase = "runtime"
)

// Code is a stable identifier for a specific kind of diagnostic.
type Code string

const (
	// Lexer
	ErrL001 Code = "L001" // invalid character
	ErrL002 Code = "L002" // unterminated string/character literal
	ErrL003 Code = "L003" // invalid escape sequence
	ErrL004 Code = "L004" // malformed integer (leading zero)

	// Parser
	ErrP001 Code = "P001" // unexpected token
	ErrP002 Code = "P002" // expected identifier
	ErrP003 Code = "P003" // malformed declaration or signature

	// Analyzer
	ErrA001 Code = "A001" // undeclared variable
	ErrA002 Code = "A002" // undeclared type
	ErrA003 Code = "A003" // type mismatch / assignability failure
	ErrA004 Code = "A004" // redefinition
	ErrA005 Code = "A005" // wrong arity / undeclared function
	ErrA006 Code = "A006" // missing or malformed main
	ErrA007 Code = "A007" // malformed switch
	ErrA008 Code = "A008" // expression statement without a call

	// Runtime
	ErrR001 Code = "R001" // division by zero
	ErrR002 Code = "R002" // index out of bounds
	ErrR003 Code = "R003" // assignment to immutable variable
	ErrR004 Code = "R004" // negative exponent
)

var templates = map[Code]string{
	ErrL001: "invalid character: %q",
	ErrL002: "unterminated literal",
	ErrL003: "invalid escape sequence: %q",
	ErrL004: "malformed integer literal (leading zero): %q",
	ErrP001: "unexpected token: expected %s, got %q",
	ErrP002: "expected an identifier, got %q",
	ErrP003: "%s",
	ErrA001: "undeclared variable: %q",
	ErrA002: "undeclared type: %q",
	ErrA003: "%s",
	ErrA004: "redefinition of %q",
	ErrA005: "%s",
	ErrA006: "%s",
	ErrA007: "%s",
	ErrA008: "expression statement must be a function call",
	ErrR001: "division by zero",
	ErrR002: "index out of bounds: %s",
	ErrR003: "assignment to immutable variable %q",
	ErrR004: "negative exponent: %s",
}

// Error is a single diagnostic: a phase, a code, a location, and the
// arguments that fill in the code's message template.
type Error struct {
	Phase Phase
	Code  Code
	Index int // character index (lex/parse) or -1 if not positional
	Args  []interface{}
}

func (e *Error) Error() string {
	template, ok := templates[e.Code]
	if !ok {
		template = "unknown diagnostic"
	}
	message := fmt.Sprintf(template, e.Args...)
	if e.Index >= 0 {
		return fmt.Sprintf("[%s] error at %d [%s]: %s", e.Phase, e.Index, e.Code, message)
	}
	return fmt.Sprintf("[%s] error [%s]: %s", e.Phase, e.Code, message)
}

// New creates a positional diagnostic (lex/parse errors carry an index).
func New(phase Phase, code Code, index int, args ...interface{}) *Error {
	return &Error{Phase: phase, Code: code, Index: index, Args: args}
}

// NewAt creates a non-positional diagnostic (most analyzer/runtime errors).
func NewAt(phase Phase, code Code, args ...interface{}) *Error {
	return &Error{Phase: phase, Code: code, Index: -1, Args: args}
}
