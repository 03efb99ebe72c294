// Package control models non-local control flow for function return as an
// explicit sum type threaded through statement execution, rather than as
// a panic/recover unwind (spec §9: "do not emulate exceptions").
package control

import "github.com/colinhart/plc/internal/runtime"

// Signal tags what an executed statement (or block of statements) is
// asking its caller to do next.
type Signal int

const (
	// None means execution fell through normally; keep running the
	// enclosing block.
	None Signal = iota
	// Returning means a Return statement fired; every enclosing
	// statement construct must stop and propagate this outcome until it
	// reaches the function call that is currently executing.
	Returning
)

// Outcome is the result of executing a statement or statement block.
type Outcome struct {
	Signal Signal
	Value  *runtime.Value // meaningful only when Signal == Returning
}

// Fallthrough is the outcome of ordinary, non-returning execution.
func Fallthrough() Outcome {
	return Outcome{Signal: None}
}

// Return wraps v as a Returning outcome.
func Return(v *runtime.Value) Outcome {
	return Outcome{Signal: Returning, Value: v}
}
