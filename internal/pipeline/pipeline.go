// Package pipeline wires the lexer, parser, analyzer and interpreter into
// a single one-way processing chain: string -> tokens -> AST -> annotated
// AST -> runtime effects + final value.
package pipeline

import (
	"github.com/colinhart/plc/internal/ast"
	"github.com/colinhart/plc/internal/diagnostics"
	"github.com/colinhart/plc/internal/runtime"
	"github.com/colinhart/plc/internal/token"
)

// Processor is any pipeline stage that can process a Context and return a
// (possibly modified) context.
type Processor interface {
	Process(ctx *Context) *Context
}

// Context holds the data threaded between pipeline stages. Only one of
// Tokens/Source/Result is meaningful after a given stage; earlier fields
// remain populated for diagnostics and inspection.
type Context struct {
	SourceCode string
	Tokens     []token.Token
	Source     *ast.Source
	Result     *runtime.Value // main's return value, set after interpretation
	Stdout     []byte         // captured print() output, set after interpretation
	Errors     []*diagnostics.Error
}

// NewContext creates a Context ready to enter the first stage.
func NewContext(source string) *Context {
	return &Context{SourceCode: source}
}

// Failed reports whether any stage has recorded an error.
func (c *Context) Failed() bool {
	return len(c.Errors) > 0
}

// Pipeline is an ordered sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from the given stages, run in order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, short-circuiting as soon as a stage
// records an error (later stages assume a well-formed predecessor output).
func (p *Pipeline) Run(ctx *Context) *Context {
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
		if ctx.Failed() {
			return ctx
		}
	}
	return ctx
}
