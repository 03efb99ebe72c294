package lexer

import "github.com/colinhart/plc/internal/pipeline"

// Stage adapts Lex to the pipeline.Processor interface.
type Stage struct{}

// Process lexes ctx.SourceCode into ctx.Tokens, recording a diagnostic on
// failure.
func (Stage) Process(ctx *pipeline.Context) *pipeline.Context {
	tokens, err := Lex(ctx.SourceCode)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Tokens = tokens
	return ctx
}
