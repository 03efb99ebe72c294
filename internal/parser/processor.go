package parser

import "github.com/colinhart/plc/internal/pipeline"

// Stage adapts Parse to the pipeline.Processor interface.
type Stage struct{}

// Process parses ctx.Tokens into ctx.Source, recording a diagnostic on
// failure.
func (Stage) Process(ctx *pipeline.Context) *pipeline.Context {
	source, err := Parse(ctx.Tokens)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Source = source
	return ctx
}
