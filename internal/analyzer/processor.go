package analyzer

import "github.com/colinhart/plc/internal/pipeline"

// Stage adapts Analyze to the pipeline.Processor interface.
type Stage struct{}

// Process type-checks and resolves names in ctx.Source in place, recording
// a diagnostic on failure.
func (Stage) Process(ctx *pipeline.Context) *pipeline.Context {
	if e := Analyze(ctx.Source); e != nil {
		ctx.Errors = append(ctx.Errors, e)
	}
	return ctx
}
