package interpreter

import (
	"bytes"

	"github.com/colinhart/plc/internal/pipeline"
)

// Stage adapts Run to the pipeline.Processor interface, capturing print()
// output into ctx.Stdout.
type Stage struct{}

// Process interprets ctx.Source, recording the final value and captured
// standard output, or a diagnostic on failure.
func (Stage) Process(ctx *pipeline.Context) *pipeline.Context {
	var out bytes.Buffer
	result, err := Run(ctx.Source, &out)
	ctx.Stdout = out.Bytes()
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Result = result
	return ctx
}
