package pipeline

import "github.com/ashenforge/render/passes"

// LogicalForwardPipeline is the simple single-pass-per-object pipeline:
// Forward (priority 100) followed by UI (priority 500).
type LogicalForwardPipeline struct {
	LogicalPipeline
}

// NewLogicalForwardPipeline constructs the forward pipeline with its two
// fixed passes already added.
func NewLogicalForwardPipeline() *LogicalForwardPipeline {
	fp := &LogicalForwardPipeline{LogicalPipeline: NewLogicalPipeline()}
	_ = fp.AddPass(passes.NewForwardPass())
	_ = fp.AddPass(passes.NewUIPass())
	return fp
}
