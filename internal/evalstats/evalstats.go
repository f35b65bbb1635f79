// Package evalstats tracks counters for key events during an evaluation,
// grounded on cuelang.org/go/cue/stats.Counts: purely diagnostic, never
// consulted by control flow.
package evalstats

import "fmt"

// Counts holds counters for a single evaluation run.
type Counts struct {
	Evaluations     int64 // calls to Evaluate
	Reductions      int64 // function-call reductions performed
	Substitutions   int64 // argument substitutions performed
	BuiltinCalls    int64 // builtin dispatches performed
	MaxDepthReached int32 // highest call depth reached
	StepsTaken      int64 // total evaluator steps consumed
}

func (c *Counts) String() string {
	return fmt.Sprintf("evals=%d reductions=%d substitutions=%d builtins=%d maxDepth=%d steps=%d",
		c.Evaluations, c.Reductions, c.Substitutions, c.BuiltinCalls, c.MaxDepthReached, c.StepsTaken)
}
