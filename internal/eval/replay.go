package eval

import "github.com/marius851000/wikifunction-intepreter-2/internal/value"

// Step is one annotated move of a replay walk: the trace entry that
// prompted it, and the sub-value reached by applying it.
type Step struct {
	Entry value.TraceEntry
	Value value.V
}

// Replay implements spec.md §4.11: walk err's trace from outermost
// (the end of the slice) to innermost, applying the same semantic move the
// evaluator made at each step, and return the annotated path plus the
// deepest value reached. It must never itself fail — a trace entry that
// can't be resolved against the current value (e.g. a key no longer
// present) just leaves the value where it stood, since replay settles for
// the deepest value the original trace is still faithful to.
func Replay(ctx *value.ExecutionContext, original value.V, err *value.EvalError) ([]Step, value.V) {
	v := original
	steps := make([]Step, 0, len(err.Trace))

	for i := len(err.Trace) - 1; i >= 0; i-- {
		entry := err.Trace[i]
		switch entry.Kind {
		case value.InsideKey:
			if nv, ok := v.Get(entry.Key); ok {
				v = nv
			}
		case value.InsideList:
			if tl, ok := v.(*value.TypedList); ok {
				flat := tl.Flatten()
				if entry.Pos >= 0 && entry.Pos < len(flat) {
					v = flat[entry.Pos]
				}
			}
		case value.InsideReference:
			if ref, ok := v.(*value.Reference); ok {
				if resolved, rerr := resolve(ctx, ref); rerr == nil {
					v = resolved
				}
			}
		case value.CheckingTestCaseResult:
			v = entry.R
		case value.Substituted, value.ProcessingNonComposition, value.Text:
			// purely descriptive frames: no sub-value to descend into.
		}
		steps = append(steps, Step{Entry: entry, Value: v})
	}

	return steps, v
}
