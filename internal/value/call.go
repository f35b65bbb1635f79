package value

import "github.com/marius851000/wikifunction-intepreter-2/internal/kid"

// CallContext holds the information a builtin needs to execute, grounded on
// adt.CallContext: the evaluated arguments plus a handle back to the shared
// ExecutionContext for budget-aware recursive calls (Z889 uses it to invoke
// its elementwise equality function through ExecutionContext.Eval).
type CallContext struct {
	Ctx        *ExecutionContext
	FunctionID kid.Zid
	Args       []V
}

// OpContext returns the shared execution context.
func (c *CallContext) OpContext() *ExecutionContext { return c.Ctx }

// NumParams returns the number of evaluated arguments available.
func (c *CallContext) NumParams() int { return len(c.Args) }

// Value returns the i'th evaluated argument (0-indexed).
func (c *CallContext) Value(i int) V { return c.Args[i] }

// Errf builds an EvalError already annotated with this call's frame,
// mirroring adt.CallContext.Errf.
func (c *CallContext) Errf(build func() *EvalError) *EvalError {
	return build().Wrap(ProcessingNonCompositionEntry(c.FunctionID))
}
