package value

import (
	"github.com/marius851000/wikifunction-intepreter-2/internal/evalstats"
	"github.com/marius851000/wikifunction-intepreter-2/internal/kid"
)

// DefaultMaxDepth and DefaultMaxSteps are the budgets spec.md §5 names:
// depth caps around 100 function-call reductions, steps around 100,000
// evaluator steps.
const (
	DefaultMaxDepth = 100
	DefaultMaxSteps = 100_000

	// IdentityHorizon is the configurable horizon (spec.md §4.10) below
	// which a Reference to a well-known type id is accepted directly as an
	// identity assertion, skipping a full refinement cycle.
	IdentityHorizon = 100
)

// GetTypeZid is spec.md §4.10's "get_type_zid": the shortcut that accepts a
// Reference to a low-numbered, well-known type id directly as an identity
// assertion rather than paying for a full resolve-then-refine cycle just to
// compare an id. Grounded on adt.BaseValue's well-known-builtin fast paths
// (CUE's own "this path is Top/Bottom/a predeclared ident, short-circuit"
// checks before falling back to the general evaluator).
//
// v is typically the raw value found under a TypeKey (Z1K1) slot, which by
// construction (spec.md §4.2) is ordinarily a Reference already; an
// already-refined *StandardType is accepted too so a caller holding one
// doesn't need to re-derive a Reference just to ask "what id is this".
// Anything else (an unresolved composition, an argument reference, ...)
// falls through — the caller must resolve/evaluate it the slow way.
func GetTypeZid(v V) (kid.Zid, bool) {
	switch t := v.(type) {
	case *Reference:
		if t.Target < IdentityHorizon {
			return t.Target, true
		}
		return 0, false
	case *StandardType:
		return t.Identity, true
	default:
		return 0, false
	}
}

// Evaluator is the minimal reduction capability a builtin may need from the
// evaluator layer, grounded on adt.OpContext's Config.Unifier field: rather
// than have internal/builtin import internal/eval (which would cycle back,
// since eval dispatches into builtin), eval installs itself into every
// ExecutionContext it creates, and builtins call back through this narrow
// interface — exactly the strategy-injection adt.OpContext uses for Unifier
// and Runtime.
type Evaluator interface {
	// Evaluate drives v to a final form.
	Evaluate(ctx *ExecutionContext, v V) (V, *EvalError)
	// Call reduces a call to fn with the given already-evaluated arguments.
	Call(ctx *ExecutionContext, fn V, args []V) (V, *EvalError)
}

// Store is the minimal read interface the evaluator needs from the object
// store (spec.md §4.1): satisfied by *store.GlobalContext without either
// package importing the other's concrete type, the way adt.OpContext only
// requires a Runtime interface rather than a concrete *runtime.Runtime.
type Store interface {
	Get(z kid.Zid) (V, error)
}

// ExecutionContext carries the scoped budgets of spec.md §5: a shared
// Store handle, and depth/step counters acquired as guards that decrement
// on every exit path (via PushFrame's returned pop func). Passed explicitly
// — never a package global — keeping tests hermetic (spec.md §9).
type ExecutionContext struct {
	Store    Store
	Eval     Evaluator
	MaxDepth int
	MaxSteps int64

	depth int
	steps int64

	Stats evalstats.Counts
}

// NewExecutionContext builds a context with the default budgets.
func NewExecutionContext(store Store, ev Evaluator) *ExecutionContext {
	return &ExecutionContext{Store: store, Eval: ev, MaxDepth: DefaultMaxDepth, MaxSteps: DefaultMaxSteps}
}

// PushFrame increments the depth counter for one function-call reduction and
// returns a pop function that must be deferred to decrement it again. When
// the cap is exceeded it undoes the increment itself and reports
// RecursedTooDeep together with a no-op pop func.
func (ctx *ExecutionContext) PushFrame() (pop func(), err *EvalError) {
	ctx.depth++
	if ctx.depth > int32ToInt(ctx.Stats.MaxDepthReached) {
		ctx.Stats.MaxDepthReached = int32(ctx.depth)
	}
	if ctx.depth > ctx.MaxDepth {
		ctx.depth--
		return func() {}, ErrRecursedTooDeep()
	}
	return func() { ctx.depth-- }, nil
}

func int32ToInt(n int32) int { return int(n) }

// Step consumes one unit of the total-step budget, reporting
// StepBudgetExceeded once MaxSteps is exhausted.
func (ctx *ExecutionContext) Step() *EvalError {
	ctx.steps++
	ctx.Stats.StepsTaken = ctx.steps
	if ctx.steps > ctx.MaxSteps {
		return ErrStepBudgetExceeded()
	}
	return nil
}

// Depth returns the current call depth, for diagnostics/tests.
func (ctx *ExecutionContext) Depth() int { return ctx.depth }
