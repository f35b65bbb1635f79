// Package eval implements the evaluator state machine of spec.md §4.5: the
// loop that drives a value to a final form, the function-call reduction
// rule, and implementation selection. Grounded on
// cuelang.org/go/internal/core/eval's reduction loop — straight recursion
// over the value graph, no explicit work queue, budgeted by the guards
// value.ExecutionContext exposes.
package eval

import (
	"fmt"

	"github.com/marius851000/wikifunction-intepreter-2/internal/builtin"
	"github.com/marius851000/wikifunction-intepreter-2/internal/kid"
	"github.com/marius851000/wikifunction-intepreter-2/internal/value"
)

// Evaluator implements value.Evaluator. It carries no state of its own —
// all scoped state lives in the value.ExecutionContext passed to every
// call — so a single Evaluator can be shared across contexts.
type Evaluator struct{}

// New builds an Evaluator and is the only constructor: a package-level
// value would work equally well, but every component that needs one
// already carries an ExecutionContext to pass alongside it, so there is
// nothing to be gained by making Evaluator a singleton.
func New() *Evaluator { return &Evaluator{} }

// NewContext builds an ExecutionContext with this package's Evaluator
// installed, the composition root most callers want (store.GlobalContext
// already satisfies value.Store without an import cycle).
func NewContext(store value.Store) *value.ExecutionContext {
	return value.NewExecutionContext(store, New())
}

func resolve(ctx *value.ExecutionContext, ref *value.Reference) (value.V, *value.EvalError) {
	v, err := ctx.Store.Get(ref.Target)
	if err != nil {
		if ee, ok := err.(*value.EvalError); ok {
			return nil, ee
		}
		return nil, value.ErrMissingPersistentObject(ref.Target)
	}
	return v, nil
}

// Evaluate drives v to a final form, following spec.md §4.5's state table.
func (e *Evaluator) Evaluate(ctx *value.ExecutionContext, v value.V) (value.V, *value.EvalError) {
	ctx.Stats.Evaluations++
	for {
		if err := ctx.Step(); err != nil {
			return v, err
		}
		if v.IsFinal() {
			return v, nil
		}
		switch t := v.(type) {
		case *value.Reference:
			resolved, err := resolve(ctx, t)
			if err != nil {
				return v, err.Wrap(value.InsideReferenceEntry(t.Target))
			}
			v = resolved
		case *value.Untyped:
			refined, err := value.Refine(t)
			if err != nil {
				return v, err
			}
			v = refined
		case *value.FunctionCall:
			result, err := e.reduceFunctionCall(ctx, t)
			if err != nil {
				return v, err
			}
			v = result
		case *value.Invalid:
			return v, value.ErrTestData()
		case *value.TypedList:
			if t.ElementType != nil && !t.ElementType.IsFinal() {
				refinedElem, err := e.Evaluate(ctx, t.ElementType)
				if err != nil {
					return v, err.Wrap(value.InsideKeyEntry(kid.ZK(881, 1)))
				}
				v = &value.TypedList{ElementType: refinedElem, Entries: t.Entries, Tail: t.Tail}
				continue
			}
			return v, nil
		default:
			// StandardType, Function, Implementation, ArgumentReference,
			// TestCase, TypedListType: not reduced by Evaluate itself
			// (spec.md §4.5's "any other: return as-is").
			return v, nil
		}
	}
}

func genericArgKey(i int) kid.Kid { return kid.K(uint32(i + 1)) }

// zidIf is Z802, the one builtin spec.md §4.7's table singles out with
// "return the selected branch unevaluated (evaluator re-drives it)": the
// only conditional primitive this language has, so a composition's sole way
// to pick between a base case and a recursive call runs through it. Eagerly
// evaluating every argument before dispatch (as every other builtin wants)
// would force-evaluate the untaken recursive branch on every call and blow
// the depth/step budget regardless of the condition.
const zidIf kid.Zid = 802

// reduceIfBuiltin evaluates only the condition and hands the selected
// branch back unevaluated, letting Evaluate's own loop re-drive it on the
// next iteration — the evaluator, not the builtin, decides whether that
// branch needs reducing at all.
func (e *Evaluator) reduceIfBuiltin(ctx *value.ExecutionContext, fn *value.Function, args []value.V, argKey func(int) kid.Kid) (value.V, *value.EvalError) {
	if len(args) != 3 {
		return nil, value.ErrTooManyArguments(len(args), 3).Wrap(value.ProcessingNonCompositionEntry(fn.Identity))
	}
	cond, eerr := e.Evaluate(ctx, args[0])
	if eerr != nil {
		return nil, eerr.Wrap(value.InsideKeyEntry(argKey(0))).Wrap(value.ProcessingNonCompositionEntry(fn.Identity))
	}
	b, ok := cond.(*value.Bool)
	if !ok {
		return nil, value.ErrTypeMismatch().Wrap(value.InsideKeyEntry(argKey(0))).Wrap(value.ProcessingNonCompositionEntry(fn.Identity))
	}
	ctx.Stats.BuiltinCalls++
	if b.Value {
		return args[1], nil
	}
	return args[2], nil
}

// Call reduces a call to fn with already-evaluated arguments, fully
// evaluating the result. This is the narrow capability builtins reach
// through value.ExecutionContext.Eval (Z889's elementwise equality
// function, for example) without internal/builtin importing this package.
func (e *Evaluator) Call(ctx *value.ExecutionContext, fn value.V, args []value.V) (value.V, *value.EvalError) {
	fnVal, err := e.Evaluate(ctx, fn)
	if err != nil {
		return nil, err
	}
	fnObj, ok := fnVal.(*value.Function)
	if !ok {
		return nil, value.ErrExpectedFunctionCallGotType()
	}
	result, err := e.applyFunction(ctx, fnObj, args, genericArgKey)
	if err != nil {
		return nil, err
	}
	return e.Evaluate(ctx, result)
}

func (e *Evaluator) reduceFunctionCall(ctx *value.ExecutionContext, call *value.FunctionCall) (value.V, *value.EvalError) {
	fnVal, err := e.Evaluate(ctx, call.Function)
	if err != nil {
		return nil, err.Wrap(value.InsideKeyEntry(kid.ZK(7, 1)))
	}
	fn, ok := fnVal.(*value.Function)
	if !ok {
		return nil, value.ErrExpectedFunctionCallGotType()
	}
	return e.applyFunction(ctx, fn, call.Args, call.ArgKey)
}

// applyFunction performs the function-call reduction of spec.md §4.5:
// select an implementation, then either substitute-and-evaluate
// (composition), evaluate-args-and-dispatch (builtin), or reject (code).
// Every error path from a non-composition implementation is annotated with
// ProcessingNonComposition(fn.Identity) — spec.md §9's resolved open
// question that such frames must be recorded.
func (e *Evaluator) applyFunction(ctx *value.ExecutionContext, fn *value.Function, args []value.V, argKey func(int) kid.Kid) (value.V, *value.EvalError) {
	pop, perr := ctx.PushFrame()
	if perr != nil {
		return nil, perr
	}
	defer pop()
	ctx.Stats.Reductions++

	impl, err := e.selectImplementation(ctx, fn)
	if err != nil {
		return nil, err
	}

	switch impl.Kind {
	case value.ImplComposition:
		substituted, serr := substitute(impl.Body, args)
		if serr != nil {
			return nil, serr
		}
		ctx.Stats.Substitutions++
		result, eerr := e.Evaluate(ctx, substituted)
		if eerr != nil {
			return nil, eerr.Wrap(value.SubstitutedEntry(fn.Identity))
		}
		return result, nil

	case value.ImplBuiltin:
		if fn.Identity == zidIf {
			return e.reduceIfBuiltin(ctx, fn, args, argKey)
		}
		evaluated := make([]value.V, len(args))
		for i, a := range args {
			v, eerr := e.Evaluate(ctx, a)
			if eerr != nil {
				return nil, eerr.Wrap(value.InsideKeyEntry(argKey(i))).Wrap(value.ProcessingNonCompositionEntry(fn.Identity))
			}
			evaluated[i] = v
		}
		bfn, berr := builtin.Get(fn.Identity)
		if berr != nil {
			return nil, berr.Wrap(value.ProcessingNonCompositionEntry(fn.Identity))
		}
		ctx.Stats.BuiltinCalls++
		cc := &value.CallContext{Ctx: ctx, FunctionID: fn.Identity, Args: evaluated}
		// Every error a builtin body itself returns is already framed via
		// CallContext.Errf (see internal/builtin), so no further wrap is
		// needed here — only argument evaluation (above) and a missing
		// registry entry (above) happen outside the builtin's own call and
		// still need the frame added at this level.
		result, cerr := bfn(cc)
		if cerr != nil {
			return nil, cerr
		}
		return result, nil

	case value.ImplCode:
		return nil, value.ErrUnimplemented(fmt.Sprintf("code impl for %s", fn.Identity)).
			Wrap(value.ProcessingNonCompositionEntry(fn.Identity))

	default:
		return nil, value.ErrNoImplementationForFunction(fn.Identity)
	}
}
