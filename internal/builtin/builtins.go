package builtin

import (
	"github.com/marius851000/wikifunction-intepreter-2/internal/value"
)

func init() {
	Register(802, ifBuiltin)
	Register(811, headBuiltin)
	Register(844, boolEqualityBuiltin)
	Register(866, stringEqualityBuiltin)
	Register(889, listEqualityBuiltin)
}

// checkArity reports TooManyArguments through Errf so the failure already
// carries this call's ProcessingNonComposition frame, matching spec.md §9's
// resolved open question that a non-composition function's errors must
// include the surrounding call frame.
func checkArity(cc *value.CallContext, want int) *value.EvalError {
	if cc.NumParams() != want {
		return cc.Errf(func() *value.EvalError { return value.ErrTooManyArguments(cc.NumParams(), want) })
	}
	return nil
}

// ifBuiltin implements Z802's branch selection on already-evaluated
// arguments. spec.md §4.7 requires the evaluator to evaluate only the
// condition and hand the selected branch back unevaluated, so the
// evaluator's applyFunction special-cases Z802 before argument evaluation
// and never reaches this registry entry in the normal call path (see
// internal/eval.reduceIfBuiltin); it stays registered so Get(802) still
// reports Z802 as a supported builtin and so the selection logic itself is
// covered in isolation with already-evaluated branches.
func ifBuiltin(cc *value.CallContext) (value.V, *value.EvalError) {
	if err := checkArity(cc, 3); err != nil {
		return nil, err
	}
	b, ok := cc.Value(0).(*value.Bool)
	if !ok {
		return nil, cc.Errf(value.ErrTypeMismatch)
	}
	if b.Value {
		return cc.Value(1), nil
	}
	return cc.Value(2), nil
}

// headBuiltin implements Z811: the first element of a typed list.
func headBuiltin(cc *value.CallContext) (value.V, *value.EvalError) {
	if err := checkArity(cc, 1); err != nil {
		return nil, err
	}
	list, ok := cc.Value(0).(*value.TypedList)
	if !ok {
		return nil, cc.Errf(value.ErrTypeMismatch)
	}
	for seg := list; seg != nil; seg = seg.Tail {
		if len(seg.Entries) > 0 {
			return seg.Entries[0], nil
		}
	}
	return nil, cc.Errf(value.ErrCantHeadEmptyList)
}

// boolEqualityBuiltin implements Z844: structural equality on two booleans.
func boolEqualityBuiltin(cc *value.CallContext) (value.V, *value.EvalError) {
	if err := checkArity(cc, 2); err != nil {
		return nil, err
	}
	a, ok := cc.Value(0).(*value.Bool)
	if !ok {
		return nil, cc.Errf(value.ErrTypeMismatch)
	}
	b, ok := cc.Value(1).(*value.Bool)
	if !ok {
		return nil, cc.Errf(value.ErrTypeMismatch)
	}
	return value.NewBool(a.Value == b.Value), nil
}

// stringEqualityBuiltin implements Z866: byte-for-byte string equality.
func stringEqualityBuiltin(cc *value.CallContext) (value.V, *value.EvalError) {
	if err := checkArity(cc, 2); err != nil {
		return nil, err
	}
	a, ok := cc.Value(0).(*value.Str)
	if !ok {
		return nil, cc.Errf(value.ErrTypeMismatch)
	}
	b, ok := cc.Value(1).(*value.Str)
	if !ok {
		return nil, cc.Errf(value.ErrTypeMismatch)
	}
	return value.NewBool(a.Text == b.Text), nil
}

// listEqualityBuiltin implements Z889: length check first, then elementwise
// via the supplied equality function, short-circuiting on length mismatch
// or the first unequal pair.
func listEqualityBuiltin(cc *value.CallContext) (value.V, *value.EvalError) {
	if err := checkArity(cc, 3); err != nil {
		return nil, err
	}
	a, ok := cc.Value(0).(*value.TypedList)
	if !ok {
		return nil, cc.Errf(value.ErrTypeMismatch)
	}
	b, ok := cc.Value(1).(*value.TypedList)
	if !ok {
		return nil, cc.Errf(value.ErrTypeMismatch)
	}
	eqFn := cc.Value(2)

	aEntries, bEntries := a.Flatten(), b.Flatten()
	if len(aEntries) != len(bEntries) {
		return value.NewBool(false), nil
	}

	ctx := cc.OpContext()
	for i := range aEntries {
		result, err := ctx.Eval.Call(ctx, eqFn, []value.V{aEntries[i], bEntries[i]})
		if err != nil {
			return nil, cc.Errf(func() *value.EvalError { return err })
		}
		b, ok := result.(*value.Bool)
		if !ok {
			return nil, cc.Errf(value.ErrTypeMismatch)
		}
		if !b.Value {
			return value.NewBool(false), nil
		}
	}
	return value.NewBool(true), nil
}
