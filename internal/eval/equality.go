package eval

import "github.com/marius851000/wikifunction-intepreter-2/internal/value"

// Equal implements spec.md §4.4's three-step decision procedure: a cheap
// identity fast path, a both-final mismatch, then full structural
// recursion over ListKeys.
func Equal(ctx *value.ExecutionContext, a, b value.V) (bool, *value.EvalError) {
	if scalarIdentical(a, b) {
		return true, nil
	}
	if a.IsFinal() && b.IsFinal() {
		return false, nil
	}

	ea, err := ctx.Eval.Evaluate(ctx, a)
	if err != nil {
		return false, err
	}
	eb, err := ctx.Eval.Evaluate(ctx, b)
	if err != nil {
		return false, err
	}
	if scalarIdentical(ea, eb) {
		return true, nil
	}
	if ea.IsFinal() && eb.IsFinal() {
		return false, nil
	}

	keysA, keysB := ea.ListKeys(), eb.ListKeys()
	if len(keysA) != len(keysB) {
		return false, nil
	}
	for i := range keysA {
		if !keysA[i].Equal(keysB[i]) {
			return false, nil
		}
	}
	for _, k := range keysA {
		va, _ := ea.Get(k)
		vb, _ := eb.Get(k)
		eq, err := Equal(ctx, va, vb)
		if err != nil {
			return false, err.Wrap(value.InsideKeyEntry(k))
		}
		if !eq {
			return false, nil
		}
	}
	return true, nil
}

// scalarIdentical is the "variant-and-field identity" cheap check spec.md
// §4.4 calls for: compare scalar payloads directly rather than falling
// back to pointer identity, so two separately-constructed Bool(true)
// values still short-circuit without a full evaluation round-trip.
func scalarIdentical(a, b value.V) bool {
	switch x := a.(type) {
	case *value.Bool:
		y, ok := b.(*value.Bool)
		return ok && x.Value == y.Value
	case *value.Str:
		y, ok := b.(*value.Str)
		return ok && x.Text == y.Text
	case *value.Reference:
		y, ok := b.(*value.Reference)
		return ok && x.Target == y.Target
	case *value.StandardType:
		y, ok := b.(*value.StandardType)
		return ok && x.Identity == y.Identity
	case *value.Function:
		y, ok := b.(*value.Function)
		return ok && x.Identity == y.Identity
	default:
		return a == b
	}
}
