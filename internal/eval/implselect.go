package eval

import "github.com/marius851000/wikifunction-intepreter-2/internal/value"

// selectImplementation realizes spec.md §4.6: evaluate every entry in the
// function's implementation list, then prefer the first builtin, else the
// first composition, else the first code implementation.
func (e *Evaluator) selectImplementation(ctx *value.ExecutionContext, fn *value.Function) (*value.Implementation, *value.EvalError) {
	var builtin, composition, code *value.Implementation

	for _, raw := range fn.Implementations {
		v, err := e.Evaluate(ctx, raw)
		if err != nil {
			return nil, err
		}
		impl, ok := v.(*value.Implementation)
		if !ok {
			return nil, value.ErrTypeMismatch()
		}
		switch impl.Kind {
		case value.ImplBuiltin:
			if builtin == nil {
				builtin = impl
			}
		case value.ImplComposition:
			if composition == nil {
				composition = impl
			}
		case value.ImplCode:
			if code == nil {
				code = impl
			}
		}
	}

	switch {
	case builtin != nil:
		return builtin, nil
	case composition != nil:
		return composition, nil
	case code != nil:
		return code, nil
	default:
		return nil, value.ErrNoImplementationForFunction(fn.Identity)
	}
}
