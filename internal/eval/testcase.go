package eval

import "github.com/marius851000/wikifunction-intepreter-2/internal/value"

// RunTest implements the three-step test-case runner of spec.md §4.9:
// evaluate the call, substitute its result as the validation call's first
// argument, evaluate that, and require a final Boolean(true).
func RunTest(ctx *value.ExecutionContext, tc *value.TestCase) (value.V, *value.EvalError) {
	result, err := ctx.Eval.Evaluate(ctx, tc.Call)
	if err != nil {
		return nil, err
	}

	validation, err := withFirstArg(ctx, tc.Validation, result)
	if err != nil {
		return nil, err
	}

	validated, err := ctx.Eval.Evaluate(ctx, validation)
	if err != nil {
		return nil, err.Wrap(value.CheckingTestCaseResultEntry(result))
	}

	b, ok := validated.(*value.Bool)
	if !ok {
		return nil, value.ErrTypeMismatch().Wrap(value.CheckingTestCaseResultEntry(result))
	}
	if !b.Value {
		return nil, value.ErrTestCaseFailed(result).Wrap(value.CheckingTestCaseResultEntry(result))
	}
	return result, nil
}

// withFirstArg refines validation to a call (resolving one reference and/or
// refining one Untyped record along the way, same as any other call site)
// and overrides its first argument with result, appending it when the
// validation call declared none.
func withFirstArg(ctx *value.ExecutionContext, validation value.V, result value.V) (value.V, *value.EvalError) {
	refined, err := refineToCall(ctx, validation)
	if err != nil {
		return nil, err
	}
	call, ok := refined.(*value.FunctionCall)
	if !ok {
		return nil, value.ErrExpectedFunctionCallGotType()
	}
	newArgs := append([]value.V{}, call.Args...)
	if len(newArgs) == 0 {
		newArgs = []value.V{result}
	} else {
		newArgs[0] = result
	}
	return value.NewFunctionCall(call.Function, newArgs), nil
}

func refineToCall(ctx *value.ExecutionContext, v value.V) (value.V, *value.EvalError) {
	switch t := v.(type) {
	case *value.FunctionCall:
		return t, nil
	case *value.Untyped:
		return value.Refine(t)
	case *value.Reference:
		resolved, err := resolve(ctx, t)
		if err != nil {
			return nil, err.Wrap(value.InsideReferenceEntry(t.Target))
		}
		return refineToCall(ctx, resolved)
	default:
		return v, nil
	}
}
