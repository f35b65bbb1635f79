package eval

import (
	"github.com/marius851000/wikifunction-intepreter-2/internal/kid"
	"github.com/marius851000/wikifunction-intepreter-2/internal/value"
)

// Substitute exposes substitute for callers outside this package (mainly
// tests exercising spec.md §8's substitution-idempotence property).
func Substitute(body value.V, args []value.V) (value.V, *value.EvalError) {
	return substitute(body, args)
}

// substitute is the pure tree rewrite of spec.md §4.8: every
// ArgumentReference(Ki) leaf is replaced by the call's i'th argument;
// String/Boolean/Reference/Invalid/Function are left unchanged (a Function
// payload is opaque until it is itself called); every other container
// variant recurses into its children.
func substitute(body value.V, args []value.V) (value.V, *value.EvalError) {
	switch t := body.(type) {
	case *value.ArgumentReference:
		n, hasK := t.Key.HasK()
		if !hasK {
			return nil, value.ErrArgumentReferenceNoKPart(t.Key)
		}
		idx := int(n) - 1
		if idx < 0 || idx >= len(args) {
			return nil, value.ErrArgumentReferenceTooLarge(idx)
		}
		return args[idx], nil

	case *value.Str, *value.Bool, *value.Reference, *value.Invalid, *value.Function:
		return body, nil

	case *value.FunctionCall:
		fn, err := substitute(t.Function, args)
		if err != nil {
			return nil, err.Wrap(value.InsideKeyEntry(kid.ZK(7, 1)))
		}
		newArgs := make([]value.V, len(t.Args))
		for i, a := range t.Args {
			v, err := substitute(a, args)
			if err != nil {
				return nil, err.Wrap(value.InsideKeyEntry(t.ArgKey(i)))
			}
			newArgs[i] = v
		}
		return value.NewFunctionCall(fn, newArgs), nil

	case *value.TypedListType:
		elem, err := substituteOrNil(t.ElementType, args, kid.ZK(881, 1))
		if err != nil {
			return nil, err
		}
		return &value.TypedListType{ElementType: elem}, nil

	case *value.TypedList:
		elem, err := substituteOrNil(t.ElementType, args, kid.ZK(881, 1))
		if err != nil {
			return nil, err
		}
		entries := make([]value.V, len(t.Entries))
		for i, e := range t.Entries {
			v, err := substitute(e, args)
			if err != nil {
				return nil, err.Wrap(value.InsideListEntry(i))
			}
			entries[i] = v
		}
		var tail *value.TypedList
		if t.Tail != nil {
			tv, err := substitute(t.Tail, args)
			if err != nil {
				return nil, err
			}
			tail = tv.(*value.TypedList)
		}
		return &value.TypedList{ElementType: elem, Entries: entries, Tail: tail}, nil

	case *value.TestCase:
		fn, err := substitute(t.Function, args)
		if err != nil {
			return nil, err.Wrap(value.InsideKeyEntry(kid.ZK(20, 1)))
		}
		call, err := substitute(t.Call, args)
		if err != nil {
			return nil, err.Wrap(value.InsideKeyEntry(kid.ZK(20, 2)))
		}
		validation, err := substitute(t.Validation, args)
		if err != nil {
			return nil, err.Wrap(value.InsideKeyEntry(kid.ZK(20, 3)))
		}
		return &value.TestCase{Function: fn, Call: call, Validation: validation}, nil

	case *value.StandardType:
		validator, err := substituteOrNil(t.Validator, args, kid.ZK(4, 3))
		if err != nil {
			return nil, err
		}
		nt := &value.StandardType{Identity: t.Identity, Keys: t.Keys, Validator: validator}
		for i, f := range t.Funcs {
			nv, err := substituteOrNil(f, args, kid.ZK(4, uint32(4+i)))
			if err != nil {
				return nil, err
			}
			nt.Funcs[i] = nv
		}
		return nt, nil

	case *value.Untyped:
		fields := make(map[kid.Kid]value.V, len(t.Fields))
		for k, fv := range t.Fields {
			nv, err := substitute(fv, args)
			if err != nil {
				return nil, err.Wrap(value.InsideKeyEntry(k))
			}
			fields[k] = nv
		}
		return value.NewUntyped(fields), nil

	default:
		return body, nil
	}
}

func substituteOrNil(v value.V, args []value.V, key kid.Kid) (value.V, *value.EvalError) {
	if v == nil {
		return nil, nil
	}
	nv, err := substitute(v, args)
	if err != nil {
		return nil, err.Wrap(value.InsideKeyEntry(key))
	}
	return nv, nil
}
