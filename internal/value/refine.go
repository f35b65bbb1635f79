package value

import "github.com/marius851000/wikifunction-intepreter-2/internal/kid"

// Refine promotes an Untyped record (or anything shaped like one) to its
// narrowest variant (spec.md §4.2). Already-refined values are returned
// unchanged. Z1K1's identity is read through GetTypeZid (spec.md §4.10's
// identity-shortcut), which accepts it either as the direct Reference the
// JSON intake rules normally produce or as an already-refined StandardType
// — either way no store access happens here; if Z1K1 is anything else,
// refinement reports WrongTypeIdForType rather than reaching into the
// store, matching "refinement never triggers reference resolution other
// than on Z1K1" (spec.md §9).
func Refine(v V) (V, *EvalError) {
	u, ok := v.(*Untyped)
	if !ok {
		return v, nil // already refined
	}

	typeVal, ok := u.Get(TypeKey)
	if !ok {
		return v, ErrMissingKey(TypeKey)
	}
	typeID, ok := GetTypeZid(typeVal)
	if !ok {
		return v, ErrWrongTypeIdForType()
	}

	switch typeID {
	case 4:
		return refineStandardType(u)
	case 6:
		return refineStr(u)
	case 7:
		// A record whose Z1K1 is Z7 is a function call unless Z7K1 is Z881,
		// in which case it constructs a "list of T" type instead.
		if t, err := refineTypedListType(u); err == nil {
			return t, nil
		}
		return refineFunctionCall(u)
	case 8:
		return refineFunction(u)
	case 14:
		return refineImplementation(u)
	case 18:
		return refineArgumentReference(u)
	case 20:
		return refineTestCase(u)
	case 40:
		return refineBool(u)
	default:
		return v, ErrWrongTypeIdForType()
	}
}

func refineStr(u *Untyped) (V, *EvalError) {
	key := kid.ZK(6, 1)
	raw, ok := u.Get(key)
	if !ok {
		return u, ErrMissingKey(key).Wrap(InsideKeyEntry(key))
	}
	s, ok := raw.(*Str)
	if !ok {
		return u, ErrWrongType(0, 6).Wrap(InsideKeyEntry(key))
	}
	return NewStr(s.Text), nil
}

func refineBool(u *Untyped) (V, *EvalError) {
	raw, ok := u.Get(BoolIdentityKey)
	if !ok {
		return u, ErrMissingKey(BoolIdentityKey)
	}
	ref, ok := raw.(*Reference)
	if !ok {
		return u, ErrNotAReference().Wrap(InsideKeyEntry(BoolIdentityKey))
	}
	switch ref.Target {
	case 41:
		return NewBool(true), nil
	case 42:
		return NewBool(false), nil
	default:
		return u, ErrIncorrectBooleanIdentity(ref.Target).Wrap(InsideKeyEntry(BoolIdentityKey))
	}
}

func refineStandardType(u *Untyped) (V, *EvalError) {
	key := stdTypeIdentityKey
	raw, ok := u.Get(key)
	if !ok {
		return u, ErrMissingKey(key)
	}
	ref, ok := raw.(*Reference)
	if !ok {
		return u, ErrNotAReference().Wrap(InsideKeyEntry(key))
	}
	t := &StandardType{Identity: ref.Target}
	if v, ok := u.Get(kid.ZK(4, 2)); ok {
		if keys, err := listOfKids(v); err == nil {
			t.Keys = keys
		}
	}
	if v, ok := u.Get(kid.ZK(4, 3)); ok {
		t.Validator = v
	}
	for i := 0; i < len(t.Funcs); i++ {
		if v, ok := u.Get(kid.ZK(4, uint32(4+i))); ok {
			t.Funcs[i] = v
		}
	}
	return t, nil
}

func listOfKids(v V) ([]kid.Kid, *EvalError) {
	list, ok := v.(*TypedList)
	if !ok {
		return nil, ErrTypeMismatch()
	}
	var out []kid.Kid
	for _, e := range list.Flatten() {
		s, ok := e.(*Str)
		if !ok {
			return nil, ErrTypeMismatch()
		}
		k, err := kid.Parse(s.Text)
		if err != nil {
			return nil, ErrParseKid(s.Text, err)
		}
		out = append(out, k)
	}
	return out, nil
}

func refineTypedListType(u *Untyped) (V, error) {
	raw, ok := u.Get(kid.ZK(7, 1))
	if !ok {
		return nil, ErrMissingKey(kid.ZK(7, 1))
	}
	ref, ok := raw.(*Reference)
	if !ok || ref.Target != 881 {
		return nil, ErrTypeMismatch()
	}
	elem, ok := u.Get(typedListTypeElementKey)
	if !ok {
		return nil, ErrMissingKey(typedListTypeElementKey)
	}
	return &TypedListType{ElementType: elem}, nil
}

// refineFunctionCall reads a call's arguments the way the real wire format
// keys them: off the callee's own id (Z844K1, Z844K2, ... for a call to
// Z844), not a callee-agnostic K1/K2. When the callee isn't a direct
// Reference — legal but rare, e.g. the result of a higher-order expression —
// there is no id to key off of, so the call carries zero statically
// addressable arguments until it's evaluated.
func refineFunctionCall(u *Untyped) (V, *EvalError) {
	fn, ok := u.Get(kid.ZK(7, 1))
	if !ok {
		return u, ErrMissingKey(kid.ZK(7, 1))
	}
	c := NewFunctionCall(fn, nil)
	if c.CalleeID == 0 {
		return c, nil
	}
	var args []V
	for i := uint32(1); ; i++ {
		v, ok := u.Get(kid.ZK(c.CalleeID, i))
		if !ok {
			break
		}
		args = append(args, v)
	}
	c.Args = args
	return c, nil
}

func refineFunction(u *Untyped) (V, *EvalError) {
	key := functionIdentityKey
	raw, ok := u.Get(key)
	if !ok {
		return u, ErrMissingKey(key)
	}
	ref, ok := raw.(*Reference)
	if !ok {
		return u, ErrNotAReference().Wrap(InsideKeyEntry(key))
	}
	f := &Function{Identity: ref.Target}
	if v, ok := u.Get(kid.ZK(8, 2)); ok {
		f.ArgsDecl = v
	}
	if v, ok := u.Get(kid.ZK(8, 3)); ok {
		f.ReturnType = v
	}
	if v, ok := u.Get(kid.ZK(8, 4)); ok {
		f.Testers = v
	}
	implKey := kid.ZK(8, 5)
	implVal, ok := u.Get(implKey)
	if !ok {
		return u, ErrMissingKey(implKey)
	}
	list, ok := implVal.(*TypedList)
	if !ok {
		return u, ErrTypeMismatch().Wrap(InsideKeyEntry(implKey))
	}
	f.Implementations = list.Flatten()
	return f, nil
}

func refineImplementation(u *Untyped) (V, *EvalError) {
	key := implFunctionRefKey
	raw, ok := u.Get(key)
	if !ok {
		return u, ErrMissingKey(key)
	}
	ref, ok := raw.(*Reference)
	if !ok {
		return u, ErrNotAReference().Wrap(InsideKeyEntry(key))
	}
	impl := &Implementation{FunctionRef: ref.Target}
	switch {
	case mustGetOK(u, kid.ZK(14, 2)):
		body, _ := u.Get(kid.ZK(14, 2))
		impl.Kind, impl.Body = ImplComposition, body
	case mustGetOK(u, kid.ZK(14, 3)):
		impl.Kind = ImplCode
	case mustGetOK(u, kid.ZK(14, 4)):
		impl.Kind = ImplBuiltin
	default:
		return u, ErrMissingKey(kid.ZK(14, 2))
	}
	return impl, nil
}

func mustGetOK(u *Untyped, k kid.Kid) bool {
	_, ok := u.Get(k)
	return ok
}

func refineArgumentReference(u *Untyped) (V, *EvalError) {
	key := argRefKeyKey
	raw, ok := u.Get(key)
	if !ok {
		return u, ErrMissingKey(key)
	}
	s, ok := raw.(*Str)
	if !ok {
		return u, ErrWrongType(0, 0).Wrap(InsideKeyEntry(key))
	}
	k, perr := kid.Parse(s.Text)
	if perr != nil {
		return u, ErrParseKid(s.Text, perr).Wrap(InsideKeyEntry(key))
	}
	return &ArgumentReference{Key: k}, nil
}

func refineTestCase(u *Untyped) (V, *EvalError) {
	fn, ok := u.Get(kid.ZK(20, 1))
	if !ok {
		return u, ErrMissingKey(kid.ZK(20, 1))
	}
	call, ok := u.Get(kid.ZK(20, 2))
	if !ok {
		return u, ErrMissingKey(kid.ZK(20, 2))
	}
	validation, ok := u.Get(kid.ZK(20, 3))
	if !ok {
		return u, ErrMissingKey(kid.ZK(20, 3))
	}
	return &TestCase{Function: fn, Call: call, Validation: validation}, nil
}
