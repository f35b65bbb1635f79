// Package value implements the tagged-union value representation of the
// Wikifunctions object language (spec.md §3) plus its uniform accessor
// contract, refinement (promotion from an untyped record to its narrowest
// shape), and the structured error type every fallible operation in this
// module returns. It is grounded on cuelang.org/go/internal/core/adt: a
// closed interface (adt.Value here, Value there) implemented by a fixed set
// of lightweight, pointer-shared structs, with unexported marker methods
// closing the union against external implementations.
package value

import "github.com/marius851000/wikifunction-intepreter-2/internal/kid"

// TypeKey is the universal "what type is this" slot every refined variant
// answers: spec.md §3 invariant 2, "Z1K1 of a refined variant returns a
// Reference to that variant's type-defining object."
var TypeKey = kid.ZK(1, 1)

// V is the tagged union of value shapes (spec.md §3). Every variant is
// immutable once constructed and cheaply shareable: concrete variants are
// always held behind a pointer, so assigning or passing a V copies only the
// handle, never the payload.
type V interface {
	// Get looks up k without evaluating anything.
	Get(k kid.Kid) (V, bool)
	// ListKeys returns this value's keys in a deterministic order. Always
	// includes TypeKey for refined variants.
	ListKeys() []kid.Kid
	// IsFinal reports whether this value cannot be reduced further.
	IsFinal() bool
	// IdentityKey returns the key holding this variant's self-identity, if
	// it has one.
	IdentityKey() (kid.Kid, bool)
	// IntoValue lifts the concrete shape back into the V union (a no-op for
	// anything already typed as V; present to mirror the accessor contract
	// of spec.md §3 verbatim).
	IntoValue() V

	wfValue() // closes the union
}

// Reference is an unresolved pointer to a persistent object (spec.md §3).
type Reference struct {
	Target kid.Zid
}

func NewReference(target kid.Zid) *Reference { return &Reference{Target: target} }

func (r *Reference) Get(kid.Kid) (V, bool)          { return nil, false }
func (r *Reference) ListKeys() []kid.Kid            { return nil }
func (r *Reference) IsFinal() bool                  { return false }
func (r *Reference) IdentityKey() (kid.Kid, bool)   { return kid.Kid{}, false }
func (r *Reference) IntoValue() V                   { return r }
func (*Reference) wfValue()                         {}

// Str is a character sequence (the Z6 kind).
type Str struct {
	Text string
}

func NewStr(text string) *Str { return &Str{Text: text} }

func (s *Str) Get(k kid.Kid) (V, bool) {
	if k == TypeKey {
		return NewReference(kid.Zid(6)), true
	}
	return nil, false
}
func (s *Str) ListKeys() []kid.Kid          { return []kid.Kid{TypeKey} }
func (s *Str) IsFinal() bool                { return true }
func (s *Str) IdentityKey() (kid.Kid, bool) { return kid.Kid{}, false }
func (s *Str) IntoValue() V                 { return s }
func (*Str) wfValue()                       {}

// Bool is the shortcut representation of the Z40 type.
type Bool struct {
	Value bool
}

func NewBool(v bool) *Bool { return &Bool{Value: v} }

// BoolIdentityKey is the Z40K1 slot every Bool answers (spec.md §4.2's
// canonical Z41=true/Z42=false resolution).
var BoolIdentityKey = kid.ZK(40, 1)

func (b *Bool) Get(k kid.Kid) (V, bool) {
	switch k {
	case TypeKey:
		return NewReference(kid.Zid(40)), true
	case BoolIdentityKey:
		if b.Value {
			return NewReference(kid.Zid(41)), true
		}
		return NewReference(kid.Zid(42)), true
	}
	return nil, false
}
func (b *Bool) ListKeys() []kid.Kid          { return []kid.Kid{TypeKey, BoolIdentityKey} }
func (b *Bool) IsFinal() bool                { return true }
func (b *Bool) IdentityKey() (kid.Kid, bool) { return BoolIdentityKey, true }
func (b *Bool) IntoValue() V                 { return b }
func (*Bool) wfValue()                       {}

// StandardType is a type descriptor (the Z4 kind): an identity, its declared
// keys, a validator function, and up to five optional function slots
// (equality, renamer, serializers/deserializers, ...) that this evaluator
// core does not itself dispatch but preserves for round-tripping.
type StandardType struct {
	Identity  kid.Zid
	Keys      []kid.Kid
	Validator V
	Funcs     [5]V // optional slots; a nil entry means absent
}

var stdTypeIdentityKey = kid.ZK(4, 1)

func (t *StandardType) Get(k kid.Kid) (V, bool) {
	switch k {
	case TypeKey:
		return NewReference(kid.Zid(4)), true
	case stdTypeIdentityKey:
		return NewReference(t.Identity), true
	}
	return nil, false
}
func (t *StandardType) ListKeys() []kid.Kid { return []kid.Kid{TypeKey, stdTypeIdentityKey} }
func (t *StandardType) IsFinal() bool       { return true }
func (t *StandardType) IdentityKey() (kid.Kid, bool) {
	return stdTypeIdentityKey, true
}
func (t *StandardType) IntoValue() V { return t }
func (*StandardType) wfValue()       {}

// TypedListType is the type "list of T" (the Z7-call of Z881).
type TypedListType struct {
	ElementType V
}

var typedListTypeElementKey = kid.ZK(881, 1)

func (t *TypedListType) Get(k kid.Kid) (V, bool) {
	switch k {
	case TypeKey:
		return NewReference(kid.Zid(7)), true
	case kid.ZK(7, 1):
		return NewReference(kid.Zid(881)), true
	case typedListTypeElementKey:
		return t.ElementType, true
	}
	return nil, false
}
func (t *TypedListType) ListKeys() []kid.Kid {
	return []kid.Kid{TypeKey, kid.ZK(7, 1), typedListTypeElementKey}
}
func (t *TypedListType) IsFinal() bool                { return t.ElementType == nil || t.ElementType.IsFinal() }
func (t *TypedListType) IdentityKey() (kid.Kid, bool) { return kid.Kid{}, false }
func (t *TypedListType) IntoValue() V                 { return t }
func (*TypedListType) wfValue()                       {}

// Function is a callable object (Z8): its declared arguments, return type,
// attached test cases, and the ordered list of candidate implementations.
type Function struct {
	Identity        kid.Zid
	ArgsDecl        V // Z8K2, opaque to this evaluator
	ReturnType       V // Z8K3
	Testers          V // Z8K4, opaque list of Z20 references
	Implementations []V // Z8K5, each a *Implementation
}

var functionIdentityKey = kid.ZK(8, 1)

func (f *Function) Get(k kid.Kid) (V, bool) {
	switch k {
	case TypeKey:
		return NewReference(kid.Zid(8)), true
	case functionIdentityKey:
		return NewReference(f.Identity), true
	}
	return nil, false
}
func (f *Function) ListKeys() []kid.Kid { return []kid.Kid{TypeKey, functionIdentityKey} }
func (f *Function) IsFinal() bool       { return true }
func (f *Function) IdentityKey() (kid.Kid, bool) {
	return functionIdentityKey, true
}
func (f *Function) IntoValue() V { return f }
func (*Function) wfValue()       {}

// ImplKind discriminates Implementation's three possible bodies.
type ImplKind int8

const (
	ImplComposition ImplKind = iota
	ImplCode
	ImplBuiltin
)

// Implementation is a Z14: a reference to the function it implements plus
// exactly one of a composition body, an (unsupported) native code body, or a
// builtin marker.
type Implementation struct {
	FunctionRef kid.Zid
	Kind        ImplKind
	Body        V // valid when Kind == ImplComposition
}

var implFunctionRefKey = kid.ZK(14, 1)

func (i *Implementation) Get(k kid.Kid) (V, bool) {
	switch k {
	case TypeKey:
		return NewReference(kid.Zid(14)), true
	case implFunctionRefKey:
		return NewReference(i.FunctionRef), true
	case kid.ZK(14, 2):
		if i.Kind == ImplComposition {
			return i.Body, true
		}
	}
	return nil, false
}
func (i *Implementation) ListKeys() []kid.Kid {
	keys := []kid.Kid{TypeKey, implFunctionRefKey}
	if i.Kind == ImplComposition {
		keys = append(keys, kid.ZK(14, 2))
	}
	return keys
}
func (i *Implementation) IsFinal() bool                { return true }
func (i *Implementation) IdentityKey() (kid.Kid, bool) { return kid.Kid{}, false }
func (i *Implementation) IntoValue() V                 { return i }
func (*Implementation) wfValue()                       {}

// ArgumentReference is Kⁱ bound in a composition body (Z18).
type ArgumentReference struct {
	Key kid.Kid // the K<i> being referenced
}

var argRefKeyKey = kid.ZK(18, 1)

func (a *ArgumentReference) Get(k kid.Kid) (V, bool) {
	switch k {
	case TypeKey:
		return NewReference(kid.Zid(18)), true
	case argRefKeyKey:
		return NewStr(a.Key.String()), true
	}
	return nil, false
}
func (a *ArgumentReference) ListKeys() []kid.Kid            { return []kid.Kid{TypeKey, argRefKeyKey} }
func (a *ArgumentReference) IsFinal() bool                  { return false }
func (a *ArgumentReference) IdentityKey() (kid.Kid, bool)   { return kid.Kid{}, false }
func (a *ArgumentReference) IntoValue() V                   { return a }
func (*ArgumentReference) wfValue()                         {}

// FunctionCall is a Z7 that is a call (not a Z881 type construction): the
// callee together with its ordered arguments. Wikifunctions keys a call's
// arguments off the callee's own id — a call to Z844 holds its arguments at
// Z844K1, Z844K2 — which is also what spec.md §8 scenario 8 names directly
// ("key Z844K1 holds a sentinel"). CalleeID carries that id whenever Function
// is a direct Reference (the common case: Z7K1 is almost always a bare
// reference to the function being called); when it isn't yet known (Function
// still unrefined, or a higher-order expression), Args fall back to the
// generic positional K<i> keys.
type FunctionCall struct {
	Function V // the callee; refines/evaluates to a *Function
	CalleeID kid.Zid
	Args     []V
}

// NewFunctionCall builds a FunctionCall, deriving CalleeID from fn when it is
// a direct Reference.
func NewFunctionCall(fn V, args []V) *FunctionCall {
	c := &FunctionCall{Function: fn, Args: args}
	if ref, ok := fn.(*Reference); ok {
		c.CalleeID = ref.Target
	}
	return c
}

func (c *FunctionCall) argKey(i int) kid.Kid {
	if c.CalleeID != 0 {
		return kid.ZK(c.CalleeID, uint32(i+1))
	}
	return kid.K(uint32(i + 1))
}

// ArgKey exposes the key the i'th (0-indexed) argument is stored under, for
// the evaluator's trace-entry construction on a call-reduction failure.
func (c *FunctionCall) ArgKey(i int) kid.Kid { return c.argKey(i) }

func (c *FunctionCall) Get(k kid.Kid) (V, bool) {
	switch k {
	case TypeKey:
		return NewReference(kid.Zid(7)), true
	case kid.ZK(7, 1):
		return c.Function, true
	}
	for i := range c.Args {
		if k == c.argKey(i) {
			return c.Args[i], true
		}
	}
	return nil, false
}
func (c *FunctionCall) ListKeys() []kid.Kid {
	keys := []kid.Kid{TypeKey, kid.ZK(7, 1)}
	for i := range c.Args {
		keys = append(keys, c.argKey(i))
	}
	return keys
}
func (c *FunctionCall) IsFinal() bool                { return false }
func (c *FunctionCall) IdentityKey() (kid.Kid, bool) { return kid.Kid{}, false }
func (c *FunctionCall) IntoValue() V                 { return c }
func (*FunctionCall) wfValue()                       {}

func hasZPart(k kid.Kid) bool {
	_, ok := k.HasZ()
	return ok
}

// TypedList is a linked/segmented list (a Z881 instance): an element type
// (possibly lazily unrefined), its entries, and a chainable tail allowing
// lists to be built incrementally without copying already-built segments.
type TypedList struct {
	ElementType V
	Entries     []V
	Tail        *TypedList // nil if this segment is the end of the list
}

func (l *TypedList) Get(k kid.Kid) (V, bool) {
	switch {
	case k == TypeKey:
		return (&TypedListType{ElementType: l.ElementType}).IntoValue(), true
	case k == kid.ZK(881, 1):
		return l.ElementType, true
	default:
		if n, ok := k.HasK(); ok && !hasZPart(k) {
			idx := int(n) - 1
			if idx >= 0 && idx < len(l.Entries) {
				return l.Entries[idx], true
			}
		}
	}
	return nil, false
}
func (l *TypedList) ListKeys() []kid.Kid {
	keys := []kid.Kid{TypeKey, kid.ZK(881, 1)}
	for i := range l.Entries {
		keys = append(keys, kid.K(uint32(i+1)))
	}
	return keys
}
func (l *TypedList) IsFinal() bool {
	return l.ElementType != nil && l.ElementType.IsFinal()
}
func (l *TypedList) IdentityKey() (kid.Kid, bool) { return kid.Kid{}, false }
func (l *TypedList) IntoValue() V                 { return l }
func (*TypedList) wfValue()                       {}

// Flatten walks the tail chain and returns a single slice of all entries in
// order, the way a reader of a segmented list expects.
func (l *TypedList) Flatten() []V {
	var out []V
	for seg := l; seg != nil; seg = seg.Tail {
		out = append(out, seg.Entries...)
	}
	return out
}

// TestCase is a Z20: the function under test, the call to make, and the
// validation call (whose first argument is substituted with the result).
type TestCase struct {
	Function   V
	Call       V
	Validation V
}

func (t *TestCase) Get(k kid.Kid) (V, bool) {
	switch k {
	case TypeKey:
		return NewReference(kid.Zid(20)), true
	case kid.ZK(20, 1):
		return t.Function, true
	case kid.ZK(20, 2):
		return t.Call, true
	case kid.ZK(20, 3):
		return t.Validation, true
	}
	return nil, false
}
func (t *TestCase) ListKeys() []kid.Kid {
	return []kid.Kid{TypeKey, kid.ZK(20, 1), kid.ZK(20, 2), kid.ZK(20, 3)}
}
func (t *TestCase) IsFinal() bool                { return false }
func (t *TestCase) IdentityKey() (kid.Kid, bool) { return kid.Kid{}, false }
func (t *TestCase) IntoValue() V                 { return t }
func (*TestCase) wfValue()                       {}

// Untyped is a raw record not yet refined into a narrower shape.
type Untyped struct {
	Fields map[kid.Kid]V
}

func NewUntyped(fields map[kid.Kid]V) *Untyped {
	return &Untyped{Fields: fields}
}

func (u *Untyped) Get(k kid.Kid) (V, bool) {
	v, ok := u.Fields[k]
	return v, ok
}
func (u *Untyped) ListKeys() []kid.Kid {
	keys := make([]kid.Kid, 0, len(u.Fields))
	for k := range u.Fields {
		keys = append(keys, k)
	}
	sortKids(keys)
	return keys
}
func (u *Untyped) IsFinal() bool                { return false }
func (u *Untyped) IdentityKey() (kid.Kid, bool) { return kid.Kid{}, false }
func (u *Untyped) IntoValue() V                 { return u }
func (*Untyped) wfValue()                       {}

func sortKids(keys []kid.Kid) {
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j].Compare(keys[j-1]) < 0; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
}

// Invalid is an explicit error placeholder used only in tests (spec.md §3):
// evaluating one always fails with TestData.
type Invalid struct {
	Reason Kind
}

func NewInvalid(reason Kind) *Invalid { return &Invalid{Reason: reason} }

func (i *Invalid) Get(kid.Kid) (V, bool)          { return nil, false }
func (i *Invalid) ListKeys() []kid.Kid            { return nil }
func (i *Invalid) IsFinal() bool                  { return false }
func (i *Invalid) IdentityKey() (kid.Kid, bool)   { return kid.Kid{}, false }
func (i *Invalid) IntoValue() V                   { return i }
func (*Invalid) wfValue()                         {}
