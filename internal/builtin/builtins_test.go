package builtin_test

import (
	"testing"

	"github.com/marius851000/wikifunction-intepreter-2/internal/builtin"
	"github.com/marius851000/wikifunction-intepreter-2/internal/kid"
	"github.com/marius851000/wikifunction-intepreter-2/internal/store"
	"github.com/marius851000/wikifunction-intepreter-2/internal/value"
)

func call(t *testing.T, id int, args ...value.V) (value.V, *value.EvalError) {
	t.Helper()
	fn, err := builtin.Get(kid.Zid(id))
	if err != nil {
		t.Fatalf("Get(%d): %v", id, err)
	}
	g := store.New()
	ctx := value.NewExecutionContext(g, nil)
	return fn(&value.CallContext{Ctx: ctx, FunctionID: kid.Zid(id), Args: args})
}

func TestIfBuiltin(t *testing.T) {
	got, err := call(t, 802, value.NewBool(true), value.NewStr("yes"), value.NewStr("no"))
	if err != nil {
		t.Fatalf("if(true, ...): %v", err)
	}
	if s, ok := got.(*value.Str); !ok || s.Text != "yes" {
		t.Fatalf("got %#v, want Str(yes)", got)
	}

	got, err = call(t, 802, value.NewBool(false), value.NewStr("yes"), value.NewStr("no"))
	if err != nil {
		t.Fatalf("if(false, ...): %v", err)
	}
	if s, ok := got.(*value.Str); !ok || s.Text != "no" {
		t.Fatalf("got %#v, want Str(no)", got)
	}
}

func TestIfBuiltinArity(t *testing.T) {
	_, err := call(t, 802, value.NewBool(true))
	if err == nil || err.Kind != value.TooManyArguments {
		t.Fatalf("err = %v, want TooManyArguments", err)
	}
	if len(err.Trace) != 1 || err.Trace[0].Kind != value.ProcessingNonComposition || err.Trace[0].Zid != 802 {
		t.Fatalf("trace = %v, want a single ProcessingNonComposition(Z802) frame from CallContext.Errf", err.Trace)
	}
}

func TestHeadBuiltin(t *testing.T) {
	list := &value.TypedList{ElementType: value.NewReference(40), Entries: []value.V{value.NewBool(true), value.NewBool(false)}}
	got, err := call(t, 811, list)
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	if b, ok := got.(*value.Bool); !ok || !b.Value {
		t.Fatalf("got %#v, want Bool(true)", got)
	}
}

func TestHeadBuiltinEmptyList(t *testing.T) {
	empty := &value.TypedList{ElementType: value.NewReference(40)}
	_, err := call(t, 811, empty)
	if err == nil || err.Kind != value.CantHeadEmptyList {
		t.Fatalf("err = %v, want CantHeadEmptyList", err)
	}
}

func TestHeadBuiltinWalksTailChain(t *testing.T) {
	tail := &value.TypedList{ElementType: value.NewReference(40), Entries: []value.V{value.NewBool(false)}}
	head := &value.TypedList{ElementType: value.NewReference(40), Tail: tail}
	got, err := call(t, 811, head)
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	if b, ok := got.(*value.Bool); !ok || b.Value {
		t.Fatalf("got %#v, want Bool(false)", got)
	}
}

func TestBoolEqualityBuiltin(t *testing.T) {
	got, err := call(t, 844, value.NewBool(true), value.NewBool(true))
	if err != nil {
		t.Fatalf("bool equality: %v", err)
	}
	if b, ok := got.(*value.Bool); !ok || !b.Value {
		t.Fatalf("got %#v, want Bool(true)", got)
	}
}

func TestStringEqualityBuiltin(t *testing.T) {
	got, err := call(t, 866, value.NewStr("a"), value.NewStr("b"))
	if err != nil {
		t.Fatalf("string equality: %v", err)
	}
	if b, ok := got.(*value.Bool); !ok || b.Value {
		t.Fatalf("got %#v, want Bool(false)", got)
	}
}

func TestNoBuiltin(t *testing.T) {
	_, err := builtin.Get(kid.Zid(123456))
	if err == nil || err.Kind != value.NoBuiltin {
		t.Fatalf("err = %v, want NoBuiltin", err)
	}
}

func TestIdsAreSorted(t *testing.T) {
	ids := builtin.Ids()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("Ids() = %v, not strictly increasing", ids)
		}
	}
}
