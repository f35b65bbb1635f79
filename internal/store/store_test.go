package store_test

import (
	"testing"

	"github.com/marius851000/wikifunction-intepreter-2/internal/kid"
	"github.com/marius851000/wikifunction-intepreter-2/internal/store"
	"github.com/marius851000/wikifunction-intepreter-2/internal/value"
)

func TestInsertAndGet(t *testing.T) {
	g := store.New()
	g.Insert(100, value.NewStr("hello"))
	v, err := g.Get(100)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	s, ok := v.(*value.Str)
	if !ok || s.Text != "hello" {
		t.Fatalf("Get(100) = %#v, want Str(hello)", v)
	}
}

func TestGetMissing(t *testing.T) {
	g := store.New()
	_, err := g.Get(999)
	if err == nil {
		t.Fatalf("expected an error for a missing object")
	}
	ee, ok := err.(*value.EvalError)
	if !ok || ee.Kind != value.MissingPersistentObject {
		t.Fatalf("err = %v, want MissingPersistentObject", err)
	}
}

func TestInsertPanicsAfterFreeze(t *testing.T) {
	g := store.New()
	g.Freeze()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Insert to panic after Freeze")
		}
	}()
	g.Insert(1, value.NewStr("too late"))
}

func TestIdsAreSorted(t *testing.T) {
	g := store.New()
	for _, id := range []kid.Zid{30, 5, 17, 1} {
		g.Insert(id, value.NewStr("x"))
	}
	ids := g.Ids()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("Ids() = %v, not strictly increasing", ids)
		}
	}
}

func TestBootstrapBooleanIdentityRoundTrips(t *testing.T) {
	g := store.Bootstrap()
	for _, tc := range []struct {
		id   kid.Zid
		want bool
	}{{41, true}, {42, false}} {
		raw, err := g.Get(tc.id)
		if err != nil {
			t.Fatalf("Get(%s): %v", tc.id, err)
		}
		refined, rerr := value.Refine(raw)
		if rerr != nil {
			t.Fatalf("Refine(%s): %v", tc.id, rerr)
		}
		b, ok := refined.(*value.Bool)
		if !ok || b.Value != tc.want {
			t.Fatalf("Refine(%s) = %#v, want Bool(%v)", tc.id, refined, tc.want)
		}
	}
}
