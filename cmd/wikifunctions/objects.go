package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marius851000/wikifunction-intepreter-2/internal/eval"
	"github.com/marius851000/wikifunction-intepreter-2/internal/kid"
	"github.com/marius851000/wikifunction-intepreter-2/internal/load"
	"github.com/marius851000/wikifunction-intepreter-2/internal/store"
	"github.com/marius851000/wikifunction-intepreter-2/internal/value"
)

// loadObjectsDir populates a GlobalContext from a directory containing one
// JSON file per object, named "<Zid>.json" (e.g. "Z844.json"). This is the
// simplest fixture shape that satisfies spec.md §6's intake contract — a
// stream of (title, body_json) pairs — without taking on the real XML dump
// reader, which spec.md §1 explicitly places outside this module's scope.
func loadObjectsDir(dir string) (*store.GlobalContext, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	g := store.New()
	g.Insert(40, &value.StandardType{Identity: 40})
	g.Insert(41, value.NewUntyped(map[kid.Kid]value.V{
		value.TypeKey:         value.NewReference(40),
		value.BoolIdentityKey: value.NewReference(41),
	}))
	g.Insert(42, value.NewUntyped(map[kid.Kid]value.V{
		value.TypeKey:         value.NewReference(40),
		value.BoolIdentityKey: value.NewReference(42),
	}))

	for _, d := range entries {
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			continue
		}
		title := strings.TrimSuffix(d.Name(), ".json")
		body, err := os.ReadFile(filepath.Join(dir, d.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", d.Name(), err)
		}
		id, v, err := load.DecodeEntry(load.Entry{Title: title, BodyJSON: string(body)})
		if err != nil {
			return nil, err
		}
		g.Insert(id, v)
	}
	g.Freeze()
	return g, nil
}

type testResult struct {
	id  kid.Zid
	err error
}

// runTestCase refines the stored object at id into a TestCase and runs it,
// the way run-tests and run-all-tests both need to.
func runTestCase(ctx *value.ExecutionContext, id kid.Zid) error {
	obj, err := ctx.Store.Get(id)
	if err != nil {
		return err
	}
	refined, eerr := value.Refine(obj)
	if eerr != nil {
		return eerr
	}
	tc, ok := refined.(*value.TestCase)
	if !ok {
		return fmt.Errorf("%s is not a Z20 test case", id)
	}
	if _, eerr := eval.RunTest(ctx, tc); eerr != nil {
		return eerr
	}
	return nil
}
