// Package wftest collects fixtures shared by this module's test suites:
// a ready-wired evaluation context over the bootstrap store, and a scratch
// object-id allocator so independently-written test fixtures that get
// merged into one store don't collide on a hand-picked literal id.
package wftest

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/marius851000/wikifunction-intepreter-2/internal/eval"
	"github.com/marius851000/wikifunction-intepreter-2/internal/kid"
	"github.com/marius851000/wikifunction-intepreter-2/internal/store"
	"github.com/marius851000/wikifunction-intepreter-2/internal/value"
)

// scratchBase keeps generated ids well clear of the low-numbered built-in
// objects store.Bootstrap installs (Z6, Z7, Z40-42, Z802, Z811, Z844, Z866,
// Z881, Z889).
const scratchBase = 1_000_000

// NewScratchID returns an id in the scratch range, derived from a fresh
// random uuid rather than a counter so two packages' tests can allocate
// scratch ids independently without coordinating on a shared counter.
func NewScratchID() kid.Zid {
	u := uuid.New()
	n := binary.BigEndian.Uint32(u[:4])
	return kid.Zid(scratchBase + n%scratchBase)
}

// NewContext builds a GlobalContext pre-populated with the builtin
// fixtures and an Evaluator installed, ready for a test to install
// additional scratch objects into before calling Freeze.
func NewContext() (*store.GlobalContext, *value.ExecutionContext) {
	g := store.Bootstrap()
	return g, eval.NewContext(g)
}
