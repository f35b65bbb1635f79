// Package store implements the process-wide object store (spec.md §4.1),
// grounded on cuelang.org/go/internal/core/runtime.Index: a read-mostly
// mapping populated once at load time and thereafter immutable.
package store

import (
	"sync"

	"github.com/marius851000/wikifunction-intepreter-2/internal/kid"
	"github.com/marius851000/wikifunction-intepreter-2/internal/value"
)

// GlobalContext is the object store: a Zid -> value.V mapping, frozen after
// construction. It satisfies value.Store.
type GlobalContext struct {
	mu     sync.RWMutex
	frozen bool
	objs   map[kid.Zid]value.V
}

// New creates an empty, writable GlobalContext.
func New() *GlobalContext {
	return &GlobalContext{objs: make(map[kid.Zid]value.V)}
}

// Insert records v as the persistent object named by id. Insert panics if
// called after Freeze, the way a build-time-only mutation API should.
func (g *GlobalContext) Insert(id kid.Zid, v value.V) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		panic("store: Insert called on a frozen GlobalContext")
	}
	g.objs[id] = v
}

// Freeze marks the store read-only. Safe to call more than once.
func (g *GlobalContext) Freeze() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.frozen = true
}

// Get returns the object named by id, or MissingPersistentObject.
//
// The returned value is a shareable handle (spec.md §4.1: "returned values
// must be shareable clones (O(1))") — concrete value.V variants are always
// held behind a pointer, so returning the stored V directly already
// satisfies that without an explicit copy.
func (g *GlobalContext) Get(id kid.Zid) (value.V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.objs[id]
	if !ok {
		return nil, value.ErrMissingPersistentObject(id)
	}
	return v, nil
}

// Len reports how many objects are installed.
func (g *GlobalContext) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.objs)
}

// Ids returns every installed object id, in ascending order.
func (g *GlobalContext) Ids() []kid.Zid {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]kid.Zid, 0, len(g.objs))
	for id := range g.objs {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
	return ids
}
