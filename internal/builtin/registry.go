// Package builtin implements the closed set of in-process primitive
// function bodies of spec.md §4.7, grounded on
// cuelang.org/go/internal/builtin's registry.go: a package-level map keyed
// by function id rather than import path, populated at init time, looked up
// by the evaluator when it dispatches a builtin implementation.
package builtin

import (
	"sort"

	"github.com/marius851000/wikifunction-intepreter-2/internal/kid"
	"github.com/marius851000/wikifunction-intepreter-2/internal/value"
)

// Func is the shape every builtin implementation has.
type Func func(cc *value.CallContext) (value.V, *value.EvalError)

var builtins = map[kid.Zid]Func{}

// Register installs a builtin under the given function id. All builtins are
// registered from this package's init functions, before any evaluator runs.
func Register(id kid.Zid, f Func) {
	builtins[id] = f
}

// Get returns the builtin registered for id, or NoBuiltin.
func Get(id kid.Zid) (Func, *value.EvalError) {
	f, ok := builtins[id]
	if !ok {
		return nil, value.ErrNoBuiltin(id)
	}
	return f, nil
}

// Ids returns every registered builtin id, in ascending order.
func Ids() []kid.Zid {
	ids := make([]kid.Zid, 0, len(builtins))
	for id := range builtins {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
