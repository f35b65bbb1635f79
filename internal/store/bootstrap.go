package store

import (
	"github.com/marius851000/wikifunction-intepreter-2/internal/kid"
	"github.com/marius851000/wikifunction-intepreter-2/internal/value"
)

// builtinFunction builds the minimal Function shell for a single-slot
// builtin dispatch table entry (spec.md §4.1: "whatever referenced objects a
// specific test needs").
func builtinFunction(id kid.Zid) value.V {
	return &value.Function{
		Identity: id,
		Implementations: []value.V{
			&value.Implementation{FunctionRef: id, Kind: value.ImplBuiltin},
		},
	}
}

// boolConstant builds the stored form of a Boolean identity constant: a
// record whose Z1K1 is the Boolean type and whose Z40K1 references the
// constant's own id, the way Z41/Z42 refer to themselves (spec.md §4.2's
// "Z41 ≡ true, Z42 ≡ false").
func boolConstant(self kid.Zid) value.V {
	return value.NewUntyped(map[kid.Kid]value.V{
		value.TypeKey:         value.NewReference(40),
		value.BoolIdentityKey: value.NewReference(self),
	})
}

// Bootstrap installs the minimal fixture spec.md §4.1 describes: the
// Boolean type object (Z40), the two Boolean identity constants (Z41, Z42),
// and Function shells for the builtin dispatch table of spec.md §4.7
// (Z802 if, Z811 head, Z844 bool equality, Z866 string equality, Z889 list
// equality), plus the Z7/Z881 list-type constructor identities.
func Bootstrap() *GlobalContext {
	g := New()

	g.Insert(40, &value.StandardType{Identity: 40})
	g.Insert(41, boolConstant(41)) // true
	g.Insert(42, boolConstant(42)) // false

	g.Insert(6, &value.StandardType{Identity: 6})     // string
	g.Insert(7, &value.StandardType{Identity: 7})     // function call / type application
	g.Insert(881, &value.StandardType{Identity: 881}) // typed list

	for _, id := range []kid.Zid{802, 811, 844, 866, 889} {
		g.Insert(id, builtinFunction(id))
	}

	return g
}
