package value

import (
	"fmt"

	"github.com/marius851000/wikifunction-intepreter-2/internal/kid"
)

// TraceEntryKind discriminates TraceEntry the way adt.Bottom's many bool
// flags discriminate a single struct; kept as its own small enum here
// because trace entries, unlike EvalError itself, are purely descriptive and
// never branched on by the evaluator.
type TraceEntryKind int8

const (
	_ TraceEntryKind = iota
	InsideKey
	InsideList
	InsideReference
	Substituted
	ProcessingNonComposition
	CheckingTestCaseResult
	Text
)

// TraceEntry is one step of a reversible trace, outermost entries appended
// last (spec.md §7: "an ordered list of entries, outermost last").
type TraceEntry struct {
	Kind TraceEntryKind
	Key  kid.Kid // InsideKey
	Pos  int     // InsideList
	Zid  kid.Zid // InsideReference, Substituted, ProcessingNonComposition
	R    V       // CheckingTestCaseResult
	Text string  // Text
}

func InsideKeyEntry(k kid.Kid) TraceEntry       { return TraceEntry{Kind: InsideKey, Key: k} }
func InsideListEntry(pos int) TraceEntry        { return TraceEntry{Kind: InsideList, Pos: pos} }
func InsideReferenceEntry(z kid.Zid) TraceEntry { return TraceEntry{Kind: InsideReference, Zid: z} }
func SubstitutedEntry(z kid.Zid) TraceEntry     { return TraceEntry{Kind: Substituted, Zid: z} }
func ProcessingNonCompositionEntry(z kid.Zid) TraceEntry {
	return TraceEntry{Kind: ProcessingNonComposition, Zid: z}
}
func CheckingTestCaseResultEntry(r V) TraceEntry {
	return TraceEntry{Kind: CheckingTestCaseResult, R: r}
}
func TextEntry(s string) TraceEntry { return TraceEntry{Kind: Text, Text: s} }

func (e TraceEntry) String() string {
	switch e.Kind {
	case InsideKey:
		return fmt.Sprintf("inside key %s", e.Key)
	case InsideList:
		return fmt.Sprintf("inside list position %d", e.Pos)
	case InsideReference:
		return fmt.Sprintf("following reference %s", e.Zid)
	case Substituted:
		return fmt.Sprintf("substituted into composition of %s", e.Zid)
	case ProcessingNonComposition:
		return fmt.Sprintf("processing non-composition implementation of %s", e.Zid)
	case CheckingTestCaseResult:
		return fmt.Sprintf("checking test-case result %v", e.R)
	case Text:
		return e.Text
	default:
		return "unknown trace entry"
	}
}
