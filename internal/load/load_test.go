package load

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/marius851000/wikifunction-intepreter-2/internal/kid"
	"github.com/marius851000/wikifunction-intepreter-2/internal/value"
)

func TestDecodeEntryStringShortcut(t *testing.T) {
	id, v, err := DecodeEntry(Entry{
		Title:    "Z6000",
		BodyJSON: `{"Z1K1":"Z2","Z2K1":"Z6000","Z2K2":{"Z1K1":"Z6","Z6K1":"hello"}}`,
	})
	if err != nil {
		t.Fatalf("DecodeEntry: %v", err)
	}
	if id != 6000 {
		t.Fatalf("id = %v, want Z6000", id)
	}
	s, ok := v.(*value.Str)
	if !ok {
		t.Fatalf("payload = %T, want *value.Str", v)
	}
	if s.Text != "hello" {
		t.Fatalf("text = %q, want %q", s.Text, "hello")
	}
}

func TestDecodeEntryStringShortcutRejectsExtraKeys(t *testing.T) {
	_, _, err := DecodeEntry(Entry{
		Title:    "Z6001",
		BodyJSON: `{"Z1K1":"Z2","Z2K1":"Z6001","Z2K2":{"Z1K1":"Z6","Z6K1":"hello","Z6K2":"extra"}}`,
	})
	if err == nil {
		t.Fatalf("expected a load error for extra key in a Z6 shortcut record")
	}
}

func TestDecodeEntryReferenceString(t *testing.T) {
	_, v, err := DecodeEntry(Entry{
		Title:    "Z9000",
		BodyJSON: `{"Z1K1":"Z2","Z2K1":"Z9000","Z2K2":"Z844"}`,
	})
	if err != nil {
		t.Fatalf("DecodeEntry: %v", err)
	}
	ref, ok := v.(*value.Reference)
	if !ok || ref.Target != 844 {
		t.Fatalf("payload = %#v, want Reference(844)", v)
	}
}

func TestDecodeEntryUntypedRecord(t *testing.T) {
	_, v, err := DecodeEntry(Entry{
		Title: "Z9001",
		BodyJSON: `{"Z1K1":"Z2","Z2K1":"Z9001","Z2K2":
			{"Z1K1":"Z40","Z40K1":"Z41"}}`,
	})
	if err != nil {
		t.Fatalf("DecodeEntry: %v", err)
	}
	got, ok := v.(*value.Untyped)
	if !ok {
		t.Fatalf("payload = %T, want *value.Untyped", v)
	}
	want := map[kid.Kid]value.V{
		value.TypeKey:         value.NewReference(40),
		value.BoolIdentityKey: value.NewReference(41),
	}
	if diff := cmp.Diff(want, got.Fields, cmp.Comparer(func(a, b value.V) bool {
		ra, aok := a.(*value.Reference)
		rb, bok := b.(*value.Reference)
		return aok && bok && ra.Target == rb.Target
	})); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeEntryTypedList(t *testing.T) {
	_, v, err := DecodeEntry(Entry{
		Title: "Z9002",
		BodyJSON: `{"Z1K1":"Z2","Z2K1":"Z9002","Z2K2":
			["Z40", {"Z1K1":"Z40","Z40K1":"Z41"}, {"Z1K1":"Z40","Z40K1":"Z42"}]}`,
	})
	if err != nil {
		t.Fatalf("DecodeEntry: %v", err)
	}
	list, ok := v.(*value.TypedList)
	if !ok {
		t.Fatalf("payload = %T, want *value.TypedList", v)
	}
	if len(list.Entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(list.Entries))
	}
}

func TestDecodeEntryRejectsEmptyArray(t *testing.T) {
	_, _, err := DecodeEntry(Entry{
		Title:    "Z9003",
		BodyJSON: `{"Z1K1":"Z2","Z2K1":"Z9003","Z2K2":[]}`,
	})
	if err == nil {
		t.Fatalf("expected a load error for an empty array")
	}
}

func TestDecodeEntryRejectsNumber(t *testing.T) {
	_, _, err := DecodeEntry(Entry{
		Title:    "Z9004",
		BodyJSON: `{"Z1K1":"Z2","Z2K1":"Z9004","Z2K2":42}`,
	})
	if err == nil {
		t.Fatalf("expected a load error for a bare number")
	}
}

func TestDecodeEntryRejectsMissingPayload(t *testing.T) {
	_, _, err := DecodeEntry(Entry{
		Title:    "Z9005",
		BodyJSON: `{"Z1K1":"Z2","Z2K1":"Z9005"}`,
	})
	if err == nil {
		t.Fatalf("expected a load error for a missing Z2K2 payload")
	}
}

func TestDecodeEntryRejectsMalformedTitle(t *testing.T) {
	_, _, err := DecodeEntry(Entry{Title: "not-a-zid", BodyJSON: `{}`})
	if err == nil {
		t.Fatalf("expected a load error for a malformed title")
	}
}
