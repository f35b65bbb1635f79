package wferrors_test

import (
	"testing"

	"github.com/marius851000/wikifunction-intepreter-2/wferrors"
)

func TestMessageMsgRoundTrips(t *testing.T) {
	m := wferrors.NewMessage("missing key %s on %d", "Z7K1", 844)
	format, args := m.Msg()
	if format != "missing key %s on %d" {
		t.Fatalf("format = %q", format)
	}
	if len(args) != 2 || args[0] != "Z7K1" || args[1] != 844 {
		t.Fatalf("args = %v", args)
	}
}

func TestMessageError(t *testing.T) {
	m := wferrors.NewMessage("missing key %s on %d", "Z7K1", 844)
	want := "missing key Z7K1 on 844"
	if got := m.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestMessageErrorNoArgs(t *testing.T) {
	m := wferrors.NewMessage("no implementation found")
	if got := m.Error(); got != "no implementation found" {
		t.Fatalf("Error() = %q", got)
	}
}
