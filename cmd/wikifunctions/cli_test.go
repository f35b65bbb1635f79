package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marius851000/wikifunction-intepreter-2/internal/kid"
	"github.com/marius851000/wikifunction-intepreter-2/internal/value"
)

// boolEqualityFunctionJSON is a minimal persisted Z8 (Function) object
// whose sole implementation is the Z844 builtin, the shape loadObjectsDir
// expects a fixture directory to carry for every builtin it exercises
// (the directory only seeds Z40/Z41/Z42 itself — every other object,
// including the builtin dispatch table's own Function shells, comes from
// the fixture the way it would from a real dump).
const boolEqualityFunctionJSON = `{
	"Z1K1": "Z2",
	"Z2K1": "Z844",
	"Z2K2": {
		"Z1K1": "Z8",
		"Z8K1": "Z844",
		"Z8K5": ["Z14", {
			"Z1K1": "Z14",
			"Z14K1": "Z844",
			"Z14K4": "Z844"
		}]
	}
}`

// passingTestCaseJSON calls Z844(false, false) and validates with
// Z844(K1, true) — the same fixture as scenario 6 in spec.md §8.
const passingTestCaseJSON = `{
	"Z1K1": "Z2",
	"Z2K1": "Z900001",
	"Z2K2": {
		"Z1K1": "Z20",
		"Z20K1": "Z844",
		"Z20K2": {
			"Z1K1": "Z7",
			"Z7K1": "Z844",
			"Z844K1": "Z42",
			"Z844K2": "Z42"
		},
		"Z20K3": {
			"Z1K1": "Z7",
			"Z7K1": "Z844",
			"Z844K1": {"Z1K1": "Z18", "Z18K1": "K1"},
			"Z844K2": "Z41"
		}
	}
}`

// failingTestCaseJSON calls Z844(true, false), which validates false.
const failingTestCaseJSON = `{
	"Z1K1": "Z2",
	"Z2K1": "Z900002",
	"Z2K2": {
		"Z1K1": "Z20",
		"Z20K1": "Z844",
		"Z20K2": {
			"Z1K1": "Z7",
			"Z7K1": "Z844",
			"Z844K1": "Z41",
			"Z844K2": "Z42"
		},
		"Z20K3": {
			"Z1K1": "Z7",
			"Z7K1": "Z844",
			"Z844K1": {"Z1K1": "Z18", "Z18K1": "K1"},
			"Z844K2": "Z41"
		}
	}
}`

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
}

func TestLoadObjectsDir(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "Z844.json", boolEqualityFunctionJSON)

	g, err := loadObjectsDir(dir)
	if err != nil {
		t.Fatalf("loadObjectsDir: %v", err)
	}

	for _, id := range []kid.Zid{40, 41, 42, 844} {
		if _, err := g.Get(id); err != nil {
			t.Fatalf("loadObjectsDir did not install %s: %v", id, err)
		}
	}

	obj, err := g.Get(844)
	if err != nil {
		t.Fatalf("Get(Z844): %v", err)
	}
	refined, rerr := value.Refine(obj)
	if rerr != nil {
		t.Fatalf("Refine(Z844): %v", rerr)
	}
	if _, ok := refined.(*value.Function); !ok {
		t.Fatalf("Z844 refined to %#v, want *value.Function", refined)
	}
}

func TestLoadObjectsDirMissingDir(t *testing.T) {
	if _, err := loadObjectsDir(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}

func TestLoadObjectsDirRejectsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "Z900003.json", "{not json")
	if _, err := loadObjectsDir(dir); err == nil {
		t.Fatalf("expected an error for invalid JSON")
	}
}

func TestReportResultsAllPassing(t *testing.T) {
	results := []testResult{{id: kid.Zid(900001), err: nil}}
	if err := reportResults(results); err != nil {
		t.Fatalf("reportResults with no failures: %v", err)
	}
}

func TestReportResultsWithFailures(t *testing.T) {
	results := []testResult{
		{id: kid.Zid(900001), err: nil},
		{id: kid.Zid(900002), err: value.ErrTestCaseFailed(value.NewBool(false))},
	}
	if err := reportResults(results); err == nil {
		t.Fatalf("reportResults with a failure should return an error")
	}
}

func TestRunTestsCmdEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "Z844.json", boolEqualityFunctionJSON)
	writeFixture(t, dir, "Z900001.json", passingTestCaseJSON)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"run-tests", "--objects-dir", dir, "Z900001"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("run-tests on a passing case: %v", err)
	}
}

func TestRunTestsCmdReportsFailure(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "Z844.json", boolEqualityFunctionJSON)
	writeFixture(t, dir, "Z900002.json", failingTestCaseJSON)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"run-tests", "--objects-dir", dir, "Z900002"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("run-tests on a failing case should return a non-nil error")
	}
}

func TestRunTestsCmdRequiresIDs(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "Z844.json", boolEqualityFunctionJSON)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"run-tests", "--objects-dir", dir})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("run-tests with no ids and no --ids-file should fail")
	}
}

func TestRunTestsCmdIDsFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "Z844.json", boolEqualityFunctionJSON)
	writeFixture(t, dir, "Z900001.json", passingTestCaseJSON)
	idsFile := filepath.Join(dir, "ids.yaml")
	if err := os.WriteFile(idsFile, []byte("- Z900001\n"), 0o644); err != nil {
		t.Fatalf("writing ids file: %v", err)
	}

	cmd := newRootCmd()
	cmd.SetArgs([]string{"run-tests", "--objects-dir", dir, "--ids-file", idsFile})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("run-tests --ids-file: %v", err)
	}
}

func TestRunAllTestsCmdEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "Z844.json", boolEqualityFunctionJSON)
	writeFixture(t, dir, "Z900001.json", passingTestCaseJSON)
	writeFixture(t, dir, "Z900002.json", failingTestCaseJSON)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"run-all-tests", "--objects-dir", dir})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("run-all-tests should surface the one failing case found alongside the passing one")
	}
}
