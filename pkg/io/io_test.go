package io

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cyclelab/tradecycle/pkg/problem"
)

func TestImportProblemJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "problem.json")
	doc := `{
	  "agents": {"a0": {"endowments": ["o0"], "preferences": [["o1"]]}, "a1": {"endowments": ["o1"]}},
	  "priorities": {"o0": 0, "o1": 1}
	}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := ImportProblem(path)
	if err != nil {
		t.Fatalf("ImportProblem error: %v", err)
	}
	if len(p.Agents) != 2 {
		t.Errorf("agents = %d, want 2", len(p.Agents))
	}
}

func TestImportProblemTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "problem.toml")
	doc := `
[priorities]
o0 = 0.0
o1 = 1.0

[agents.a0]
endowments = ["o0"]
preferences = [["o1"]]

[agents.a1]
endowments = ["o1"]
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := ImportProblem(path)
	if err != nil {
		t.Fatalf("ImportProblem error: %v", err)
	}
	if !reflect.DeepEqual(p.Agents["a0"].Preferences, [][]string{{"o1"}}) {
		t.Errorf("preferences = %v", p.Agents["a0"].Preferences)
	}
}

func TestImportProblemErrors(t *testing.T) {
	if _, err := ImportProblem("missing.json"); err == nil {
		t.Error("missing file should fail")
	}
	if _, err := ImportProblem("problem.yaml"); err == nil {
		t.Error("unknown extension should fail")
	}
}

func TestAllocationRoundTrip(t *testing.T) {
	alloc := problem.Allocation{
		"a0": {"o2"},
		"a1": {"o0", "o1"},
	}

	var buf bytes.Buffer
	if err := WriteAllocation(alloc, &buf); err != nil {
		t.Fatalf("WriteAllocation error: %v", err)
	}

	got, err := ReadAllocation(&buf)
	if err != nil {
		t.Fatalf("ReadAllocation error: %v", err)
	}
	if !reflect.DeepEqual(got, alloc) {
		t.Errorf("round trip = %v, want %v", got, alloc)
	}
}

func TestWriteAllocationDeterministic(t *testing.T) {
	alloc := problem.Allocation{"b": {"o1"}, "a": {"o0"}, "c": {"o2"}}

	var first, second bytes.Buffer
	if err := WriteAllocation(alloc, &first); err != nil {
		t.Fatal(err)
	}
	if err := WriteAllocation(alloc, &second); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Error("output must be byte-identical across writes")
	}
	if !strings.Contains(first.String(), `"allocation"`) {
		t.Errorf("output missing allocation wrapper: %s", first.String())
	}
}

func TestExportAllocation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if err := ExportAllocation(problem.Allocation{"a": {"o0"}}, path); err != nil {
		t.Fatalf("ExportAllocation error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := ReadAllocation(f)
	if err != nil {
		t.Fatalf("ReadAllocation error: %v", err)
	}
	if !reflect.DeepEqual(got, problem.Allocation{"a": {"o0"}}) {
		t.Errorf("round trip = %v", got)
	}
}
