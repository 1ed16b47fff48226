package ttc

import (
	"reflect"
	"testing"
)

func TestDemandGraph(t *testing.T) {
	prefs := map[string][][]string{
		"a0": {{"o2"}},
		"a1": {{"o0"}},
		"a2": {{"o1"}},
	}
	ends := map[string][]string{
		"a0": {"o0"},
		"a1": {"o1"},
		"a2": {"o2"},
	}
	priority := map[string]float64{"o0": 1, "o1": 2, "o2": 3}

	d, err := DemandGraph(prefs, ends, priority)
	if err != nil {
		t.Fatalf("DemandGraph error: %v", err)
	}

	wantEdges := map[string][]string{
		"a0": {"a2"},
		"a1": {"a0"},
		"a2": {"a1"},
	}
	if !reflect.DeepEqual(d.Edges, wantEdges) {
		t.Errorf("Edges = %v, want %v", d.Edges, wantEdges)
	}

	wantHolding := map[string]string{"a0": "o0", "a1": "o1", "a2": "o2"}
	if !reflect.DeepEqual(d.Holding, wantHolding) {
		t.Errorf("Holding = %v, want %v", d.Holding, wantHolding)
	}

	// Every agent demands an object he does not hold
	wantUnsat := map[string]bool{"a0": true, "a1": true, "a2": true}
	if !reflect.DeepEqual(d.Unsatisfied, wantUnsat) {
		t.Errorf("Unsatisfied = %v, want %v", d.Unsatisfied, wantUnsat)
	}
}

func TestDemandGraphSatisfiedSelfEdge(t *testing.T) {
	// a1 already holds his top choice; a2 has no preferences and self-loops.
	prefs := map[string][][]string{
		"a1": {{"o1"}},
	}
	ends := map[string][]string{
		"a1": {"o1"},
		"a2": {"o2"},
	}
	priority := map[string]float64{"o1": 1, "o2": 2}

	d, err := DemandGraph(prefs, ends, priority)
	if err != nil {
		t.Fatalf("DemandGraph error: %v", err)
	}

	wantEdges := map[string][]string{
		"a1": {"a1"},
		"a2": {"a2"},
	}
	if !reflect.DeepEqual(d.Edges, wantEdges) {
		t.Errorf("Edges = %v, want %v", d.Edges, wantEdges)
	}
	if len(d.Unsatisfied) != 0 {
		t.Errorf("Unsatisfied = %v, want empty", d.Unsatisfied)
	}
}

func TestDemandGraphValidates(t *testing.T) {
	_, err := DemandGraph(
		map[string][][]string{"a1": {{"o1"}}},
		map[string][]string{"a1": {"o1"}},
		map[string]float64{},
	)
	if err == nil {
		t.Fatal("expected validation error for missing priority")
	}
}

func TestDemandGraphDoesNotMutateInputs(t *testing.T) {
	prefs := map[string][][]string{"a1": {{"o2"}}, "a2": {{"o1"}}}
	ends := map[string][]string{"a1": {"o1"}, "a2": {"o2"}}
	priority := map[string]float64{"o1": 1, "o2": 2}

	if _, err := DemandGraph(prefs, ends, priority); err != nil {
		t.Fatalf("DemandGraph error: %v", err)
	}
	if !reflect.DeepEqual(ends, map[string][]string{"a1": {"o1"}, "a2": {"o2"}}) {
		t.Errorf("endowments mutated: %v", ends)
	}
	if !reflect.DeepEqual(prefs, map[string][][]string{"a1": {{"o2"}}, "a2": {{"o1"}}}) {
		t.Errorf("preferences mutated: %v", prefs)
	}
}
