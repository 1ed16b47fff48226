package ttc

import (
	"reflect"
	"testing"
)

func TestRemoveTerminalSinksSkipsUnsatisfied(t *testing.T) {
	// Two agents who each want the other's object form a sink, but both are
	// unsatisfied: the sink is not terminal and nothing may be committed.
	s := newTestState(
		map[string][][]string{"a": {{"o1"}}, "b": {{"o0"}}},
		map[string][]string{"a": {}, "b": {}},
		map[string]string{"a": "o0", "b": "o1"},
		nil,
	)
	s.currPref = map[string][][]string{"a": {{"o1"}}, "b": {{"o0"}}}
	s.graph = map[string][]string{"a": {"b"}, "b": {"a"}}
	s.unsat = map[string]struct{}{"a": {}, "b": {}}

	if s.removeTerminalSinks() {
		t.Error("no terminal sink exists; removeTerminalSinks should report false")
	}
	if len(s.alloc) != 0 {
		t.Errorf("alloc = %v, want empty", s.alloc)
	}
}

func TestRemoveTerminalSinksCommits(t *testing.T) {
	// Both agents hold an object from their own top tier: the sink is
	// terminal and the holdings become final.
	s := newTestState(
		map[string][][]string{"a": {{"o0", "o1"}}, "b": {{"o0", "o1"}}},
		map[string][]string{"a": {}, "b": {}},
		map[string]string{"a": "o0", "b": "o1"},
		nil,
	)
	s.currPref = map[string][][]string{"a": {{"o0", "o1"}}, "b": {{"o0", "o1"}}}
	s.graph = map[string][]string{"a": {"a", "b"}, "b": {"a", "b"}}

	if !s.removeTerminalSinks() {
		t.Fatal("terminal sink not found")
	}
	if !reflect.DeepEqual(s.alloc["a"], []string{"o0"}) {
		t.Errorf("alloc[a] = %v, want [o0]", s.alloc["a"])
	}
	if !reflect.DeepEqual(s.alloc["b"], []string{"o1"}) {
		t.Errorf("alloc[b] = %v, want [o1]", s.alloc["b"])
	}
	for _, m := range []map[string]string{s.current} {
		if _, ok := m["a"]; ok {
			t.Error("committed agent should leave current holdings")
		}
	}
	if _, ok := s.graph["a"]; ok {
		t.Error("committed agent should leave the demand graph")
	}
	if _, ok := s.currPref["a"]; ok {
		t.Error("committed agent should leave restricted preferences")
	}
}

func TestScrubPreferences(t *testing.T) {
	s := newTestState(nil, nil, nil, nil)
	s.currPref = map[string][][]string{
		"a1": {{"a", "b", "c"}, {"d"}, {"f"}},
	}
	s.scrubPreferences("d")

	want := [][]string{{"a", "b", "c"}, {"f"}}
	if !reflect.DeepEqual(s.currPref["a1"], want) {
		t.Errorf("currPref[a1] = %v, want %v", s.currPref["a1"], want)
	}

	s.scrubPreferences("b")
	want = [][]string{{"a", "c"}, {"f"}}
	if !reflect.DeepEqual(s.currPref["a1"], want) {
		t.Errorf("currPref[a1] = %v, want %v", s.currPref["a1"], want)
	}
}

func TestReduceSinksToFixedPoint(t *testing.T) {
	// Five agents, each preferring lower-numbered objects but endowed with
	// his own. Removing a0's sink exposes a1 as the next terminal sink, and
	// so on down the chain: the whole problem resolves inside sink
	// reduction.
	prefs := map[string][][]string{
		"a0": {{"o0"}},
		"a1": {{"o0"}, {"o1"}},
		"a2": {{"o0"}, {"o1"}, {"o2"}},
		"a3": {{"o0"}, {"o1"}, {"o2"}, {"o3"}},
		"a4": {{"o0"}, {"o1"}, {"o2"}, {"o3"}, {"o4"}},
	}
	pending := map[string][]string{
		"a0": {"o0"}, "a1": {"o1"}, "a2": {"o2"}, "a3": {"o3"}, "a4": {"o4"},
	}
	s := newTestState(prefs, pending, nil, nil)
	s.reduceSinks()

	for i, want := range []string{"o0", "o1", "o2", "o3", "o4"} {
		a := []string{"a0", "a1", "a2", "a3", "a4"}[i]
		if !reflect.DeepEqual(s.alloc[a], []string{want}) {
			t.Errorf("alloc[%s] = %v, want [%s]", a, s.alloc[a], want)
		}
	}

	if len(s.prefs) != 0 || len(s.pending) != 0 || len(s.current) != 0 ||
		len(s.graph) != 0 || len(s.unsat) != 0 {
		t.Error("round state should be fully drained after reduction")
	}
}
