package ttc

// roundState is the mutable context threaded through every phase of a run.
// It is created once per [Allocate] call and owned exclusively by the round
// loop; phases mutate it in place and never retain references across rounds.
type roundState[A comparable, O comparable] struct {
	prefs    map[A][][]O // remaining preferences, agents deleted once fully allocated
	pending  map[A][]O   // endowments not yet introduced, popped one per round
	current  map[A]O     // the single object each active agent trades this round
	currPref map[A][][]O // prefs restricted to objects current this round
	graph    map[A][]A   // demand graph: edge to each holder of a top-tier object
	unsat    map[A]struct{}
	persist  map[A]persistence[A, O]
	reach    map[A]A     // first unsatisfied agent reachable in the selection graph
	alloc    map[A][]O   // final allocation, one object appended per committed round
	priority map[O]float64
}

// persistence is the memoized selection of a single agent: if target still
// holds object when re-evaluated, the agent reuses edge as his selection for
// the new round instead of recomputing it.
type persistence[A comparable, O comparable] struct {
	target A // first reachable unsatisfied agent at record time
	object O // the object target held at record time
	edge   A // the selection edge to reuse
}

func newRoundState[A comparable, O comparable](prefs map[A][][]O, ends map[A][]O, priority map[O]float64) *roundState[A, O] {
	s := &roundState[A, O]{
		prefs:    make(map[A][][]O, len(ends)),
		pending:  make(map[A][]O, len(ends)),
		current:  make(map[A]O),
		currPref: make(map[A][][]O),
		graph:    make(map[A][]A),
		unsat:    make(map[A]struct{}),
		persist:  make(map[A]persistence[A, O]),
		reach:    make(map[A]A),
		alloc:    make(map[A][]O, len(ends)),
		priority: priority,
	}

	// Deep-copy the caller's input: the round loop pops pending objects and
	// deletes agents as they complete, and must not destroy caller data.
	// Agents appearing only in prefs have nothing to trade and are dropped.
	for a, endowments := range ends {
		s.pending[a] = append([]O(nil), endowments...)

		tiers := make([][]O, 0, len(prefs[a]))
		for _, tier := range prefs[a] {
			tiers = append(tiers, append([]O(nil), tier...))
		}
		s.prefs[a] = tiers
	}

	return s
}

// agentPriority orders active agents by the priority of the object each one
// currently holds. Holdings are disjoint, so the order is total.
func (s *roundState[A, O]) agentPriority(a A) float64 {
	return s.priority[s.current[a]]
}
