package ttc

// advanceEndowments gives every active agent without a current holding the
// next object from his pending endowments. Agents with nothing left to
// introduce are fully allocated and leave the problem: their preference,
// pending, and persistence entries are removed.
func (s *roundState[A, O]) advanceEndowments() {
	var done []A
	for a := range s.pending {
		if _, holding := s.current[a]; holding {
			continue
		}
		if len(s.pending[a]) == 0 {
			done = append(done, a)
			continue
		}
		s.current[a] = s.pending[a][0]
		s.pending[a] = s.pending[a][1:]
	}

	for _, a := range done {
		delete(s.pending, a)
		delete(s.prefs, a)
		delete(s.persist, a)
	}
}

// restrictPreferences rebuilds currPref as the restriction of each agent's
// preference to the objects held by anyone this round. Tiers are copied, so
// later scrubbing never touches the master preference lists. Tiers emptied by
// the restriction are dropped.
func (s *roundState[A, O]) restrictPreferences() {
	available := make(map[O]struct{}, len(s.current))
	for _, o := range s.current {
		available[o] = struct{}{}
	}

	s.currPref = make(map[A][][]O, len(s.prefs))
	for a, tiers := range s.prefs {
		restricted := make([][]O, 0, len(tiers))
		for _, tier := range tiers {
			var kept []O
			for _, o := range tier {
				if _, ok := available[o]; ok {
					kept = append(kept, o)
				}
			}
			if len(kept) > 0 {
				restricted = append(restricted, kept)
			}
		}
		s.currPref[a] = restricted
	}
}

// buildGraph recomputes the demand graph: each agent points at the holder of
// every object in his top restricted tier. An agent whose restricted
// preference is empty has no demand and points at himself, keeping what he
// holds.
func (s *roundState[A, O]) buildGraph() {
	holder := make(map[O]A, len(s.current))
	for a, o := range s.current {
		holder[o] = a
	}

	s.graph = make(map[A][]A, len(s.current))
	for a := range s.current {
		tiers := s.currPref[a]
		if len(tiers) == 0 {
			s.graph[a] = []A{a}
			continue
		}
		edges := make([]A, 0, len(tiers[0]))
		for _, o := range tiers[0] {
			edges = append(edges, holder[o])
		}
		s.graph[a] = edges
	}
}

// collectUnsatisfied recomputes the set of agents whose current holding is
// not in their own top restricted tier. Agents with no restricted preference
// count as satisfied; they cannot demand anything better.
func (s *roundState[A, O]) collectUnsatisfied() {
	s.unsat = make(map[A]struct{})
	for a, held := range s.current {
		tiers := s.currPref[a]
		if len(tiers) == 0 {
			continue
		}
		satisfied := false
		for _, o := range tiers[0] {
			if o == held {
				satisfied = true
				break
			}
		}
		if !satisfied {
			s.unsat[a] = struct{}{}
		}
	}
}

// refresh recomputes every piece of per-round derived state in order.
// SinkReducer calls it again after each removal pass so later decisions
// observe the updated graph.
func (s *roundState[A, O]) refresh() {
	s.advanceEndowments()
	s.restrictPreferences()
	s.buildGraph()
	s.collectUnsatisfied()
}
