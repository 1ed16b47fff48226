package ttc

// isSink reports whether the component has no edge leaving it.
func (s *roundState[A, O]) isSink(comp []A) bool {
	members := make(map[A]struct{}, len(comp))
	for _, a := range comp {
		members[a] = struct{}{}
	}
	for _, a := range comp {
		for _, b := range s.graph[a] {
			if _, ok := members[b]; !ok {
				return false
			}
		}
	}
	return true
}

// isTerminal reports whether no member of the sink is unsatisfied.
func (s *roundState[A, O]) isTerminal(sink []A) bool {
	for _, a := range sink {
		if _, ok := s.unsat[a]; ok {
			return false
		}
	}
	return true
}

// removeTerminalSinks commits the holdings of every terminal sink in the
// demand graph and reports whether any was found. Members of a terminal sink
// receive their current object as a final allocation and leave the round;
// the committed objects are scrubbed from every remaining agent's restricted
// preference. advanceEndowments handles the master preference and pending
// lists next refresh, so they are left alone here.
func (s *roundState[A, O]) removeTerminalSinks() bool {
	found := false
	for _, comp := range stronglyConnected(s.graph) {
		if !s.isSink(comp) || !s.isTerminal(comp) {
			continue
		}
		found = true
		for _, a := range comp {
			committed := s.current[a]
			s.alloc[a] = append(s.alloc[a], committed)
			delete(s.current, a)
			delete(s.graph, a)
			delete(s.currPref, a)
			s.scrubPreferences(committed)
		}
	}
	return found
}

// scrubPreferences removes a committed object from every remaining restricted
// preference, dropping any tier emptied by the removal.
func (s *roundState[A, O]) scrubPreferences(committed O) {
	for a, tiers := range s.currPref {
		for i, tier := range tiers {
			idx := -1
			for j, o := range tier {
				if o == committed {
					idx = j
					break
				}
			}
			if idx < 0 {
				continue
			}
			tier = append(tier[:idx], tier[idx+1:]...)
			if len(tier) == 0 {
				s.currPref[a] = append(tiers[:i], tiers[i+1:]...)
			} else {
				tiers[i] = tier
			}
			break
		}
	}
}

// reduceSinks derives the round's graph and removes terminal sinks until a
// fixed point: committing one sink's objects can expose another, so the
// graph and unsatisfied set are recomputed after every pass. Every finite
// demand graph has at least one sink component, but not necessarily a
// terminal one, so the loop always ends.
func (s *roundState[A, O]) reduceSinks() {
	s.refresh()
	for s.removeTerminalSinks() {
		s.refresh()
	}
}
