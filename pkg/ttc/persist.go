package ttc

// firstReachableUnsat computes, for every agent in the selection graph, the
// first unsatisfied agent reached by following selection edges from his
// successor onward. An unsatisfied agent's own entry is therefore the next
// unsatisfied agent down his chain, which may cycle back to himself. Whole
// paths resolve at once: once the walk hits an unsatisfied agent or an
// already-resolved entry, every vertex on the path is assigned the same
// target.
func (s *roundState[A, O]) firstReachableUnsat(selection map[A]A) {
	s.reach = make(map[A]A, len(selection))

	for start := range selection {
		if _, done := s.reach[start]; done {
			continue
		}

		path := []A{start}
		onPath := map[A]struct{}{start: {}}
		curr := selection[start]
		for {
			if _, ok := s.unsat[curr]; ok {
				break
			}
			if _, ok := s.reach[curr]; ok {
				break
			}
			if _, ok := onPath[curr]; ok {
				// A cycle with no unsatisfied agent on it cannot exist after
				// sink reduction; hitting one means the selection is corrupt.
				panic("ttc: selection cycle contains no unsatisfied agent")
			}
			path = append(path, curr)
			onPath[curr] = struct{}{}
			curr = selection[curr]
		}

		target := curr
		if _, ok := s.unsat[curr]; !ok {
			target = s.reach[curr]
		}
		for _, v := range path {
			s.reach[v] = target
		}
	}
}

// recordPersistences refreshes the persistence record of every agent with a
// resolved reachable-unsatisfied target. The record pins the target and the
// object it holds right now; next round's selection replays the stored edge
// only while that pairing survives.
func (s *roundState[A, O]) recordPersistences(selection map[A]A) {
	for a, target := range s.reach {
		s.persist[a] = persistence[A, O]{
			target: target,
			object: s.current[target],
			edge:   selection[a],
		}
	}
}
