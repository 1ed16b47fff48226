package ttc

// trade rotates current holdings around every cycle of the selection graph.
// With out-degree exactly one per vertex, the strongly connected components
// of size two or more are precisely the trade cycles; each agent on a cycle
// receives the object held by the agent he points at. Singleton components
// are agents feeding into a cycle without being on one and trade nothing.
func (s *roundState[A, O]) trade(selection map[A]A) {
	adjacency := make(map[A][]A, len(selection))
	for a, b := range selection {
		adjacency[a] = []A{b}
	}

	for _, comp := range stronglyConnected(adjacency) {
		if len(comp) < 2 {
			continue
		}
		received := make(map[A]O, len(comp))
		for _, a := range comp {
			received[a] = s.current[selection[a]]
		}
		for a, o := range received {
			s.current[a] = o
		}
	}
}
