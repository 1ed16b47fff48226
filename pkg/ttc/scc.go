package ttc

// stronglyConnected computes the strongly connected components of a directed
// graph in map-adjacency form using Tarjan's algorithm. Every key of graph is
// a vertex; edge targets must themselves be keys. Vertices inside a component
// appear in depth-first visit order. Components are emitted in reverse
// topological order: a component never has an edge into one emitted earlier.
func stronglyConnected[A comparable](graph map[A][]A) [][]A {
	var (
		components [][]A
		stack      []A
		index      = make(map[A]int, len(graph))
		onStack    = make(map[A]struct{}, len(graph))
		next       = 1
	)

	var visit func(A) int
	visit = func(v A) int {
		lowlink := next
		index[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = struct{}{}

		for _, w := range graph[v] {
			var link int
			if index[w] == 0 {
				link = visit(w)
			} else if _, ok := onStack[w]; ok {
				link = index[w]
			} else {
				continue
			}
			if link < lowlink {
				lowlink = link
			}
		}

		if lowlink == index[v] {
			var comp []A
			i := len(stack)
			for i > 0 {
				i--
				if stack[i] == v {
					break
				}
			}
			comp = append(comp, stack[i:]...)
			for _, w := range stack[i:] {
				delete(onStack, w)
			}
			stack = stack[:i]
			components = append(components, comp)
		}
		return lowlink
	}

	for v := range graph {
		if index[v] == 0 {
			visit(v)
		}
	}
	return components
}
