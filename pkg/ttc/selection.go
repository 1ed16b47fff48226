package ttc

import (
	"fmt"

	"github.com/cyclelab/tradecycle/pkg/heapset"
)

// selectSubgraph picks exactly one outgoing trade edge for every agent left
// in the demand graph. Three passes fill the selection, none overwriting an
// agent labeled by an earlier one: memoized persistence results, then
// unsatisfied agents by object priority, then satisfied agents labeled
// outward from the already-labeled frontier.
func (s *roundState[A, O]) selectSubgraph() map[A]A {
	selection := make(map[A]A, len(s.graph))
	labeled := make(map[A]struct{}, len(s.graph))

	s.persistenceSelect(selection, labeled)
	s.unsatSelect(selection, labeled)
	s.satSelect(selection, labeled)
	return selection
}

// persistenceSelect replays the memoized edge of every agent whose
// persistence record still answers: the tracked agent must still be
// unsatisfied and holding the object recorded for it, and both ends of the
// edge must still be in the round. Records that no longer answer are simply
// skipped; the later passes recompute those agents from scratch.
//
// The unsatisfied check matters even when the holding is unchanged: sink
// reduction can commit away the target's better objects between rounds,
// turning it satisfied in place. Replaying an edge toward it would admit a
// selection cycle with no unsatisfied member.
func (s *roundState[A, O]) persistenceSelect(selection map[A]A, labeled map[A]struct{}) {
	for a, p := range s.persist {
		if _, active := s.graph[a]; !active {
			continue
		}
		if _, active := s.unsat[p.target]; !active {
			continue
		}
		held, active := s.current[p.target]
		if !active || held != p.object {
			continue
		}
		if _, active := s.graph[p.edge]; !active {
			continue
		}
		selection[a] = p.edge
		labeled[a] = struct{}{}
	}
}

// unsatSelect gives every unlabeled unsatisfied agent an edge to the demand
// neighbor whose current object has the lowest priority.
func (s *roundState[A, O]) unsatSelect(selection map[A]A, labeled map[A]struct{}) {
	for u := range s.unsat {
		if _, ok := labeled[u]; ok {
			continue
		}
		selection[u] = s.minByPriority(s.graph[u], nil)
		labeled[u] = struct{}{}
	}
}

// satSelect labels the remaining agents outward from the labeled frontier.
// Unlabeled agents with at least one labeled out-neighbor are collected into
// a priority set keyed by the priority of their own current object; the
// minimum is popped and fixed to its lowest-priority labeled out-neighbor.
// Resolving strictly in priority order is what makes the mechanism's choice
// of trade cycles deterministic, so the collect-then-pop order is a
// correctness requirement, not an optimization.
func (s *roundState[A, O]) satSelect(selection map[A]A, labeled map[A]struct{}) {
	unlabeled := make(map[A]struct{}, len(s.graph))
	for a := range s.graph {
		if _, ok := labeled[a]; !ok {
			unlabeled[a] = struct{}{}
		}
	}

	frontier := heapset.New(s.agentPriority)
	reverse := reverseGraph(s.graph)

	for len(unlabeled) > 0 {
		for l := range labeled {
			for _, a := range reverse[l] {
				if _, ok := labeled[a]; !ok {
					frontier.Add(a)
				}
			}
		}

		a, err := frontier.Pop()
		if err != nil {
			// Unreachable for a reduced graph: every remaining agent has a
			// path to an unsatisfied agent, so the frontier cannot dry up
			// while unlabeled agents remain.
			panic(fmt.Sprintf("ttc: no labelable agent among %d remaining", len(unlabeled)))
		}

		selection[a] = s.minByPriority(s.graph[a], labeled)
		labeled[a] = struct{}{}
		delete(unlabeled, a)
	}
}

// minByPriority returns the candidate holding the lowest-priority object,
// considering only labeled candidates when labeled is non-nil. Candidates
// must be non-empty under the respective filter.
func (s *roundState[A, O]) minByPriority(candidates []A, labeled map[A]struct{}) A {
	var (
		best  A
		found bool
	)
	for _, c := range candidates {
		if labeled != nil {
			if _, ok := labeled[c]; !ok {
				continue
			}
		}
		if !found || s.agentPriority(c) < s.agentPriority(best) {
			best = c
			found = true
		}
	}
	if !found {
		panic("ttc: agent has no eligible trade edge")
	}
	return best
}

// reverseGraph inverts a map-adjacency graph.
func reverseGraph[A comparable](graph map[A][]A) map[A][]A {
	reverse := make(map[A][]A, len(graph))
	for v, ws := range graph {
		for _, w := range ws {
			reverse[w] = append(reverse[w], v)
		}
	}
	return reverse
}
