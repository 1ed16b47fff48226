package ttc

import "fmt"

// Demand is a snapshot of the first-round demand graph: each active agent
// points at every holder of an object in his top remaining preference tier.
// It exists for inspection and visualization; [Allocate] builds the same
// structure internally each round.
type Demand[A comparable] struct {
	// Edges maps each agent to the agents he demands from, in preference order.
	Edges map[A][]A

	// Holding maps each agent to the object he brings to the first round.
	Holding map[A]string

	// Unsatisfied marks agents whose top preference tier was not yet
	// reachable among the current holdings.
	Unsatisfied map[A]bool
}

// DemandGraph computes the demand graph of the first round, after the same
// validation [Allocate] performs. Inputs are not mutated.
func DemandGraph[A comparable, O comparable](prefs map[A][][]O, ends map[A][]O, priority map[O]float64) (Demand[A], error) {
	if err := validate(prefs, ends, priority); err != nil {
		return Demand[A]{}, err
	}

	s := newRoundState(prefs, ends, priority)
	s.refresh()

	d := Demand[A]{
		Edges:       make(map[A][]A, len(s.graph)),
		Holding:     make(map[A]string, len(s.current)),
		Unsatisfied: make(map[A]bool, len(s.unsat)),
	}
	for a, targets := range s.graph {
		d.Edges[a] = append([]A(nil), targets...)
	}
	for a, o := range s.current {
		d.Holding[a] = objectLabel(o)
	}
	for a := range s.unsat {
		d.Unsatisfied[a] = true
	}
	return d, nil
}

func objectLabel[O comparable](o O) string {
	return fmt.Sprint(o)
}
