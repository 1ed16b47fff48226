// Package ttc implements the Highest Priority Object Top Trading Cycles
// mechanism, generalized to agents endowed with more than one object.
//
// # Overview
//
// TTC computes an efficient reallocation of indivisible objects among agents
// holding ordinal preferences with ties. Each agent ranks objects in ordered
// indifference tiers: objects inside a tier are equally preferred, and every
// object in a tier beats every object in later tiers. Agents endowed with
// several objects trade them one at a time across repeated rounds, so every
// agent receives exactly as many objects as he started with.
//
// # Basic Usage
//
// Call [Allocate] with preferences, endowments, and a priority key for every
// object:
//
//	prefs := map[string][][]string{
//	    "ann": {{"book"}, {"lamp"}},
//	    "bob": {{"lamp", "book"}},
//	}
//	ends := map[string][]string{"ann": {"lamp"}, "bob": {"book"}}
//	priority := map[string]float64{"book": 0, "lamp": 1}
//
//	alloc, err := ttc.Allocate(prefs, ends, priority)
//
// Agent and object identifiers are generic; any comparable types work. The
// priority map must assign a distinct numeric key to every object and acts as
// the tie-breaking order of the mechanism.
//
// # Rounds
//
// Each round introduces one pending endowment per agent and then runs four
// phases over the shared round state: build the demand graph (an edge from
// each agent to the holders of his top available tier), iteratively remove
// terminal sinks (strongly connected components with no outgoing edges and no
// unsatisfied member, whose holdings become final), select exactly one
// outgoing trade edge per remaining agent by object priority, and rotate
// holdings around the cycles of that selection. Edge selections are memoized
// between rounds: an agent whose first reachable unsatisfied agent still
// holds the same object keeps last round's edge without recomputation.
//
// The engine is single-threaded and performs no I/O. A single call to
// [Allocate] owns its state exclusively; callers wanting cancellation must
// wrap the call and abandon the result.
package ttc
