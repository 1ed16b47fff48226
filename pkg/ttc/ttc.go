package ttc

import (
	"github.com/cyclelab/tradecycle/pkg/errors"
)

// Options tunes an [AllocateWith] run.
type Options struct {
	// Logger receives per-round progress messages when set.
	// The engine never logs on its own.
	Logger func(format string, args ...any)
}

func (o Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger(format, args...)
	}
}

// Allocate computes the multi-unit Top Trading Cycles allocation for the
// given preferences, endowments, and object priority order.
//
// prefs maps each agent to his ordered indifference tiers, most preferred
// first. ends maps each agent to the ordered objects he is endowed with; no
// object may appear under two agents. priority must assign a numeric key to
// every object appearing anywhere in prefs or ends; lower keys are served
// first wherever the mechanism breaks ties.
//
// The result maps every endowed agent to exactly as many objects as he was
// endowed with. The inputs are not modified. Precondition violations are
// reported with [errors.ErrCodeDuplicateEndowment] or
// [errors.ErrCodeMissingPriority] before any trading happens.
func Allocate[A comparable, O comparable](prefs map[A][][]O, ends map[A][]O, priority map[O]float64) (map[A][]O, error) {
	return AllocateWith(prefs, ends, priority, Options{})
}

// AllocateWith is [Allocate] with explicit options.
func AllocateWith[A comparable, O comparable](prefs map[A][][]O, ends map[A][]O, priority map[O]float64, opts Options) (map[A][]O, error) {
	if err := validate(prefs, ends, priority); err != nil {
		return nil, err
	}

	s := newRoundState(prefs, ends, priority)

	round := 0
	for len(s.prefs) > 0 {
		round++
		s.reduceSinks()

		selection := s.selectSubgraph()
		s.firstReachableUnsat(selection)
		s.recordPersistences(selection)
		s.trade(selection)

		opts.logf("round %d: %d agents active, %d unsatisfied, %d edges persisted",
			round, len(s.graph), len(s.unsat), len(s.persist))
	}

	return s.alloc, nil
}

// validate checks the caller-visible preconditions: disjoint endowments and
// a priority key for every referenced object. Violations surface here, never
// as a crash mid-round.
func validate[A comparable, O comparable](prefs map[A][][]O, ends map[A][]O, priority map[O]float64) error {
	owners := make(map[O]struct{})
	for _, endowments := range ends {
		for _, o := range endowments {
			if _, taken := owners[o]; taken {
				return errors.New(errors.ErrCodeDuplicateEndowment,
					"object %v endowed more than once", o)
			}
			owners[o] = struct{}{}
			if _, ok := priority[o]; !ok {
				return errors.New(errors.ErrCodeMissingPriority,
					"endowed object %v has no priority key", o)
			}
		}
	}

	for a, tiers := range prefs {
		for _, tier := range tiers {
			for _, o := range tier {
				if _, ok := priority[o]; !ok {
					return errors.New(errors.ErrCodeMissingPriority,
						"object %v in preferences of agent %v has no priority key", o, a)
				}
			}
		}
	}

	return nil
}
