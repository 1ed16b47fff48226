// Package problem defines the trade problem read from user-supplied files
// and its validation against the allocator's preconditions.
//
// A problem names a set of agents, each with an ordered endowment list and
// preference tiers over object names, plus a priority key for every object.
// Problems arrive as JSON or TOML documents; see [Decode] and the cmd/
// tradecycle documentation for the file layout.
package problem

import (
	"encoding/json"

	"github.com/cyclelab/tradecycle/pkg/errors"
	"github.com/cyclelab/tradecycle/pkg/ttc"
)

// Agent holds one agent's inputs as written in a problem file.
type Agent struct {
	// Endowments are the objects the agent starts with, in the order they
	// enter trading rounds.
	Endowments []string `json:"endowments" toml:"endowments"`

	// Preferences are ordered indifference tiers, most preferred first.
	// Objects inside a tier are equally preferred. May be empty, in which
	// case the agent keeps his endowments.
	Preferences [][]string `json:"preferences,omitempty" toml:"preferences"`
}

// Problem is a full allocation problem.
type Problem struct {
	Agents     map[string]Agent   `json:"agents" toml:"agents"`
	Priorities map[string]float64 `json:"priorities" toml:"priorities"`
}

// Allocation is the result of solving a problem: each agent's received
// objects in the order they were committed.
type Allocation map[string][]string

// Validate checks the problem against the allocator's preconditions so
// violations surface with file-level context before any trading happens.
func (p *Problem) Validate() error {
	if len(p.Agents) == 0 {
		return errors.New(errors.ErrCodeInvalidProblem, "problem has no agents")
	}

	owners := make(map[string]string)
	for name, agent := range p.Agents {
		if err := errors.ValidateAgentName(name); err != nil {
			return err
		}
		if len(agent.Endowments) == 0 {
			return errors.New(errors.ErrCodeInvalidProblem,
				"agent %q has no endowments", name)
		}

		for _, o := range agent.Endowments {
			if err := errors.ValidateObjectName(o); err != nil {
				return err
			}
			if prev, taken := owners[o]; taken {
				return errors.New(errors.ErrCodeDuplicateEndowment,
					"object %q endowed to both %q and %q", o, prev, name)
			}
			owners[o] = name
			if _, ok := p.Priorities[o]; !ok {
				return errors.New(errors.ErrCodeMissingPriority,
					"endowed object %q has no priority key", o)
			}
		}

		for i, tier := range agent.Preferences {
			if len(tier) == 0 {
				return errors.New(errors.ErrCodeEmptyPreferenceTier,
					"agent %q: preference tier %d is empty", name, i)
			}
			for _, o := range tier {
				if err := errors.ValidateObjectName(o); err != nil {
					return err
				}
				if _, ok := p.Priorities[o]; !ok {
					return errors.New(errors.ErrCodeMissingPriority,
						"object %q in preferences of %q has no priority key", o, name)
				}
			}
		}
	}

	return nil
}

// Solve validates the problem and runs the TTC allocator over it.
func (p *Problem) Solve(opts ttc.Options) (Allocation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	prefs := make(map[string][][]string, len(p.Agents))
	ends := make(map[string][]string, len(p.Agents))
	for name, agent := range p.Agents {
		prefs[name] = agent.Preferences
		ends[name] = agent.Endowments
	}

	alloc, err := ttc.AllocateWith(prefs, ends, p.Priorities, opts)
	if err != nil {
		return nil, err
	}
	return Allocation(alloc), nil
}

// Demand validates the problem and computes the first-round demand graph,
// for inspection or rendering without running a full solve.
func (p *Problem) Demand() (ttc.Demand[string], error) {
	if err := p.Validate(); err != nil {
		return ttc.Demand[string]{}, err
	}

	prefs := make(map[string][][]string, len(p.Agents))
	ends := make(map[string][]string, len(p.Agents))
	for name, agent := range p.Agents {
		prefs[name] = agent.Preferences
		ends[name] = agent.Endowments
	}

	return ttc.DemandGraph(prefs, ends, p.Priorities)
}

// Fingerprint returns a stable byte representation of the problem, suitable
// for cache keys. encoding/json sorts map keys, so equal problems always
// produce equal bytes.
func (p *Problem) Fingerprint() []byte {
	data, _ := json.Marshal(p)
	return data
}
