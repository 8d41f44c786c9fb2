package policy

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/model"
	"github.com/samuelfneumann/gotabular/table"
	"github.com/samuelfneumann/gotabular/timestep"
	"github.com/samuelfneumann/gotabular/utils/floatutils"
)

// ModelGreedy implements a greedy policy over a state-value estimate
// by a one-step lookahead through an empirical model: for each action
// it computes the Bellman expectation of the successor values and
// selects the action with the maximal expectation, with ties broken in
// favour of the lowest-indexed action.
type ModelGreedy struct {
	model   *model.Model
	values  *table.StateValues
	actions int
	gamma   float64
}

// NewModelGreedy constructs a greedy-by-lookahead policy over values
// using the dynamics and rewards of m
func NewModelGreedy(m *model.Model, values *table.StateValues, actions int,
	gamma float64) (*ModelGreedy, error) {
	if actions <= 0 {
		return nil, fmt.Errorf("newModelGreedy: empty action set (actions "+
			"= %d)", actions)
	}
	if gamma <= 0.0 || gamma > 1.0 {
		return nil, fmt.Errorf("newModelGreedy: discount = %v not in "+
			"(0, 1]", gamma)
	}

	return &ModelGreedy{m, values, actions, gamma}, nil
}

// SelectAction returns the action with the maximal one-step Bellman
// expectation in the state of t
func (p *ModelGreedy) SelectAction(t timestep.TimeStep) int {
	expectations := make([]float64, p.actions)
	for a := range expectations {
		expectations[a] = p.model.ExpectedValue(t.State, a, p.gamma,
			p.values.Get)
	}

	_, indices := floatutils.MaxSlice(expectations)
	return indices[0]
}
