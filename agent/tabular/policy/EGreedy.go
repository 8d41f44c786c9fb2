// Package policy implements policies over tabular value estimates
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gotabular/table"
	"github.com/samuelfneumann/gotabular/timestep"
)

// EGreedy implements an ε-greedy policy over a tabular action-value
// estimate. With probability ε an action is chosen uniformly at
// random; otherwise the greedy action is chosen, with ties broken in
// favour of the lowest-indexed action.
type EGreedy struct {
	values  *table.ActionValues
	actions int
	epsilon float64
	seed    rand.Source
}

// NewEGreedy constructs a new EGreedy policy over values, where
// epsilon is the probability with which a random action is selected
// and actions is the cardinality of the action set
func NewEGreedy(values *table.ActionValues, actions int, epsilon float64,
	seed uint64) (*EGreedy, error) {
	if actions <= 0 {
		return nil, fmt.Errorf("newEGreedy: empty action set (actions "+
			"= %d)", actions)
	}
	if epsilon < 0.0 || epsilon > 1.0 {
		return nil, fmt.Errorf("newEGreedy: epsilon = %v not in [0, 1]",
			epsilon)
	}

	source := rand.NewSource(seed)
	return &EGreedy{values, actions, epsilon, source}, nil
}

// NewGreedy constructs a policy that always selects the action with
// the maximal value estimate in the current state
func NewGreedy(values *table.ActionValues, actions int,
	seed uint64) (*EGreedy, error) {
	return NewEGreedy(values, actions, 0.0, seed)
}

// NewUniform constructs a policy that selects actions uniformly at
// random, ignoring value estimates
func NewUniform(actions int, seed uint64) (*EGreedy, error) {
	return NewEGreedy(table.NewActionValues(), actions, 1.0, seed)
}

// SelectAction selects an action from an ε-greedy policy
func (p *EGreedy) SelectAction(t timestep.TimeStep) int {
	greedyAction := p.values.BestAction(t.State, p.actions)

	// Calculate the ε probability of choosing any action at random
	prob := p.epsilon / float64(p.actions)
	actionProbabilities := make([]float64, p.actions)
	for i := range actionProbabilities {
		actionProbabilities[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	actionProbabilities[greedyAction] += 1.0 - p.epsilon

	// Sample an action from the categorical distribution over actions
	dist := distuv.NewCategorical(actionProbabilities, p.seed)
	return int(dist.Rand())
}
