// Package qlearning implements the tabular Q-Learning algorithm.
//
// Q-Learning is a model-free temporal-difference method: each observed
// transition directly updates the action-value estimate of the taken
// action, bootstrapping from the maximal estimate in the successor
// state. No model of the environment's dynamics is kept, so evaluation
// traffic under the greedy policy has no side effects on learning.
package qlearning

import (
	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/agent/tabular/policy"
	"github.com/samuelfneumann/gotabular/environment"
	"github.com/samuelfneumann/gotabular/table"
)

// QLearning implements the tabular Q-Learning algorithm
type QLearning struct {
	agent.Learner
	agent.Policy
	values *table.ActionValues
	target agent.Policy
	seed   uint64
}

// New creates a new QLearning agent acting in env with hyperparameters
// config
func New(env environment.Environment, config Config,
	seed uint64) (*QLearning, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	actions := env.ActionCount()

	// The behaviour policy, target policy, and learner share a single
	// action-value table
	values := table.NewActionValues()

	behaviour, err := policy.NewEGreedy(values, actions, config.Epsilon,
		seed)
	if err != nil {
		return nil, err
	}

	target, err := policy.NewGreedy(values, actions, seed)
	if err != nil {
		return nil, err
	}

	learner := NewQLearner(values, actions, config.LearningRate,
		config.Discount)

	return &QLearning{learner, behaviour, values, target, seed}, nil
}

// TargetPolicy returns the greedy policy the agent is improving. The
// returned policy reads the agent's own action-value table and is
// side-effect free, so it can be handed to an evaluator without
// perturbing learning.
func (q *QLearning) TargetPolicy() agent.Policy {
	return q.target
}

// Values returns the agent's action-value table
func (q *QLearning) Values() *table.ActionValues {
	return q.values
}
