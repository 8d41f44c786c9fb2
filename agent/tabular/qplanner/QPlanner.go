// Package qplanner implements tabular Q-learning over an explicit
// empirical model.
//
// The agent blends the model-based expectation of value iteration with
// action-value storage: every observed transition is folded into an
// empirical model, and Iterate recomputes each observed state-action
// pair's value as the full Bellman expectation under that model.
// Because the greedy policy reads the action-value table directly,
// evaluation traffic is still recorded into the model and improves
// later planning sweeps.
package qplanner

import (
	"math"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/agent/tabular/policy"
	"github.com/samuelfneumann/gotabular/environment"
	"github.com/samuelfneumann/gotabular/model"
	"github.com/samuelfneumann/gotabular/table"
	"github.com/samuelfneumann/gotabular/timestep"
)

// QPlanner implements hybrid model-based tabular Q-learning
type QPlanner struct {
	agent.Policy // ε-greedy behaviour policy

	model    *model.Model
	values   *table.ActionValues
	target   agent.Policy
	states   int
	actions  int
	discount float64

	step     timestep.TimeStep
	action   int
	nextStep timestep.TimeStep
}

// New creates a new QPlanner agent acting in env with hyperparameters
// config
func New(env environment.Environment, config Config,
	seed uint64) (*QPlanner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	actions := env.ActionCount()
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

	return &QPlanner{
		Policy:   behaviour,
		model:    model.New(),
		values:   values,
		target:   target,
		states:   env.StateCount(),
		actions:  actions,
		discount: config.Discount,
	}, nil
}

// ObserveFirst observes and records the first episodic timestep
func (q *QPlanner) ObserveFirst(t timestep.TimeStep) {
	q.step = timestep.TimeStep{}
	q.nextStep = t
}

// Observe observes and records any timestep other than the first
// timestep
func (q *QPlanner) Observe(action int, nextStep timestep.TimeStep) {
	q.step = q.nextStep
	q.action = action
	q.nextStep = nextStep
}

// Step folds the last observed transition into the empirical model
func (q *QPlanner) Step() {
	q.model.Record(timestep.NewTransition(q.step, q.action, q.nextStep))
}

// EndEpisode performs cleanup at the end of an episode
func (q *QPlanner) EndEpisode() {}

// Iterate performs one Bellman backup sweep over every state-action
// pair, setting each observed pair's value to its full expectation
// under the empirical model:
//
//	Q(s,a) ← Σ_s' P(s'|s,a)·(reward(s,a,s') + γ·max_a' Q(s',a'))
//
// Pairs never observed keep their default value of 0.0. Sweeps update
// values in place (Gauss-Seidel). Iterate returns the largest absolute
// change any pair's value underwent during the sweep.
func (q *QPlanner) Iterate() float64 {
	bestNext := func(next int) float64 {
		return q.values.MaxValue(next, q.actions)
	}

	var delta float64
	for s := 0; s < q.states; s++ {
		for a := 0; a < q.actions; a++ {
			if !q.model.Seen(s, a) {
				continue
			}

			expected := q.model.ExpectedValue(s, a, q.discount, bestNext)
			delta = math.Max(delta, math.Abs(expected-q.values.Get(s, a)))
			q.values.Set(s, a, expected)
		}
	}
	return delta
}

// IterateN performs n Bellman backup sweeps, returning the largest
// absolute value change of the final sweep
func (q *QPlanner) IterateN(n int) float64 {
	var delta float64
	for i := 0; i < n; i++ {
		delta = q.Iterate()
	}
	return delta
}

// TargetPolicy returns the greedy policy over the agent's action-value
// table
func (q *QPlanner) TargetPolicy() agent.Policy {
	return q.target
}

// Values returns the agent's action-value table
func (q *QPlanner) Values() *table.ActionValues {
	return q.values
}

// Model returns the agent's empirical model
func (q *QPlanner) Model() *model.Model {
	return q.model
}

var _ agent.Agent = (*QPlanner)(nil)
