// Package valueiteration implements model-based tabular value
// iteration.
//
// The agent learns in two phases. While acting, it explores with a
// uniform-random behaviour policy and folds every observed transition
// into an empirical model of the environment's dynamics and rewards.
// Between episodes of experience, Iterate performs Bellman backup
// sweeps over the full state space using the empirical model, and the
// greedy policy is derived from the resulting state values by a
// one-step model lookahead.
package valueiteration

import (
	"math"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/agent/tabular/policy"
	"github.com/samuelfneumann/gotabular/environment"
	"github.com/samuelfneumann/gotabular/model"
	"github.com/samuelfneumann/gotabular/table"
	"github.com/samuelfneumann/gotabular/timestep"
)

// ValueIteration implements the model-based batch value iteration
// algorithm
type ValueIteration struct {
	agent.Policy // uniform-random behaviour policy

	model    *model.Model
	values   *table.StateValues
	states   int
	actions  int
	discount float64

	step     timestep.TimeStep
	action   int
	nextStep timestep.TimeStep
}

// New creates a new ValueIteration agent acting in env with
// hyperparameters config
func New(env environment.Environment, config Config,
	seed uint64) (*ValueIteration, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	behaviour, err := policy.NewUniform(env.ActionCount(), seed)
	if err != nil {
		return nil, err
	}

	return &ValueIteration{
		Policy:   behaviour,
		model:    model.New(),
		values:   table.NewStateValues(),
		states:   env.StateCount(),
		actions:  env.ActionCount(),
		discount: config.Discount,
	}, nil
}

// ObserveFirst observes and records the first episodic timestep
func (v *ValueIteration) ObserveFirst(t timestep.TimeStep) {
	v.step = timestep.TimeStep{}
	v.nextStep = t
}

// Observe observes and records any timestep other than the first
// timestep
func (v *ValueIteration) Observe(action int, nextStep timestep.TimeStep) {
	v.step = v.nextStep
	v.action = action
	v.nextStep = nextStep
}

// Step folds the last observed transition into the empirical model
func (v *ValueIteration) Step() {
	v.model.Record(timestep.NewTransition(v.step, v.action, v.nextStep))
}

// EndEpisode performs cleanup at the end of an episode
func (v *ValueIteration) EndEpisode() {}

// Iterate performs one Bellman backup sweep over the full state space,
// setting every state's value to the maximal one-step expectation
// under the empirical model. Sweeps update values in place
// (Gauss-Seidel), so later states within a sweep see values already
// updated earlier in the same sweep.
//
// Iterate returns the largest absolute change any state's value
// underwent during the sweep. The engine has no convergence detector
// of its own; callers decide when to stop sweeping, typically by
// evaluating the greedy policy or by thresholding the returned delta.
func (v *ValueIteration) Iterate() float64 {
	var delta float64
	for s := 0; s < v.states; s++ {
		best := v.model.ExpectedValue(s, 0, v.discount, v.values.Get)
		for a := 1; a < v.actions; a++ {
			if value := v.model.ExpectedValue(s, a, v.discount,
				v.values.Get); value > best {
				best = value
			}
		}

		delta = math.Max(delta, math.Abs(best-v.values.Get(s)))
		v.values.Set(s, best)
	}
	return delta
}

// IterateN performs n Bellman backup sweeps, returning the largest
// absolute value change of the final sweep
func (v *ValueIteration) IterateN(n int) float64 {
	var delta float64
	for i := 0; i < n; i++ {
		delta = v.Iterate()
	}
	return delta
}

// GreedyPolicy returns the greedy policy with respect to the agent's
// current state values, derived by a one-step lookahead through the
// empirical model
func (v *ValueIteration) GreedyPolicy() (agent.Policy, error) {
	return policy.NewModelGreedy(v.model, v.values, v.actions, v.discount)
}

// Values returns the agent's state-value table
func (v *ValueIteration) Values() *table.StateValues {
	return v.values
}

// Model returns the agent's empirical model
func (v *ValueIteration) Model() *model.Model {
	return v.model
}

var _ agent.Agent = (*ValueIteration)(nil)
