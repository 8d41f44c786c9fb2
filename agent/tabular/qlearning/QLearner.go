package qlearning

import (
	"fmt"
	"os"

	"github.com/samuelfneumann/gotabular/table"
	"github.com/samuelfneumann/gotabular/timestep"
)

// QLearner implements the update functionality for the Q-Learning
// algorithm.
//
// The QLearner updates its action-value table directly from each
// observed transition; it consults no model of the environment's
// dynamics. Updates blend the old estimate with the one-step Bellman
// target at a fixed learning rate:
//
//	Q(s,a) ← (1-α)·Q(s,a) + α·(r + γ·max_a' Q(s',a'))
type QLearner struct {
	values       *table.ActionValues
	actions      int
	step         timestep.TimeStep
	action       int
	nextStep     timestep.TimeStep
	learningRate float64
	discount     float64
}

// NewQLearner creates a new QLearner struct
//
// values is the action-value table of the policy to learn
func NewQLearner(values *table.ActionValues, actions int, learningRate,
	discount float64) *QLearner {
	return &QLearner{
		values:       values,
		actions:      actions,
		learningRate: learningRate,
		discount:     discount,
	}
}

// ObserveFirst observes and records the first episodic timestep
func (q *QLearner) ObserveFirst(t timestep.TimeStep) {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)", t.Number)
	}
	q.step = timestep.TimeStep{}
	q.nextStep = t
}

// Observe observes and records any timestep other than the first
// timestep
func (q *QLearner) Observe(action int, nextStep timestep.TimeStep) {
	q.step = q.nextStep
	q.action = action
	q.nextStep = nextStep
}

// Step updates the action-value table from the last observed
// transition
func (q *QLearner) Step() {
	bestNext := q.values.MaxValue(q.nextStep.State, q.actions)
	target := q.nextStep.Reward + q.discount*bestNext

	old := q.values.Get(q.step.State, q.action)
	blended := (1.0-q.learningRate)*old + q.learningRate*target
	q.values.Set(q.step.State, q.action, blended)
}

// EndEpisode performs cleanup at the end of an episode
func (q *QLearner) EndEpisode() {}

// TdError returns the TD error of the last observed transition
func (q *QLearner) TdError() float64 {
	bestNext := q.values.MaxValue(q.nextStep.State, q.actions)
	target := q.nextStep.Reward + q.discount*bestNext
	return target - q.values.Get(q.step.State, q.action)
}
