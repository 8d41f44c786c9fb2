// Package model implements an empirical model of an environment's
// dynamics and rewards, estimated from a stream of observed
// transitions
package model

import (
	"sort"

	"github.com/samuelfneumann/gotabular/table"
	"github.com/samuelfneumann/gotabular/timestep"
)

// outcome is the composite key of a full transition: taking Action in
// State and arriving in NextState
type outcome struct {
	State     int
	Action    int
	NextState int
}

// Model holds empirical estimates of an environment's transition
// dynamics and reward function. Transition frequencies accumulate
// monotonically; rewards record the most recently observed value for
// each exact (state, action, next state) triple, since rewards in the
// target environments are deterministic given the full transition.
//
// Lookups for transitions that were never observed return the
// documented defaults: a reward of 0.0 and an empty next-state
// distribution. A Model is mutated by exactly one writer at a time; it
// performs no locking of its own.
type Model struct {
	rewards map[outcome]float64
	counts  map[table.StateAction]map[int]float64
}

// New returns a new, empty Model
func New() *Model {
	return &Model{
		rewards: make(map[outcome]float64),
		counts:  make(map[table.StateAction]map[int]float64),
	}
}

// Record folds a single observed transition into the model. The reward
// for the exact (state, action, next state) triple is overwritten;
// the frequency of the triple is incremented.
func (m *Model) Record(t timestep.Transition) {
	m.rewards[outcome{t.State, t.Action, t.NextState}] = t.Reward

	key := table.StateAction{State: t.State, Action: t.Action}
	if m.counts[key] == nil {
		m.counts[key] = make(map[int]float64)
	}
	m.counts[key][t.NextState]++
}

// Reward returns the most recently observed reward for taking action
// in state and arriving in nextState, or 0.0 if the triple has never
// been observed
func (m *Model) Reward(state, action, nextState int) float64 {
	return m.rewards[outcome{state, action, nextState}]
}

// Count returns the number of times taking action in state was
// observed to lead to nextState
func (m *Model) Count(state, action, nextState int) int {
	return int(m.counts[table.StateAction{State: state, Action: action}][nextState])
}

// Seen returns whether taking action in state has been observed at
// least once
func (m *Model) Seen(state, action int) bool {
	return len(m.counts[table.StateAction{State: state, Action: action}]) > 0
}

// NextStates returns the states observed to follow taking action in
// state, in increasing state order
func (m *Model) NextStates(state, action int) []int {
	counts := m.counts[table.StateAction{State: state, Action: action}]

	states := make([]int, 0, len(counts))
	for next := range counts {
		states = append(states, next)
	}
	sort.Ints(states)
	return states
}

// Probabilities returns the empirical next-state distribution
// P(s'|s,a) of taking action in state. The returned map is empty if
// the pair has never been observed; otherwise its values sum to 1.
func (m *Model) Probabilities(state, action int) map[int]float64 {
	counts := m.counts[table.StateAction{State: state, Action: action}]

	var total float64
	for _, n := range counts {
		total += n
	}

	probs := make(map[int]float64, len(counts))
	for next, n := range counts {
		probs[next] = n / total
	}
	return probs
}

// ExpectedValue returns the one-step Bellman expectation of taking
// action in state under the empirical model:
//
//	Σ_s' P(s'|s,a) · (reward(s,a,s') + gamma·value(s'))
//
// where value supplies the current estimate of each successor state.
// If the pair has never been observed the sum is empty and
// ExpectedValue returns 0.0.
func (m *Model) ExpectedValue(state, action int, gamma float64,
	value func(state int) float64) float64 {
	counts := m.counts[table.StateAction{State: state, Action: action}]
	if len(counts) == 0 {
		return 0.0
	}

	var total float64
	for _, n := range counts {
		total += n
	}

	var expected float64
	for next, n := range counts {
		target := m.Reward(state, action, next) + gamma*value(next)
		expected += n / total * target
	}
	return expected
}
