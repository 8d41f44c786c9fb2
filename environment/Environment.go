// Package environment outlines the interfaces and structs needed to
// implement concrete finite, discrete environments
package environment

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gotabular/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() int
}

// Task implements the reward scheme for taking actions in some
// environment
type Task interface {
	// Reward returns the reward for arriving in state nextState after
	// taking action in state
	Reward(state, action, nextState int) float64

	// AtGoal returns whether state is a goal state
	AtGoal(state int) bool
}

// Environment implements a simulated environment over a finite set of
// discrete states and a finite, state-independent set of discrete
// actions. States and actions are opaque identifiers in
// (0, 1, ..., StateCount()-1) and (0, 1, ..., ActionCount()-1)
// respectively.
//
// Environments start ready to use. Once Step returns true, the episode
// has ended and Reset must be called before the next Step. Environment
// faults are returned unchanged to the caller; they are not retried.
type Environment interface {
	Reset() (timestep.TimeStep, error)
	Step(action int) (timestep.TimeStep, bool, error)

	// ActionCount returns the cardinality of the action set
	ActionCount() int

	// StateCount returns the cardinality of the state set
	StateCount() int

	// CurrentTimeStep returns the last TimeStep of the environment
	CurrentTimeStep() timestep.TimeStep
}

// SingleStart implements a Starter that always starts episodes in the
// same state
type SingleStart struct {
	state int
}

// NewSingleStart returns a Starter that always returns state
func NewSingleStart(state int) SingleStart {
	return SingleStart{state}
}

// Start returns the starting state
func (s SingleStart) Start() int {
	return s.state
}

// CategoricalStarter returns starting states sampled from a uniform
// categorical distribution over (0, 1, ..., states-1)
type CategoricalStarter struct {
	seed uint64
	rand distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter sampling
// starting states from (0, 1, ..., states-1)
func NewCategoricalStarter(states int, seed uint64) CategoricalStarter {
	source := rand.NewSource(seed)

	// Create the weights for the uniform categorical distribution
	weights := make([]float64, states)
	for i := range weights {
		weights[i] = 1.0 / float64(len(weights))
	}

	return CategoricalStarter{seed, distuv.NewCategorical(weights, source)}
}

// Start returns a starting state
func (c CategoricalStarter) Start() int {
	return int(c.rand.Rand())
}

// StepLimit ends episodes at a specific timestep limit. A limit of 0
// or lower means episodes are never cut off.
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be ended, End will modify the timestep so that its StepType
// field is timestep.Last
func (s StepLimit) End(t *timestep.TimeStep) bool {
	if s.episodeSteps > 0 && t.Number >= s.episodeSteps {
		t.StepType = timestep.Last
		return true
	}
	return false
}
