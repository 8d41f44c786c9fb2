// Package chain implements a deterministic chain MDP
//
// A chain environment is a line of states (0, 1, ..., N-1). State N-1
// is the goal state and ends the episode. Two actions are available in
// every state: Forward advances one state toward the goal, and Stay
// leaves the state unchanged. The reward scheme is determined by the
// environment's Task.
package chain

import (
	"fmt"

	env "github.com/samuelfneumann/gotabular/environment"
	ts "github.com/samuelfneumann/gotabular/timestep"
)

// Actions available in every state of a Chain
const (
	Forward int = iota
	Stay
)

// numActions is the cardinality of the Chain action set
const numActions int = 2

// Chain implements the chain MDP
type Chain struct {
	env.Task
	starter     env.Starter
	states      int
	position    int
	ender       env.StepLimit
	currentStep ts.TimeStep
}

// New creates a new Chain of states states with task t, starting
// states drawn from s, and episodes cut off after cutoff steps. The
// returned Chain is ready to use; the returned TimeStep is the first
// timestep of the first episode.
func New(states int, t env.Task, s env.Starter,
	cutoff int) (*Chain, ts.TimeStep, error) {
	if states < 2 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: chain needs at least "+
			"2 states, got %d", states)
	}

	chain := &Chain{
		Task:    t,
		starter: s,
		states:  states,
		ender:   env.NewStepLimit(cutoff),
	}

	step, err := chain.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, err
	}
	return chain, step, nil
}

// Reset begins a new episode, returning the first timestep
func (c *Chain) Reset() (ts.TimeStep, error) {
	start := c.starter.Start()
	if start < 0 || start >= c.states {
		return ts.TimeStep{}, fmt.Errorf("reset: start state %d out of "+
			"range [0, %d)", start, c.states)
	}

	c.position = start
	c.currentStep = ts.New(ts.First, 0, start, 0)
	return c.currentStep, nil
}

// Step advances one timestep, returning the next timestep and whether
// the episode has ended. Once the episode has ended, Reset must be
// called before the next Step.
func (c *Chain) Step(action int) (ts.TimeStep, bool, error) {
	if c.currentStep.Last() {
		return ts.TimeStep{}, true, fmt.Errorf("step: episode has ended, " +
			"call Reset")
	}
	if action < 0 || action >= numActions {
		return ts.TimeStep{}, false, fmt.Errorf("step: no such action %d",
			action)
	}

	next := c.position
	if action == Forward && c.position < c.states-1 {
		next = c.position + 1
	}

	reward := c.Reward(c.position, action, next)
	number := c.currentStep.Number + 1

	stepType := ts.Mid
	if c.AtGoal(next) {
		stepType = ts.Last
	}

	step := ts.New(stepType, reward, next, number)
	last := c.ender.End(&step) || stepType == ts.Last

	c.position = next
	c.currentStep = step
	return step, last, nil
}

// ActionCount returns the cardinality of the action set
func (c *Chain) ActionCount() int {
	return numActions
}

// StateCount returns the cardinality of the state set
func (c *Chain) StateCount() int {
	return c.states
}

// CurrentTimeStep returns the last TimeStep of the environment
func (c *Chain) CurrentTimeStep() ts.TimeStep {
	return c.currentStep
}

var _ env.Environment = (*Chain)(nil)
