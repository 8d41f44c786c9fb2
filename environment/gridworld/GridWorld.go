// Package gridworld implements 2D gridworld environments
//
// A gridworld is a rows x cols grid of cells. The agent occupies one
// cell at a time and moves between adjacent cells with the four
// movement actions. Moves off the edge of the grid leave the position
// unchanged. Cells are exposed as flattened state identifiers
// (y*cols + x), so a gridworld is a finite discrete MDP usable with
// tabular agents.
package gridworld

import (
	"fmt"

	env "github.com/samuelfneumann/gotabular/environment"
	ts "github.com/samuelfneumann/gotabular/timestep"
)

// Movement actions available in every cell
const (
	Left int = iota
	Right
	Up
	Down
)

// numActions is the cardinality of the GridWorld action set
const numActions int = 4

// GridWorld represents a gridworld environment
type GridWorld struct {
	env.Task
	starter     env.Starter
	r, c        int
	position    int
	ender       env.StepLimit
	currentStep ts.TimeStep
}

// New creates a new gridworld with r rows and c columns, task t,
// starting states drawn from s, and episodes cut off after cutoff
// steps
func New(r, c int, t env.Task, s env.Starter,
	cutoff int) (*GridWorld, ts.TimeStep, error) {
	if r < 1 || c < 1 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: illegal grid "+
			"dimensions (%d x %d)", r, c)
	}

	g := &GridWorld{
		Task:    t,
		starter: s,
		r:       r,
		c:       c,
		ender:   env.NewStepLimit(cutoff),
	}

	step, err := g.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, err
	}
	return g, step, nil
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.r, g.c
}

// Reset begins a new episode, returning the first timestep
func (g *GridWorld) Reset() (ts.TimeStep, error) {
	start := g.starter.Start()
	if start < 0 || start >= g.StateCount() {
		return ts.TimeStep{}, fmt.Errorf("reset: start state %d out of "+
			"range [0, %d)", start, g.StateCount())
	}

	g.position = start
	g.currentStep = ts.New(ts.First, 0, start, 0)
	return g.currentStep, nil
}

// Step advances one timestep, returning the next timestep and whether
// the episode has ended. Once the episode has ended, Reset must be
// called before the next Step.
func (g *GridWorld) Step(action int) (ts.TimeStep, bool, error) {
	if g.currentStep.Last() {
		return ts.TimeStep{}, true, fmt.Errorf("step: episode has ended, " +
			"call Reset")
	}

	x, y := g.coordinates(g.position)

	// Move the current position, staying within the grid
	switch action {
	case Left:
		if x > 0 {
			x--
		}

	case Right:
		if x < g.c-1 {
			x++
		}

	case Up:
		if y > 0 {
			y--
		}

	case Down:
		if y < g.r-1 {
			y++
		}

	default:
		return ts.TimeStep{}, false, fmt.Errorf("step: no such action %d",
			action)
	}
	next := g.index(x, y)

	reward := g.Reward(g.position, action, next)
	number := g.currentStep.Number + 1

	stepType := ts.Mid
	if g.AtGoal(next) {
		stepType = ts.Last
	}

	step := ts.New(stepType, reward, next, number)
	last := g.ender.End(&step) || stepType == ts.Last

	g.position = next
	g.currentStep = step
	return step, last, nil
}

// ActionCount returns the cardinality of the action set
func (g *GridWorld) ActionCount() int {
	return numActions
}

// StateCount returns the cardinality of the state set
func (g *GridWorld) StateCount() int {
	return g.r * g.c
}

// CurrentTimeStep returns the last TimeStep of the environment
func (g *GridWorld) CurrentTimeStep() ts.TimeStep {
	return g.currentStep
}

// index converts coordinates (x, y) to a flattened state identifier
func (g *GridWorld) index(x, y int) int {
	return y*g.c + x
}

// coordinates converts a flattened state identifier to (x, y)
// coordinates
func (g *GridWorld) coordinates(state int) (int, int) {
	y := state / g.c
	x := state - y*g.c
	return x, y
}

var _ env.Environment = (*GridWorld)(nil)
