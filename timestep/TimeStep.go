// Package timestep implements timesteps of the agent-environment interaction
package timestep

import "fmt"

// StepType denotes the type of step that a TimeStep can be, either a first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// TimeStep packages together a single timestep in an environment. States
// are opaque identifiers in (0, 1, ..., StateCount()-1); the environment
// decides what a state identifier means.
type TimeStep struct {
	StepType StepType
	Reward   float64
	State    int
	Number   int
}

// New returns a new TimeStep of type t with reward r, in state s, at
// episodic step number n
func New(t StepType, r float64, s, n int) TimeStep {
	return TimeStep{t, r, s, n}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  State: %v  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.State, t.Number)
}

// Transition packages together a single observed environmental
// transition (state, action, reward, next state). A Transition is an
// immutable fact: consumers fold it into aggregate statistics and then
// discard it.
type Transition struct {
	State     int
	Action    int
	Reward    float64
	NextState int
	Done      bool
}

// NewTransition constructs the Transition taking action in the state
// of step and arriving at the state of next
func NewTransition(step TimeStep, action int, next TimeStep) Transition {
	return Transition{
		State:     step.State,
		Action:    action,
		Reward:    next.Reward,
		NextState: next.State,
		Done:      next.Last(),
	}
}
