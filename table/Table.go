// Package table implements tabular value estimates over finite,
// discrete state and action sets
//
// Both table shapes share the same missing-key contract: looking up a
// state or state-action pair that was never set returns 0.0. This
// zero-default is a core semantic of tabular value learning, not a
// failure mode, so the accessors never report missing keys as errors.
package table

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gotabular/utils/floatutils"
)

// StateAction is the composite key of an action value: taking Action
// in State
type StateAction struct {
	State  int
	Action int
}

// StateValues maps states to scalar state-value estimates V(s)
type StateValues struct {
	values map[int]float64
}

// NewStateValues returns a new, empty StateValues table
func NewStateValues() *StateValues {
	return &StateValues{values: make(map[int]float64)}
}

// Get returns the value estimate of state, or 0.0 if state has never
// been set
func (v *StateValues) Get(state int) float64 {
	return v.values[state]
}

// Set sets the value estimate of state
func (v *StateValues) Set(state int, value float64) {
	v.values[state] = value
}

// Len returns the number of states with explicitly set values
func (v *StateValues) Len() int {
	return len(v.values)
}

// Vector exports the value estimates of states (0, 1, ..., states-1)
// as a dense vector. States never set appear as 0.0.
func (v *StateValues) Vector(states int) *mat.VecDense {
	data := make([]float64, states)
	for i := range data {
		data[i] = v.Get(i)
	}
	return mat.NewVecDense(states, data)
}

// ActionValues maps state-action pairs to scalar action-value
// estimates Q(s, a)
type ActionValues struct {
	values map[StateAction]float64
}

// NewActionValues returns a new, empty ActionValues table
func NewActionValues() *ActionValues {
	return &ActionValues{values: make(map[StateAction]float64)}
}

// Get returns the value estimate of taking action in state, or 0.0 if
// the pair has never been set
func (q *ActionValues) Get(state, action int) float64 {
	return q.values[StateAction{state, action}]
}

// Set sets the value estimate of taking action in state
func (q *ActionValues) Set(state, action int, value float64) {
	q.values[StateAction{state, action}] = value
}

// Len returns the number of state-action pairs with explicitly set
// values
func (q *ActionValues) Len() int {
	return len(q.values)
}

// MaxValue returns the maximal value estimate over the actions
// (0, 1, ..., actions-1) in state. Pairs never set contribute their
// default value of 0.0, so a state with no entries has a maximal value
// of 0.0.
func (q *ActionValues) MaxValue(state, actions int) float64 {
	max, _ := floatutils.MaxSlice(q.actionSlice(state, actions))
	return max
}

// BestAction returns the action in (0, 1, ..., actions-1) with the
// maximal value estimate in state. Ties are broken deterministically
// in favour of the lowest-indexed action.
func (q *ActionValues) BestAction(state, actions int) int {
	_, indices := floatutils.MaxSlice(q.actionSlice(state, actions))
	return indices[0]
}

// actionSlice collects the value estimates of every action in state
func (q *ActionValues) actionSlice(state, actions int) []float64 {
	values := make([]float64, actions)
	for a := range values {
		values[a] = q.Get(state, a)
	}
	return values
}

// Dense exports the value estimates of every state-action pair over
// states (0, 1, ..., states-1) and actions (0, 1, ..., actions-1) as a
// dense matrix with one row per state and one column per action. Pairs
// never set appear as 0.0.
func (q *ActionValues) Dense(states, actions int) *mat.Dense {
	data := make([]float64, states*actions)
	for s := 0; s < states; s++ {
		for a := 0; a < actions; a++ {
			data[s*actions+a] = q.Get(s, a)
		}
	}
	return mat.NewDense(states, actions, data)
}
