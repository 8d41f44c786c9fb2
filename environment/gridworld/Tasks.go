package gridworld

import "fmt"

// Goal implements the task of reaching a single absorbing goal cell.
// Arriving at the goal cell yields goalReward; every other transition
// yields stepReward.
type Goal struct {
	goal       int
	goalReward float64
	stepReward float64
}

// NewGoal returns the task of reaching the cell at coordinates (x, y)
// in a gridworld with r rows and c columns
func NewGoal(x, y, r, c int, goalReward, stepReward float64) (Goal, error) {
	if x < 0 || x >= c {
		return Goal{}, fmt.Errorf("newGoal: x = %d out of range [0, %d)",
			x, c)
	}
	if y < 0 || y >= r {
		return Goal{}, fmt.Errorf("newGoal: y = %d out of range [0, %d)",
			y, r)
	}

	return Goal{y*c + x, goalReward, stepReward}, nil
}

// Reward returns the reward for arriving in nextState after taking
// action in state
func (g Goal) Reward(state, action, nextState int) float64 {
	if g.AtGoal(nextState) && !g.AtGoal(state) {
		return g.goalReward
	}
	return g.stepReward
}

// AtGoal returns whether state is the goal cell
func (g Goal) AtGoal(state int) bool {
	return state == g.goal
}
