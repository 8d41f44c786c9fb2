package chain

// Goal implements the task of reaching a single absorbing goal state.
// Arriving at the goal state yields goalReward; every other transition
// yields stepReward.
type Goal struct {
	goal       int
	goalReward float64
	stepReward float64
}

// NewGoal returns the task of reaching state goal. Transitions into
// the goal state are rewarded with goalReward, all others with
// stepReward.
func NewGoal(goal int, goalReward, stepReward float64) Goal {
	return Goal{goal, goalReward, stepReward}
}

// Reward returns the reward for arriving in nextState after taking
// action in state
func (g Goal) Reward(state, action, nextState int) float64 {
	if g.AtGoal(nextState) && !g.AtGoal(state) {
		return g.goalReward
	}
	return g.stepReward
}

// AtGoal returns whether state is the goal state
func (g Goal) AtGoal(state int) bool {
	return state == g.goal
}
