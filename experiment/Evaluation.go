package experiment

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/agent"
	env "github.com/samuelfneumann/gotabular/environment"
)

// EvaluateEpisode rolls a single episode of e under the fixed policy
// p, returning the total undiscounted reward accumulated over the
// episode. The environment should be a separate instance from any
// training environment so that evaluation never perturbs a training
// trajectory. The policy is only read, never updated.
//
// maxSteps bounds the episode length so that a policy that never
// reaches a terminal state still returns; a maxSteps of 0 or lower
// means no bound.
func EvaluateEpisode(e env.Environment, p agent.Policy,
	maxSteps int) (float64, error) {
	step, err := e.Reset()
	if err != nil {
		return 0, fmt.Errorf("evaluateEpisode: %v", err)
	}

	var total float64
	last := false
	for !last {
		if maxSteps > 0 && step.Number >= maxSteps {
			break
		}

		action := p.SelectAction(step)
		step, last, err = e.Step(action)
		if err != nil {
			return total, fmt.Errorf("evaluateEpisode: %v", err)
		}
		total += step.Reward
	}
	return total, nil
}

// Evaluate rolls episodes under the fixed policy p and returns the
// mean episodic return over all episodes
func Evaluate(e env.Environment, p agent.Policy, episodes,
	maxSteps int) (float64, error) {
	if episodes <= 0 {
		return 0, fmt.Errorf("evaluate: episodes = %d, need at least 1",
			episodes)
	}

	var total float64
	for i := 0; i < episodes; i++ {
		episodeReturn, err := EvaluateEpisode(e, p, maxSteps)
		if err != nil {
			return 0, err
		}
		total += episodeReturn
	}
	return total / float64(episodes), nil
}
