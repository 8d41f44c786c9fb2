// Package agent defines an agent interface
package agent

import (
	"github.com/samuelfneumann/gotabular/environment"
	"github.com/samuelfneumann/gotabular/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which adjusts value estimates,
// and a Policy which chooses actions in each state. The Policy chooses
// which actions are taken, and the Learner uses the resulting
// transitions to update the value estimates the Policy reads.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how value
// estimates are updated.
//
// A Learner receives the stream of transitions an experiment produces
// through ObserveFirst and Observe, and applies one update per
// transition in Step. The Learner and Policy of an Agent should share
// the same value tables so that updates are reflected in the actions
// the Policy chooses.
type Learner interface {
	// Step performs a single update to the learner
	Step()

	// Observe records that an action lead to some timestep
	Observe(action int, next timestep.TimeStep)

	// ObserveFirst records the first timestep in an episode
	ObserveFirst(timestep.TimeStep)

	// EndEpisode performs cleanup at the end of an episode
	EndEpisode()
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. Agents usually have a
// behaviour policy, followed while learning, and a target policy,
// whose quality the agent is actually trying to improve.
type Policy interface {
	SelectAction(t timestep.TimeStep) int
}

// Config represents a configuration of an agent's hyperparameters from
// which the agent can be constructed.
//
// Illegal hyperparameters (a discount outside (0, 1], a learning rate
// outside [0, 1], an exploration rate outside [0, 1], an empty action
// set) are configuration errors: Validate and CreateAgent reject them
// at construction rather than producing silently wrong values.
type Config interface {
	// Validate ensures that the Config is valid
	Validate() error

	// CreateAgent creates the agent from the Config
	CreateAgent(env environment.Environment, seed uint64) (Agent, error)
}
