package qplanner

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/environment"
)

// Default hyperparameters of the QPlanner agent
const (
	DefaultEpsilon  float64 = 1.0 // uniform-random exploration
	DefaultDiscount float64 = 0.9
)

// Config represents a configuration for the QPlanner agent
type Config struct {
	Epsilon  float64 // epsilon for the behaviour policy
	Discount float64
}

// NewConfig returns a Config with the default hyperparameters
func NewConfig() Config {
	return Config{Epsilon: DefaultEpsilon, Discount: DefaultDiscount}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Epsilon < 0.0 || c.Epsilon > 1.0 {
		return fmt.Errorf("epsilon = %v not in [0, 1]", c.Epsilon)
	}
	if c.Discount <= 0.0 || c.Discount > 1.0 {
		return fmt.Errorf("discount = %v not in (0, 1]", c.Discount)
	}
	return nil
}

// CreateAgent creates the agent from the Config
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	if env.ActionCount() <= 0 {
		return nil, fmt.Errorf("createAgent: empty action set (actions "+
			"= %d)", env.ActionCount())
	}
	return New(env, c, seed)
}

var _ agent.Config = Config{}
