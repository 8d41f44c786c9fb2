package valueiteration

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/environment"
)

// DefaultDiscount is the default discount factor of the
// ValueIteration agent
const DefaultDiscount float64 = 0.9

// Config represents a configuration for the ValueIteration agent
type Config struct {
	Discount float64
}

// NewConfig returns a Config with the default hyperparameters
func NewConfig() Config {
	return Config{Discount: DefaultDiscount}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
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
