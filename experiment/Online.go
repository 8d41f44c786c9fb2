package experiment

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/agent"
	env "github.com/samuelfneumann/gotabular/environment"
	"github.com/samuelfneumann/gotabular/experiment/tracker"
	"github.com/samuelfneumann/gotabular/utils/progressbar"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed; to evaluate a learned policy, roll episodes
// with RunEpisode on a separate environment instance.
type Online struct {
	environment  env.Environment
	agent        agent.Agent
	maxSteps     uint
	currentSteps uint
	trackers     []tracker.Tracker
	progress     bool
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The steps parameter determines how
// many timesteps the experiment is run for, and the t parameter is a
// slice of tracker.Tracker which determine what data is saved.
func NewOnline(e env.Environment, a agent.Agent, steps uint,
	t ...tracker.Tracker) *Online {
	return &Online{
		environment: e,
		agent:       a,
		maxSteps:    steps,
		trackers:    t,
	}
}

// Register registers a tracker.Tracker with the experiment so that
// data generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// ShowProgress makes Run display a progress bar over the experiment's
// timestep limit
func (o *Online) ShowProgress() {
	o.progress = true
}

// RunEpisode runs a single episode of the experiment. Environment
// faults end the episode immediately and are returned unchanged.
func (o *Online) RunEpisode() (bool, error) {
	step, err := o.environment.Reset()
	if err != nil {
		return false, err
	}
	o.agent.ObserveFirst(step)
	track(o.trackers, step)

	// Run the next timestep
	last := false
	for !last && o.currentSteps < o.maxSteps {
		o.currentSteps++

		// Select action, step in environment
		action := o.agent.SelectAction(step)
		step, last, err = o.environment.Step(action)
		if err != nil {
			return false, err
		}

		// Cache the environment step in each tracker
		track(o.trackers, step)

		// Observe the timestep and step the agent
		o.agent.Observe(action, step)
		o.agent.Step()
	}
	o.agent.EndEpisode()

	// Return whether or not the max timestep limit has been reached
	return o.currentSteps >= o.maxSteps, nil
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run() error {
	var pbar *progressbar.ManualProgressBar
	if o.progress {
		pbar = progressbar.NewManualProgressBar(50, int(o.maxSteps))
		pbar.Display()
	}

	ended := false
	for !ended {
		before := o.currentSteps

		var err error
		ended, err = o.RunEpisode()
		if err != nil {
			return err
		}

		if pbar != nil {
			for i := before; i < o.currentSteps; i++ {
				pbar.Increment()
			}
			pbar.Display()
		}
	}

	if pbar != nil {
		fmt.Println() // Jump to the next line after the printed bar
	}
	return nil
}

// Save saves all the data cached by the trackers to disk
func (o *Online) Save() {
	for _, t := range o.trackers {
		t.Save()
	}
}

var _ Experiment = (*Online)(nil)
