// Package experiment implements functionality for running an
// experiment
package experiment

import (
	"github.com/samuelfneumann/gotabular/experiment/tracker"
	ts "github.com/samuelfneumann/gotabular/timestep"
)

// Interface Experiment outlines structs that can run experiments.
// An Experiment drives an environment with an agent's behaviour
// policy, feeding every resulting TimeStep both to the agent (to
// learn from) and to any registered tracker.Trackers (for
// observability). Trackers are a fire-and-forget side channel: the
// experiment never reads from them, and running with no trackers at
// all changes nothing about the agent-environment interaction.
//
// The Run() method runs episodes until the maximum timestep limit is
// reached, resetting the environment between episodes transparently.
// The RunEpisode() method runs a single episode. The Save() function
// takes all data cached by the trackers and saves it to disk; it is
// usually called after an experiment has been run.
type Experiment interface {
	Run() error

	// RunEpisode runs a single episode, returning whether the
	// experiment's timestep limit has been reached
	RunEpisode() (bool, error)

	// Save all tracked data to disk
	Save()

	// Register adds a new tracker.Tracker to the (possibly already
	// running) experiment. Useful if you want to track data only
	// after a specified event.
	Register(t tracker.Tracker)
}

// track sends a timestep to every tracker in trackers
func track(trackers []tracker.Tracker, step ts.TimeStep) {
	for _, t := range trackers {
		t.Track(step)
	}
}
