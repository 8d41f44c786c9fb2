// Package tracker implements Trackers, which track and save data
// generated in an experiment
package tracker

import (
	"encoding/gob"
	"log"
	"os"

	ts "github.com/samuelfneumann/gotabular/timestep"
)

// Interface Tracker keeps track of experiment data and saves the data
// after the experiment has finished.
//
// Trackers are a pure observability side channel: experiments call
// Track for every TimeStep and never read anything back, so a Tracker
// that does nothing at all (NoOp) is always substitutable without
// changing the behaviour of an experiment.
type Tracker interface {
	Track(t ts.TimeStep)
	Save()
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) []float64 {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	// Create the decoder and the variable to store the data in
	dec := gob.NewDecoder(file)
	var data []float64

	// Decode the data
	err = dec.Decode(&data)
	if err != nil {
		log.Fatalf("could not decode data: %v", err)
	}

	return data
}

// NoOp is a Tracker that tracks and saves nothing
type NoOp struct{}

// NewNoOp returns a Tracker that discards everything sent to it
func NewNoOp() Tracker {
	return NoOp{}
}

// Track discards the timestep
func (NoOp) Track(ts.TimeStep) {}

// Save does nothing
func (NoOp) Save() {}
