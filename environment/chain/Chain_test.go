package chain

import (
	"testing"

	"github.com/samuelfneumann/gotabular/environment"
)

func newTestChain(t *testing.T, states, cutoff int) *Chain {
	t.Helper()

	task := NewGoal(states-1, 1.0, 0.0)
	env, first, err := New(states, task, environment.NewSingleStart(0),
		cutoff)
	if err != nil {
		t.Fatalf("could not create chain: %v", err)
	}

	if !first.First() || first.State != 0 {
		t.Fatalf("unexpected first timestep: %v", first)
	}
	return env
}

func TestChainDynamics(t *testing.T) {
	env := newTestChain(t, 3, 0)

	step, last, err := env.Step(Stay)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if step.State != 0 || last {
		t.Errorf("stay moved the agent: %v", step)
	}
	if step.Reward != 0.0 {
		t.Errorf("got reward %v, want 0.0", step.Reward)
	}

	step, last, err = env.Step(Forward)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if step.State != 1 || last {
		t.Errorf("forward did not advance: %v", step)
	}

	step, last, err = env.Step(Forward)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if step.State != 2 || !last || !step.Last() {
		t.Errorf("expected terminal step at the goal: %v", step)
	}
	if step.Reward != 1.0 {
		t.Errorf("got goal reward %v, want 1.0", step.Reward)
	}
}

func TestChainStepAfterEndFails(t *testing.T) {
	env := newTestChain(t, 2, 0)

	if _, _, err := env.Step(Forward); err != nil {
		t.Fatalf("step failed: %v", err)
	}

	if _, _, err := env.Step(Forward); err == nil {
		t.Fatal("stepping a terminated episode should fail")
	}

	// Reset recovers the environment
	first, err := env.Reset()
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if !first.First() || first.Number != 0 {
		t.Errorf("unexpected timestep after reset: %v", first)
	}
}

func TestChainRejectsUnknownActions(t *testing.T) {
	env := newTestChain(t, 3, 0)

	if _, _, err := env.Step(2); err == nil {
		t.Error("unknown action should have been rejected")
	}
	if _, _, err := env.Step(-1); err == nil {
		t.Error("negative action should have been rejected")
	}
}

func TestChainStepLimit(t *testing.T) {
	env := newTestChain(t, 5, 3)

	var last bool
	var err error
	for i := 0; i < 3; i++ {
		_, last, err = env.Step(Stay)
		if err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}
	if !last {
		t.Error("episode should have been cut off at the step limit")
	}
}

func TestChainCardinalities(t *testing.T) {
	env := newTestChain(t, 7, 0)

	if env.StateCount() != 7 {
		t.Errorf("got StateCount = %d, want 7", env.StateCount())
	}
	if env.ActionCount() != 2 {
		t.Errorf("got ActionCount = %d, want 2", env.ActionCount())
	}
}

func TestChainRequiresTwoStates(t *testing.T) {
	task := NewGoal(0, 1.0, 0.0)
	if _, _, err := New(1, task, environment.NewSingleStart(0), 0); err == nil {
		t.Error("single-state chain should have been rejected")
	}
}
