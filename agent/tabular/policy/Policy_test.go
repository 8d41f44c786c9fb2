package policy

import (
	"testing"

	"github.com/samuelfneumann/gotabular/model"
	"github.com/samuelfneumann/gotabular/table"
	ts "github.com/samuelfneumann/gotabular/timestep"
)

func TestGreedyBreaksTiesLow(t *testing.T) {
	values := table.NewActionValues()
	values.Set(0, 1, 2.0)
	values.Set(0, 3, 2.0)

	greedy, err := NewGreedy(values, 4, 11)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	// Repeated selection must be deterministic for a greedy policy
	for i := 0; i < 20; i++ {
		if action := greedy.SelectAction(ts.New(ts.Mid, 0, 0, 0)); action != 1 {
			t.Fatalf("got action %d, want 1", action)
		}
	}
}

func TestUniformCoversAllActions(t *testing.T) {
	uniform, err := NewUniform(3, 11)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	seen := make(map[int]bool)
	for i := 0; i < 300; i++ {
		action := uniform.SelectAction(ts.New(ts.Mid, 0, 0, 0))
		if action < 0 || action >= 3 {
			t.Fatalf("action %d outside action set", action)
		}
		seen[action] = true
	}
	if len(seen) != 3 {
		t.Errorf("only saw actions %v over 300 samples", seen)
	}
}

func TestEGreedyRejectsBadConfiguration(t *testing.T) {
	values := table.NewActionValues()

	if _, err := NewEGreedy(values, 0, 0.1, 11); err == nil {
		t.Error("empty action set should have been rejected")
	}
	if _, err := NewEGreedy(values, 3, -0.1, 11); err == nil {
		t.Error("negative epsilon should have been rejected")
	}
	if _, err := NewEGreedy(values, 3, 1.1, 11); err == nil {
		t.Error("epsilon above 1 should have been rejected")
	}
}

func TestModelGreedyLookahead(t *testing.T) {
	m := model.New()
	values := table.NewStateValues()

	// Action 1 leads to the more valuable successor
	m.Record(ts.Transition{State: 0, Action: 0, Reward: 0.0, NextState: 1})
	m.Record(ts.Transition{State: 0, Action: 1, Reward: 0.0, NextState: 2})
	values.Set(1, 1.0)
	values.Set(2, 5.0)

	greedy, err := NewModelGreedy(m, values, 2, 0.9)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	if action := greedy.SelectAction(ts.New(ts.Mid, 0, 0, 0)); action != 1 {
		t.Errorf("got action %d, want 1", action)
	}
}

func TestModelGreedyBreaksTiesLow(t *testing.T) {
	// No transitions recorded: every action's expectation is the
	// empty-sum default of 0.0
	greedy, err := NewModelGreedy(model.New(), table.NewStateValues(), 3,
		0.9)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	if action := greedy.SelectAction(ts.New(ts.Mid, 0, 7, 0)); action != 0 {
		t.Errorf("got action %d, want 0", action)
	}
}

func TestModelGreedyRejectsBadConfiguration(t *testing.T) {
	m := model.New()
	values := table.NewStateValues()

	if _, err := NewModelGreedy(m, values, 0, 0.9); err == nil {
		t.Error("empty action set should have been rejected")
	}
	if _, err := NewModelGreedy(m, values, 2, 0.0); err == nil {
		t.Error("zero discount should have been rejected")
	}
	if _, err := NewModelGreedy(m, values, 2, 1.5); err == nil {
		t.Error("discount above 1 should have been rejected")
	}
}
