package valueiteration

import (
	"math"
	"testing"

	"github.com/samuelfneumann/gotabular/environment"
	"github.com/samuelfneumann/gotabular/environment/chain"
	ts "github.com/samuelfneumann/gotabular/timestep"
)

const tolerance float64 = 1e-9

func newTestAgent(t *testing.T, states int) *ValueIteration {
	t.Helper()

	task := chain.NewGoal(states-1, 1.0, 0.0)
	env, _, err := chain.New(states, task, environment.NewSingleStart(0), 0)
	if err != nil {
		t.Fatalf("could not create chain: %v", err)
	}

	vi, err := New(env, Config{Discount: 0.9}, 42)
	if err != nil {
		t.Fatalf("could not create agent: %v", err)
	}
	return vi
}

// populateAbsorbing fills the agent's model with the dynamics of a
// deterministic MDP over the given number of states where action 0
// advances one state toward the absorbing final state, rewarding 1.0
// on arrival, and action 1 stays in place for no reward. No
// transitions leave the absorbing state.
func populateAbsorbing(vi *ValueIteration, states int) {
	goal := states - 1
	for s := 0; s < goal; s++ {
		reward := 0.0
		if s+1 == goal {
			reward = 1.0
		}
		vi.Model().Record(ts.Transition{State: s, Action: 0, Reward: reward,
			NextState: s + 1})
		vi.Model().Record(ts.Transition{State: s, Action: 1, Reward: 0.0,
			NextState: s})
	}
}

func TestIterateConvergesOnAbsorbingMDP(t *testing.T) {
	states := 3
	vi := newTestAgent(t, states)
	populateAbsorbing(vi, states)

	var delta float64
	for i := 0; i < 100; i++ {
		delta = vi.Iterate()
	}
	if delta > tolerance {
		t.Fatalf("no convergence after 100 sweeps, last delta = %v", delta)
	}

	// V(1) = 1 (one step to the absorbing reward), V(0) = γ·V(1),
	// V(2) has no outgoing transitions and keeps its default
	if got := vi.Values().Get(1); math.Abs(got-1.0) > tolerance {
		t.Errorf("got V(1) = %v, want 1.0", got)
	}
	if got := vi.Values().Get(0); math.Abs(got-0.9) > tolerance {
		t.Errorf("got V(0) = %v, want 0.9", got)
	}
	if got := vi.Values().Get(2); got != 0.0 {
		t.Errorf("got V(2) = %v, want 0.0", got)
	}

	// The greedy policy advances toward the absorbing state from
	// every non-terminal state
	greedy, err := vi.GreedyPolicy()
	if err != nil {
		t.Fatalf("could not derive greedy policy: %v", err)
	}
	for s := 0; s < states-1; s++ {
		if action := greedy.SelectAction(ts.New(ts.Mid, 0, s, 0)); action != 0 {
			t.Errorf("state %d: greedy action = %d, want 0", s, action)
		}
	}
}

func TestIterateTwoStateScenario(t *testing.T) {
	// Action 0 from state 0 always yields reward 1 and moves to state
	// 1, which is absorbing with no further reward; action 1 yields
	// nothing and stays. Every (s, a, s') combination is observed at
	// least once.
	vi := newTestAgent(t, 2)
	vi.Model().Record(ts.Transition{State: 0, Action: 0, Reward: 1.0,
		NextState: 1})
	vi.Model().Record(ts.Transition{State: 0, Action: 1, Reward: 0.0,
		NextState: 0})
	vi.Model().Record(ts.Transition{State: 1, Action: 0, Reward: 0.0,
		NextState: 1})
	vi.Model().Record(ts.Transition{State: 1, Action: 1, Reward: 0.0,
		NextState: 1})

	vi.Iterate()

	if got := vi.Values().Get(0); got <= 0.0 {
		t.Errorf("got V(0) = %v, want > 0", got)
	}

	greedy, err := vi.GreedyPolicy()
	if err != nil {
		t.Fatalf("could not derive greedy policy: %v", err)
	}
	if action := greedy.SelectAction(ts.New(ts.Mid, 0, 0, 0)); action != 0 {
		t.Errorf("greedy action in state 0 = %d, want 0", action)
	}
}

func TestStepRecordsTransitionsIntoModel(t *testing.T) {
	vi := newTestAgent(t, 3)

	vi.ObserveFirst(ts.New(ts.First, 0, 0, 0))
	vi.Observe(0, ts.New(ts.Mid, 0.0, 1, 1))
	vi.Step()
	vi.Observe(0, ts.New(ts.Last, 1.0, 2, 2))
	vi.Step()

	if !vi.Model().Seen(0, 0) || !vi.Model().Seen(1, 0) {
		t.Fatal("transitions were not recorded into the model")
	}
	if got := vi.Model().Reward(1, 0, 2); got != 1.0 {
		t.Errorf("got recorded reward %v, want 1.0", got)
	}
}

func TestEndToEndOnChain(t *testing.T) {
	states := 4
	task := chain.NewGoal(states-1, 1.0, 0.0)
	env, _, err := chain.New(states, task, environment.NewSingleStart(0), 0)
	if err != nil {
		t.Fatalf("could not create chain: %v", err)
	}

	vi, err := New(env, NewConfig(), 42)
	if err != nil {
		t.Fatalf("could not create agent: %v", err)
	}

	// Collect experience under the uniform-random behaviour policy
	for episode := 0; episode < 100; episode++ {
		step, err := env.Reset()
		if err != nil {
			t.Fatalf("reset failed: %v", err)
		}
		vi.ObserveFirst(step)

		last := false
		for !last {
			action := vi.SelectAction(step)
			step, last, err = env.Step(action)
			if err != nil {
				t.Fatalf("step failed: %v", err)
			}
			vi.Observe(action, step)
			vi.Step()
		}
		vi.EndEpisode()
	}

	if delta := vi.IterateN(200); delta > tolerance {
		t.Fatalf("no convergence after 200 sweeps, last delta = %v", delta)
	}

	greedy, err := vi.GreedyPolicy()
	if err != nil {
		t.Fatalf("could not derive greedy policy: %v", err)
	}
	for s := 0; s < states-1; s++ {
		action := greedy.SelectAction(ts.New(ts.Mid, 0, s, 0))
		if action != chain.Forward {
			t.Errorf("state %d: greedy action = %d, want %d", s, action,
				chain.Forward)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{Discount: 0.9}).Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	for _, discount := range []float64{0.0, -0.5, 1.5} {
		if err := (Config{Discount: discount}).Validate(); err == nil {
			t.Errorf("discount %v should have been rejected", discount)
		}
	}
}
