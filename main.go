package main

import (
	"fmt"
	"log"

	"github.com/samuelfneumann/gotabular/agent/tabular/qlearning"
	"github.com/samuelfneumann/gotabular/agent/tabular/valueiteration"
	"github.com/samuelfneumann/gotabular/environment"
	"github.com/samuelfneumann/gotabular/environment/gridworld"
	"github.com/samuelfneumann/gotabular/experiment"
	"github.com/samuelfneumann/gotabular/experiment/tracker"
)

func main() {
	var seed uint64 = 192382
	r, c := 5, 5
	cutoff := 100

	// Create the gridworld task of reaching the bottom-right corner
	task, err := gridworld.NewGoal(c-1, r-1, r, c, 1.0, 0.0)
	if err != nil {
		log.Fatalf("could not create task: %v", err)
	}
	starter := environment.NewSingleStart(0)

	env, _, err := gridworld.New(r, c, task, starter, cutoff)
	if err != nil {
		log.Fatalf("could not create gridworld: %v", err)
	}

	// A separate instance of the same gridworld for evaluation, so
	// that evaluation episodes never perturb the training trajectory
	evalEnv, _, err := gridworld.New(r, c, task, starter, cutoff)
	if err != nil {
		log.Fatalf("could not create evaluation gridworld: %v", err)
	}

	// Model-based value iteration: explore at random, build the
	// empirical model, then sweep
	vi, err := valueiteration.New(env, valueiteration.NewConfig(), seed)
	if err != nil {
		log.Fatalf("could not create value iteration agent: %v", err)
	}

	e := experiment.NewOnline(env, vi, 20_000, tracker.NewNoOp())
	e.ShowProgress()
	if err := e.Run(); err != nil {
		log.Fatalf("experiment failed: %v", err)
	}

	vi.IterateN(100)
	greedy, err := vi.GreedyPolicy()
	if err != nil {
		log.Fatalf("could not derive greedy policy: %v", err)
	}

	viReturn, err := experiment.Evaluate(evalEnv, greedy, 10, cutoff)
	if err != nil {
		log.Fatalf("evaluation failed: %v", err)
	}
	fmt.Printf("value iteration: mean greedy return %.2f\n", viReturn)
	fmt.Println(vi.Values().Vector(env.StateCount()))

	// Model-free Q-learning on the same task
	q, err := qlearning.New(env, qlearning.NewConfig(), seed)
	if err != nil {
		log.Fatalf("could not create Q-learning agent: %v", err)
	}

	returns := tracker.NewReturn("./data.bin")
	e = experiment.NewOnline(env, q, 50_000, returns)
	e.ShowProgress()
	if err := e.Run(); err != nil {
		log.Fatalf("experiment failed: %v", err)
	}
	e.Save()

	qReturn, err := experiment.Evaluate(evalEnv, q.TargetPolicy(), 10,
		cutoff)
	if err != nil {
		log.Fatalf("evaluation failed: %v", err)
	}
	fmt.Printf("q-learning: mean greedy return %.2f\n", qReturn)

	data := tracker.LoadData("./data.bin")
	if len(data) > 10 {
		data = data[len(data)-10:]
	}
	fmt.Println(data)
}
