// Package routing_test provides runnable examples for the route-choice
// engine.
package routing_test

import (
	"fmt"

	"github.com/corridorlabs/freightsim/routing"
)

// ExampleEngine_FindPath crosses the corridor without a toll: the
// optimum stays on the expressway spine.
func ExampleEngine_FindPath() {
	// 1) Build the engine over the fixed corridor network.
	e, err := routing.New(routing.DefaultPenaltyWeight)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Search west entry → east entry with no toll.
	r, err := e.FindPath("start_west", "start_east", 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%v cost=%.0f residential=%v\n", r.Path, r.CostMinutes, r.UsesResidential)
	// Output: [start_west cbx_mid start_east] cost=15 residential=false
}

// ExampleEngine_BatchAnalyze sweeps the default toll levels and reports
// the first level that pushes freight into the neighborhood.
func ExampleEngine_BatchAnalyze() {
	e, err := routing.New(routing.DefaultPenaltyWeight)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := e.BatchAnalyze(nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("diversion threshold: $%.0f (found=%v)\n", res.Threshold, res.ThresholdFound)
	// Output: diversion threshold: $50 (found=true)
}
