// Package montecarlo_test provides runnable examples for the simulator.
package montecarlo_test

import (
	"fmt"

	"github.com/corridorlabs/freightsim/montecarlo"
)

// ExampleSimulator_Run shows the zero-toll degenerate case: without a
// price increase no vehicle diverts, in every single iteration.
func ExampleSimulator_Run() {
	// 1) A seeded simulator reproduces its draws bit-for-bit.
	s := montecarlo.New(montecarlo.WithSeed(42))

	// 2) Simulate 1,000 iterations of a zero toll.
	res, err := s.Run(0, 1000)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) All outcome mass sits at zero.
	st := res.Stats[montecarlo.MetricDivertedVolume]
	fmt.Printf("diverted mean=%.0f max=%.0f\n", st.Mean, st.Max)
	// Output: diverted mean=0 max=0
}

// ExampleSimulator_Run_badInput demonstrates the only rejected input.
func ExampleSimulator_Run_badInput() {
	s := montecarlo.New()

	_, err := s.Run(50, 0)
	fmt.Println(err)
	// Output: montecarlo: iteration count must be at least 1
}
