// Package hmm_test provides runnable examples for the corridor HMM.
package hmm_test

import (
	"fmt"

	"github.com/corridorlabs/freightsim/hmm"
)

// ExampleEngine_Decode decodes four clearly free-flow observations.
// Complexity: O(T·N²) with T=4 steps and N=3 states.
func ExampleEngine_Decode() {
	// 1) Build the engine from the production default model.
	e, err := hmm.New(hmm.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Decode a short trace: high speeds, low pollutant readings.
	path, _, _, err := e.Decode(
		[]float64{55, 55, 55, 55},
		[]float64{8, 8, 8, 8},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Every step lands in the FreeFlow state.
	fmt.Println(path)
	// Output: [FreeFlow FreeFlow FreeFlow FreeFlow]
}

// ExampleEnvironmentalState_Label shows the bilingual display labels
// attached to each state.
func ExampleEnvironmentalState_Label() {
	fmt.Println(hmm.Gridlock.Label("en"))
	fmt.Println(hmm.Gridlock.Label("es"))
	// Output:
	// Gridlock / Toxic
	// Atascado / Tóxico
}
