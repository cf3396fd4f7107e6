package hmm

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// jitterStd is the scale of the Gaussian noise added to every synthetic
// pollutant estimate derived from a speed sample.
const jitterStd = 0.5

// speedToPollutantFactor maps a traffic speed to the multiplicative
// factor applied to the baseline pollutant concentration. The mapping is
// a monotone step function: slower traffic concentrates more pollution.
func speedToPollutantFactor(speed float64) float64 {
	switch {
	case speed >= 55:
		return 0.75
	case speed >= 45:
		return 0.90
	case speed >= 35:
		return 1.10
	case speed >= 25:
		return 1.30
	default:
		return 1.50
	}
}

// Predict24h derives a synthetic pollutant trace from the forecast
// speeds, decodes the most probable state sequence, and aggregates it
// into a Prediction: occupancy counts and percentages, ordered
// transition events, and the mean risk score.
//
// rng drives the pollutant jitter and must be owned by this call; pass a
// seeded source for reproducible output, or nil for a fresh time-seeded
// one. The engine itself is never mutated, so concurrent calls with
// independent sources are safe.
//
// Returns ErrEmptyObservations when speeds is empty.
func (e *Engine) Predict24h(speeds []float64, baselinePollutant float64, rng *rand.Rand) (*Prediction, error) {
	if len(speeds) == 0 {
		return nil, ErrEmptyObservations
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	// 1) Synthesize the pollutant sequence: baseline scaled by the speed
	//    step factor, plus small Gaussian jitter from the call-local rng.
	jitter := distuv.Normal{Mu: 0, Sigma: jitterStd, Src: rng}
	pollutants := make([]float64, len(speeds))
	var i int
	for i = range speeds {
		pollutants[i] = baselinePollutant*speedToPollutantFactor(speeds[i]) + jitter.Rand()
	}

	// 2) Decode the most probable state path.
	path, logProb, _, err := e.Decode(speeds, pollutants)
	if err != nil {
		return nil, err
	}

	// 3) Aggregate occupancy, transition events and the risk score.
	counts := make(map[EnvironmentalState]int, NumStates)
	var s EnvironmentalState
	for s = FreeFlow; s <= Gridlock; s++ {
		counts[s] = 0
	}

	labels := make([]string, len(path))
	labelsES := make([]string, len(path))
	var transitions []StateTransition
	var totalRisk float64
	for i, s = range path {
		counts[s]++
		labels[i] = s.Label("en")
		labelsES[i] = s.Label("es")
		totalRisk += s.RiskWeight()
		if i > 0 && path[i] != path[i-1] {
			transitions = append(transitions, StateTransition{
				TimeIndex: i,
				From:      path[i-1],
				To:        path[i],
			})
		}
	}

	percentages := make(map[EnvironmentalState]float64, NumStates)
	for s = FreeFlow; s <= Gridlock; s++ {
		percentages[s] = float64(counts[s]) / float64(len(path)) * 100
	}

	return &Prediction{
		States:             path,
		Labels:             labels,
		LabelsES:           labelsES,
		LogProbability:     logProb,
		StateCounts:        counts,
		StatePercentages:   percentages,
		Transitions:        transitions,
		RiskScore:          totalRisk / float64(len(path)),
		PollutantEstimates: pollutants,
		Observations:       len(speeds),
	}, nil
}
