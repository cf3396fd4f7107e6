package hmm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Engine is an immutable corridor HMM. Construct with New; safe for
// concurrent use (no mutable state beyond the configuration).
type Engine struct {
	cfg Config
}

// New validates cfg and returns an Engine bound to it.
//
// Returns ErrBadModel (wrapped) if the configuration is not a valid
// stochastic model.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Engine{cfg: cfg}, nil
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// EmissionLogProb returns log P(speed, pollutant | state) under the
// conditional-independence assumption:
//
//	logPdf(speed; μ_s, σ_s) + logPdf(pollutant; μ_p, σ_p)
//
// distuv.Normal.LogProb works entirely in log space, so observations far
// from a state mean yield large negative values instead of underflowing.
// An invalid state returns -Inf.
func (e *Engine) EmissionLogProb(state EnvironmentalState, speed, pollutant float64) float64 {
	if !state.Valid() {
		return math.Inf(-1)
	}

	em := e.cfg.Emissions[state]
	speedLP := distuv.Normal{Mu: em.Speed.Mean, Sigma: em.Speed.Std}.LogProb(speed)
	pollLP := distuv.Normal{Mu: em.Pollutant.Mean, Sigma: em.Pollutant.Std}.LogProb(pollutant)

	return speedLP + pollLP
}

// Decode runs the Viterbi dynamic program over the aligned observation
// sequences and returns the most probable state path, its
// log-probability, and the delta trellis (T×NumStates) for inspection.
//
// Requires len(speeds) == len(pollutants) ≥ 1; returns
// ErrEmptyObservations or ErrLengthMismatch otherwise. Ties at every
// maximization are broken toward the lowest state index.
//
// Complexity: O(T·N²) time, O(T·N) space, N = NumStates.
func (e *Engine) Decode(speeds, pollutants []float64) ([]EnvironmentalState, float64, [][]float64, error) {
	// 1) Validate the observation sequences.
	T := len(speeds)
	if T == 0 {
		return nil, 0, nil, ErrEmptyObservations
	}
	if len(pollutants) != T {
		return nil, 0, nil, fmt.Errorf("%w: %d speeds vs %d pollutants", ErrLengthMismatch, T, len(pollutants))
	}

	// 2) Allocate the trellis fresh for this call.
	//    delta[t][i] — best log-probability of any path ending in state i at step t.
	//    psi[t][i]   — predecessor state of that best path, for backtracking.
	delta := make([][]float64, T)
	psi := make([][]int, T)
	var t int
	for t = 0; t < T; t++ {
		delta[t] = make([]float64, NumStates)
		psi[t] = make([]int, NumStates)
	}

	// 3) Initialization: smoothed initial log-probability plus emission.
	var i, j int
	for i = 0; i < NumStates; i++ {
		delta[0][i] = math.Log(e.cfg.Initial[i]+epsilon) +
			e.EmissionLogProb(EnvironmentalState(i), speeds[0], pollutants[0])
	}

	// 4) Recursion: extend every path by one step, keeping the best
	//    predecessor per target state. The strict > keeps the first
	//    (lowest-index) maximizer on ties.
	var best, cand, emit float64
	var bestPrev int
	for t = 1; t < T; t++ {
		for j = 0; j < NumStates; j++ {
			emit = e.EmissionLogProb(EnvironmentalState(j), speeds[t], pollutants[t])
			best = math.Inf(-1)
			bestPrev = 0
			for i = 0; i < NumStates; i++ {
				cand = delta[t-1][i] + math.Log(e.cfg.Transition[i][j]+epsilon)
				if cand > best {
					best = cand
					bestPrev = i
				}
			}
			delta[t][j] = best + emit
			psi[t][j] = bestPrev
		}
	}

	// 5) Termination: best final state, ties to the lowest index.
	bestFinal := 0
	for i = 1; i < NumStates; i++ {
		if delta[T-1][i] > delta[T-1][bestFinal] {
			bestFinal = i
		}
	}
	logProb := delta[T-1][bestFinal]

	// 6) Backtracking: reconstruct the path right to left.
	path := make([]EnvironmentalState, T)
	path[T-1] = EnvironmentalState(bestFinal)
	for t = T - 2; t >= 0; t-- {
		path[t] = EnvironmentalState(psi[t+1][path[t+1]])
	}

	return path, logProb, delta, nil
}
