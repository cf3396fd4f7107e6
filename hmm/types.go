// Package hmm defines the state space, model configuration and result
// records for the corridor environmental HMM.
package hmm

import (
	"errors"
	"math"
)

// Sentinel errors returned by the hmm package.
var (
	// ErrBadModel indicates that a Config failed validation:
	// a transition row or the initial distribution does not sum to 1,
	// or an emission standard deviation is not strictly positive.
	ErrBadModel = errors.New("hmm: invalid model configuration")

	// ErrEmptyObservations indicates that an observation sequence of
	// length zero was passed to Decode or Predict24h.
	ErrEmptyObservations = errors.New("hmm: observation sequence is empty")

	// ErrLengthMismatch indicates that the speed and pollutant sequences
	// passed to Decode have different lengths.
	ErrLengthMismatch = errors.New("hmm: speed and pollutant sequences differ in length")
)

// NumStates is the fixed arity of the environmental state space.
const NumStates = 3

// epsilon smooths transition and initial probabilities before taking a
// logarithm, so that a configured probability of exactly zero stays a
// valid model instead of producing log(0).
const epsilon = 1e-10

// stochasticTol is the tolerance used when checking that probability
// rows sum to one.
const stochasticTol = 1e-9

// EnvironmentalState is one of the three ordinal corridor risk states.
//
// The set is closed: every decoded state is in {FreeFlow, Congested,
// Gridlock}, and Valid() rejects anything else.
type EnvironmentalState int

const (
	// FreeFlow — traffic moves freely, pollutant concentration is low.
	FreeFlow EnvironmentalState = iota

	// Congested — reduced speeds with elevated pollutant exposure.
	Congested

	// Gridlock — near-standstill traffic and peak pollutant levels.
	Gridlock
)

// stateLabels maps each state to its bilingual display labels,
// keyed first by state, then by language ("en", "es").
var stateLabels = map[EnvironmentalState]map[string]string{
	FreeFlow:  {"en": "Free Flow / Healthy", "es": "Flujo Libre / Saludable"},
	Congested: {"en": "Congested / High Exposure", "es": "Congestionado / Alta Exposición"},
	Gridlock:  {"en": "Gridlock / Toxic", "es": "Atascado / Tóxico"},
}

// riskWeights maps each state to its scalar contribution to the
// aggregate risk score.
var riskWeights = [NumStates]float64{0.0, 0.5, 1.0}

// String implements fmt.Stringer with the short state name.
func (s EnvironmentalState) String() string {
	switch s {
	case FreeFlow:
		return "FreeFlow"
	case Congested:
		return "Congested"
	case Gridlock:
		return "Gridlock"
	default:
		return "Unknown"
	}
}

// Label returns the display label for the given language ("en" or "es").
// Unknown languages fall back to English.
func (s EnvironmentalState) Label(lang string) string {
	if l, ok := stateLabels[s][lang]; ok {
		return l
	}

	return stateLabels[s]["en"]
}

// RiskWeight returns the scalar risk weight of the state
// (FreeFlow 0.0, Congested 0.5, Gridlock 1.0).
func (s EnvironmentalState) RiskWeight() float64 {
	if !s.Valid() {
		return math.NaN()
	}

	return riskWeights[s]
}

// Valid reports whether s is one of the three defined states.
func (s EnvironmentalState) Valid() bool {
	return s >= FreeFlow && s <= Gridlock
}

// Gaussian holds the parameters of a univariate normal distribution.
type Gaussian struct {
	Mean float64 // location
	Std  float64 // scale; must be > 0
}

// Emission holds the per-state observation model: speed and pollutant
// concentration are conditionally independent Gaussians given the state.
type Emission struct {
	Speed     Gaussian // observed traffic speed (mph)
	Pollutant Gaussian // observed pollutant concentration (µg/m³)
}

// Config fully specifies the corridor HMM. All fields are read verbatim
// at construction and never mutated afterwards.
//
// Transition[i][j] is the probability of moving from state i to state j;
// every row must sum to 1 within tolerance. Initial is the distribution
// over states at the first observation and must also sum to 1.
type Config struct {
	Transition [NumStates][NumStates]float64
	Initial    [NumStates]float64
	Emissions  [NumStates]Emission
}

// DefaultConfig returns the corridor model used in production:
// sticky transitions (traffic inertia), a congested-leaning morning
// initial distribution, and emission parameters fitted per state.
func DefaultConfig() Config {
	return Config{
		Transition: [NumStates][NumStates]float64{
			{0.70, 0.25, 0.05}, // FreeFlow: likely to persist
			{0.20, 0.60, 0.20}, // Congested: can recover or degrade
			{0.10, 0.35, 0.55}, // Gridlock: slow to clear
		},
		Initial: [NumStates]float64{0.2, 0.5, 0.3},
		Emissions: [NumStates]Emission{
			{Speed: Gaussian{55.0, 8.0}, Pollutant: Gaussian{8.5, 1.5}},
			{Speed: Gaussian{35.0, 10.0}, Pollutant: Gaussian{12.5, 2.0}},
			{Speed: Gaussian{18.0, 7.0}, Pollutant: Gaussian{17.0, 3.0}},
		},
	}
}

// Validate checks that every transition row and the initial distribution
// are stochastic within tolerance, all probabilities are non-negative,
// and every emission standard deviation is strictly positive.
func (c Config) Validate() error {
	var i, j int
	var sum float64

	// 1) Each transition row must be a probability distribution.
	for i = 0; i < NumStates; i++ {
		sum = 0
		for j = 0; j < NumStates; j++ {
			if c.Transition[i][j] < 0 {
				return ErrBadModel
			}
			sum += c.Transition[i][j]
		}
		if math.Abs(sum-1.0) > stochasticTol {
			return ErrBadModel
		}
	}

	// 2) The initial distribution must sum to one.
	sum = 0
	for i = 0; i < NumStates; i++ {
		if c.Initial[i] < 0 {
			return ErrBadModel
		}
		sum += c.Initial[i]
	}
	if math.Abs(sum-1.0) > stochasticTol {
		return ErrBadModel
	}

	// 3) Emission scales must be strictly positive.
	for i = 0; i < NumStates; i++ {
		if c.Emissions[i].Speed.Std <= 0 || c.Emissions[i].Pollutant.Std <= 0 {
			return ErrBadModel
		}
	}

	return nil
}

// StateTransition records one change of decoded state between two
// consecutive time steps.
type StateTransition struct {
	TimeIndex int                // index of the step the new state starts at
	From      EnvironmentalState // state at TimeIndex-1
	To        EnvironmentalState // state at TimeIndex
}

// Prediction is the aggregate report produced by Predict24h.
type Prediction struct {
	// States is the Viterbi-decoded state sequence, one entry per step.
	States []EnvironmentalState

	// Labels and LabelsES carry the per-step display labels in English
	// and Spanish respectively.
	Labels   []string
	LabelsES []string

	// LogProbability is the log-probability of the decoded path.
	LogProbability float64

	// StateCounts and StatePercentages describe occupancy per state over
	// the whole horizon. Percentages are in [0, 100].
	StateCounts      map[EnvironmentalState]int
	StatePercentages map[EnvironmentalState]float64

	// Transitions lists every step at which the decoded state changed,
	// in time order.
	Transitions []StateTransition

	// RiskScore is the mean per-step risk weight over the decoded path,
	// in [0, 1].
	RiskScore float64

	// PollutantEstimates is the synthetic pollutant trace derived from
	// the input speeds and fed to the decoder.
	PollutantEstimates []float64

	// Observations is the number of time steps decoded.
	Observations int
}
