// Package montecarlo defines the parameter distributions, configuration
// and result records of the freight-toll uncertainty simulator.
package montecarlo

import (
	"errors"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrBadIterations indicates that Run was asked for fewer than one
// iteration.
var ErrBadIterations = errors.New("montecarlo: iteration count must be at least 1")

// DefaultIterations is the iteration count used by the facade when the
// caller does not choose one.
const DefaultIterations = 10000

// HistogramBins is the number of bins in every outcome density histogram.
const HistogramBins = 50

// Metric names one of the four simulated outcome distributions.
type Metric string

const (
	// MetricDivertedVolume — daily vehicles diverted off the expressway.
	MetricDivertedVolume Metric = "diverted_volume"

	// MetricPollutantReduction — pollutant concentration reduction (µg/m³).
	MetricPollutantReduction Metric = "pollutant_reduction"

	// MetricAvoidedHealthEvents — avoided annual health events.
	MetricAvoidedHealthEvents Metric = "avoided_health_events"

	// MetricBenefitUSD — monetized annual health benefit (USD).
	MetricBenefitUSD Metric = "benefit_usd"
)

// Metrics lists all outcome metrics in report order.
var Metrics = []Metric{
	MetricDivertedVolume,
	MetricPollutantReduction,
	MetricAvoidedHealthEvents,
	MetricBenefitUSD,
}

// Param is a named Gaussian stochastic parameter with an optional
// strictly positive floor. A Floor ≤ 0 disables clamping.
type Param struct {
	Name  string
	Mean  float64
	Std   float64
	Floor float64
}

// Sample draws one value from the parameter's distribution using rng and
// applies the floor clamp, if any.
func (p Param) Sample(rng *rand.Rand) float64 {
	v := distuv.Normal{Mu: p.Mean, Sigma: p.Std, Src: rng}.Rand()
	if p.Floor > 0 && v < p.Floor {
		v = p.Floor
	}

	return v
}

// Config carries the stochastic parameters and the fixed corridor
// baselines. All values are read at Run time and never mutated.
//
// The monetary and epidemiological constants (ValuePerTon, the response
// coefficient defaults) are product-owner-supplied planning figures, not
// values estimated by this package.
type Config struct {
	// Elasticity is the price elasticity of freight demand. Negative:
	// higher tolls reduce volume. Unclamped.
	Elasticity Param

	// ReductionRate is the pollutant concentration reduction per 1,000
	// diverted vehicles (µg/m³). Clamped strictly positive.
	ReductionRate Param

	// ResponseCoeff is the health concentration-response coefficient
	// (event-rate reduction per µg/m³). Clamped strictly positive.
	ResponseCoeff Param

	// BaselineVolume is the daily freight volume before tolling.
	BaselineVolume int

	// BaselinePollutant is the ambient pollutant concentration (µg/m³).
	BaselinePollutant float64

	// BaselineHealthEvents is the annual baseline count of the tracked
	// health event in the affected area.
	BaselineHealthEvents int

	// OperatingCost is the daily per-vehicle operating cost (USD) the
	// toll is compared against to form the price-increase ratio.
	OperatingCost float64

	// ValuePerTon is the monetized value of one ton of annual pollutant
	// mass reduction (USD).
	ValuePerTon float64

	// AnnualDays annualizes the daily pollutant-mass reduction.
	AnnualDays int
}

// DefaultConfig returns the production corridor configuration.
func DefaultConfig() Config {
	return Config{
		Elasticity:           Param{Name: "elasticity", Mean: -0.4, Std: 0.1},
		ReductionRate:        Param{Name: "reduction_rate", Mean: 0.12, Std: 0.02, Floor: 0.01},
		ResponseCoeff:        Param{Name: "response_coeff", Mean: 0.022, Std: 0.005, Floor: 0.001},
		BaselineVolume:       5200,
		BaselinePollutant:    13.2,
		BaselineHealthEvents: 340,
		OperatingCost:        500.0,
		ValuePerTon:          6000.0,
		AnnualDays:           365,
	}
}

// Stats summarizes one outcome distribution.
type Stats struct {
	Mean float64
	Std  float64 // population standard deviation
	Min  float64
	Max  float64
	P5   float64
	P25  float64
	P50  float64
	P75  float64
	P95  float64
}

// Histogram is a density histogram of one outcome distribution.
// X holds bin centers, Y the density per bin, BinEdges the
// HistogramBins+1 dividers.
type Histogram struct {
	X        []float64
	Y        []float64
	BinEdges []float64
}

// Interval carries the 95% and 50% confidence-interval bounds
// (2.5/97.5 and 25/75 percentiles).
type Interval struct {
	Lower95 float64
	Upper95 float64
	Lower50 float64
	Upper50 float64
}

// Result is the full report of one Run call.
type Result struct {
	TaxAmount  float64
	Iterations int
	Stats      map[Metric]Stats
	Histograms map[Metric]Histogram
	Intervals  map[Metric]Interval

	// Inputs echoes the three stochastic parameters the run sampled
	// from, for display alongside the outcome distributions.
	Inputs []Param
}

// LevelSummary condenses one tax level inside a sensitivity comparison.
type LevelSummary struct {
	MeanAvoidedEvents float64
	CI                Interval
}

// Comparison is the report of one SensitivityAnalysis call, keyed by tax
// level.
type Comparison struct {
	TaxLevels []float64
	Results   map[float64]*Result
	Summary   map[float64]LevelSummary
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithSeed makes the simulator deterministic: every Run re-derives its
// random source from seed, so identical inputs reproduce identical
// outputs bit-for-bit.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		s.seed = seed
		s.seeded = true
	}
}

// WithConfig replaces the default corridor configuration.
func WithConfig(cfg Config) Option {
	return func(s *Simulator) {
		s.cfg = cfg
	}
}
