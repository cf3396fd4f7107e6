package montecarlo

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// vehiclesPerRateUnit scales diverted volume into the unit the reduction
// rate is expressed in (per 1,000 vehicles).
const vehiclesPerRateUnit = 1000.0

// kgPerConcentrationUnit converts one unit of daily concentration
// reduction into kilograms of pollutant mass.
const kgPerConcentrationUnit = 1000.0

// kgPerTon converts annual mass in kilograms to tons for valuation.
const kgPerTon = 1000.0

// Simulator runs freight-toll Monte Carlo simulations. Construct with
// New; the configuration is immutable afterwards.
type Simulator struct {
	cfg    Config
	seed   uint64
	seeded bool
}

// New returns a Simulator with the default corridor configuration,
// customized by the given options.
func New(opts ...Option) *Simulator {
	s := &Simulator{cfg: DefaultConfig()}
	var opt Option
	for _, opt = range opts {
		opt(s)
	}

	return s
}

// Config returns a copy of the simulator's configuration.
func (s *Simulator) Config() Config { return s.cfg }

// Run simulates iterations independent draws for the given tax amount
// and summarizes the four outcome metrics.
//
// taxAmount is any non-negative toll per crossing (USD); larger values
// scale outcomes proportionally, there is no upper clamp here.
// iterations must be ≥ 1, otherwise ErrBadIterations.
//
// Complexity: O(n log n) time for n iterations (summary sort dominates),
// O(n) space per metric.
func (s *Simulator) Run(taxAmount float64, iterations int) (*Result, error) {
	// 1) Validate the only rejected input.
	if iterations < 1 {
		return nil, ErrBadIterations
	}

	// 2) Bind a private random source for this call. Seeded simulators
	//    restart their stream here, which is what makes repeated calls
	//    reproduce bit-for-bit.
	var rng *rand.Rand
	if s.seeded {
		rng = rngFromSeed(s.seed)
	} else {
		rng = rngFromSeed(entropySeed())
	}

	// 3) Sample and derive outcomes per iteration.
	samples := map[Metric][]float64{
		MetricDivertedVolume:      make([]float64, iterations),
		MetricPollutantReduction:  make([]float64, iterations),
		MetricAvoidedHealthEvents: make([]float64, iterations),
		MetricBenefitUSD:          make([]float64, iterations),
	}

	baseline := float64(s.cfg.BaselineVolume)
	var i int
	var elasticity, rate, response float64
	var diverted, reduction, avoided, annualMassKg, benefit float64
	for i = 0; i < iterations; i++ {
		elasticity = s.cfg.Elasticity.Sample(rng)
		rate = s.cfg.ReductionRate.Sample(rng)
		response = s.cfg.ResponseCoeff.Sample(rng)

		// Diverted volume: elasticity times the price-increase ratio,
		// truncated to whole vehicles and capped at the baseline — more
		// vehicles than exist cannot divert.
		diverted = math.Trunc(baseline * math.Abs(elasticity*(taxAmount/s.cfg.OperatingCost)))
		if diverted > baseline {
			diverted = baseline
		}

		// Concentration reduction from the diverted volume.
		reduction = diverted / vehiclesPerRateUnit * rate

		// Avoided annual health events via the response coefficient.
		avoided = float64(s.cfg.BaselineHealthEvents) * reduction * response

		// Monetized benefit from annualized pollutant mass.
		annualMassKg = reduction * kgPerConcentrationUnit * float64(s.cfg.AnnualDays)
		benefit = annualMassKg / kgPerTon * s.cfg.ValuePerTon

		samples[MetricDivertedVolume][i] = diverted
		samples[MetricPollutantReduction][i] = reduction
		samples[MetricAvoidedHealthEvents][i] = avoided
		samples[MetricBenefitUSD][i] = benefit
	}

	// 4) Summarize every metric.
	res := &Result{
		TaxAmount:  taxAmount,
		Iterations: iterations,
		Stats:      make(map[Metric]Stats, len(Metrics)),
		Histograms: make(map[Metric]Histogram, len(Metrics)),
		Intervals:  make(map[Metric]Interval, len(Metrics)),
		Inputs:     []Param{s.cfg.Elasticity, s.cfg.ReductionRate, s.cfg.ResponseCoeff},
	}
	var m Metric
	for _, m = range Metrics {
		sorted := append([]float64(nil), samples[m]...)
		sort.Float64s(sorted)

		res.Stats[m] = summarize(sorted)
		res.Histograms[m] = densityHistogram(sorted, HistogramBins)
		res.Intervals[m] = Interval{
			Lower95: quantile(sorted, 0.025),
			Upper95: quantile(sorted, 0.975),
			Lower50: quantile(sorted, 0.25),
			Upper50: quantile(sorted, 0.75),
		}
	}

	return res, nil
}

// summarize computes the Stats record for an ascending-sorted sample.
func summarize(sorted []float64) Stats {
	return Stats{
		Mean: stat.Mean(sorted, nil),
		Std:  stat.PopStdDev(sorted, nil),
		Min:  sorted[0],
		Max:  sorted[len(sorted)-1],
		P5:   quantile(sorted, 0.05),
		P25:  quantile(sorted, 0.25),
		P50:  quantile(sorted, 0.50),
		P75:  quantile(sorted, 0.75),
		P95:  quantile(sorted, 0.95),
	}
}

// quantile returns the linearly interpolated p-quantile of an
// ascending-sorted sample.
func quantile(sorted []float64, p float64) float64 {
	return stat.Quantile(p, stat.LinInterp, sorted, nil)
}

// densityHistogram bins an ascending-sorted sample into a density
// histogram with the given bin count. A degenerate sample (all values
// equal) is widened by ±0.5 so the bin edges stay strictly increasing.
func densityHistogram(sorted []float64, bins int) Histogram {
	n := len(sorted)
	lo, hi := sorted[0], sorted[n-1]
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	edges := make([]float64, bins+1)
	floats.Span(edges, lo, hi)
	// The top edge is nudged up so the maximum sample falls inside the
	// last bin rather than on the exclusive upper bound.
	dividers := append([]float64(nil), edges...)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)

	width := (hi - lo) / float64(bins)
	x := make([]float64, bins)
	y := make([]float64, bins)
	var i int
	for i = 0; i < bins; i++ {
		x[i] = (edges[i] + edges[i+1]) / 2
		y[i] = counts[i] / (float64(n) * width)
	}

	return Histogram{X: x, Y: y, BinEdges: edges}
}
