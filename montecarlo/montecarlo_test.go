package montecarlo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/corridorlabs/freightsim/montecarlo"
)

// TestRun_BadIterations verifies that iteration counts below one are
// rejected with ErrBadIterations.
func TestRun_BadIterations(t *testing.T) {
	s := montecarlo.New(montecarlo.WithSeed(1))

	_, err := s.Run(50, 0)
	assert.ErrorIs(t, err, montecarlo.ErrBadIterations)

	_, err = s.Run(50, -10)
	assert.ErrorIs(t, err, montecarlo.ErrBadIterations)
}

// TestRun_ZeroTax checks the zero-toll scenario: a zero price increase
// yields zero diversion in every iteration, so all four metrics collapse
// to zero.
func TestRun_ZeroTax(t *testing.T) {
	s := montecarlo.New(montecarlo.WithSeed(99))

	res, err := s.Run(0, 1000)
	require.NoError(t, err)

	for _, m := range montecarlo.Metrics {
		st := res.Stats[m]
		assert.Equal(t, 0.0, st.Mean, "%s mean must be exactly zero at zero tax", m)
		assert.Equal(t, 0.0, st.Max, "%s max must be exactly zero at zero tax", m)
		assert.Equal(t, 0.0, st.Std)
	}
}

// TestRun_ResultShape verifies the structural contract of a Result:
// every metric carries stats, a 50-bin histogram with consistent edges,
// and ordered confidence intervals.
func TestRun_ResultShape(t *testing.T) {
	s := montecarlo.New(montecarlo.WithSeed(7))

	res, err := s.Run(50, 2000)
	require.NoError(t, err)

	assert.Equal(t, 50.0, res.TaxAmount)
	assert.Equal(t, 2000, res.Iterations)
	assert.Len(t, res.Inputs, 3)

	for _, m := range montecarlo.Metrics {
		st, ok := res.Stats[m]
		require.True(t, ok, "stats missing for %s", m)
		assert.LessOrEqual(t, st.Min, st.P5)
		assert.LessOrEqual(t, st.P5, st.P25)
		assert.LessOrEqual(t, st.P25, st.P50)
		assert.LessOrEqual(t, st.P50, st.P75)
		assert.LessOrEqual(t, st.P75, st.P95)
		assert.LessOrEqual(t, st.P95, st.Max)
		assert.GreaterOrEqual(t, st.Std, 0.0)

		h := res.Histograms[m]
		assert.Len(t, h.X, montecarlo.HistogramBins)
		assert.Len(t, h.Y, montecarlo.HistogramBins)
		assert.Len(t, h.BinEdges, montecarlo.HistogramBins+1)
		for i := 1; i < len(h.BinEdges); i++ {
			assert.Greater(t, h.BinEdges[i], h.BinEdges[i-1], "bin edges must increase")
		}

		ci := res.Intervals[m]
		assert.LessOrEqual(t, ci.Lower95, ci.Lower50)
		assert.LessOrEqual(t, ci.Lower50, ci.Upper50)
		assert.LessOrEqual(t, ci.Upper50, ci.Upper95)
	}
}

// TestRun_HistogramDensityIntegratesToOne checks that each density
// histogram integrates to ~1 over its bins.
func TestRun_HistogramDensityIntegratesToOne(t *testing.T) {
	s := montecarlo.New(montecarlo.WithSeed(3))

	res, err := s.Run(75, 5000)
	require.NoError(t, err)

	for _, m := range montecarlo.Metrics {
		h := res.Histograms[m]
		width := h.BinEdges[1] - h.BinEdges[0]
		var mass float64
		for _, y := range h.Y {
			mass += y * width
		}
		assert.InDelta(t, 1.0, mass, 1e-9, "%s density must integrate to one", m)
	}
}

// TestRun_ClampingInvariants verifies the physical bounds: diverted
// volume never exceeds the baseline, and no outcome goes negative (the
// clamped rates and the absolute-value diversion formula forbid it).
func TestRun_ClampingInvariants(t *testing.T) {
	s := montecarlo.New(montecarlo.WithSeed(11))
	baseline := float64(s.Config().BaselineVolume)

	// An absurd toll forces the diversion cap in most iterations.
	res, err := s.Run(1e6, 3000)
	require.NoError(t, err)

	assert.LessOrEqual(t, res.Stats[montecarlo.MetricDivertedVolume].Max, baseline,
		"cannot divert more vehicles than exist")
	for _, m := range montecarlo.Metrics {
		assert.GreaterOrEqual(t, res.Stats[m].Min, 0.0, "%s cannot be negative", m)
	}
}

// TestParam_SampleFloor verifies that the floor clamp keeps draws
// strictly positive even for a distribution centered far below zero.
func TestParam_SampleFloor(t *testing.T) {
	p := montecarlo.Param{Name: "rate", Mean: -5, Std: 1, Floor: 0.01}
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 1000; i++ {
		v := p.Sample(rng)
		assert.GreaterOrEqual(t, v, 0.01, "floored draw %d must respect the floor", i)
	}

	// Without a floor the same distribution must go negative.
	open := montecarlo.Param{Name: "elasticity", Mean: -5, Std: 1}
	v := open.Sample(rng)
	assert.Less(t, v, 0.0)
}

// TestRun_SeededReproducible verifies bit-for-bit determinism: a seeded
// simulator repeats identical results across calls, and two simulators
// with the same seed agree.
func TestRun_SeededReproducible(t *testing.T) {
	a := montecarlo.New(montecarlo.WithSeed(1234))
	b := montecarlo.New(montecarlo.WithSeed(1234))

	r1, err := a.Run(50, 500)
	require.NoError(t, err)
	r2, err := a.Run(50, 500)
	require.NoError(t, err)
	r3, err := b.Run(50, 500)
	require.NoError(t, err)

	assert.Equal(t, r1, r2, "repeated calls on one seeded simulator must match")
	assert.Equal(t, r1, r3, "equal seeds must produce equal results")
}

// TestRun_ConvergesToAnalyticMean checks Monte Carlo convergence: with a
// fixed seed, the pollutant-reduction sample mean approaches the value
// implied by the distribution means (tax 50 ⇒ 208 diverted ⇒ 0.02496),
// with a shrinking error as iterations grow.
func TestRun_ConvergesToAnalyticMean(t *testing.T) {
	if testing.Short() {
		t.Skip("convergence test runs 100k iterations")
	}

	s := montecarlo.New(montecarlo.WithSeed(2024))
	const analytic = 208.0 / 1000.0 * 0.12

	small, err := s.Run(50, 100)
	require.NoError(t, err)
	large, err := s.Run(50, 100000)
	require.NoError(t, err)

	errSmall := math.Abs(small.Stats[montecarlo.MetricPollutantReduction].Mean - analytic)
	errLarge := math.Abs(large.Stats[montecarlo.MetricPollutantReduction].Mean - analytic)

	assert.Less(t, errSmall, 5e-3, "100 iterations should land near the analytic mean")
	assert.Less(t, errLarge, 5e-4, "100k iterations should land very near the analytic mean")
}

// TestSensitivityAnalysis_DefaultSweep runs the default five-level sweep
// and checks the summary is keyed and filled per level, with
// monotonically non-decreasing mean benefits over increasing tolls.
func TestSensitivityAnalysis_DefaultSweep(t *testing.T) {
	s := montecarlo.New(montecarlo.WithSeed(8))

	cmp, err := s.SensitivityAnalysis(nil, 2000)
	require.NoError(t, err)

	assert.Equal(t, []float64{10, 25, 50, 75, 100}, cmp.TaxLevels)
	require.Len(t, cmp.Results, 5)
	require.Len(t, cmp.Summary, 5)

	prev := math.Inf(-1)
	for _, tax := range cmp.TaxLevels {
		sum, ok := cmp.Summary[tax]
		require.True(t, ok, "summary missing for level %v", tax)
		assert.Equal(t, cmp.Results[tax].Stats[montecarlo.MetricAvoidedHealthEvents].Mean, sum.MeanAvoidedEvents)
		assert.Equal(t, cmp.Results[tax].Intervals[montecarlo.MetricAvoidedHealthEvents], sum.CI)

		assert.GreaterOrEqual(t, sum.MeanAvoidedEvents, prev,
			"mean avoided events must not decrease as the toll grows")
		prev = sum.MeanAvoidedEvents
	}
}

// TestSensitivityAnalysis_PropagatesError verifies that a bad iteration
// count surfaces from the per-level runs.
func TestSensitivityAnalysis_PropagatesError(t *testing.T) {
	s := montecarlo.New(montecarlo.WithSeed(8))

	_, err := s.SensitivityAnalysis([]float64{10}, 0)
	assert.ErrorIs(t, err, montecarlo.ErrBadIterations)
}
