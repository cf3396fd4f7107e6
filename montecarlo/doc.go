// Package montecarlo quantifies the uncertainty of freight-toll impact
// estimates for the corridor by Monte Carlo simulation.
//
// Overview:
//
//   - Three stochastic parameters are drawn independently per iteration
//     from configured Gaussians: price elasticity of demand, pollutant
//     reduction per 1,000 diverted vehicles, and the health
//     concentration-response coefficient. Physically non-negative
//     parameters are clamped to strictly positive floors.
//   - Each iteration derives four outcome metrics from a tax level:
//     diverted daily volume (capped at the baseline), pollutant
//     concentration reduction, avoided annual health events, and a
//     monetized annual benefit.
//   - Run summarizes every metric with gonum statistics: mean, population
//     standard deviation, min/max, linearly interpolated percentiles, a
//     50-bin density histogram, and 95%/50% confidence intervals.
//   - SensitivityAnalysis sweeps a set of tax levels with one independent
//     Run per level and summarizes the avoided-health-events metric.
//
// Determinism:
//
//   - A simulator built with WithSeed re-derives its random source at the
//     start of every Run, so repeated calls with identical inputs are
//     bit-for-bit identical, and concurrent Run calls on one seeded
//     instance do not interleave draws.
//   - Without a seed, every Run draws a fresh time-based seed and is
//     non-deterministic by design.
//
// Error handling:
//
//   - ErrBadIterations — iteration count below one. No other input is
//     rejected: a large tax simply scales outcomes, degradation is
//     graceful by contract.
package montecarlo
