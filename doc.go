// Package freightsim models the environmental and routing consequences
// of a freight toll on an urban expressway corridor.
//
// The module is organized as three independent analytics engines plus a
// thin facade:
//
//	hmm/        — hidden Markov state inference: Viterbi decoding of
//	              environmental risk states from (speed, pollutant)
//	              observation traces.
//	montecarlo/ — uncertainty quantification: stochastic simulation of
//	              toll-driven diversion, pollutant reduction and health
//	              outcomes, with full distributional summaries.
//	routing/    — route choice: A* over the fixed corridor network with
//	              a residential penalty weight, and toll-diversion
//	              analysis on top of it.
//	analytics/  — facade composing the three engines and aggregating
//	              their static technical documentation.
//
// The engines share no mutable state and perform no I/O: inputs are
// plain slices and scalars, outputs are plain structs. Transport,
// forecasting and data acquisition live outside this module and talk to
// it through ordinary function calls.
package freightsim
