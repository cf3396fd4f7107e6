// Package hmm provides a three-state hidden Markov model for environmental
// risk inference over an urban expressway corridor.
//
// Overview:
//
//   - Hidden states S = {FreeFlow, Congested, Gridlock} describe composite
//     traffic/air-quality conditions along the corridor.
//   - Observations are (speed, pollutant) pairs, modeled as conditionally
//     independent Gaussians given the state.
//   - Decode runs the Viterbi dynamic program to recover the most probable
//     state sequence for a sequence of observations.
//   - Predict24h turns a forecast speed trace into a full risk report:
//     decoded states, occupancy statistics, transition events and an
//     aggregate risk score.
//
// Numerical stability:
//
//   - All probabilities are combined in log space. The normal log-density
//     comes from gonum's distuv.Normal.LogProb, so observations far from a
//     state mean never overflow an explicit exponent.
//   - Transition and initial probabilities are smoothed with a small ε
//     before each logarithm, so a configured zero probability is a valid
//     model, not an error.
//
// Complexity:
//
//   - Decode: O(T·N²) time and O(T·N) space for T observations, N = 3.
//
// Error handling (sentinel errors):
//
//   - ErrBadModel          — Config fails validation at construction.
//   - ErrEmptyObservations — Decode/Predict24h called with no observations.
//   - ErrLengthMismatch    — speed and pollutant sequences differ in length.
//
// Concurrency:
//
//   - An Engine holds only read-only configuration after New. Decode is
//     pure; Predict24h takes an explicit *rand.Rand for its jitter, so one
//     Engine may serve concurrent callers as long as each call owns its
//     random source.
package hmm
