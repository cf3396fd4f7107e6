// Package analytics composes the three corridor engines — state
// inference (hmm), uncertainty quantification (montecarlo) and route
// choice (routing) — behind one constructor, and aggregates their
// static technical documentation.
//
// The facade performs no cross-engine computation: each engine is used
// directly through its own package API. The engines share no mutable
// state, so one Analytics value may serve concurrent callers (subject
// to each engine's own randomness contract).
package analytics
