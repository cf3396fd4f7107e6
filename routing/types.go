// Package routing defines the network model, cost constants and result
// records of the corridor route-choice engine.
package routing

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors returned by the routing package.
var (
	// ErrBadPenalty indicates a residential penalty weight below 1.0;
	// a weight under 1 would reward residential cut-through.
	ErrBadPenalty = errors.New("routing: residential penalty weight must be >= 1.0")

	// ErrBadNetwork indicates an empty node set, an empty node ID or a
	// duplicate node ID in a custom network.
	ErrBadNetwork = errors.New("routing: invalid network definition")

	// ErrDanglingEdge indicates an edge endpoint that references a node
	// absent from the node set.
	ErrDanglingEdge = errors.New("routing: edge references unknown node")

	// ErrNodeNotFound indicates a search endpoint absent from the
	// network.
	ErrNodeNotFound = errors.New("routing: node not found in network")
)

// Cost-model constants. The degree-to-kilometer factors fit the
// network's latitude; the reference speed bounds the heuristic and must
// stay at or above the fastest edge speed in the network so A* remains
// admissible.
const (
	// KmPerDegreeLat converts degrees of latitude to kilometers.
	KmPerDegreeLat = 111.0

	// KmPerDegreeLon converts degrees of longitude to kilometers at the
	// corridor's latitude.
	KmPerDegreeLon = 85.0

	// ReferenceSpeedKmh is the speed assumed when converting heuristic
	// distance to minutes. 64 km/h exceeds every edge speed in the
	// default network, keeping the heuristic admissible.
	ReferenceSpeedKmh = 64.0

	// TimeValuePerHour is the trucker value of time (USD/hour) used to
	// convert a toll into equivalent minutes.
	TimeValuePerHour = 50.0

	// ExpresswayCrossings is the number of expressway edges the toll is
	// distributed across on a typical corridor traversal.
	ExpresswayCrossings = 3.0

	// DefaultPenaltyWeight is the production residential penalty.
	DefaultPenaltyWeight = 1.5
)

// Node is one junction of the road network. Loc follows the orb
// convention: Loc[0] is longitude, Loc[1] is latitude.
type Node struct {
	ID          string
	Loc         orb.Point
	Residential bool
	Expressway  bool
}

// Edge is a directed road segment. Undirected streets are represented
// by two Edge values, one per direction.
type Edge struct {
	From        string
	To          string
	DistanceKm  float64
	BaseTimeMin float64
	Residential bool
}

// Route is the outcome of one FindPath search.
type Route struct {
	// Path is the node sequence from start to goal inclusive; empty when
	// the goal is unreachable.
	Path []string

	// CostMinutes is the total cost in equivalent minutes; +Inf when the
	// goal is unreachable.
	CostMinutes float64

	// UsesResidential reports whether any node on the path is
	// residential.
	UsesResidential bool
}

// Diversion is the outcome of one AnalyzeDiversion comparison.
type Diversion struct {
	TaxAmount  float64
	WithTax    Route
	WithoutTax Route

	// WillDivert is true iff the tolled optimum uses residential streets
	// while the toll-free optimum does not.
	WillDivert bool

	// CostIncreasePct is the relative cost increase of the tolled route
	// over the toll-free route, in percent; 0 when the toll-free cost is
	// zero.
	CostIncreasePct float64

	// PenaltyWeight echoes the engine's residential penalty.
	PenaltyWeight float64

	// ResidentialSegments lists the residential node IDs on the tolled
	// route, in path order; empty when it stays on the expressway.
	ResidentialSegments []string
}

// BatchResult is the outcome of one BatchAnalyze sweep.
type BatchResult struct {
	Levels   []float64
	Analyses map[float64]Diversion

	// Threshold is the lowest analyzed tax level at which diversion
	// occurs, valid only when ThresholdFound is true.
	Threshold      float64
	ThresholdFound bool
}
