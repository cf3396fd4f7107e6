package routing

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
)

// Engine is the immutable route-choice engine. Construct with New or
// NewWithNetwork; safe for concurrent searches afterwards.
type Engine struct {
	penalty float64
	nodes   map[string]Node
	adj     map[string][]Edge
	order   []string // node IDs sorted, for deterministic iteration
}

// defaultNodes is the fixed corridor network: the expressway spine
// (west entry, midpoint, boulevard, east entry) and the adjacent
// residential grid. Points are (lon, lat).
var defaultNodes = []Node{
	{ID: "start_west", Loc: orb.Point{-73.920, 40.840}, Expressway: true},
	{ID: "start_east", Loc: orb.Point{-73.850, 40.820}, Expressway: true},
	{ID: "soundview_n", Loc: orb.Point{-73.870, 40.830}, Residential: true},
	{ID: "soundview_s", Loc: orb.Point{-73.875, 40.818}, Residential: true},
	{ID: "hunts_point", Loc: orb.Point{-73.890, 40.815}, Residential: true},
	{ID: "mott_haven", Loc: orb.Point{-73.910, 40.810}, Residential: true},
	{ID: "cbx_mid", Loc: orb.Point{-73.885, 40.825}, Expressway: true},
	{ID: "bruckner", Loc: orb.Point{-73.870, 40.815}, Expressway: true},
}

// defaultEdges lists each undirected street once; construction inserts
// both directions.
var defaultEdges = []Edge{
	// Expressway spine.
	{From: "start_west", To: "cbx_mid", DistanceKm: 5.0, BaseTimeMin: 8.0},
	{From: "cbx_mid", To: "start_east", DistanceKm: 4.5, BaseTimeMin: 7.0},
	{From: "cbx_mid", To: "bruckner", DistanceKm: 2.0, BaseTimeMin: 4.0},
	{From: "bruckner", To: "start_east", DistanceKm: 3.0, BaseTimeMin: 5.0},

	// Residential grid: shorter but slower.
	{From: "start_west", To: "mott_haven", DistanceKm: 3.0, BaseTimeMin: 12.0, Residential: true},
	{From: "mott_haven", To: "hunts_point", DistanceKm: 2.5, BaseTimeMin: 10.0, Residential: true},
	{From: "hunts_point", To: "soundview_s", DistanceKm: 2.0, BaseTimeMin: 8.0, Residential: true},
	{From: "soundview_s", To: "soundview_n", DistanceKm: 1.5, BaseTimeMin: 6.0, Residential: true},
	{From: "soundview_n", To: "start_east", DistanceKm: 2.5, BaseTimeMin: 10.0, Residential: true},

	// Mixed connectors between spine and grid.
	{From: "cbx_mid", To: "soundview_n", DistanceKm: 1.0, BaseTimeMin: 4.0, Residential: true},
	{From: "bruckner", To: "soundview_s", DistanceKm: 1.5, BaseTimeMin: 6.0, Residential: true},
	{From: "hunts_point", To: "bruckner", DistanceKm: 2.0, BaseTimeMin: 8.0, Residential: true},
}

// New returns an engine over the fixed corridor network with the given
// residential penalty weight.
//
// Returns ErrBadPenalty when penaltyWeight < 1.0.
func New(penaltyWeight float64) (*Engine, error) {
	return NewWithNetwork(defaultNodes, defaultEdges, penaltyWeight)
}

// NewWithNetwork builds an engine over a caller-supplied network. Each
// listed edge is inserted in both directions. The node and edge tables
// are copied; the engine never exposes a mutation path.
//
// Validation (in order):
//  1. penaltyWeight ≥ 1.0 (ErrBadPenalty).
//  2. Non-empty node set, non-empty unique node IDs (ErrBadNetwork).
//  3. Every edge endpoint present in the node set (ErrDanglingEdge).
func NewWithNetwork(nodes []Node, edges []Edge, penaltyWeight float64) (*Engine, error) {
	if penaltyWeight < 1.0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadPenalty, penaltyWeight)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: empty node set", ErrBadNetwork)
	}

	e := &Engine{
		penalty: penaltyWeight,
		nodes:   make(map[string]Node, len(nodes)),
		adj:     make(map[string][]Edge, len(nodes)),
		order:   make([]string, 0, len(nodes)),
	}

	var n Node
	for _, n = range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: empty node ID", ErrBadNetwork)
		}
		if _, dup := e.nodes[n.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate node %q", ErrBadNetwork, n.ID)
		}
		e.nodes[n.ID] = n
		e.adj[n.ID] = nil
		e.order = append(e.order, n.ID)
	}
	sort.Strings(e.order)

	var ed Edge
	for _, ed = range edges {
		if _, ok := e.nodes[ed.From]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrDanglingEdge, ed.From)
		}
		if _, ok := e.nodes[ed.To]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrDanglingEdge, ed.To)
		}
		e.adj[ed.From] = append(e.adj[ed.From], ed)
		reverse := Edge{
			From:        ed.To,
			To:          ed.From,
			DistanceKm:  ed.DistanceKm,
			BaseTimeMin: ed.BaseTimeMin,
			Residential: ed.Residential,
		}
		e.adj[ed.To] = append(e.adj[ed.To], reverse)
	}

	return e, nil
}

// PenaltyWeight returns the engine's residential penalty weight.
func (e *Engine) PenaltyWeight() float64 { return e.penalty }

// Nodes returns the network nodes in deterministic (sorted-ID) order.
func (e *Engine) Nodes() []Node {
	out := make([]Node, 0, len(e.order))
	var id string
	for _, id = range e.order {
		out = append(out, e.nodes[id])
	}

	return out
}

// Edges returns every directed edge of the network, grouped by source
// node in deterministic order.
func (e *Engine) Edges() []Edge {
	var out []Edge
	var id string
	for _, id = range e.order {
		out = append(out, e.adj[id]...)
	}

	return out
}

// HasNode reports whether the network contains the given node ID.
func (e *Engine) HasNode(id string) bool {
	_, ok := e.nodes[id]

	return ok
}
