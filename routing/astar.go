package routing

import (
	"container/heap"
	"fmt"
	"math"
)

// Heuristic estimates the remaining travel time in minutes from node to
// goal as the straight-line planar distance (degree-to-kilometer
// conversion per axis) covered at the reference speed.
//
// The estimate never exceeds the true minimal travel time for the
// default network — straight-line distance bounds road distance and the
// reference speed bounds every edge speed — so A* stays optimal.
//
// Returns ErrNodeNotFound for unknown IDs.
func (e *Engine) Heuristic(nodeID, goalID string) (float64, error) {
	n, ok := e.nodes[nodeID]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, nodeID)
	}
	g, ok := e.nodes[goalID]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, goalID)
	}

	// orb.Point is (lon, lat).
	dLatKm := math.Abs(n.Loc[1]-g.Loc[1]) * KmPerDegreeLat
	dLonKm := math.Abs(n.Loc[0]-g.Loc[0]) * KmPerDegreeLon
	distKm := math.Hypot(dLatKm, dLonKm)

	return distKm / ReferenceSpeedKmh * 60.0, nil
}

// EdgeCost returns the traversal cost of one edge in equivalent minutes
// under the given toll.
//
// Residential edges pay the penalty multiplier. Expressway edges absorb
// the toll: converted to minutes at the trucker time-value rate and
// split evenly across the expected expressway crossings.
func (e *Engine) EdgeCost(ed Edge, taxAmount float64) float64 {
	cost := ed.BaseTimeMin

	if ed.Residential {
		cost *= e.penalty
	} else if taxAmount > 0 {
		taxMinutes := taxAmount / TimeValuePerHour * 60.0
		cost += taxMinutes / ExpresswayCrossings
	}

	return cost
}

// frontierItem is one entry of the A* open set.
type frontierItem struct {
	id string
	f  float64 // g + heuristic-to-goal
	g  float64 // cost from start
}

// frontier is a min-heap of frontier items ordered by (f, g, id).
// The explicit three-way tie-break makes pop order — and therefore the
// returned path — deterministic for deterministic inputs.
type frontier []frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g < pq[j].g
	}

	return pq[i].id < pq[j].id
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// FindPath runs A* from start to goal under the given toll and returns
// the optimal route.
//
// Returns ErrNodeNotFound when either endpoint is absent. An
// unreachable goal yields an empty path with +Inf cost and no error.
// start == goal yields the single-node path with cost 0.
//
// Complexity: O(E log V) time, O(V + E) space.
func (e *Engine) FindPath(start, goal string, taxAmount float64) (Route, error) {
	// 1) Validate endpoints.
	if !e.HasNode(start) {
		return Route{}, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}
	if !e.HasNode(goal) {
		return Route{}, fmt.Errorf("%w: goal %q", ErrNodeNotFound, goal)
	}

	// 2) Prepare search state: best-known g per node, predecessors for
	//    path reconstruction, and the closed set of finalized nodes.
	gScore := make(map[string]float64, len(e.nodes))
	prev := make(map[string]string, len(e.nodes))
	closed := make(map[string]bool, len(e.nodes))

	h0, err := e.Heuristic(start, goal)
	if err != nil {
		return Route{}, err
	}

	pq := make(frontier, 0, len(e.nodes))
	heap.Init(&pq)
	gScore[start] = 0
	heap.Push(&pq, frontierItem{id: start, f: h0, g: 0})

	// 3) Main loop: pop the best frontier entry, finalize, relax edges.
	//    Lazy-decrease-key: stale entries are skipped via the closed set.
	var item frontierItem
	for pq.Len() > 0 {
		item = heap.Pop(&pq).(frontierItem)

		if closed[item.id] {
			continue
		}
		closed[item.id] = true

		if item.id == goal {
			return e.buildRoute(start, goal, item.g, prev), nil
		}

		var ed Edge
		for _, ed = range e.adj[item.id] {
			if closed[ed.To] {
				continue
			}

			newG := item.g + e.EdgeCost(ed, taxAmount)
			if known, seen := gScore[ed.To]; seen && newG >= known {
				continue
			}
			gScore[ed.To] = newG
			prev[ed.To] = item.id

			h, herr := e.Heuristic(ed.To, goal)
			if herr != nil {
				return Route{}, herr
			}
			heap.Push(&pq, frontierItem{id: ed.To, f: newG + h, g: newG})
		}
	}

	// 4) Frontier exhausted: the goal is unreachable.
	return Route{Path: nil, CostMinutes: math.Inf(1)}, nil
}

// buildRoute reconstructs the node sequence from the predecessor map and
// fills the residential flag.
func (e *Engine) buildRoute(start, goal string, cost float64, prev map[string]string) Route {
	var rev []string
	for at := goal; ; at = prev[at] {
		rev = append(rev, at)
		if at == start {
			break
		}
	}

	path := make([]string, len(rev))
	usesRes := false
	var i int
	for i = range rev {
		path[i] = rev[len(rev)-1-i]
		if e.nodes[path[i]].Residential {
			usesRes = true
		}
	}

	return Route{Path: path, CostMinutes: cost, UsesResidential: usesRes}
}
