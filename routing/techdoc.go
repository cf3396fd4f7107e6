package routing

// Doc is the static technical description of the route-choice engine,
// surfaced through the analytics facade.
type Doc struct {
	Algorithm     string
	Purpose       string
	Heuristic     string
	Complexity    string
	PenaltyWeight float64
	DecisionRule  string
	NodeCount     int
	EdgeCount     int
}

// TechnicalDoc returns the static documentation record for this engine's
// configuration and network.
func (e *Engine) TechnicalDoc() Doc {
	edgeCount := 0
	var id string
	for _, id = range e.order {
		edgeCount += len(e.adj[id])
	}

	return Doc{
		Algorithm:     "A* shortest path",
		Purpose:       "Model freight route choice under a corridor toll",
		Heuristic:     "Planar straight-line distance at the reference speed (admissible)",
		Complexity:    "O(E log V)",
		PenaltyWeight: e.penalty,
		DecisionRule:  "Trucks take the minimum equivalent-minutes route; tolls load expressway edges, the penalty weight loads residential edges",
		NodeCount:     len(e.nodes),
		EdgeCount:     edgeCount,
	}
}
