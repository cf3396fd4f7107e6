// Package routing models freight route choice on the corridor road
// network with an A* search that penalizes residential streets.
//
// Overview:
//
//   - The engine owns a fixed 8-node / 12-undirected-edge network: the
//     expressway spine, an adjacent residential grid, and the mixed
//     connectors between them. Every edge is inserted in both directions
//     and the whole structure is read-only after construction.
//   - Edge costs are expressed in equivalent minutes: residential edges
//     are multiplied by the residential penalty weight; expressway edges
//     absorb the toll, converted to minutes at the trucker time-value
//     rate and spread evenly over the expected expressway crossings.
//   - FindPath runs A* with an admissible straight-line heuristic, so the
//     returned route is cost-optimal. The frontier orders ties by
//     (fScore, gScore, nodeID), which makes the search fully
//     deterministic.
//   - AnalyzeDiversion compares the tolled and toll-free optima and flags
//     a diversion when the toll pushes the optimum onto residential
//     streets. BatchAnalyze scans tax levels ascending for the first
//     diverting level.
//
// Complexity:
//
//   - FindPath: O(E log V) with the lazy-decrease-key frontier; V = 8,
//     E = 24 directed edges for the default network.
//
// Error handling (sentinel errors):
//
//   - ErrBadPenalty   — penalty weight below 1.0 at construction.
//   - ErrBadNetwork   — duplicate or empty node IDs in a custom network.
//   - ErrDanglingEdge — custom edge referencing an unknown node.
//   - ErrNodeNotFound — search endpoint absent from the network.
//
// An unreachable goal is not an error: FindPath returns an empty path
// with infinite cost.
//
// Concurrency:
//
//   - The engine holds no mutable state after construction; any number
//     of searches may run concurrently on one instance.
package routing
