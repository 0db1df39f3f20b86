package igraph

import "github.com/wippyai/igraph-go/abi"

// VCount returns the number of vertices. It works on poisoned graphs.
func (g *Graph) VCount() int64 {
	p := g.h.acquire()
	defer g.h.release()
	return g.h.lib.eng.VCount(p)
}

// ECount returns the number of edges. It works on poisoned graphs.
func (g *Graph) ECount() int64 {
	p := g.h.acquire()
	defer g.h.release()
	return g.h.lib.eng.ECount(p)
}

// IsDirected reports whether the graph is directed.
func (g *Graph) IsDirected() bool {
	p := g.h.acquire()
	defer g.h.release()
	return g.h.lib.eng.IsDirected(p)
}

// Neighbors returns the neighbors of vid. Loop edges are listed twice and
// multi-edges once per edge.
func (g *Graph) Neighbors(vid int64, mode NeighborMode) ([]int64, error) {
	return intResult(g, "igraph_neighbors", func(eng abi.Engine, p, res abi.Ptr) abi.Status {
		return eng.Neighbors(p, res, vid, mode)
	})
}

// Degree returns the degree of every vertex.
func (g *Graph) Degree(mode NeighborMode, loops Loops) ([]int64, error) {
	return intResult(g, "igraph_degree", func(eng abi.Engine, p, res abi.Ptr) abi.Status {
		return eng.Degree(p, res, mode, loops)
	})
}

// Edge returns the endpoints of edge eid.
func (g *Graph) Edge(eid int64) (Edge, error) {
	return scalar(g, "igraph_edge", func(eng abi.Engine, p abi.Ptr) (Edge, abi.Status) {
		from, to, st := eng.Edge(p, eid)
		return Edge{From: from, To: to}, st
	})
}

// AreAdjacent reports whether an edge leads from v1 to v2.
func (g *Graph) AreAdjacent(v1, v2 int64) (bool, error) {
	return scalar(g, "igraph_are_adjacent", func(eng abi.Engine, p abi.Ptr) (bool, abi.Status) {
		return eng.AreAdjacent(p, v1, v2)
	})
}

// EdgeList returns every edge in edge id order.
func (g *Graph) EdgeList() ([]Edge, error) {
	flat, err := intResult(g, "igraph_get_edgelist", func(eng abi.Engine, p, res abi.Ptr) abi.Status {
		return eng.EdgeList(p, res)
	})
	if err != nil {
		return nil, err
	}
	return pairEdges(flat), nil
}
