package igraph

import "github.com/wippyai/igraph-go/abi"

// Betweenness returns the unnormalized betweenness of every vertex.
func (g *Graph) Betweenness(directed bool) ([]float64, error) {
	return realResult(g, "igraph_betweenness", func(eng abi.Engine, p, res abi.Ptr) abi.Status {
		return eng.Betweenness(p, res, directed)
	})
}

// Closeness returns the normalized closeness of every vertex.
func (g *Graph) Closeness(mode NeighborMode) ([]float64, error) {
	return realResult(g, "igraph_closeness", func(eng abi.Engine, p, res abi.Ptr) abi.Status {
		return eng.Closeness(p, res, mode)
	})
}

// PageRank returns the PageRank of every vertex. The scores sum to one.
func (g *Graph) PageRank(damping float64) ([]float64, error) {
	return realResult(g, "igraph_pagerank", func(eng abi.Engine, p, res abi.Ptr) abi.Status {
		_, st := eng.PageRank(p, res, damping)
		return st
	})
}
