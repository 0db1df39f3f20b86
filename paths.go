package igraph

import "github.com/wippyai/igraph-go/abi"

// Distances returns the unweighted shortest path lengths between every pair
// of vertices. Unreachable pairs hold +Inf.
func (g *Graph) Distances(mode NeighborMode) ([][]float64, error) {
	return matrixResult(g, "igraph_distances", func(eng abi.Engine, p, res abi.Ptr) abi.Status {
		return eng.Distances(p, res, mode)
	})
}

// Diameter returns the longest finite shortest path length. Pairs that
// cannot reach each other are ignored; the null graph yields NaN.
func (g *Graph) Diameter(directed bool) (float64, error) {
	return scalar(g, "igraph_diameter", func(eng abi.Engine, p abi.Ptr) (float64, abi.Status) {
		return eng.Diameter(p, directed)
	})
}
