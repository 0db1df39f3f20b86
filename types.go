package igraph

import "github.com/wippyai/igraph-go/abi"

// Mode enums, re-exported so callers rarely import abi directly.
type (
	NeighborMode     = abi.NeighborMode
	Connectedness    = abi.Connectedness
	Loops            = abi.Loops
	StarMode         = abi.StarMode
	TreeMode         = abi.TreeMode
	ToDirectedMode   = abi.ToDirectedMode
	ToUndirectedMode = abi.ToUndirectedMode
)

const (
	Out = abi.NeighborOut
	In  = abi.NeighborIn
	All = abi.NeighborAll

	Weak   = abi.Weak
	Strong = abi.Strong

	NoLoops    = abi.NoLoops
	LoopsTwice = abi.LoopsTwice
	LoopsOnce  = abi.LoopsOnce

	StarOut        = abi.StarOut
	StarIn         = abi.StarIn
	StarUndirected = abi.StarUndirected
	StarMutual     = abi.StarMutual

	TreeOut        = abi.TreeOut
	TreeIn         = abi.TreeIn
	TreeUndirected = abi.TreeUndirected

	ToDirectedArbitrary = abi.ToDirectedArbitrary
	ToDirectedMutual    = abi.ToDirectedMutual
	ToDirectedRandom    = abi.ToDirectedRandom
	ToDirectedAcyclic   = abi.ToDirectedAcyclic

	ToUndirectedEach     = abi.ToUndirectedEach
	ToUndirectedCollapse = abi.ToUndirectedCollapse
	ToUndirectedMutual   = abi.ToUndirectedMutual
)

// Edge is a directed pair of vertex ids. In undirected graphs the order is
// the one the engine reports.
type Edge struct {
	From, To int64
}

func flattenEdges(edges []Edge) []int64 {
	out := make([]int64, 0, 2*len(edges))
	for _, e := range edges {
		out = append(out, e.From, e.To)
	}
	return out
}

func pairEdges(flat []int64) []Edge {
	out := make([]Edge, len(flat)/2)
	for i := range out {
		out[i] = Edge{From: flat[2*i], To: flat[2*i+1]}
	}
	return out
}
