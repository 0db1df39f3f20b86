package igraph

import "github.com/wippyai/igraph-go/abi"

// Simplify removes multi-edges, loops, or both, in place.
func (g *Graph) Simplify(multiple, loops bool) error {
	return g.mutate("igraph_simplify", func(eng abi.Engine, p abi.Ptr) abi.Status {
		return eng.Simplify(p, multiple, loops)
	})
}

// ToDirected converts the graph to a directed one in place.
func (g *Graph) ToDirected(mode ToDirectedMode) error {
	return g.mutate("igraph_to_directed", func(eng abi.Engine, p abi.Ptr) abi.Status {
		return eng.ToDirected(p, mode)
	})
}

// ToUndirected converts the graph to an undirected one in place.
func (g *Graph) ToUndirected(mode ToUndirectedMode) error {
	return g.mutate("igraph_to_undirected", func(eng abi.Engine, p abi.Ptr) abi.Status {
		return eng.ToUndirected(p, mode)
	})
}

// InducedSubgraph returns a new graph made of vids and the edges between
// them. The receiver is left unchanged.
func (g *Graph) InducedSubgraph(vids []int64) (*Graph, error) {
	p, err := g.enter()
	if err != nil {
		return nil, err
	}
	defer g.h.release()

	var sub *Graph
	lib := g.h.lib
	err = lib.withInts(vids, func(vs abi.Ptr) error {
		sub, err = lib.newGraph("igraph_induced_subgraph", func(res abi.Ptr) abi.Status {
			return lib.eng.InducedSubgraph(p, res, vs)
		})
		return err
	})
	return sub, err
}

// Union returns a new graph holding the edges of both graphs. The vertex
// count is the larger of the two. Neither input changes.
func (g *Graph) Union(other *Graph) (*Graph, error) {
	p, q, done, err := g.enterPair("igraph_union", other)
	if err != nil {
		return nil, err
	}
	defer done()

	lib := g.h.lib
	return lib.newGraph("igraph_union", func(res abi.Ptr) abi.Status {
		return lib.eng.Union(res, p, q)
	})
}

// Copy returns an independent deep copy.
func (g *Graph) Copy() (*Graph, error) {
	p, err := g.enter()
	if err != nil {
		return nil, err
	}
	defer g.h.release()

	lib := g.h.lib
	return lib.newGraph("igraph_copy", func(res abi.Ptr) abi.Status {
		return lib.eng.Copy(res, p)
	})
}
