package igraph

import "github.com/wippyai/igraph-go/abi"

// AddVertices appends n isolated vertices.
func (g *Graph) AddVertices(n int64) error {
	return g.mutate("igraph_add_vertices", func(eng abi.Engine, p abi.Ptr) abi.Status {
		return eng.AddVertices(p, n)
	})
}

// AddEdges appends edges. Every endpoint must already exist.
func (g *Graph) AddEdges(edges []Edge) error {
	return g.h.lib.withInts(flattenEdges(edges), func(ev abi.Ptr) error {
		return g.mutate("igraph_add_edges", func(eng abi.Engine, p abi.Ptr) abi.Status {
			return eng.AddEdges(p, ev)
		})
	})
}

// DeleteVertices removes vertices and their incident edges. Remaining
// vertices are renumbered.
func (g *Graph) DeleteVertices(vids []int64) error {
	return g.h.lib.withInts(vids, func(vs abi.Ptr) error {
		return g.mutate("igraph_delete_vertices", func(eng abi.Engine, p abi.Ptr) abi.Status {
			return eng.DeleteVertices(p, vs)
		})
	})
}

// DeleteEdges removes edges. Remaining edges are renumbered.
func (g *Graph) DeleteEdges(eids []int64) error {
	return g.h.lib.withInts(eids, func(es abi.Ptr) error {
		return g.mutate("igraph_delete_edges", func(eng abi.Engine, p abi.Ptr) abi.Status {
			return eng.DeleteEdges(p, es)
		})
	})
}
