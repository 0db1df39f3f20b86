package igraph

import (
	"strings"

	"github.com/wippyai/igraph-go/abi"
	"github.com/wippyai/igraph-go/errors"
)

// Empty creates a graph with n vertices and no edges.
func (l *Library) Empty(n int64, directed bool) (*Graph, error) {
	return l.newGraph("igraph_empty", func(g abi.Ptr) abi.Status {
		return l.eng.Empty(g, n, directed)
	})
}

// FromEdges creates a graph with at least n vertices and the given edges.
// The engine adds vertices when an edge names one beyond n-1.
func (l *Library) FromEdges(edges []Edge, n int64, directed bool) (*Graph, error) {
	var g *Graph
	err := l.withInts(flattenEdges(edges), func(ev abi.Ptr) error {
		var err error
		g, err = l.newGraph("igraph_create", func(p abi.Ptr) abi.Status {
			return l.eng.Create(p, ev, n, directed)
		})
		return err
	})
	return g, err
}

// Famous creates one of igraph's named graphs, such as "Petersen" or
// "Zachary". Names are matched case-insensitively by the engine.
func (l *Library) Famous(name string) (*Graph, error) {
	if strings.IndexByte(name, 0) >= 0 {
		return nil, errors.InvalidValue("igraph_famous", "name contains a NUL byte")
	}
	return l.newGraph("igraph_famous", func(g abi.Ptr) abi.Status {
		return l.eng.Famous(g, name)
	})
}

// Ring creates a ring or, without circular, a path of n vertices.
func (l *Library) Ring(n int64, directed, mutual, circular bool) (*Graph, error) {
	return l.newGraph("igraph_ring", func(g abi.Ptr) abi.Status {
		return l.eng.Ring(g, n, directed, mutual, circular)
	})
}

// Star creates a star of n vertices around center.
func (l *Library) Star(n int64, mode StarMode, center int64) (*Graph, error) {
	return l.newGraph("igraph_star", func(g abi.Ptr) abi.Status {
		return l.eng.Star(g, n, mode, center)
	})
}

// Full creates a complete graph on n vertices.
func (l *Library) Full(n int64, directed, loops bool) (*Graph, error) {
	return l.newGraph("igraph_full", func(g abi.Ptr) abi.Status {
		return l.eng.Full(g, n, directed, loops)
	})
}

// KaryTree creates a tree of n vertices where every inner vertex has the
// given number of children.
func (l *Library) KaryTree(n, children int64, mode TreeMode) (*Graph, error) {
	return l.newGraph("igraph_kary_tree", func(g abi.Ptr) abi.Status {
		return l.eng.KaryTree(g, n, children, mode)
	})
}

// ErdosRenyiGNP creates a G(n, p) random graph. Multi-edges are never
// generated; loops only when asked for.
func (l *Library) ErdosRenyiGNP(n int64, p float64, directed, loops bool) (*Graph, error) {
	return l.newGraph("igraph_erdos_renyi_game_gnp", func(g abi.Ptr) abi.Status {
		return l.eng.ErdosRenyiGNP(g, n, p, directed, loops)
	})
}

// ErdosRenyiGNM creates a G(n, m) random graph.
func (l *Library) ErdosRenyiGNM(n, m int64, directed, loops bool) (*Graph, error) {
	return l.newGraph("igraph_erdos_renyi_game_gnm", func(g abi.Ptr) abi.Status {
		return l.eng.ErdosRenyiGNM(g, n, m, directed, loops)
	})
}

// Barabasi creates a preferential attachment graph of n vertices, each new
// vertex adding m edges.
func (l *Library) Barabasi(n, m int64, directed bool) (*Graph, error) {
	return l.newGraph("igraph_barabasi_game", func(g abi.Ptr) abi.Status {
		return l.eng.Barabasi(g, n, m, directed)
	})
}
