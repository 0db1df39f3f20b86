package engine

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/igraph-go/abi"
)

func (e *WazeroEngine) Destroy(g abi.Ptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value("gi_destroy", ptr(g))
}

func (e *WazeroEngine) Copy(to, from abi.Ptr) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_copy", ptr(to), ptr(from))
}

// Constructors

func (e *WazeroEngine) Empty(g abi.Ptr, n int64, directed bool) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_empty", ptr(g), i64(n), flag(directed))
}

func (e *WazeroEngine) Create(g abi.Ptr, edges abi.Ptr, n int64, directed bool) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_create", ptr(g), ptr(edges), i64(n), flag(directed))
}

func (e *WazeroEngine) Famous(g abi.Ptr, name string) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, st := e.cstring(name)
	if st != abi.StatusSuccess {
		return st
	}
	defer e.release(s)
	return e.status("gi_famous", ptr(g), api.EncodeU32(s))
}

func (e *WazeroEngine) Ring(g abi.Ptr, n int64, directed, mutual, circular bool) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_ring", ptr(g), i64(n), flag(directed), flag(mutual), flag(circular))
}

func (e *WazeroEngine) Star(g abi.Ptr, n int64, mode abi.StarMode, center int64) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_star", ptr(g), i64(n), enum(mode), i64(center))
}

func (e *WazeroEngine) Full(g abi.Ptr, n int64, directed, loops bool) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_full", ptr(g), i64(n), flag(directed), flag(loops))
}

func (e *WazeroEngine) KaryTree(g abi.Ptr, n, children int64, mode abi.TreeMode) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_kary_tree", ptr(g), i64(n), i64(children), enum(mode))
}

func (e *WazeroEngine) ErdosRenyiGNP(g abi.Ptr, n int64, p float64, directed, loops bool) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_erdos_renyi_gnp", ptr(g), i64(n), f64(p), flag(directed), flag(loops))
}

func (e *WazeroEngine) ErdosRenyiGNM(g abi.Ptr, n, m int64, directed, loops bool) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_erdos_renyi_gnm", ptr(g), i64(n), i64(m), flag(directed), flag(loops))
}

func (e *WazeroEngine) Barabasi(g abi.Ptr, n, m int64, directed bool) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_barabasi", ptr(g), i64(n), i64(m), flag(directed))
}

// Queries

func (e *WazeroEngine) VCount(g abi.Ptr) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int64(e.value("gi_vcount", ptr(g)))
}

func (e *WazeroEngine) ECount(g abi.Ptr) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int64(e.value("gi_ecount", ptr(g)))
}

func (e *WazeroEngine) IsDirected(g abi.Ptr) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return api.DecodeU32(e.value("gi_is_directed", ptr(g))) != 0
}

func (e *WazeroEngine) Neighbors(g, res abi.Ptr, vid int64, mode abi.NeighborMode) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_neighbors", ptr(g), ptr(res), i64(vid), enum(mode))
}

func (e *WazeroEngine) Degree(g, res abi.Ptr, mode abi.NeighborMode, loops abi.Loops) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_degree", ptr(g), ptr(res), enum(mode), enum(loops))
}

func (e *WazeroEngine) Edge(g abi.Ptr, eid int64) (from, to int64, st abi.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if st = e.status("gi_edge", ptr(g), i64(eid), e.out(0), e.out(1)); st != abi.StatusSuccess {
		return 0, 0, st
	}
	if from, st = e.outInt(0); st != abi.StatusSuccess {
		return 0, 0, st
	}
	to, st = e.outInt(1)
	return from, to, st
}

func (e *WazeroEngine) AreAdjacent(g abi.Ptr, v1, v2 int64) (bool, abi.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if st := e.status("gi_are_adjacent", ptr(g), i64(v1), i64(v2), e.out(0)); st != abi.StatusSuccess {
		return false, st
	}
	return e.outBool(0)
}

func (e *WazeroEngine) EdgeList(g, res abi.Ptr) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_get_edgelist", ptr(g), ptr(res))
}

// Mutations

func (e *WazeroEngine) AddVertices(g abi.Ptr, n int64) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_add_vertices", ptr(g), i64(n))
}

func (e *WazeroEngine) AddEdges(g, edges abi.Ptr) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_add_edges", ptr(g), ptr(edges))
}

func (e *WazeroEngine) DeleteVertices(g, vids abi.Ptr) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_delete_vertices", ptr(g), ptr(vids))
}

func (e *WazeroEngine) DeleteEdges(g, eids abi.Ptr) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_delete_edges", ptr(g), ptr(eids))
}

// Transforms

func (e *WazeroEngine) Simplify(g abi.Ptr, multiple, loops bool) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_simplify", ptr(g), flag(multiple), flag(loops))
}

func (e *WazeroEngine) ToDirected(g abi.Ptr, mode abi.ToDirectedMode) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_to_directed", ptr(g), enum(mode))
}

func (e *WazeroEngine) ToUndirected(g abi.Ptr, mode abi.ToUndirectedMode) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_to_undirected", ptr(g), enum(mode))
}

func (e *WazeroEngine) InducedSubgraph(g, res, vids abi.Ptr) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_induced_subgraph", ptr(g), ptr(res), ptr(vids))
}

func (e *WazeroEngine) Union(res, left, right abi.Ptr) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_union", ptr(res), ptr(left), ptr(right))
}

// Paths and centrality

func (e *WazeroEngine) Distances(g, res abi.Ptr, mode abi.NeighborMode) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_distances", ptr(g), ptr(res), enum(mode))
}

func (e *WazeroEngine) Diameter(g abi.Ptr, directed bool) (float64, abi.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if st := e.status("gi_diameter", ptr(g), flag(directed), e.out(0)); st != abi.StatusSuccess {
		return 0, st
	}
	return e.outReal(0)
}

func (e *WazeroEngine) Betweenness(g, res abi.Ptr, directed bool) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_betweenness", ptr(g), ptr(res), flag(directed))
}

func (e *WazeroEngine) Closeness(g, res abi.Ptr, mode abi.NeighborMode) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_closeness", ptr(g), ptr(res), enum(mode))
}

func (e *WazeroEngine) PageRank(g, res abi.Ptr, damping float64) (float64, abi.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if st := e.status("gi_pagerank", ptr(g), ptr(res), f64(damping), e.out(0)); st != abi.StatusSuccess {
		return 0, st
	}
	return e.outReal(0)
}

// Structure

func (e *WazeroEngine) IsConnected(g abi.Ptr, mode abi.Connectedness) (bool, abi.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if st := e.status("gi_is_connected", ptr(g), enum(mode), e.out(0)); st != abi.StatusSuccess {
		return false, st
	}
	return e.outBool(0)
}

func (e *WazeroEngine) ConnectedComponents(g, membership, csize abi.Ptr, mode abi.Connectedness) (int64, abi.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st := e.status("gi_connected_components", ptr(g), ptr(membership), ptr(csize), enum(mode), e.out(0))
	if st != abi.StatusSuccess {
		return 0, st
	}
	return e.outInt(0)
}

// Communities

func (e *WazeroEngine) CommunityLeiden(g, membership abi.Ptr, resolution, beta float64, iterations int64) (clusters int64, quality float64, st abi.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st = e.status("gi_community_leiden", ptr(g), ptr(membership),
		f64(resolution), f64(beta), i64(iterations), e.out(0), e.out(1))
	if st != abi.StatusSuccess {
		return 0, 0, st
	}
	if clusters, st = e.outInt(0); st != abi.StatusSuccess {
		return 0, 0, st
	}
	quality, st = e.outReal(1)
	return clusters, quality, st
}

func (e *WazeroEngine) CommunityLabelPropagation(g, membership abi.Ptr) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_community_label_propagation", ptr(g), ptr(membership))
}

func (e *WazeroEngine) CommunityFastGreedy(g, modularity, membership abi.Ptr) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_community_fastgreedy", ptr(g), ptr(modularity), ptr(membership))
}

// Isomorphism

func (e *WazeroEngine) CountSubisomorphismsVF2(g, pattern abi.Ptr) (int64, abi.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if st := e.status("gi_count_subisomorphisms_vf2", ptr(g), ptr(pattern), e.out(0)); st != abi.StatusSuccess {
		return 0, st
	}
	return e.outInt(0)
}

func (e *WazeroEngine) SubisomorphismsVF2(g, pattern, maps abi.Ptr) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_get_subisomorphisms_vf2", ptr(g), ptr(pattern), ptr(maps))
}
