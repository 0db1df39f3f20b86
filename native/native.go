//go:build igraphnative && cgo

package native

/*
#cgo pkg-config: igraph
#include "shim.h"
*/
import "C"

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/igraph-go/abi"
)

// Engine calls a thread-safe libigraph through the gi_* shim. It has no
// state of its own; igraph keeps its RNG and handlers per OS thread.
type Engine struct{}

var _ abi.Engine = (*Engine)(nil)

// New returns an engine backed by the linked libigraph.
func New() *Engine {
	Logger().Debug("native engine ready", zap.String("igraph", Version()))
	return &Engine{}
}

// Version reports the linked igraph version string.
func Version() string {
	return C.GoString(C.gi_version())
}

func p(x abi.Ptr) C.gi_ptr { return C.gi_ptr(x) }

func n(x int64) C.igraph_integer_t { return C.igraph_integer_t(x) }

func b(x bool) C.int {
	if x {
		return 1
	}
	return 0
}

func st(s C.gi_status) abi.Status { return abi.Status(s) }

// Storage

func (*Engine) Alloc(k abi.Kind) (abi.Ptr, abi.Status) {
	ptr := C.gi_alloc(C.int32_t(k))
	if ptr == 0 {
		return 0, abi.StatusNoMemory
	}
	return abi.Ptr(ptr), abi.StatusSuccess
}

func (*Engine) Free(k abi.Kind, ptr abi.Ptr) { C.gi_free(C.int32_t(k), p(ptr)) }

// igraph_vector_t

func (*Engine) VectorInit(v abi.Ptr, size int64) abi.Status {
	return st(C.gi_vector_init(p(v), n(size)))
}

func (*Engine) VectorDestroy(v abi.Ptr) { C.gi_vector_destroy(p(v)) }

func (*Engine) VectorSize(v abi.Ptr) int64 { return int64(C.gi_vector_size(p(v))) }

func (*Engine) VectorGet(v abi.Ptr, i int64) float64 {
	return float64(C.gi_vector_get(p(v), n(i)))
}

func (*Engine) VectorSet(v abi.Ptr, i int64, x float64) {
	C.gi_vector_set(p(v), n(i), C.double(x))
}

func (*Engine) VectorPushBack(v abi.Ptr, x float64) abi.Status {
	return st(C.gi_vector_push_back(p(v), C.double(x)))
}

// igraph_vector_int_t

func (*Engine) VectorIntInit(v abi.Ptr, size int64) abi.Status {
	return st(C.gi_vector_int_init(p(v), n(size)))
}

func (*Engine) VectorIntDestroy(v abi.Ptr) { C.gi_vector_int_destroy(p(v)) }

func (*Engine) VectorIntSize(v abi.Ptr) int64 { return int64(C.gi_vector_int_size(p(v))) }

func (*Engine) VectorIntGet(v abi.Ptr, i int64) int64 {
	return int64(C.gi_vector_int_get(p(v), n(i)))
}

func (*Engine) VectorIntSet(v abi.Ptr, i int64, x int64) {
	C.gi_vector_int_set(p(v), n(i), n(x))
}

func (*Engine) VectorIntPushBack(v abi.Ptr, x int64) abi.Status {
	return st(C.gi_vector_int_push_back(p(v), n(x)))
}

// igraph_matrix_t

func (*Engine) MatrixInit(m abi.Ptr, nrow, ncol int64) abi.Status {
	return st(C.gi_matrix_init(p(m), n(nrow), n(ncol)))
}

func (*Engine) MatrixDestroy(m abi.Ptr) { C.gi_matrix_destroy(p(m)) }

func (*Engine) MatrixNrow(m abi.Ptr) int64 { return int64(C.gi_matrix_nrow(p(m))) }

func (*Engine) MatrixNcol(m abi.Ptr) int64 { return int64(C.gi_matrix_ncol(p(m))) }

func (*Engine) MatrixGet(m abi.Ptr, row, col int64) float64 {
	return float64(C.gi_matrix_get(p(m), n(row), n(col)))
}

func (*Engine) MatrixSet(m abi.Ptr, row, col int64, x float64) {
	C.gi_matrix_set(p(m), n(row), n(col), C.double(x))
}

// igraph_vector_int_list_t

func (*Engine) VectorIntListInit(l abi.Ptr, size int64) abi.Status {
	return st(C.gi_vector_int_list_init(p(l), n(size)))
}

func (*Engine) VectorIntListDestroy(l abi.Ptr) { C.gi_vector_int_list_destroy(p(l)) }

func (*Engine) VectorIntListSize(l abi.Ptr) int64 {
	return int64(C.gi_vector_int_list_size(p(l)))
}

func (*Engine) VectorIntListItemSize(l abi.Ptr, i int64) int64 {
	return int64(C.gi_vector_int_list_item_size(p(l), n(i)))
}

func (*Engine) VectorIntListItemGet(l abi.Ptr, i, j int64) int64 {
	return int64(C.gi_vector_int_list_item_get(p(l), n(i), n(j)))
}

func (*Engine) VectorIntListPushBackCopy(l, v abi.Ptr) abi.Status {
	return st(C.gi_vector_int_list_push_back_copy(p(l), p(v)))
}

// igraph_t

func (*Engine) Destroy(g abi.Ptr) { C.gi_destroy(p(g)) }

func (*Engine) Copy(to, from abi.Ptr) abi.Status { return st(C.gi_copy(p(to), p(from))) }

func (*Engine) Empty(g abi.Ptr, size int64, directed bool) abi.Status {
	return st(C.gi_empty(p(g), n(size), b(directed)))
}

func (*Engine) Create(g, edges abi.Ptr, size int64, directed bool) abi.Status {
	return st(C.gi_create(p(g), p(edges), n(size), b(directed)))
}

func (*Engine) Famous(g abi.Ptr, name string) abi.Status {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return st(C.gi_famous(p(g), cname))
}

func (*Engine) Ring(g abi.Ptr, size int64, directed, mutual, circular bool) abi.Status {
	return st(C.gi_ring(p(g), n(size), b(directed), b(mutual), b(circular)))
}

func (*Engine) Star(g abi.Ptr, size int64, mode abi.StarMode, center int64) abi.Status {
	return st(C.gi_star(p(g), n(size), C.int32_t(mode), n(center)))
}

func (*Engine) Full(g abi.Ptr, size int64, directed, loops bool) abi.Status {
	return st(C.gi_full(p(g), n(size), b(directed), b(loops)))
}

func (*Engine) KaryTree(g abi.Ptr, size, children int64, mode abi.TreeMode) abi.Status {
	return st(C.gi_kary_tree(p(g), n(size), n(children), C.int32_t(mode)))
}

func (*Engine) ErdosRenyiGNP(g abi.Ptr, size int64, prob float64, directed, loops bool) abi.Status {
	return st(C.gi_erdos_renyi_gnp(p(g), n(size), C.double(prob), b(directed), b(loops)))
}

func (*Engine) ErdosRenyiGNM(g abi.Ptr, size, m int64, directed, loops bool) abi.Status {
	return st(C.gi_erdos_renyi_gnm(p(g), n(size), n(m), b(directed), b(loops)))
}

func (*Engine) Barabasi(g abi.Ptr, size, m int64, directed bool) abi.Status {
	return st(C.gi_barabasi(p(g), n(size), n(m), b(directed)))
}

// Queries

func (*Engine) VCount(g abi.Ptr) int64 { return int64(C.gi_vcount(p(g))) }

func (*Engine) ECount(g abi.Ptr) int64 { return int64(C.gi_ecount(p(g))) }

func (*Engine) IsDirected(g abi.Ptr) bool { return C.gi_is_directed(p(g)) != 0 }

func (*Engine) Neighbors(g, res abi.Ptr, vid int64, mode abi.NeighborMode) abi.Status {
	return st(C.gi_neighbors(p(g), p(res), n(vid), C.int32_t(mode)))
}

func (*Engine) Degree(g, res abi.Ptr, mode abi.NeighborMode, loops abi.Loops) abi.Status {
	return st(C.gi_degree(p(g), p(res), C.int32_t(mode), C.int32_t(loops)))
}

func (*Engine) Edge(g abi.Ptr, eid int64) (from, to int64, status abi.Status) {
	var f, t C.igraph_integer_t
	if status = st(C.gi_edge(p(g), n(eid), &f, &t)); status != abi.StatusSuccess {
		return 0, 0, status
	}
	return int64(f), int64(t), status
}

func (*Engine) AreAdjacent(g abi.Ptr, v1, v2 int64) (bool, abi.Status) {
	var res C.int
	status := st(C.gi_are_adjacent(p(g), n(v1), n(v2), &res))
	return res != 0, status
}

func (*Engine) EdgeList(g, res abi.Ptr) abi.Status {
	return st(C.gi_get_edgelist(p(g), p(res)))
}

// Mutations

func (*Engine) AddVertices(g abi.Ptr, count int64) abi.Status {
	return st(C.gi_add_vertices(p(g), n(count)))
}

func (*Engine) AddEdges(g, edges abi.Ptr) abi.Status {
	return st(C.gi_add_edges(p(g), p(edges)))
}

func (*Engine) DeleteVertices(g, vids abi.Ptr) abi.Status {
	return st(C.gi_delete_vertices(p(g), p(vids)))
}

func (*Engine) DeleteEdges(g, eids abi.Ptr) abi.Status {
	return st(C.gi_delete_edges(p(g), p(eids)))
}

// Transforms

func (*Engine) Simplify(g abi.Ptr, multiple, loops bool) abi.Status {
	return st(C.gi_simplify(p(g), b(multiple), b(loops)))
}

func (*Engine) ToDirected(g abi.Ptr, mode abi.ToDirectedMode) abi.Status {
	return st(C.gi_to_directed(p(g), C.int32_t(mode)))
}

func (*Engine) ToUndirected(g abi.Ptr, mode abi.ToUndirectedMode) abi.Status {
	return st(C.gi_to_undirected(p(g), C.int32_t(mode)))
}

func (*Engine) InducedSubgraph(g, res, vids abi.Ptr) abi.Status {
	return st(C.gi_induced_subgraph(p(g), p(res), p(vids)))
}

func (*Engine) Union(res, left, right abi.Ptr) abi.Status {
	return st(C.gi_union(p(res), p(left), p(right)))
}

// Paths and centrality

func (*Engine) Distances(g, res abi.Ptr, mode abi.NeighborMode) abi.Status {
	return st(C.gi_distances(p(g), p(res), C.int32_t(mode)))
}

func (*Engine) Diameter(g abi.Ptr, directed bool) (float64, abi.Status) {
	var d C.double
	status := st(C.gi_diameter(p(g), b(directed), &d))
	return float64(d), status
}

func (*Engine) Betweenness(g, res abi.Ptr, directed bool) abi.Status {
	return st(C.gi_betweenness(p(g), p(res), b(directed)))
}

func (*Engine) Closeness(g, res abi.Ptr, mode abi.NeighborMode) abi.Status {
	return st(C.gi_closeness(p(g), p(res), C.int32_t(mode)))
}

func (*Engine) PageRank(g, res abi.Ptr, damping float64) (float64, abi.Status) {
	var ev C.double
	status := st(C.gi_pagerank(p(g), p(res), C.double(damping), &ev))
	return float64(ev), status
}

// Structure

func (*Engine) IsConnected(g abi.Ptr, mode abi.Connectedness) (bool, abi.Status) {
	var res C.int
	status := st(C.gi_is_connected(p(g), C.int32_t(mode), &res))
	return res != 0, status
}

func (*Engine) ConnectedComponents(g, membership, csize abi.Ptr, mode abi.Connectedness) (int64, abi.Status) {
	var count C.igraph_integer_t
	status := st(C.gi_connected_components(p(g), p(membership), p(csize), C.int32_t(mode), &count))
	return int64(count), status
}

// Communities

func (*Engine) CommunityLeiden(g, membership abi.Ptr, resolution, beta float64, iterations int64) (int64, float64, abi.Status) {
	var clusters C.igraph_integer_t
	var quality C.double
	status := st(C.gi_community_leiden(p(g), p(membership), C.double(resolution), C.double(beta),
		n(iterations), &clusters, &quality))
	if status != abi.StatusSuccess {
		return 0, 0, status
	}
	return int64(clusters), float64(quality), status
}

func (*Engine) CommunityLabelPropagation(g, membership abi.Ptr) abi.Status {
	return st(C.gi_community_label_propagation(p(g), p(membership)))
}

func (*Engine) CommunityFastGreedy(g, modularity, membership abi.Ptr) abi.Status {
	return st(C.gi_community_fastgreedy(p(g), p(modularity), p(membership)))
}

// Isomorphism

func (*Engine) CountSubisomorphismsVF2(g, pattern abi.Ptr) (int64, abi.Status) {
	var count C.igraph_integer_t
	status := st(C.gi_count_subisomorphisms_vf2(p(g), p(pattern), &count))
	return int64(count), status
}

func (*Engine) SubisomorphismsVF2(g, pattern, maps abi.Ptr) abi.Status {
	return st(C.gi_get_subisomorphisms_vf2(p(g), p(pattern), p(maps)))
}
