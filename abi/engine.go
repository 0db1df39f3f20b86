package abi

// Storage reserves and returns raw memory for foreign structures.
type Storage interface {
	// Alloc reserves uninitialized storage sized for k.
	Alloc(k Kind) (Ptr, Status)
	// Free returns storage obtained from Alloc. It never runs a destructor.
	Free(k Kind, p Ptr)
}

// VectorABI covers igraph_vector_t.
type VectorABI interface {
	VectorInit(v Ptr, size int64) Status
	VectorDestroy(v Ptr)
	VectorSize(v Ptr) int64
	VectorGet(v Ptr, i int64) float64
	VectorSet(v Ptr, i int64, x float64)
	VectorPushBack(v Ptr, x float64) Status
}

// VectorIntABI covers igraph_vector_int_t.
type VectorIntABI interface {
	VectorIntInit(v Ptr, size int64) Status
	VectorIntDestroy(v Ptr)
	VectorIntSize(v Ptr) int64
	VectorIntGet(v Ptr, i int64) int64
	VectorIntSet(v Ptr, i int64, x int64)
	VectorIntPushBack(v Ptr, x int64) Status
}

// MatrixABI covers igraph_matrix_t.
type MatrixABI interface {
	MatrixInit(m Ptr, nrow, ncol int64) Status
	MatrixDestroy(m Ptr)
	MatrixNrow(m Ptr) int64
	MatrixNcol(m Ptr) int64
	MatrixGet(m Ptr, row, col int64) float64
	MatrixSet(m Ptr, row, col int64, x float64)
}

// VectorIntListABI covers igraph_vector_int_list_t.
type VectorIntListABI interface {
	VectorIntListInit(l Ptr, size int64) Status
	VectorIntListDestroy(l Ptr)
	VectorIntListSize(l Ptr) int64
	// VectorIntListItemSize is the length of the i-th member vector.
	VectorIntListItemSize(l Ptr, i int64) int64
	// VectorIntListItemGet reads element j of the i-th member vector.
	VectorIntListItemGet(l Ptr, i, j int64) int64
	// VectorIntListPushBackCopy appends a copy of the live vector v.
	VectorIntListPushBackCopy(l Ptr, v Ptr) Status
}

// GraphABI covers igraph_t and the algorithms run against it. Graph
// constructors take uninitialized storage in g (or res) and initialize it.
type GraphABI interface {
	Destroy(g Ptr)
	Copy(to, from Ptr) Status

	Empty(g Ptr, n int64, directed bool) Status
	Create(g Ptr, edges Ptr, n int64, directed bool) Status
	// Famous expects a name without NUL bytes; callers validate.
	Famous(g Ptr, name string) Status
	Ring(g Ptr, n int64, directed, mutual, circular bool) Status
	Star(g Ptr, n int64, mode StarMode, center int64) Status
	Full(g Ptr, n int64, directed, loops bool) Status
	KaryTree(g Ptr, n, children int64, mode TreeMode) Status
	ErdosRenyiGNP(g Ptr, n int64, p float64, directed, loops bool) Status
	ErdosRenyiGNM(g Ptr, n, m int64, directed, loops bool) Status
	Barabasi(g Ptr, n, m int64, directed bool) Status

	VCount(g Ptr) int64
	ECount(g Ptr) int64
	IsDirected(g Ptr) bool
	Neighbors(g, res Ptr, vid int64, mode NeighborMode) Status
	Degree(g, res Ptr, mode NeighborMode, loops Loops) Status
	Edge(g Ptr, eid int64) (from, to int64, st Status)
	AreAdjacent(g Ptr, v1, v2 int64) (bool, Status)
	EdgeList(g, res Ptr) Status

	AddVertices(g Ptr, n int64) Status
	AddEdges(g, edges Ptr) Status
	DeleteVertices(g, vids Ptr) Status
	DeleteEdges(g, eids Ptr) Status

	Simplify(g Ptr, multiple, loops bool) Status
	ToDirected(g Ptr, mode ToDirectedMode) Status
	ToUndirected(g Ptr, mode ToUndirectedMode) Status
	InducedSubgraph(g, res, vids Ptr) Status
	Union(res, left, right Ptr) Status

	Distances(g, res Ptr, mode NeighborMode) Status
	Diameter(g Ptr, directed bool) (float64, Status)

	Betweenness(g, res Ptr, directed bool) Status
	Closeness(g, res Ptr, mode NeighborMode) Status
	PageRank(g, res Ptr, damping float64) (eigenvalue float64, st Status)

	IsConnected(g Ptr, mode Connectedness) (bool, Status)
	ConnectedComponents(g, membership, csize Ptr, mode Connectedness) (count int64, st Status)

	CommunityLeiden(g, membership Ptr, resolution, beta float64, iterations int64) (clusters int64, quality float64, st Status)
	CommunityLabelPropagation(g, membership Ptr) Status
	CommunityFastGreedy(g, modularity, membership Ptr) Status

	CountSubisomorphismsVF2(g, pattern Ptr) (int64, Status)
	SubisomorphismsVF2(g, pattern, maps Ptr) Status
}

// Engine is the complete foreign catalogue.
type Engine interface {
	Storage
	VectorABI
	VectorIntABI
	MatrixABI
	VectorIntListABI
	GraphABI
}

// ExportNames lists the shim symbols, one per Engine method plus the raw
// byte allocator used for strings and out parameters.
var ExportNames = []string{
	"gi_alloc", "gi_free", "gi_malloc", "gi_release",

	"gi_vector_init", "gi_vector_destroy", "gi_vector_size",
	"gi_vector_get", "gi_vector_set", "gi_vector_push_back",

	"gi_vector_int_init", "gi_vector_int_destroy", "gi_vector_int_size",
	"gi_vector_int_get", "gi_vector_int_set", "gi_vector_int_push_back",

	"gi_matrix_init", "gi_matrix_destroy", "gi_matrix_nrow",
	"gi_matrix_ncol", "gi_matrix_get", "gi_matrix_set",

	"gi_vector_int_list_init", "gi_vector_int_list_destroy",
	"gi_vector_int_list_size", "gi_vector_int_list_item_size",
	"gi_vector_int_list_item_get", "gi_vector_int_list_push_back_copy",

	"gi_destroy", "gi_copy",
	"gi_empty", "gi_create", "gi_famous", "gi_ring", "gi_star", "gi_full",
	"gi_kary_tree", "gi_erdos_renyi_gnp", "gi_erdos_renyi_gnm", "gi_barabasi",
	"gi_vcount", "gi_ecount", "gi_is_directed", "gi_neighbors", "gi_degree",
	"gi_edge", "gi_are_adjacent", "gi_get_edgelist",
	"gi_add_vertices", "gi_add_edges", "gi_delete_vertices", "gi_delete_edges",
	"gi_simplify", "gi_to_directed", "gi_to_undirected",
	"gi_induced_subgraph", "gi_union",
	"gi_distances", "gi_diameter",
	"gi_betweenness", "gi_closeness", "gi_pagerank",
	"gi_is_connected", "gi_connected_components",
	"gi_community_leiden", "gi_community_label_propagation", "gi_community_fastgreedy",
	"gi_count_subisomorphisms_vf2", "gi_get_subisomorphisms_vf2",
}
