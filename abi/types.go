package abi

import "strconv"

// Ptr is the address of engine-owned storage. Zero is the null address.
type Ptr uint64

// Status is the integer result of a fallible foreign call.
type Status int32

// igraph_error_type_t values.
const (
	StatusSuccess          Status = 0
	StatusFailure          Status = 1
	StatusNoMemory         Status = 2
	StatusParseError       Status = 3
	StatusInvalidValue     Status = 4
	StatusExists           Status = 5
	StatusInvalidVertexID  Status = 7
	StatusInvalidEdgeID    Status = 8
	StatusInvalidMode      Status = 9
	StatusFileError        Status = 10
	StatusUnimplemented    Status = 12
	StatusInterrupted      Status = 13
	StatusDiverged         Status = 14
	StatusArpack           Status = 15
	StatusNegativeCycle    Status = 37
	StatusInternal         Status = 38
	StatusAttributeCombine Status = 52
	StatusOverflow         Status = 55
	StatusUnderflow        Status = 58
	StatusRandomWalkStuck  Status = 59
	StatusStop             Status = 60
	StatusRange            Status = 61
	StatusNoSolution       Status = 62
)

// Kind identifies a foreign structure layout.
type Kind uint8

const (
	KindGraph Kind = iota + 1
	KindVector
	KindVectorInt
	KindMatrix
	KindVectorIntList
)

func (k Kind) String() string {
	switch k {
	case KindGraph:
		return "igraph_t"
	case KindVector:
		return "igraph_vector_t"
	case KindVectorInt:
		return "igraph_vector_int_t"
	case KindMatrix:
		return "igraph_matrix_t"
	case KindVectorIntList:
		return "igraph_vector_int_list_t"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// NeighborMode is igraph_neimode_t.
type NeighborMode int32

const (
	NeighborOut NeighborMode = 1
	NeighborIn  NeighborMode = 2
	NeighborAll NeighborMode = 3
)

// Connectedness is igraph_connectedness_t.
type Connectedness int32

const (
	Weak   Connectedness = 1
	Strong Connectedness = 2
)

// Loops is igraph_loops_t.
type Loops int32

const (
	NoLoops    Loops = 0
	LoopsTwice Loops = 1
	LoopsOnce  Loops = 2
)

// StarMode is igraph_star_mode_t.
type StarMode int32

const (
	StarOut        StarMode = 0
	StarIn         StarMode = 1
	StarUndirected StarMode = 2
	StarMutual     StarMode = 3
)

// TreeMode is igraph_tree_mode_t.
type TreeMode int32

const (
	TreeOut        TreeMode = 0
	TreeIn         TreeMode = 1
	TreeUndirected TreeMode = 2
)

// ToDirectedMode is igraph_to_directed_t.
type ToDirectedMode int32

const (
	ToDirectedArbitrary ToDirectedMode = 0
	ToDirectedMutual    ToDirectedMode = 1
	ToDirectedRandom    ToDirectedMode = 2
	ToDirectedAcyclic   ToDirectedMode = 3
)

// ToUndirectedMode is igraph_to_undirected_t.
type ToUndirectedMode int32

const (
	ToUndirectedEach     ToUndirectedMode = 0
	ToUndirectedCollapse ToUndirectedMode = 1
	ToUndirectedMutual   ToUndirectedMode = 2
)
