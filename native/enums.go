//go:build igraphnative && cgo

package native

/*
#include "shim.h"
*/
import "C"

import "github.com/wippyai/igraph-go/abi"

// Each index below is out of range unless the abi constant equals the C
// enumerator it mirrors, so drift in either header fails the build.
var (
	_ = [1]struct{}{}[abi.StatusSuccess-C.IGRAPH_SUCCESS]
	_ = [1]struct{}{}[abi.StatusFailure-C.IGRAPH_FAILURE]
	_ = [1]struct{}{}[abi.StatusNoMemory-C.IGRAPH_ENOMEM]
	_ = [1]struct{}{}[abi.StatusParseError-C.IGRAPH_PARSEERROR]
	_ = [1]struct{}{}[abi.StatusInvalidValue-C.IGRAPH_EINVAL]
	_ = [1]struct{}{}[abi.StatusExists-C.IGRAPH_EXISTS]
	_ = [1]struct{}{}[abi.StatusInvalidVertexID-C.IGRAPH_EINVVID]
	_ = [1]struct{}{}[abi.StatusInvalidEdgeID-C.IGRAPH_EINVEID]
	_ = [1]struct{}{}[abi.StatusInvalidMode-C.IGRAPH_EINVMODE]
	_ = [1]struct{}{}[abi.StatusFileError-C.IGRAPH_EFILE]
	_ = [1]struct{}{}[abi.StatusUnimplemented-C.IGRAPH_UNIMPLEMENTED]
	_ = [1]struct{}{}[abi.StatusInterrupted-C.IGRAPH_INTERRUPTED]
	_ = [1]struct{}{}[abi.StatusDiverged-C.IGRAPH_DIVERGED]
	_ = [1]struct{}{}[abi.StatusArpack-C.IGRAPH_EARPACK]
	_ = [1]struct{}{}[abi.StatusNegativeCycle-C.IGRAPH_ENEGCYCLE]
	_ = [1]struct{}{}[abi.StatusInternal-C.IGRAPH_EINTERNAL]
	_ = [1]struct{}{}[abi.StatusAttributeCombine-C.IGRAPH_EATTRCOMBINE]
	_ = [1]struct{}{}[abi.StatusOverflow-C.IGRAPH_EOVERFLOW]
	_ = [1]struct{}{}[abi.StatusUnderflow-C.IGRAPH_EUNDERFLOW]
	_ = [1]struct{}{}[abi.StatusRandomWalkStuck-C.IGRAPH_ERWSTUCK]
	_ = [1]struct{}{}[abi.StatusStop-C.IGRAPH_STOP]
	_ = [1]struct{}{}[abi.StatusRange-C.IGRAPH_ERANGE]
	_ = [1]struct{}{}[abi.StatusNoSolution-C.IGRAPH_ENOSOL]
)

var (
	_ = [1]struct{}{}[abi.NeighborOut-C.IGRAPH_OUT]
	_ = [1]struct{}{}[abi.NeighborIn-C.IGRAPH_IN]
	_ = [1]struct{}{}[abi.NeighborAll-C.IGRAPH_ALL]

	_ = [1]struct{}{}[abi.Weak-C.IGRAPH_WEAK]
	_ = [1]struct{}{}[abi.Strong-C.IGRAPH_STRONG]

	_ = [1]struct{}{}[abi.NoLoops-C.IGRAPH_NO_LOOPS]
	_ = [1]struct{}{}[abi.LoopsTwice-C.IGRAPH_LOOPS_TWICE]
	_ = [1]struct{}{}[abi.LoopsOnce-C.IGRAPH_LOOPS_ONCE]

	_ = [1]struct{}{}[abi.StarOut-C.IGRAPH_STAR_OUT]
	_ = [1]struct{}{}[abi.StarIn-C.IGRAPH_STAR_IN]
	_ = [1]struct{}{}[abi.StarUndirected-C.IGRAPH_STAR_UNDIRECTED]
	_ = [1]struct{}{}[abi.StarMutual-C.IGRAPH_STAR_MUTUAL]

	_ = [1]struct{}{}[abi.TreeOut-C.IGRAPH_TREE_OUT]
	_ = [1]struct{}{}[abi.TreeIn-C.IGRAPH_TREE_IN]
	_ = [1]struct{}{}[abi.TreeUndirected-C.IGRAPH_TREE_UNDIRECTED]

	_ = [1]struct{}{}[abi.ToDirectedArbitrary-C.IGRAPH_TO_DIRECTED_ARBITRARY]
	_ = [1]struct{}{}[abi.ToDirectedMutual-C.IGRAPH_TO_DIRECTED_MUTUAL]
	_ = [1]struct{}{}[abi.ToDirectedRandom-C.IGRAPH_TO_DIRECTED_RANDOM]
	_ = [1]struct{}{}[abi.ToDirectedAcyclic-C.IGRAPH_TO_DIRECTED_ACYCLIC]

	_ = [1]struct{}{}[abi.ToUndirectedEach-C.IGRAPH_TO_UNDIRECTED_EACH]
	_ = [1]struct{}{}[abi.ToUndirectedCollapse-C.IGRAPH_TO_UNDIRECTED_COLLAPSE]
	_ = [1]struct{}{}[abi.ToUndirectedMutual-C.IGRAPH_TO_UNDIRECTED_MUTUAL]
)

var (
	_ = [1]struct{}{}[int(abi.KindGraph)-C.GI_KIND_GRAPH]
	_ = [1]struct{}{}[int(abi.KindVector)-C.GI_KIND_VECTOR]
	_ = [1]struct{}{}[int(abi.KindVectorInt)-C.GI_KIND_VECTOR_INT]
	_ = [1]struct{}{}[int(abi.KindMatrix)-C.GI_KIND_MATRIX]
	_ = [1]struct{}{}[int(abi.KindVectorIntList)-C.GI_KIND_VECTOR_INT_LIST]
)
