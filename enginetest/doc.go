// Package enginetest provides an in-memory abi.Engine for tests.
//
// Fake keeps every foreign structure in a slot table and counts each call,
// so tests can assert that a wrapper was initialized once and destroyed
// once, that failed initializations were freed without a destroy, and that
// no storage leaked:
//
//	f := enginetest.New()
//	lib := igraph.New(f)
//
//	f.FailOn("gi_vector_int_push_back", 3, abi.StatusNoMemory)
//	_, err := lib.VectorIntFromSlice([]int64{1, 2, 3, 4})
//	// err matches errors.ErrNoMemory
//	// f.Destroys(abi.KindVectorInt) == 1, f.Reserved() == 0
//
// Graphs are modelled as plain edge lists. Generators, queries, mutations,
// transforms, BFS based path and component queries, betweenness, closeness,
// PageRank and label propagation are computed directly. Leiden, fast greedy
// and VF2 results must be scripted; unscripted they report
// abi.StatusUnimplemented.
//
// Misuse of the foreign contract (destroying uninitialized storage, freeing
// live storage, touching freed storage) is recorded rather than crashing and
// can be inspected with Violations.
package enginetest
