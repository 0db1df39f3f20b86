// Package abi describes the foreign interface of the igraph engine as seen
// from Go.
//
// The engine is reached through a flat C shim (see native/shim.h) that
// removes struct-by-value arguments from igraph's public API. Every shim
// function has exactly one counterpart method on Engine, so a backend is a
// mechanical mapping and a test double can stand in for the whole engine.
//
// # Storage
//
// Foreign structures are opaque. Their storage is reserved with
// Engine.Alloc, which returns uninitialized memory sized for the requested
// Kind. Exactly one init call turns that storage into a live structure;
// exactly one destroy call ends its life, after which the storage goes back
// with Engine.Free. Storage whose init failed is freed without a destroy.
//
//	p, st := eng.Alloc(abi.KindVectorInt)
//	if st != abi.StatusSuccess { ... }
//	if st := eng.VectorIntInit(p, 0); st != abi.StatusSuccess {
//	    eng.Free(abi.KindVectorInt, p)
//	    ...
//	}
//	defer func() {
//	    eng.VectorIntDestroy(p)
//	    eng.Free(abi.KindVectorInt, p)
//	}()
//
// # Status codes
//
// Fallible calls return a Status. Zero is success; the constants below carry
// igraph's own numbering. Codes outside this set are legal and must be
// surfaced, never coerced.
//
// # Out parameters
//
// Scalar results (edge endpoints, adjacency flags, diameters, counts) are
// returned directly by the Engine methods. The backend owns the temporary
// storage those values pass through.
package abi
