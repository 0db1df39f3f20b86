// Package errors translates igraph status codes into typed Go errors.
//
// Every fallible foreign call returns an integer status. Translate is the
// single place where those integers are interpreted: success becomes nil,
// each code igraph documents becomes an *Error with a dedicated Kind, and
// anything else becomes KindUnknown with the raw code preserved in Code.
//
//	if err := errors.Check("igraph_neighbors", st); err != nil {
//		return nil, err
//	}
//
// Callers match kinds with the package sentinels:
//
//	if errors.Is(err, errors.ErrInvalidVertexID) {
//		...
//	}
//
// PoisonedError and MissingExportsError are raised on the Go side: the first
// by a graph whose last mutation failed, the second by the wasm engine when a
// module lacks shim exports.
package errors
