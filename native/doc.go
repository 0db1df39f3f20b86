// Package native links libigraph through cgo and exposes it as an
// abi.Engine.
//
// The package only builds with the igraphnative tag:
//
//	go build -tags igraphnative ./...
//
// pkg-config must find an igraph configured with IGRAPH_ENABLE_TLS=ON.
// igraph keeps its RNG and error handlers in thread-local storage only in
// that configuration, and shim.h refuses to compile otherwise. Each shim
// call installs the ignoring error handler on its current thread before
// calling into igraph, so a failure is returned as a status and never
// aborts the process.
//
// shim.h is also the source of the wasm guest's gi_* exports. Compiling it
// with GI_API set to an exporting attribute yields the module the engine
// package loads.
package native
