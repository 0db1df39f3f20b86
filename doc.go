// Package igraph is a safety boundary over the igraph C graph engine.
//
// The engine exposes opaque structures with manual init/destroy pairs and
// integer status codes. This package gives every such structure exactly one
// Go owner, destroys it exactly once, translates every status code into a
// typed error and copies numeric containers to and from Go slices. Graph
// algorithms run entirely inside the engine.
//
// # Architecture Overview
//
//	igraph/          Library, owning wrappers, Graph façades, lifecycle events
//	├── abi/         Foreign interface: status codes, struct kinds, mode enums, Engine
//	├── errors/      Status translation and typed errors
//	├── engine/      wazero backend running igraph compiled to wasm32-wasi
//	├── native/      cgo backend linking libigraph (build tag igraphnative)
//	├── enginetest/  In-memory, call-counting engine double for tests
//	└── cmd/graphrun CLI and interactive shell
//
// # Quick Start
//
//	eng, err := engine.New(ctx, wasmBytes, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Close(ctx)
//
//	lib := igraph.New(eng, igraph.WithLogger(logger))
//
//	g, err := lib.Full(5, false, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer g.Close()
//
//	sub, err := g.InducedSubgraph([]int64{0, 1, 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sub.Close()
//	fmt.Println(sub.ECount()) // 3
//
// # Ownership
//
// Graph, Vector, VectorInt, Matrix and VectorIntList each own one live
// foreign structure. Close destroys it and is safe to call twice. Derived
// graphs (InducedSubgraph, Union, Copy) are independent owners. A wrapper
// that becomes unreachable without Close is reclaimed by the garbage
// collector and logged as a warning; see WithLeakReclaim.
//
// # Thread Safety
//
// A wrapper may be handed to another goroutine and used there, either by
// passing the pointer and never touching it again or explicitly with
// Transfer. A wrapper must not be used from two goroutines at once: each
// operation claims the wrapper for its foreign call and a second concurrent
// claim panics. Wrappers must not be copied by value.
//
// The engine's global state (random number generator, error handlers) must
// be thread-local. The native backend refuses to build otherwise; the wasm
// backend serializes every call into its single instance.
//
// # Failed Mutations
//
// When a mutating operation fails the graph is poisoned. Every further
// fallible operation returns an error matching errors.ErrPoisoned until
// Recover is called. VCount, ECount, IsDirected and Close keep working.
package igraph
