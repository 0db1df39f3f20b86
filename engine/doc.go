// Package engine runs igraph compiled to WebAssembly and exposes it as an
// abi.Engine.
//
// The guest is a wasm32-wasi build of igraph linked with the gi_* shim, a
// flat C layer with one export per abi.Engine method. wazero hosts the
// module; WASI preview1 is instantiated alongside it.
//
// # Usage
//
//	eng, err := engine.New(ctx, wasmBytes, &engine.Config{MemoryLimitPages: 1024})
//	if err != nil {
//	    return err
//	}
//	defer eng.Close(ctx)
//
//	lib := igraph.New(eng)
//
// An already instantiated module can be wrapped with FromModule. Validate
// lists the gi_* exports a module lacks without wrapping it.
//
// # Calling Convention
//
// Shim parameters map to core wasm types as follows:
//
//	Go / abi type       Core type
//	──────────────────────────────
//	abi.Ptr             i32
//	int64               i64
//	bool, modes         i32
//	float64             f64
//	abi.Status          i32 result
//
// Scalar results that accompany a status (an edge's endpoints, a diameter,
// a component count) are written by the guest into a 16-byte scratch block
// reserved once with gi_malloc. Strings are copied into a gi_malloc block
// with a trailing NUL and released after the call.
//
// # Failures
//
// A trap inside a status-returning call is logged and reported as
// abi.StatusInternal. Getters, setters and destructors have no status to
// carry it, so a trap there panics.
//
// # Thread Safety
//
// WazeroEngine is safe for concurrent use. Calls are serialized: the guest
// has one stack and one linear memory.
package engine
