package igraph

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/igraph-go/abi"
)

// Handle states. The zero state means the storage was never confirmed live.
const (
	stateLive int32 = iota + 1
	stateBusy
	stateClosed
)

// handle is the lifecycle core embedded by every owning wrapper. It holds one
// live foreign structure and is the only path to its destructor.
//
// The atomic state doubles as the ownership guard: an operation moves the
// handle from live to busy for the duration of its foreign call, so a second
// goroutine touching the same wrapper trips a panic instead of racing inside
// the engine. sync/atomic values carry a noCopy marker, so go vet also
// rejects wrappers copied by value.
type handle struct {
	lib     *Library
	cleanup runtime.Cleanup
	ptr     abi.Ptr
	state   atomic.Int32
	kind    abi.Kind
	tracked bool
}

// init reserves storage, runs exactly one foreign init call on it and marks
// the handle live on success. On failure the storage is freed without a
// destroy call.
func (h *handle) init(lib *Library, kind abi.Kind, op string, fn func(abi.Ptr) abi.Status) error {
	p, st := lib.eng.Alloc(kind)
	if err := lib.check("gi_alloc", st); err != nil {
		return err
	}
	if err := lib.check(op, fn(p)); err != nil {
		lib.eng.Free(kind, p)
		return err
	}

	h.lib = lib
	h.kind = kind
	h.ptr = p
	h.state.Store(stateLive)

	lib.logger.Debug("igraph: handle created",
		zap.Stringer("kind", kind),
		zap.Uint64("ptr", uint64(p)),
		zap.String("op", op))
	lib.emit(Event{Type: EventCreated, Kind: kind, Ptr: p})
	return nil
}

// acquire marks the handle busy and returns its storage. It panics when the
// handle is closed, never initialized, or already in use.
func (h *handle) acquire() abi.Ptr {
	if h.state.CompareAndSwap(stateLive, stateBusy) {
		return h.ptr
	}
	panic(h.misuse())
}

func (h *handle) release() {
	h.state.Store(stateLive)
}

// raw returns the storage of a handle owned by the calling frame, without the
// guard. Only for result and argument containers that never escape.
func (h *handle) raw() abi.Ptr {
	return h.ptr
}

func (h *handle) misuse() string {
	switch h.state.Load() {
	case stateClosed:
		return fmt.Sprintf("igraph: use of closed %s", h.kind)
	case stateBusy:
		return fmt.Sprintf("igraph: concurrent use of %s", h.kind)
	default:
		return "igraph: use of uninitialized handle"
	}
}

// close destroys the structure exactly once. Closing a closed or never
// initialized handle is a no-op.
func (h *handle) close() {
	if !h.state.CompareAndSwap(stateLive, stateClosed) {
		if h.state.Load() == stateBusy {
			panic(h.misuse())
		}
		return
	}
	if h.tracked {
		h.cleanup.Stop()
		h.tracked = false
	}

	h.lib.destroy(h.kind, h.ptr)
	h.lib.logger.Debug("igraph: handle destroyed",
		zap.Stringer("kind", h.kind),
		zap.Uint64("ptr", uint64(h.ptr)))
	h.lib.emit(Event{Type: EventDestroyed, Kind: h.kind, Ptr: h.ptr})
}

// moveTo hands the live structure to dst and closes h without a destroy.
func (h *handle) moveTo(dst *handle) {
	p := h.acquire()
	if h.tracked {
		h.cleanup.Stop()
		h.tracked = false
	}

	dst.lib = h.lib
	dst.kind = h.kind
	dst.ptr = p
	dst.state.Store(stateLive)
	h.state.Store(stateClosed)

	h.lib.emit(Event{Type: EventTransferred, Kind: h.kind, Ptr: p})
}

// leaked is what the cleanup needs to destroy a structure whose wrapper was
// dropped without Close. It must not reference the wrapper.
type leaked struct {
	lib  *Library
	ptr  abi.Ptr
	kind abi.Kind
}

// track registers the leak reclaimer on the wrapper that embeds h.
func track[T any](owner *T, h *handle) {
	if !h.lib.reclaim {
		return
	}
	h.cleanup = runtime.AddCleanup(owner, reclaim, leaked{lib: h.lib, kind: h.kind, ptr: h.ptr})
	h.tracked = true
}

func reclaim(l leaked) {
	l.lib.logger.Warn("igraph: reclaiming leaked handle; call Close",
		zap.Stringer("kind", l.kind),
		zap.Uint64("ptr", uint64(l.ptr)))
	l.lib.destroy(l.kind, l.ptr)
	l.lib.emit(Event{Type: EventReclaimed, Kind: l.kind, Ptr: l.ptr})
}

func checkIndex(i, n int64) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("igraph: index %d out of range [0:%d]", i, n))
	}
}
