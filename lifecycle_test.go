package igraph

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/igraph-go/abi"
	"github.com/wippyai/igraph-go/enginetest"
	"github.com/wippyai/igraph-go/errors"
)

func newTestLibrary(t *testing.T, opts ...Option) (*Library, *enginetest.Fake) {
	t.Helper()
	f := enginetest.New()
	return New(f, opts...), f
}

// expectClean checks that every structure was destroyed once and every
// block of storage returned.
func expectClean(t *testing.T, f *enginetest.Fake) {
	t.Helper()
	if v := f.Violations(); len(v) > 0 {
		t.Errorf("contract violations:\n%s", strings.Join(v, "\n"))
	}
	if n := f.Reserved(); n != 0 {
		t.Errorf("%d storage blocks still reserved", n)
	}
	for _, k := range []abi.Kind{abi.KindGraph, abi.KindVector, abi.KindVectorInt, abi.KindMatrix, abi.KindVectorIntList} {
		if f.Inits(k) != f.Destroys(k) {
			t.Errorf("%s: %d inits, %d destroys", k, f.Inits(k), f.Destroys(k))
		}
	}
}

func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, want) {
			t.Fatalf("panic %q does not contain %q", msg, want)
		}
	}()
	fn()
}

type closer interface {
	Close() error
}

func TestLifecycle_DestroyedExactlyOnce(t *testing.T) {
	tests := []struct {
		name string
		kind abi.Kind
		make func(lib *Library) (closer, error)
	}{
		{"graph", abi.KindGraph, func(lib *Library) (closer, error) { return lib.Empty(3, false) }},
		{"vector", abi.KindVector, func(lib *Library) (closer, error) { return lib.NewVectorSize(4) }},
		{"vector_int", abi.KindVectorInt, func(lib *Library) (closer, error) { return lib.NewVectorIntSize(4) }},
		{"matrix", abi.KindMatrix, func(lib *Library) (closer, error) { return lib.NewMatrix(2, 2) }},
		{"list", abi.KindVectorIntList, func(lib *Library) (closer, error) { return lib.NewVectorIntList() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib, f := newTestLibrary(t)
			c, err := tt.make(lib)
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if f.Live(tt.kind) != 1 {
				t.Fatalf("Live = %d", f.Live(tt.kind))
			}

			if err := c.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}
			if err := c.Close(); err != nil {
				t.Fatalf("second Close: %v", err)
			}

			if got := f.Destroys(tt.kind); got != 1 {
				t.Errorf("Destroys = %d, want 1", got)
			}
			if got := f.Frees(tt.kind); got != 1 {
				t.Errorf("Frees = %d, want 1", got)
			}
			expectClean(t, f)
		})
	}
}

func TestLifecycle_FailedInitIsNeverDestroyed(t *testing.T) {
	tests := []struct {
		name string
		op   string
		kind abi.Kind
		make func(lib *Library) error
	}{
		{"vector", "gi_vector_init", abi.KindVector, func(lib *Library) error {
			_, err := lib.NewVector()
			return err
		}},
		{"vector_int", "gi_vector_int_init", abi.KindVectorInt, func(lib *Library) error {
			_, err := lib.NewVectorInt()
			return err
		}},
		{"matrix", "gi_matrix_init", abi.KindMatrix, func(lib *Library) error {
			_, err := lib.NewMatrix(3, 3)
			return err
		}},
		{"list", "gi_vector_int_list_init", abi.KindVectorIntList, func(lib *Library) error {
			_, err := lib.NewVectorIntList()
			return err
		}},
		{"graph", "gi_full", abi.KindGraph, func(lib *Library) error {
			_, err := lib.Full(4, false, false)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib, f := newTestLibrary(t)
			f.FailOn(tt.op, 1, abi.StatusNoMemory)

			err := tt.make(lib)
			if !errors.Is(err, errors.ErrNoMemory) {
				t.Fatalf("err = %v, want no memory", err)
			}
			if f.Allocs(tt.kind) != 1 || f.Frees(tt.kind) != 1 {
				t.Errorf("Allocs = %d, Frees = %d", f.Allocs(tt.kind), f.Frees(tt.kind))
			}
			if f.Destroys(tt.kind) != 0 {
				t.Errorf("Destroys = %d, want 0", f.Destroys(tt.kind))
			}
			expectClean(t, f)
		})
	}
}

func TestLifecycle_AllocFailure(t *testing.T) {
	lib, f := newTestLibrary(t)
	f.FailOn("gi_alloc", 1, abi.StatusNoMemory)

	_, err := lib.Empty(2, false)
	if !errors.Is(err, errors.ErrNoMemory) {
		t.Fatalf("err = %v", err)
	}
	var e *errors.Error
	if errors.As(err, &e) && e.Op != "gi_alloc" {
		t.Errorf("Op = %q", e.Op)
	}
	if f.Calls("gi_empty") != 0 || f.Calls("gi_free") != 0 {
		t.Error("nothing should run after a failed allocation")
	}
	expectClean(t, f)
}

func TestLifecycle_UseAfterClosePanics(t *testing.T) {
	lib, f := newTestLibrary(t)

	g, _ := lib.Empty(2, false)
	g.Close()
	mustPanic(t, "use of closed igraph_t", func() { g.VCount() })
	mustPanic(t, "use of closed igraph_t", func() { g.Neighbors(0, Out) })

	v, _ := lib.NewVector()
	v.Close()
	mustPanic(t, "use of closed igraph_vector_t", func() { v.Len() })
	mustPanic(t, "use of closed igraph_vector_t", func() { v.Transfer() })

	var zero Graph
	mustPanic(t, "uninitialized", func() { zero.ECount() })
	zero.Close()

	expectClean(t, f)
}

// reentrantEngine calls back into the wrapper under test while the first
// call is still inside the engine.
type reentrantEngine struct {
	*enginetest.Fake
	during func()
}

func (e *reentrantEngine) VCount(p abi.Ptr) int64 {
	if fn := e.during; fn != nil {
		e.during = nil
		fn()
	}
	return e.Fake.VCount(p)
}

func TestLifecycle_ConcurrentUsePanics(t *testing.T) {
	eng := &reentrantEngine{Fake: enginetest.New()}
	lib := New(eng)

	g, err := lib.Empty(3, false)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	eng.during = func() {
		mustPanic(t, "concurrent use of igraph_t", func() { g.ECount() })
		mustPanic(t, "concurrent use of igraph_t", func() { g.Close() })
	}
	if n := g.VCount(); n != 3 {
		t.Errorf("VCount = %d", n)
	}

	// The guard is released after the panicking calls.
	if n := g.ECount(); n != 0 {
		t.Errorf("ECount = %d", n)
	}
}

func TestTransfer_AcrossGoroutines(t *testing.T) {
	var (
		mu     sync.Mutex
		events []EventType
	)
	lib, f := newTestLibrary(t, WithObserver(ObserverFunc(func(e Event) {
		mu.Lock()
		events = append(events, e.Type)
		mu.Unlock()
	})))

	g, err := lib.Full(5, false, false)
	if err != nil {
		t.Fatal(err)
	}

	ch := make(chan *Graph)
	done := make(chan int64)
	go func() {
		h := <-ch
		n := h.ECount()
		h.Close()
		done <- n
	}()

	ch <- g.Transfer()
	if n := <-done; n != 10 {
		t.Errorf("ECount on destination = %d", n)
	}
	mustPanic(t, "use of closed", func() { g.VCount() })
	g.Close()

	if f.Destroys(abi.KindGraph) != 1 {
		t.Errorf("Destroys = %d, want 1", f.Destroys(abi.KindGraph))
	}

	mu.Lock()
	defer mu.Unlock()
	want := []EventType{EventCreated, EventTransferred, EventDestroyed}
	if fmt.Sprint(events) != fmt.Sprint(want) {
		t.Errorf("events = %v, want %v", events, want)
	}
	expectClean(t, f)
}

func TestTransfer_AllWrappers(t *testing.T) {
	lib, f := newTestLibrary(t)

	v, _ := lib.VectorFromSlice([]float64{1, 2})
	nv := v.Transfer()
	if got := nv.Values(); len(got) != 2 {
		t.Errorf("vector values = %v", got)
	}
	nv.Close()

	vi, _ := lib.VectorIntFromSlice([]int64{3})
	nvi := vi.Transfer()
	if nvi.At(0) != 3 {
		t.Error("int vector lost its contents")
	}
	nvi.Close()

	m, _ := lib.MatrixFromRows([][]float64{{1}})
	nm := m.Transfer()
	if nm.At(0, 0) != 1 {
		t.Error("matrix lost its contents")
	}
	nm.Close()

	l, _ := lib.VectorIntListFromSlices([][]int64{{1, 2}})
	nl := l.Transfer()
	if nl.Len() != 1 {
		t.Error("list lost its contents")
	}
	nl.Close()

	for _, c := range []closer{v, vi, m, l} {
		c.Close()
	}
	expectClean(t, f)
}

func TestLeakReclaim(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	reclaimed := make(chan Event, 1)
	lib, f := newTestLibrary(t,
		WithLogger(zap.New(core)),
		WithObserver(ObserverFunc(func(e Event) {
			if e.Type == EventReclaimed {
				reclaimed <- e
			}
		})))

	func() {
		if _, err := lib.NewVectorSize(8); err != nil {
			t.Fatal(err)
		}
	}()

	deadline := time.After(5 * time.Second)
	for {
		runtime.GC()
		select {
		case e := <-reclaimed:
			if e.Kind != abi.KindVector {
				t.Errorf("reclaimed %s", e.Kind)
			}
			if logs.FilterMessageSnippet("reclaiming leaked handle").Len() != 1 {
				t.Error("reclaim was not logged")
			}
			expectClean(t, f)
			return
		case <-deadline:
			t.Fatal("leaked vector was not reclaimed")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestLeakReclaim_ClosedHandleNotReclaimed(t *testing.T) {
	lib, f := newTestLibrary(t)

	func() {
		v, _ := lib.NewVector()
		v.Close()
	}()
	for range 3 {
		runtime.GC()
	}
	if f.Destroys(abi.KindVector) != 1 {
		t.Errorf("Destroys = %d, want 1", f.Destroys(abi.KindVector))
	}
	expectClean(t, f)
}

func TestLibrary_Defaults(t *testing.T) {
	mustPanic(t, "nil engine", func() { New(nil) })

	f := enginetest.New()
	lib := New(f, WithLogger(nil), WithObserver(nil), WithLeakReclaim(false))
	if lib.Engine() != f {
		t.Error("Engine() should return the engine passed to New")
	}
	if lib.logger == nil {
		t.Error("nil logger option should keep the default")
	}
	if len(lib.observers) != 0 {
		t.Error("nil observer should be ignored")
	}

	v, _ := lib.NewVector()
	if v.h.tracked {
		t.Error("leak reclaim disabled but handle tracked")
	}
	v.Close()
}

func TestLibrary_CheckLogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	lib, _ := newTestLibrary(t, WithLogger(zap.New(core)))

	tests := []struct {
		name  string
		st    abi.Status
		known bool
	}{
		{"recognized", abi.StatusInvalidValue, true},
		{"unrecognized", abi.Status(999), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs.TakeAll()
			if err := lib.check("igraph_test_op", tt.st); err == nil {
				t.Fatal("expected error")
			}
			entries := logs.FilterMessage("igraph: foreign call failed").All()
			if len(entries) != 1 {
				t.Fatalf("got %d log entries, want 1", len(entries))
			}
			fields := entries[0].ContextMap()
			if fields["op"] != "igraph_test_op" {
				t.Errorf("op = %v", fields["op"])
			}
			if fields["known"] != tt.known {
				t.Errorf("known = %v, want %v", fields["known"], tt.known)
			}
		})
	}

	logs.TakeAll()
	if err := lib.check("igraph_test_op", abi.StatusSuccess); err != nil {
		t.Fatal(err)
	}
	if logs.Len() != 0 {
		t.Error("success should not be logged")
	}
}

func TestEventType_String(t *testing.T) {
	tests := map[EventType]string{
		EventCreated:     "created",
		EventDestroyed:   "destroyed",
		EventTransferred: "transferred",
		EventReclaimed:   "reclaimed",
		EventType(99):    "unknown",
	}
	for et, want := range tests {
		if got := et.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", et, got, want)
		}
	}
}
