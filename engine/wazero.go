package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/igraph-go/abi"
	"github.com/wippyai/igraph-go/errors"
)

const (
	defaultModuleName = "igraph"
	defaultStart      = "_initialize"

	// scratchSize holds the widest out parameters of a single shim call:
	// two 64-bit slots.
	scratchSize = 16
)

// WazeroEngine implements abi.Engine over a wasm build of igraph and the
// gi_* shim. One guest instance backs the engine and every call is
// serialized by an internal mutex.
type WazeroEngine struct {
	ctx     context.Context
	runtime wazero.Runtime
	mod     api.Module
	mem     *memory
	fns     map[string]api.Function
	scratch uint32
	mu      sync.Mutex
	closed  bool
}

var _ abi.Engine = (*WazeroEngine)(nil)

// errClosed is returned by call once the engine has been closed. Leak
// reclaim can still reach the engine from a cleanup goroutine after that.
var errClosed = errors.New("engine closed")

// Config holds configuration for engine creation
type Config struct {
	// ModuleName names the guest instance in the runtime. Default "igraph".
	ModuleName string

	// StartFunctions run after instantiation. nil means "_initialize", the
	// reactor entry point of wasm32-wasi builds. Missing functions are skipped.
	StartFunctions []string

	// MemoryLimitPages sets the maximum memory per instance in pages (64KB each).
	// 0 means default (65536 pages = 4GB).
	// 256 = 16MB, 1024 = 64MB, 4096 = 256MB
	MemoryLimitPages uint32
}

// New compiles and instantiates wasm in a fresh runtime with WASI preview1
// available. ctx is used for every later call into the guest.
func New(ctx context.Context, wasm []byte, cfg *Config) (*WazeroEngine, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	r := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	e, err := instantiate(ctx, r, wasm, cfg)
	if err != nil {
		_ = r.Close(ctx)
		return nil, err
	}
	e.runtime = r
	return e, nil
}

func instantiate(ctx context.Context, r wazero.Runtime, wasm []byte, cfg *Config) (*WazeroEngine, error) {
	if err := instantiateWASI(ctx, r); err != nil {
		return nil, err
	}

	compiled, err := r.CompileModule(ctx, wasm)
	if err != nil {
		return nil, fmt.Errorf("compile failed: %w", err)
	}

	name := cfg.ModuleName
	if name == "" {
		name = defaultModuleName
	}
	starts := cfg.StartFunctions
	if starts == nil {
		starts = []string{defaultStart}
	}
	modCfg := wazero.NewModuleConfig().
		WithName(name).
		WithStartFunctions(starts...)

	mod, err := r.InstantiateModule(ctx, compiled, modCfg)
	if err != nil {
		return nil, fmt.Errorf("instantiate %s: %w", name, err)
	}
	return FromModule(ctx, mod, nil)
}

// FromModule wraps an instantiated module exporting the gi_* shim. mem is
// the memory the shim's pointers refer to; nil means the module's own
// exported memory. The caller keeps ownership of the module and its runtime.
func FromModule(ctx context.Context, mod api.Module, mem api.Memory) (*WazeroEngine, error) {
	if mem == nil {
		mem = mod.Memory()
	}
	if mem == nil {
		return nil, fmt.Errorf("module %q exports no memory", mod.Name())
	}
	fns, err := resolve(mod)
	if err != nil {
		return nil, err
	}

	e := &WazeroEngine{
		ctx: ctx,
		mod: mod,
		mem: &memory{mem: mem},
		fns: fns,
	}
	scratch, st := e.malloc(scratchSize)
	if st != abi.StatusSuccess {
		return nil, fmt.Errorf("reserve scratch block: %w", errors.Check("gi_malloc", st))
	}
	e.scratch = scratch

	Logger().Debug("engine ready",
		zap.String("module", mod.Name()),
		zap.Uint32("memory_bytes", e.mem.size()),
		zap.Uint32("scratch", scratch))
	return e, nil
}

// Validate reports every gi_* export mod lacks.
func Validate(mod api.Module) error {
	_, err := resolve(mod)
	return err
}

func resolve(mod api.Module) (map[string]api.Function, error) {
	fns := make(map[string]api.Function, len(abi.ExportNames))
	var missing []string
	for _, name := range abi.ExportNames {
		fn := mod.ExportedFunction(name)
		if fn == nil {
			missing = append(missing, name)
			continue
		}
		fns[name] = fn
	}
	if len(missing) > 0 {
		return nil, &errors.MissingExportsError{Module: mod.Name(), Exports: missing}
	}
	return fns, nil
}

// Close releases the scratch block and, for engines created by New, the
// runtime with every module in it. Afterwards destructors are no-ops and
// fallible calls report an internal error. Close is idempotent.
func (e *WazeroEngine) Close(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	if e.scratch != 0 && e.runtime == nil {
		e.release(e.scratch)
	}
	e.scratch = 0
	e.closed = true
	if e.runtime != nil {
		err := e.runtime.Close(ctx)
		e.runtime = nil
		return err
	}
	return nil
}

// Module returns the guest instance.
func (e *WazeroEngine) Module() api.Module {
	return e.mod
}

// call invokes a shim export. Callers hold e.mu.
func (e *WazeroEngine) call(name string, params ...uint64) ([]uint64, error) {
	if e.closed {
		Logger().Debug("call after close", zap.String("func", name))
		return nil, errClosed
	}
	debugf("call %s %v", name, params)
	res, err := e.fns[name].Call(e.ctx, params...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return res, nil
}

// status runs a shim function returning an igraph error code. A trap is
// reported as an internal error.
func (e *WazeroEngine) status(name string, params ...uint64) abi.Status {
	res, err := e.call(name, params...)
	if err == errClosed {
		return abi.StatusInternal
	}
	if err != nil {
		Logger().Error("shim call trapped", zap.String("func", name), zap.Error(err))
		return abi.StatusInternal
	}
	return abi.Status(api.DecodeI32(res[0]))
}

// value runs an infallible shim function. There is no way to report a trap
// from a getter or destructor, so it panics. On a closed engine it returns
// zero, which makes destructors no-ops.
func (e *WazeroEngine) value(name string, params ...uint64) uint64 {
	res, err := e.call(name, params...)
	if err == errClosed {
		return 0
	}
	if err != nil {
		Logger().Error("shim call trapped", zap.String("func", name), zap.Error(err))
		panic(fmt.Sprintf("igraph: engine trap: %v", err))
	}
	if len(res) == 0 {
		return 0
	}
	return res[0]
}

func (e *WazeroEngine) malloc(n uint32) (uint32, abi.Status) {
	res, err := e.call("gi_malloc", api.EncodeU32(n))
	if err == errClosed {
		return 0, abi.StatusInternal
	}
	if err != nil {
		Logger().Error("shim call trapped", zap.String("func", "gi_malloc"), zap.Error(err))
		return 0, abi.StatusInternal
	}
	p := api.DecodeU32(res[0])
	if p == 0 {
		return 0, abi.StatusNoMemory
	}
	return p, abi.StatusSuccess
}

func (e *WazeroEngine) release(p uint32) {
	e.value("gi_release", api.EncodeU32(p))
}

// cstring copies s into guest memory with a NUL terminator. The caller
// releases the returned block.
func (e *WazeroEngine) cstring(s string) (uint32, abi.Status) {
	p, st := e.malloc(uint32(len(s) + 1))
	if st != abi.StatusSuccess {
		return 0, st
	}
	if err := e.mem.writeCString(p, s); err != nil {
		Logger().Error("copy string into guest", zap.Error(err))
		e.release(p)
		return 0, abi.StatusInternal
	}
	return p, abi.StatusSuccess
}

// out returns the address of scratch slot i.
func (e *WazeroEngine) out(i uint32) uint64 {
	return uint64(e.scratch + 8*i)
}

func (e *WazeroEngine) outInt(i uint32) (int64, abi.Status) {
	v, err := e.mem.readU64(e.scratch + 8*i)
	if err != nil {
		Logger().Error("read out parameter", zap.Error(err))
		return 0, abi.StatusInternal
	}
	return int64(v), abi.StatusSuccess
}

func (e *WazeroEngine) outReal(i uint32) (float64, abi.Status) {
	v, err := e.mem.readF64(e.scratch + 8*i)
	if err != nil {
		Logger().Error("read out parameter", zap.Error(err))
		return 0, abi.StatusInternal
	}
	return v, abi.StatusSuccess
}

func (e *WazeroEngine) outBool(i uint32) (bool, abi.Status) {
	v, err := e.mem.readU32(e.scratch + 8*i)
	if err != nil {
		Logger().Error("read out parameter", zap.Error(err))
		return false, abi.StatusInternal
	}
	return v != 0, abi.StatusSuccess
}

// Parameter encoding: pointers are i32, integers i64, booleans and enums i32.

func ptr(p abi.Ptr) uint64 { return api.EncodeU32(uint32(p)) }

func i64(x int64) uint64 { return api.EncodeI64(x) }

func f64(x float64) uint64 { return api.EncodeF64(x) }

func flag(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func enum[T ~int32](m T) uint64 { return api.EncodeI32(int32(m)) }

func kind(k abi.Kind) uint64 { return api.EncodeU32(uint32(k)) }
