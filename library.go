package igraph

import (
	"go.uber.org/zap"

	"github.com/wippyai/igraph-go/abi"
	"github.com/wippyai/igraph-go/errors"
)

// Library binds owning wrappers to one engine. Every wrapper created through
// a Library calls back into the same engine for its whole life.
type Library struct {
	eng       abi.Engine
	logger    *zap.Logger
	observers []Observer
	reclaim   bool
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(lib *Library) {
		if l != nil {
			lib.logger = l
		}
	}
}

// WithObserver registers an observer for handle lifecycle events.
func WithObserver(o Observer) Option {
	return func(lib *Library) {
		if o != nil {
			lib.observers = append(lib.observers, o)
		}
	}
}

// WithLeakReclaim controls whether wrappers that become unreachable without
// Close have their handle destroyed by the garbage collector. Enabled by
// default; a reclaimed handle is logged as a warning.
func WithLeakReclaim(enabled bool) Option {
	return func(lib *Library) {
		lib.reclaim = enabled
	}
}

// New creates a Library over eng.
func New(eng abi.Engine, opts ...Option) *Library {
	if eng == nil {
		panic("igraph: nil engine")
	}
	lib := &Library{
		eng:     eng,
		logger:  zap.NewNop(),
		reclaim: true,
	}
	for _, opt := range opts {
		opt(lib)
	}
	return lib
}

// Engine returns the engine the library calls into.
func (l *Library) Engine() abi.Engine {
	return l.eng
}

// check translates a status and logs failures at debug level.
func (l *Library) check(op string, st abi.Status) error {
	err := errors.Check(op, st)
	if err != nil {
		l.logger.Debug("igraph: foreign call failed",
			zap.String("op", op),
			zap.Int32("status", int32(st)),
			zap.Bool("known", errors.Known(st)),
			zap.Error(err))
	}
	return err
}

// destroy runs the destructor for a live structure and returns its storage.
func (l *Library) destroy(kind abi.Kind, p abi.Ptr) {
	switch kind {
	case abi.KindGraph:
		l.eng.Destroy(p)
	case abi.KindVector:
		l.eng.VectorDestroy(p)
	case abi.KindVectorInt:
		l.eng.VectorIntDestroy(p)
	case abi.KindMatrix:
		l.eng.MatrixDestroy(p)
	case abi.KindVectorIntList:
		l.eng.VectorIntListDestroy(p)
	default:
		panic("igraph: destroy of unknown kind " + kind.String())
	}
	l.eng.Free(kind, p)
}

func (l *Library) emit(e Event) {
	for _, o := range l.observers {
		o.OnHandleEvent(e)
	}
}
