package igraph

import (
	"go.uber.org/zap"

	"github.com/wippyai/igraph-go/abi"
	"github.com/wippyai/igraph-go/errors"
)

// Graph owns an igraph_t.
//
// A failed mutation poisons the graph: the foreign structure is still valid
// and is destroyed normally, but its contents are whatever the engine left
// behind. Until Recover is called every fallible operation returns a
// *errors.PoisonedError wrapping the failure.
type Graph struct {
	h      handle
	poison error
}

func (l *Library) newGraph(op string, fn func(abi.Ptr) abi.Status) (*Graph, error) {
	g := &Graph{}
	if err := g.h.init(l, abi.KindGraph, op, fn); err != nil {
		return nil, err
	}
	track(g, &g.h)
	return g, nil
}

// Close destroys the graph. Further calls are no-ops.
func (g *Graph) Close() error {
	g.h.close()
	return nil
}

// Transfer moves ownership, including any poison, to a new wrapper.
func (g *Graph) Transfer() *Graph {
	ng := &Graph{}
	g.h.moveTo(&ng.h)
	ng.poison, g.poison = g.poison, nil
	track(ng, &ng.h)
	return ng
}

// Poisoned returns the failure that poisoned the graph, or nil.
func (g *Graph) Poisoned() error {
	g.h.acquire()
	defer g.h.release()
	return g.poison
}

// Recover clears the poison left by a failed mutation. The caller accepts
// the graph's current contents as they are.
func (g *Graph) Recover() {
	g.h.acquire()
	defer g.h.release()
	if g.poison != nil {
		g.h.lib.logger.Debug("igraph: poison cleared", zap.NamedError("cause", g.poison))
	}
	g.poison = nil
}

// enter claims the graph for a fallible operation. The caller must release
// the handle when err is nil.
func (g *Graph) enter() (abi.Ptr, error) {
	p := g.h.acquire()
	if g.poison != nil {
		g.h.release()
		return 0, &errors.PoisonedError{Cause: g.poison}
	}
	return p, nil
}

// mutate runs one in-place foreign call and poisons the graph on failure.
func (g *Graph) mutate(op string, fn func(eng abi.Engine, p abi.Ptr) abi.Status) error {
	p, err := g.enter()
	if err != nil {
		return err
	}
	defer g.h.release()

	lib := g.h.lib
	if err := lib.check(op, fn(lib.eng, p)); err != nil {
		g.poison = err
		lib.logger.Warn("igraph: graph poisoned by failed mutation",
			zap.String("op", op),
			zap.Uint64("ptr", uint64(p)),
			zap.Error(err))
		return err
	}
	return nil
}

// scalar runs a foreign call whose results are plain values.
func scalar[T any](g *Graph, op string, fn func(eng abi.Engine, p abi.Ptr) (T, abi.Status)) (T, error) {
	var zero T
	p, err := g.enter()
	if err != nil {
		return zero, err
	}
	defer g.h.release()

	lib := g.h.lib
	v, st := fn(lib.eng, p)
	if err := lib.check(op, st); err != nil {
		return zero, err
	}
	return v, nil
}

func intResult(g *Graph, op string, fn func(eng abi.Engine, p, res abi.Ptr) abi.Status) ([]int64, error) {
	p, err := g.enter()
	if err != nil {
		return nil, err
	}
	defer g.h.release()

	lib := g.h.lib
	res, err := lib.NewVectorInt()
	if err != nil {
		return nil, err
	}
	defer res.Close()

	if err := lib.check(op, fn(lib.eng, p, res.h.raw())); err != nil {
		return nil, err
	}
	return readVectorInt(lib.eng, res.h.raw()), nil
}

func realResult(g *Graph, op string, fn func(eng abi.Engine, p, res abi.Ptr) abi.Status) ([]float64, error) {
	p, err := g.enter()
	if err != nil {
		return nil, err
	}
	defer g.h.release()

	lib := g.h.lib
	res, err := lib.NewVector()
	if err != nil {
		return nil, err
	}
	defer res.Close()

	if err := lib.check(op, fn(lib.eng, p, res.h.raw())); err != nil {
		return nil, err
	}
	return readVector(lib.eng, res.h.raw()), nil
}

func matrixResult(g *Graph, op string, fn func(eng abi.Engine, p, res abi.Ptr) abi.Status) ([][]float64, error) {
	p, err := g.enter()
	if err != nil {
		return nil, err
	}
	defer g.h.release()

	lib := g.h.lib
	res, err := lib.NewMatrix(0, 0)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	if err := lib.check(op, fn(lib.eng, p, res.h.raw())); err != nil {
		return nil, err
	}
	return readMatrix(lib.eng, res.h.raw()), nil
}

// withInts runs fn with a temporary integer vector holding xs. A failure to
// build the vector is returned before fn runs.
func (l *Library) withInts(xs []int64, fn func(v abi.Ptr) error) error {
	v, err := l.VectorIntFromSlice(xs)
	if err != nil {
		return err
	}
	defer v.Close()
	return fn(v.h.raw())
}

// enterPair claims g and other for an operation reading both. other may be
// g itself. Both must come from the same Library.
func (g *Graph) enterPair(op string, other *Graph) (p, q abi.Ptr, done func(), err error) {
	p, err = g.enter()
	if err != nil {
		return 0, 0, nil, err
	}
	if other == g {
		return p, p, g.h.release, nil
	}
	if other.h.lib != g.h.lib {
		g.h.release()
		return 0, 0, nil, errors.InvalidValue(op, "graphs belong to different libraries")
	}
	q, err = other.enter()
	if err != nil {
		g.h.release()
		return 0, 0, nil, err
	}
	return p, q, func() {
		other.h.release()
		g.h.release()
	}, nil
}
