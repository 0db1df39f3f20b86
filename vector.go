package igraph

import (
	"github.com/wippyai/igraph-go/abi"
	"github.com/wippyai/igraph-go/errors"
)

// Vector owns an igraph_vector_t of float64.
type Vector struct {
	h handle
}

// NewVector creates an empty vector.
func (l *Library) NewVector() (*Vector, error) {
	return l.newVector("igraph_vector_init", 0)
}

// NewVectorSize creates a vector of n zeros.
func (l *Library) NewVectorSize(n int) (*Vector, error) {
	if n < 0 {
		return nil, errors.InvalidValue("igraph_vector_init", "negative size")
	}
	return l.newVector("igraph_vector_init", int64(n))
}

// VectorFromSlice creates a vector holding a copy of xs. Elements are
// appended one at a time; on the first failure the partial vector is
// destroyed and the error returned.
func (l *Library) VectorFromSlice(xs []float64) (*Vector, error) {
	v, err := l.NewVector()
	if err != nil {
		return nil, err
	}
	for _, x := range xs {
		if err := v.Append(x); err != nil {
			v.Close()
			return nil, err
		}
	}
	return v, nil
}

func (l *Library) newVector(op string, size int64) (*Vector, error) {
	v := &Vector{}
	err := v.h.init(l, abi.KindVector, op, func(p abi.Ptr) abi.Status {
		return l.eng.VectorInit(p, size)
	})
	if err != nil {
		return nil, err
	}
	track(v, &v.h)
	return v, nil
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	p := v.h.acquire()
	defer v.h.release()
	return int(v.h.lib.eng.VectorSize(p))
}

// At returns element i. It panics if i is out of range.
func (v *Vector) At(i int) float64 {
	p := v.h.acquire()
	defer v.h.release()
	eng := v.h.lib.eng
	checkIndex(int64(i), eng.VectorSize(p))
	return eng.VectorGet(p, int64(i))
}

// Set stores x at i. It panics if i is out of range.
func (v *Vector) Set(i int, x float64) {
	p := v.h.acquire()
	defer v.h.release()
	eng := v.h.lib.eng
	checkIndex(int64(i), eng.VectorSize(p))
	eng.VectorSet(p, int64(i), x)
}

// Append adds x at the end.
func (v *Vector) Append(x float64) error {
	p := v.h.acquire()
	defer v.h.release()
	return v.h.lib.check("igraph_vector_push_back", v.h.lib.eng.VectorPushBack(p, x))
}

// Values returns an independent copy of the elements. An empty vector
// yields an empty, non-nil slice.
func (v *Vector) Values() []float64 {
	p := v.h.acquire()
	defer v.h.release()
	return readVector(v.h.lib.eng, p)
}

// Transfer moves ownership to a new wrapper. v is closed afterwards without
// destroying the vector.
func (v *Vector) Transfer() *Vector {
	nv := &Vector{}
	v.h.moveTo(&nv.h)
	track(nv, &nv.h)
	return nv
}

// Close destroys the vector. Further calls are no-ops.
func (v *Vector) Close() error {
	v.h.close()
	return nil
}

func readVector(eng abi.Engine, p abi.Ptr) []float64 {
	n := eng.VectorSize(p)
	out := make([]float64, n)
	for i := range out {
		out[i] = eng.VectorGet(p, int64(i))
	}
	return out
}

// VectorInt owns an igraph_vector_int_t of int64.
type VectorInt struct {
	h handle
}

// NewVectorInt creates an empty integer vector.
func (l *Library) NewVectorInt() (*VectorInt, error) {
	return l.newVectorInt("igraph_vector_int_init", 0)
}

// NewVectorIntSize creates an integer vector of n zeros.
func (l *Library) NewVectorIntSize(n int) (*VectorInt, error) {
	if n < 0 {
		return nil, errors.InvalidValue("igraph_vector_int_init", "negative size")
	}
	return l.newVectorInt("igraph_vector_int_init", int64(n))
}

// VectorIntFromSlice creates an integer vector holding a copy of xs, with the
// same failure behavior as VectorFromSlice.
func (l *Library) VectorIntFromSlice(xs []int64) (*VectorInt, error) {
	v, err := l.NewVectorInt()
	if err != nil {
		return nil, err
	}
	for _, x := range xs {
		if err := v.Append(x); err != nil {
			v.Close()
			return nil, err
		}
	}
	return v, nil
}

func (l *Library) newVectorInt(op string, size int64) (*VectorInt, error) {
	v := &VectorInt{}
	err := v.h.init(l, abi.KindVectorInt, op, func(p abi.Ptr) abi.Status {
		return l.eng.VectorIntInit(p, size)
	})
	if err != nil {
		return nil, err
	}
	track(v, &v.h)
	return v, nil
}

// Len returns the number of elements.
func (v *VectorInt) Len() int {
	p := v.h.acquire()
	defer v.h.release()
	return int(v.h.lib.eng.VectorIntSize(p))
}

// At returns element i. It panics if i is out of range.
func (v *VectorInt) At(i int) int64 {
	p := v.h.acquire()
	defer v.h.release()
	eng := v.h.lib.eng
	checkIndex(int64(i), eng.VectorIntSize(p))
	return eng.VectorIntGet(p, int64(i))
}

// Set stores x at i. It panics if i is out of range.
func (v *VectorInt) Set(i int, x int64) {
	p := v.h.acquire()
	defer v.h.release()
	eng := v.h.lib.eng
	checkIndex(int64(i), eng.VectorIntSize(p))
	eng.VectorIntSet(p, int64(i), x)
}

// Append adds x at the end.
func (v *VectorInt) Append(x int64) error {
	p := v.h.acquire()
	defer v.h.release()
	return v.h.lib.check("igraph_vector_int_push_back", v.h.lib.eng.VectorIntPushBack(p, x))
}

// Values returns an independent copy of the elements.
func (v *VectorInt) Values() []int64 {
	p := v.h.acquire()
	defer v.h.release()
	return readVectorInt(v.h.lib.eng, p)
}

// Transfer moves ownership to a new wrapper.
func (v *VectorInt) Transfer() *VectorInt {
	nv := &VectorInt{}
	v.h.moveTo(&nv.h)
	track(nv, &nv.h)
	return nv
}

// Close destroys the vector. Further calls are no-ops.
func (v *VectorInt) Close() error {
	v.h.close()
	return nil
}

func readVectorInt(eng abi.Engine, p abi.Ptr) []int64 {
	n := eng.VectorIntSize(p)
	out := make([]int64, n)
	for i := range out {
		out[i] = eng.VectorIntGet(p, int64(i))
	}
	return out
}
