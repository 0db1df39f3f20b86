package igraph

import (
	"github.com/wippyai/igraph-go/abi"
)

// VectorIntList owns an igraph_vector_int_list_t: a list of integer vectors
// of varying length.
type VectorIntList struct {
	h handle
}

// NewVectorIntList creates an empty list.
func (l *Library) NewVectorIntList() (*VectorIntList, error) {
	vl := &VectorIntList{}
	err := vl.h.init(l, abi.KindVectorIntList, "igraph_vector_int_list_init", func(p abi.Ptr) abi.Status {
		return l.eng.VectorIntListInit(p, 0)
	})
	if err != nil {
		return nil, err
	}
	track(vl, &vl.h)
	return vl, nil
}

// VectorIntListFromSlices creates a list holding copies of items. On the
// first failure the partial list is destroyed and the error returned.
func (l *Library) VectorIntListFromSlices(items [][]int64) (*VectorIntList, error) {
	vl, err := l.NewVectorIntList()
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := vl.Append(item); err != nil {
			vl.Close()
			return nil, err
		}
	}
	return vl, nil
}

// Len returns the number of member vectors.
func (vl *VectorIntList) Len() int {
	p := vl.h.acquire()
	defer vl.h.release()
	return int(vl.h.lib.eng.VectorIntListSize(p))
}

// At returns a copy of member i. It panics if i is out of range.
func (vl *VectorIntList) At(i int) []int64 {
	p := vl.h.acquire()
	defer vl.h.release()
	eng := vl.h.lib.eng
	checkIndex(int64(i), eng.VectorIntListSize(p))
	return readListItem(eng, p, int64(i))
}

// Append adds a copy of xs as a new member. The values travel through a
// temporary integer vector that is destroyed before Append returns.
func (vl *VectorIntList) Append(xs []int64) error {
	tmp, err := vl.h.lib.VectorIntFromSlice(xs)
	if err != nil {
		return err
	}
	defer tmp.Close()

	p := vl.h.acquire()
	defer vl.h.release()
	return vl.h.lib.check("igraph_vector_int_list_push_back_copy",
		vl.h.lib.eng.VectorIntListPushBackCopy(p, tmp.h.raw()))
}

// Values returns independent copies of every member.
func (vl *VectorIntList) Values() [][]int64 {
	p := vl.h.acquire()
	defer vl.h.release()
	return readList(vl.h.lib.eng, p)
}

// Transfer moves ownership to a new wrapper.
func (vl *VectorIntList) Transfer() *VectorIntList {
	nl := &VectorIntList{}
	vl.h.moveTo(&nl.h)
	track(nl, &nl.h)
	return nl
}

// Close destroys the list and every member. Further calls are no-ops.
func (vl *VectorIntList) Close() error {
	vl.h.close()
	return nil
}

func readList(eng abi.Engine, p abi.Ptr) [][]int64 {
	n := eng.VectorIntListSize(p)
	out := make([][]int64, n)
	for i := range out {
		out[i] = readListItem(eng, p, int64(i))
	}
	return out
}

func readListItem(eng abi.Engine, p abi.Ptr, i int64) []int64 {
	n := eng.VectorIntListItemSize(p, i)
	out := make([]int64, n)
	for j := range out {
		out[j] = eng.VectorIntListItemGet(p, i, int64(j))
	}
	return out
}
