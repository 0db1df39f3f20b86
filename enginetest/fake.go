package enginetest

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/wippyai/igraph-go/abi"
)

const success = abi.StatusSuccess

var _ abi.Engine = (*Fake)(nil)

// Fake is an in-memory abi.Engine. It is safe for concurrent use; every call
// holds one mutex, like a serialized engine instance.
type Fake struct {
	slots      *slots
	rng        *rand.Rand
	calls      map[string]int
	allocs     map[abi.Kind]int
	frees      map[abi.Kind]int
	inits      map[abi.Kind]int
	destroys   map[abi.Kind]int
	failures   map[string]*failure
	violations []string
	scripts    scripts
	mu         sync.Mutex
}

type failure struct {
	remaining int
	status    abi.Status
}

type scripts struct {
	leiden          *leidenResult
	fastGreedy      *fastGreedyResult
	subisomorphisms [][]int64
	haveSubiso      bool
}

type leidenResult struct {
	membership []int64
	clusters   int64
	quality    float64
}

type fastGreedyResult struct {
	membership []int64
	modularity []float64
}

// New creates an empty engine with a fixed random seed.
func New() *Fake {
	return &Fake{
		slots:    newSlots(),
		rng:      rand.New(rand.NewPCG(1, 2)),
		calls:    make(map[string]int),
		allocs:   make(map[abi.Kind]int),
		frees:    make(map[abi.Kind]int),
		inits:    make(map[abi.Kind]int),
		destroys: make(map[abi.Kind]int),
		failures: make(map[string]*failure),
	}
}

// Seed reseeds the generator used by the random graph constructors.
func (f *Fake) Seed(seed uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FailOn makes the nth next call to op (a gi_* export name, 1-based) return
// st instead of running. Calls to infallible functions are only counted.
func (f *Fake) FailOn(op string, nth int, st abi.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[op] = &failure{remaining: nth, status: st}
}

// Calls returns how many times op was called.
func (f *Fake) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

// Allocs returns how much storage of kind k was reserved.
func (f *Fake) Allocs(k abi.Kind) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.allocs[k]
}

// Frees returns how much storage of kind k was returned.
func (f *Fake) Frees(k abi.Kind) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frees[k]
}

// Inits returns how many structures of kind k were initialized.
func (f *Fake) Inits(k abi.Kind) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inits[k]
}

// Destroys returns how many structures of kind k were destroyed.
func (f *Fake) Destroys(k abi.Kind) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.destroys[k]
}

// Live returns how many structures of kind k are initialized and not yet
// destroyed.
func (f *Fake) Live(k abi.Kind) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.slots.count(func(s *slot) bool { return s.live && s.kind == k })
}

// Reserved returns how many storage blocks of any kind are not yet freed.
func (f *Fake) Reserved() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.slots.count(func(s *slot) bool { return s.reserved })
}

// Violations returns every misuse of the foreign contract seen so far.
func (f *Fake) Violations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.violations)
}

// ScriptLeiden sets the result of CommunityLeiden.
func (f *Fake) ScriptLeiden(membership []int64, clusters int64, quality float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts.leiden = &leidenResult{slices.Clone(membership), clusters, quality}
}

// ScriptFastGreedy sets the result of CommunityFastGreedy.
func (f *Fake) ScriptFastGreedy(membership []int64, modularity []float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts.fastGreedy = &fastGreedyResult{slices.Clone(membership), slices.Clone(modularity)}
}

// ScriptSubisomorphisms sets the mappings reported by the VF2 functions.
// The count is len(maps).
func (f *Fake) ScriptSubisomorphisms(maps [][]int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts.subisomorphisms = cloneLists(maps)
	f.scripts.haveSubiso = true
}

// enter counts a call and returns an injected status, if one is due.
// Callers hold f.mu.
func (f *Fake) enter(op string) abi.Status {
	f.calls[op]++
	fl, found := f.failures[op]
	if !found {
		return success
	}
	fl.remaining--
	if fl.remaining > 0 {
		return success
	}
	delete(f.failures, op)
	return fl.status
}

func (f *Fake) violate(format string, args ...any) {
	f.violations = append(f.violations, fmt.Sprintf(format, args...))
}

// init runs build and installs its value into reserved, uninitialized
// storage. Nothing is installed when build fails.
func (f *Fake) init(p abi.Ptr, k abi.Kind, build func() (any, abi.Status)) abi.Status {
	e, err := f.slots.get(p, k)
	if err != nil {
		f.violate("init: %v", err)
		return abi.StatusInternal
	}
	if e.live {
		f.violate("init of live %s at %d", k, p)
		return abi.StatusInternal
	}
	v, st := build()
	if st != success {
		return st
	}
	e.value = v
	e.live = true
	f.inits[k]++
	return success
}

func (f *Fake) destroy(p abi.Ptr, k abi.Kind) {
	e, err := f.slots.get(p, k)
	if err != nil {
		f.violate("destroy: %v", err)
		return
	}
	if !e.live {
		f.violate("destroy of uninitialized %s at %d", k, p)
		return
	}
	e.value = nil
	e.live = false
	f.destroys[k]++
}

func (f *Fake) value(p abi.Ptr, k abi.Kind) any {
	e, err := f.slots.get(p, k)
	if err != nil {
		f.violate("use: %v", err)
		return nil
	}
	if !e.live {
		f.violate("use of uninitialized %s at %d", k, p)
		return nil
	}
	return e.value
}

func (f *Fake) vec(p abi.Ptr) *[]float64 {
	v, _ := f.value(p, abi.KindVector).(*[]float64)
	return v
}

func (f *Fake) ivec(p abi.Ptr) *[]int64 {
	v, _ := f.value(p, abi.KindVectorInt).(*[]int64)
	return v
}

func (f *Fake) mat(p abi.Ptr) *matrix {
	v, _ := f.value(p, abi.KindMatrix).(*matrix)
	return v
}

func (f *Fake) list(p abi.Ptr) *[][]int64 {
	v, _ := f.value(p, abi.KindVectorIntList).(*[][]int64)
	return v
}

func (f *Fake) graph(p abi.Ptr) *graph {
	v, _ := f.value(p, abi.KindGraph).(*graph)
	return v
}

func (f *Fake) inRange(what string, i, n int64) bool {
	if i < 0 || i >= n {
		f.violate("%s index %d out of range [0:%d]", what, i, n)
		return false
	}
	return true
}

// Storage

func (f *Fake) Alloc(k abi.Kind) (abi.Ptr, abi.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.enter("gi_alloc"); st != success {
		return 0, st
	}
	f.allocs[k]++
	return f.slots.reserve(k), success
}

func (f *Fake) Free(k abi.Kind, p abi.Ptr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_free")
	e, err := f.slots.get(p, k)
	if err != nil {
		f.violate("free: %v", err)
		return
	}
	if e.live {
		f.violate("free of live %s at %d without destroy", k, p)
	}
	f.frees[k]++
	f.slots.release(p)
}

// igraph_vector_t

func (f *Fake) VectorInit(v abi.Ptr, size int64) abi.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.enter("gi_vector_init"); st != success {
		return st
	}
	return f.init(v, abi.KindVector, func() (any, abi.Status) {
		if size < 0 {
			return nil, abi.StatusInvalidValue
		}
		xs := make([]float64, size)
		return &xs, success
	})
}

func (f *Fake) VectorDestroy(v abi.Ptr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_vector_destroy")
	f.destroy(v, abi.KindVector)
}

func (f *Fake) VectorSize(v abi.Ptr) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_vector_size")
	if xs := f.vec(v); xs != nil {
		return int64(len(*xs))
	}
	return 0
}

func (f *Fake) VectorGet(v abi.Ptr, i int64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_vector_get")
	if xs := f.vec(v); xs != nil && f.inRange("vector", i, int64(len(*xs))) {
		return (*xs)[i]
	}
	return 0
}

func (f *Fake) VectorSet(v abi.Ptr, i int64, x float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_vector_set")
	if xs := f.vec(v); xs != nil && f.inRange("vector", i, int64(len(*xs))) {
		(*xs)[i] = x
	}
}

func (f *Fake) VectorPushBack(v abi.Ptr, x float64) abi.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.enter("gi_vector_push_back"); st != success {
		return st
	}
	xs := f.vec(v)
	if xs == nil {
		return abi.StatusInternal
	}
	*xs = append(*xs, x)
	return success
}

// igraph_vector_int_t

func (f *Fake) VectorIntInit(v abi.Ptr, size int64) abi.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.enter("gi_vector_int_init"); st != success {
		return st
	}
	return f.init(v, abi.KindVectorInt, func() (any, abi.Status) {
		if size < 0 {
			return nil, abi.StatusInvalidValue
		}
		xs := make([]int64, size)
		return &xs, success
	})
}

func (f *Fake) VectorIntDestroy(v abi.Ptr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_vector_int_destroy")
	f.destroy(v, abi.KindVectorInt)
}

func (f *Fake) VectorIntSize(v abi.Ptr) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_vector_int_size")
	if xs := f.ivec(v); xs != nil {
		return int64(len(*xs))
	}
	return 0
}

func (f *Fake) VectorIntGet(v abi.Ptr, i int64) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_vector_int_get")
	if xs := f.ivec(v); xs != nil && f.inRange("vector_int", i, int64(len(*xs))) {
		return (*xs)[i]
	}
	return 0
}

func (f *Fake) VectorIntSet(v abi.Ptr, i int64, x int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_vector_int_set")
	if xs := f.ivec(v); xs != nil && f.inRange("vector_int", i, int64(len(*xs))) {
		(*xs)[i] = x
	}
}

func (f *Fake) VectorIntPushBack(v abi.Ptr, x int64) abi.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.enter("gi_vector_int_push_back"); st != success {
		return st
	}
	xs := f.ivec(v)
	if xs == nil {
		return abi.StatusInternal
	}
	*xs = append(*xs, x)
	return success
}

// igraph_matrix_t, column-major like igraph.

type matrix struct {
	data       []float64
	nrow, ncol int64
}

func newMatrix(nrow, ncol int64) *matrix {
	return &matrix{nrow: nrow, ncol: ncol, data: make([]float64, nrow*ncol)}
}

func (m *matrix) at(row, col int64) *float64 {
	return &m.data[col*m.nrow+row]
}

func (f *Fake) MatrixInit(m abi.Ptr, nrow, ncol int64) abi.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.enter("gi_matrix_init"); st != success {
		return st
	}
	return f.init(m, abi.KindMatrix, func() (any, abi.Status) {
		if nrow < 0 || ncol < 0 {
			return nil, abi.StatusInvalidValue
		}
		return newMatrix(nrow, ncol), success
	})
}

func (f *Fake) MatrixDestroy(m abi.Ptr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_matrix_destroy")
	f.destroy(m, abi.KindMatrix)
}

func (f *Fake) MatrixNrow(m abi.Ptr) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_matrix_nrow")
	if mx := f.mat(m); mx != nil {
		return mx.nrow
	}
	return 0
}

func (f *Fake) MatrixNcol(m abi.Ptr) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_matrix_ncol")
	if mx := f.mat(m); mx != nil {
		return mx.ncol
	}
	return 0
}

func (f *Fake) MatrixGet(m abi.Ptr, row, col int64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_matrix_get")
	mx := f.mat(m)
	if mx == nil || !f.inRange("matrix row", row, mx.nrow) || !f.inRange("matrix col", col, mx.ncol) {
		return 0
	}
	return *mx.at(row, col)
}

func (f *Fake) MatrixSet(m abi.Ptr, row, col int64, x float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_matrix_set")
	mx := f.mat(m)
	if mx == nil || !f.inRange("matrix row", row, mx.nrow) || !f.inRange("matrix col", col, mx.ncol) {
		return
	}
	*mx.at(row, col) = x
}

// igraph_vector_int_list_t

func (f *Fake) VectorIntListInit(l abi.Ptr, size int64) abi.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.enter("gi_vector_int_list_init"); st != success {
		return st
	}
	return f.init(l, abi.KindVectorIntList, func() (any, abi.Status) {
		if size < 0 {
			return nil, abi.StatusInvalidValue
		}
		items := make([][]int64, size)
		for i := range items {
			items[i] = []int64{}
		}
		return &items, success
	})
}

func (f *Fake) VectorIntListDestroy(l abi.Ptr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_vector_int_list_destroy")
	f.destroy(l, abi.KindVectorIntList)
}

func (f *Fake) VectorIntListSize(l abi.Ptr) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_vector_int_list_size")
	if items := f.list(l); items != nil {
		return int64(len(*items))
	}
	return 0
}

func (f *Fake) VectorIntListItemSize(l abi.Ptr, i int64) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_vector_int_list_item_size")
	if items := f.list(l); items != nil && f.inRange("list", i, int64(len(*items))) {
		return int64(len((*items)[i]))
	}
	return 0
}

func (f *Fake) VectorIntListItemGet(l abi.Ptr, i, j int64) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enter("gi_vector_int_list_item_get")
	items := f.list(l)
	if items == nil || !f.inRange("list", i, int64(len(*items))) {
		return 0
	}
	item := (*items)[i]
	if !f.inRange("list item", j, int64(len(item))) {
		return 0
	}
	return item[j]
}

func (f *Fake) VectorIntListPushBackCopy(l, v abi.Ptr) abi.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	if st := f.enter("gi_vector_int_list_push_back_copy"); st != success {
		return st
	}
	items := f.list(l)
	xs := f.ivec(v)
	if items == nil || xs == nil {
		return abi.StatusInternal
	}
	*items = append(*items, slices.Clone(*xs))
	return success
}

// setInts replaces the contents of a live integer vector.
func (f *Fake) setInts(p abi.Ptr, xs []int64) bool {
	v := f.ivec(p)
	if v == nil {
		return false
	}
	*v = xs
	return true
}

func (f *Fake) setReals(p abi.Ptr, xs []float64) bool {
	v := f.vec(p)
	if v == nil {
		return false
	}
	*v = xs
	return true
}

func cloneLists(items [][]int64) [][]int64 {
	out := make([][]int64, len(items))
	for i, item := range items {
		out[i] = slices.Clone(item)
		if out[i] == nil {
			out[i] = []int64{}
		}
	}
	return out
}
