package engine

import (
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/igraph-go/abi"
)

// Storage

func (e *WazeroEngine) Alloc(k abi.Kind) (abi.Ptr, abi.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	res, err := e.call("gi_alloc", kind(k))
	if err == errClosed {
		return 0, abi.StatusInternal
	}
	if err != nil {
		Logger().Error("shim call trapped", zap.String("func", "gi_alloc"), zap.Error(err))
		return 0, abi.StatusInternal
	}
	p := api.DecodeU32(res[0])
	if p == 0 {
		return 0, abi.StatusNoMemory
	}
	return abi.Ptr(p), abi.StatusSuccess
}

func (e *WazeroEngine) Free(k abi.Kind, p abi.Ptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value("gi_free", kind(k), ptr(p))
}

// igraph_vector_t

func (e *WazeroEngine) VectorInit(v abi.Ptr, size int64) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_vector_init", ptr(v), i64(size))
}

func (e *WazeroEngine) VectorDestroy(v abi.Ptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value("gi_vector_destroy", ptr(v))
}

func (e *WazeroEngine) VectorSize(v abi.Ptr) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int64(e.value("gi_vector_size", ptr(v)))
}

func (e *WazeroEngine) VectorGet(v abi.Ptr, i int64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return api.DecodeF64(e.value("gi_vector_get", ptr(v), i64(i)))
}

func (e *WazeroEngine) VectorSet(v abi.Ptr, i int64, x float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value("gi_vector_set", ptr(v), i64(i), f64(x))
}

func (e *WazeroEngine) VectorPushBack(v abi.Ptr, x float64) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_vector_push_back", ptr(v), f64(x))
}

// igraph_vector_int_t

func (e *WazeroEngine) VectorIntInit(v abi.Ptr, size int64) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_vector_int_init", ptr(v), i64(size))
}

func (e *WazeroEngine) VectorIntDestroy(v abi.Ptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value("gi_vector_int_destroy", ptr(v))
}

func (e *WazeroEngine) VectorIntSize(v abi.Ptr) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int64(e.value("gi_vector_int_size", ptr(v)))
}

func (e *WazeroEngine) VectorIntGet(v abi.Ptr, i int64) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int64(e.value("gi_vector_int_get", ptr(v), i64(i)))
}

func (e *WazeroEngine) VectorIntSet(v abi.Ptr, i int64, x int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value("gi_vector_int_set", ptr(v), i64(i), i64(x))
}

func (e *WazeroEngine) VectorIntPushBack(v abi.Ptr, x int64) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_vector_int_push_back", ptr(v), i64(x))
}

// igraph_matrix_t

func (e *WazeroEngine) MatrixInit(m abi.Ptr, nrow, ncol int64) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_matrix_init", ptr(m), i64(nrow), i64(ncol))
}

func (e *WazeroEngine) MatrixDestroy(m abi.Ptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value("gi_matrix_destroy", ptr(m))
}

func (e *WazeroEngine) MatrixNrow(m abi.Ptr) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int64(e.value("gi_matrix_nrow", ptr(m)))
}

func (e *WazeroEngine) MatrixNcol(m abi.Ptr) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int64(e.value("gi_matrix_ncol", ptr(m)))
}

func (e *WazeroEngine) MatrixGet(m abi.Ptr, row, col int64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return api.DecodeF64(e.value("gi_matrix_get", ptr(m), i64(row), i64(col)))
}

func (e *WazeroEngine) MatrixSet(m abi.Ptr, row, col int64, x float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value("gi_matrix_set", ptr(m), i64(row), i64(col), f64(x))
}

// igraph_vector_int_list_t

func (e *WazeroEngine) VectorIntListInit(l abi.Ptr, size int64) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_vector_int_list_init", ptr(l), i64(size))
}

func (e *WazeroEngine) VectorIntListDestroy(l abi.Ptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value("gi_vector_int_list_destroy", ptr(l))
}

func (e *WazeroEngine) VectorIntListSize(l abi.Ptr) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int64(e.value("gi_vector_int_list_size", ptr(l)))
}

func (e *WazeroEngine) VectorIntListItemSize(l abi.Ptr, i int64) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int64(e.value("gi_vector_int_list_item_size", ptr(l), i64(i)))
}

func (e *WazeroEngine) VectorIntListItemGet(l abi.Ptr, i, j int64) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int64(e.value("gi_vector_int_list_item_get", ptr(l), i64(i), i64(j)))
}

func (e *WazeroEngine) VectorIntListPushBackCopy(l, v abi.Ptr) abi.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status("gi_vector_int_list_push_back_copy", ptr(l), ptr(v))
}
