package igraph

import (
	"fmt"

	"github.com/wippyai/igraph-go/abi"
	"github.com/wippyai/igraph-go/errors"
)

// Matrix owns a row-major view of an igraph_matrix_t of float64.
type Matrix struct {
	h handle
}

// NewMatrix creates a rows x cols matrix of zeros.
func (l *Library) NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.InvalidValue("igraph_matrix_init", "negative dimension")
	}
	return l.newMatrix(int64(rows), int64(cols))
}

// MatrixFromRows creates a matrix holding a copy of rows. All rows must have
// the same length.
func (l *Library) MatrixFromRows(rows [][]float64) (*Matrix, error) {
	ncol := 0
	if len(rows) > 0 {
		ncol = len(rows[0])
	}
	for i, r := range rows {
		if len(r) != ncol {
			return nil, errors.InvalidValue("igraph_matrix_init",
				fmt.Sprintf("row %d has %d columns, want %d", i, len(r), ncol))
		}
	}

	m, err := l.newMatrix(int64(len(rows)), int64(ncol))
	if err != nil {
		return nil, err
	}
	p := m.h.raw()
	for i, r := range rows {
		for j, x := range r {
			l.eng.MatrixSet(p, int64(i), int64(j), x)
		}
	}
	return m, nil
}

func (l *Library) newMatrix(rows, cols int64) (*Matrix, error) {
	m := &Matrix{}
	err := m.h.init(l, abi.KindMatrix, "igraph_matrix_init", func(p abi.Ptr) abi.Status {
		return l.eng.MatrixInit(p, rows, cols)
	})
	if err != nil {
		return nil, err
	}
	track(m, &m.h)
	return m, nil
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, cols int) {
	p := m.h.acquire()
	defer m.h.release()
	eng := m.h.lib.eng
	return int(eng.MatrixNrow(p)), int(eng.MatrixNcol(p))
}

// At returns the element at (row, col). It panics if either is out of range.
func (m *Matrix) At(row, col int) float64 {
	p := m.h.acquire()
	defer m.h.release()
	eng := m.h.lib.eng
	checkIndex(int64(row), eng.MatrixNrow(p))
	checkIndex(int64(col), eng.MatrixNcol(p))
	return eng.MatrixGet(p, int64(row), int64(col))
}

// Set stores x at (row, col). It panics if either is out of range.
func (m *Matrix) Set(row, col int, x float64) {
	p := m.h.acquire()
	defer m.h.release()
	eng := m.h.lib.eng
	checkIndex(int64(row), eng.MatrixNrow(p))
	checkIndex(int64(col), eng.MatrixNcol(p))
	eng.MatrixSet(p, int64(row), int64(col), x)
}

// Values returns an independent row-major copy. A matrix without rows yields
// an empty, non-nil slice.
func (m *Matrix) Values() [][]float64 {
	p := m.h.acquire()
	defer m.h.release()
	return readMatrix(m.h.lib.eng, p)
}

// Transfer moves ownership to a new wrapper.
func (m *Matrix) Transfer() *Matrix {
	nm := &Matrix{}
	m.h.moveTo(&nm.h)
	track(nm, &nm.h)
	return nm
}

// Close destroys the matrix. Further calls are no-ops.
func (m *Matrix) Close() error {
	m.h.close()
	return nil
}

func readMatrix(eng abi.Engine, p abi.Ptr) [][]float64 {
	nrow, ncol := eng.MatrixNrow(p), eng.MatrixNcol(p)
	out := make([][]float64, nrow)
	for i := range out {
		row := make([]float64, ncol)
		for j := range row {
			row[j] = eng.MatrixGet(p, int64(i), int64(j))
		}
		out[i] = row
	}
	return out
}
