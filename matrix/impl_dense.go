// SPDX-License-Identifier: MIT

// Package matrix - Dense, the row-major container behind every image matrix.
//
// Purpose:
//   - Hold rows*cols float64 values in one flat slice; element (i, j) lives at i*cols + j.
//   - Report bad indices and non-finite writes as errors; nothing here panics on input.
//   - Let decoders hand over a freshly built buffer (NewFromData) without a second copy.
//
// AI-Hints:
//   - Hot kernels in impl_linear_algebra.go type-switch to *Dense and read data directly.
//   - Use NewFromRows for literals and fixtures; it copies.
//
// Cost per call:
//   - NewDense, NewFromRows, Clone, RowMajor: O(r*c). NewFromData: O(r*c) scan, no copy. At/Set: O(1).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// operation tags attached by denseErrorf
const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxFromRows = "NewFromRows"
	ctxFromData = "NewFromData"
)

// String() layout: one bracketed, comma separated line per row.
const (
	rowOpen  = "["
	rowClose = "]\n"
	cellSep  = ", "
)

// denseErrorf tags err with the Dense method and the offending cell.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Dense is a matrix stored row by row in a single slice.
// The zero value is not usable; build one with NewDense, NewFromRows or NewFromData.
type Dense struct {
	r, c           int
	data           []float64 // len(data) == r*c
	validateNaNInf bool      // when set, Set and constructors refuse NaN/±Inf
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense allocates a rows×cols matrix filled with zeros.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is not positive.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: o.validateNaNInf}, nil
}

// NewFromRows copies nested rows into a new Dense. Every row must have the
// length of the first one.
//
// Implementation:
//   - Stage 1: the first row fixes the width; an empty outer or first row is ErrInvalidDimensions.
//   - Stage 2: copy row by row, rejecting ragged rows and (policy ON) non-finite cells.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
//
// AI-Hints:
//   - Handy for literals in tests and small fixtures; decoders should use NewFromData.
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}

	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(row), c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if m.validateNaNInf && !finite(v) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// NewFromData wraps a row-major buffer of length rows*cols without copying.
// The Dense takes ownership of data; the caller must not mutate it afterwards.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (len(data) != rows*cols),
//     ErrNaNInf (policy ON and a non-finite value is present).
func NewFromData(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	switch {
	case rows <= 0 || cols <= 0:
		return nil, fmt.Errorf("%s: %w", ctxFromData, ErrInvalidDimensions)
	case len(data) != rows*cols:
		return nil, fmt.Errorf("%s: len(data)=%d, want %d: %w",
			ctxFromData, len(data), rows*cols, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for k, v := range data {
			if !finite(v) {
				return nil, denseErrorf(ctxFromData, k/cols, k%cols, ErrNaNInf)
			}
		}
	}

	return &Dense{r: rows, c: cols, data: data, validateNaNInf: o.validateNaNInf}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows(), Cols()).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// offset maps (row, col) to its slot in data, or fails with ErrOutOfRange.
func (m *Dense) offset(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At reads element (row, col). Out-of-range indices yield ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	k, err := m.offset(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[k], nil
}

// Set writes v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bad indices; ErrNaNInf for a non-finite v when the policy is on.
func (m *Dense) Set(row, col int, v float64) error {
	k, err := m.offset(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !finite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[k] = v

	return nil
}

// RowMajor returns a copy of the backing buffer in row-major order.
// Used by adapters that hand data to external numeric libraries.
func (m *Dense) RowMajor() []float64 {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// Clone returns an independent copy that keeps the NaN/Inf policy.
func (m *Dense) Clone() Matrix {
	return &Dense{r: m.r, c: m.c, data: m.RowMajor(), validateNaNInf: m.validateNaNInf}
}

// String renders the matrix one row per line, e.g. "[1, 0.5]\n".
// Meant for the CLI and test failures, not for large images.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(rowOpen)
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			if j > 0 {
				b.WriteString(cellSep)
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteString(rowClose)
	}

	return b.String()
}
