// Package dense provides core containers for square linear systems.
// Grid is a concrete, row-major implementation generic over the Field
// representation, storing elements in a flat slice for performance and
// cache friendliness.
package dense

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/densolve/num"
)

// gridErrorf wraps an underlying error with Grid method context.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a square row-major matrix of T values.
// n is the size (rows == cols), data holds n*n elements in row-major order,
// and f is the Field the elements belong to. The solve package treats Grids
// as immutable: every decomposition clones before writing.
type Grid[T any] struct {
	f    num.Field[T]
	n    int
	data []T
}

// New creates an n×n Grid initialized to the Field's zero.
// Stage 1 (Validate): ensure n > 0 and f != nil.
// Stage 2 (Prepare): allocate flat backing slice, fill with zeros.
// Stage 3 (Finalize): return new Grid or ErrBadShape.
// Complexity: O(n^2) time and memory.
func New[T any](f num.Field[T], n int) (*Grid[T], error) {
	if f == nil {
		return nil, ErrNilMatrix
	}
	if n <= 0 {
		return nil, ErrBadShape
	}
	data := make([]T, n*n)
	zero := f.Zero()
	for i := range data {
		data[i] = zero
	}

	return &Grid[T]{f: f, n: n, data: data}, nil
}

// FromRows builds a Grid from a square slice of rows, validating shape and
// rejecting NaN/Inf elements at the boundary (the kernels never see them).
// Complexity: O(n^2).
func FromRows[T any](f num.Field[T], rows [][]T) (*Grid[T], error) {
	if f == nil {
		return nil, ErrNilMatrix
	}
	n := len(rows)
	if n == 0 {
		return nil, ErrBadShape
	}
	g, err := New(f, n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d elements, want %d: %w", i, len(row), n, ErrBadShape)
		}
		for j, v := range row {
			if f.IsNaN(v) || f.IsInf(v) {
				return nil, gridErrorf("FromRows", i, j, ErrNaNInf)
			}
			g.data[i*n+j] = v
		}
	}

	return g, nil
}

// FromFloats builds a Grid by converting float64 rows through the Field.
// The usual way to ingest fixtures for any backend.
func FromFloats[T any](f num.Field[T], rows [][]float64) (*Grid[T], error) {
	if f == nil {
		return nil, ErrNilMatrix
	}
	n := len(rows)
	if n == 0 {
		return nil, ErrBadShape
	}
	converted := make([][]T, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromFloats: row %d has %d elements, want %d: %w", i, len(row), n, ErrBadShape)
		}
		converted[i] = make([]T, n)
		for j, v := range row {
			converted[i][j] = f.FromFloat64(v)
		}
	}

	return FromRows(f, converted)
}

// Identity returns I_n over the given Field (ones on the diagonal).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[T any](f num.Field[T], n int) (*Grid[T], error) {
	g, err := New(f, n)
	if err != nil {
		return nil, err
	}
	one := f.One()
	for i := 0; i < n; i++ {
		g.data[i*n+i] = one
	}

	return g, nil
}

// Field returns the arithmetic the elements belong to.
func (g *Grid[T]) Field() num.Field[T] { return g.f }

// Size returns n for an n×n Grid.
// Complexity: O(1).
func (g *Grid[T]) Size() int { return g.n }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (g *Grid[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= g.n {
		return 0, gridErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= g.n {
		return 0, gridErrorf(method, row, col, ErrOutOfRange)
	}

	return row*g.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (g *Grid[T]) At(row, col int) (T, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.data[idx], nil
}

// Set assigns value v at (row, col), rejecting NaN/Inf per numeric policy.
// Complexity: O(1).
func (g *Grid[T]) Set(row, col int, v T) error {
	idx, err := g.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if g.f.IsNaN(v) || g.f.IsInf(v) {
		return gridErrorf("Set", row, col, ErrNaNInf)
	}
	g.data[idx] = v

	return nil
}

// Raw exposes the backing slice (row-major, length n*n) for kernel loops.
// Callers outside solve MUST treat it as read-only; representations with
// pointer semantics share element values, which is safe because Field
// operations never mutate operands.
func (g *Grid[T]) Raw() []T { return g.data }

// Clone returns a deep structural copy of the Grid.
// Complexity: O(n^2) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	cp := make([]T, len(g.data))
	copy(cp, g.data)

	return &Grid[T]{f: g.f, n: g.n, data: cp}
}

// Row returns a copy of row i, or ErrOutOfRange.
func (g *Grid[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= g.n {
		return nil, gridErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]T, g.n)
	copy(out, g.data[i*g.n:(i+1)*g.n])

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n^2) for string construction.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < g.n; i++ {
		sb.WriteString("[")
		for j = 0; j < g.n; j++ {
			sb.WriteString(g.f.Text(g.data[i*g.n+j]))
			if j < g.n-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// CloneVec returns an independent copy of a value slice.
func CloneVec[T any](v []T) []T {
	out := make([]T, len(v))
	copy(out, v)

	return out
}

// VecFromFloats converts a float64 slice through the Field.
func VecFromFloats[T any](f num.Field[T], v []float64) []T {
	out := make([]T, len(v))
	for i, x := range v {
		out[i] = f.FromFloat64(x)
	}

	return out
}

// VecToFloats converts a value slice into float64s (nearest representable).
func VecToFloats[T any](f num.Field[T], v []T) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = f.Float64(x)
	}

	return out
}
