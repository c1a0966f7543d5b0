package ops

import (
	"github.com/halvard-labs/serialcheck/matrix"
)

// HermiteNormalForm reduces a's columns via unimodular column operations
// (swap, negate, add an integer multiple of one column to another) into
// column Hermite normal form: lower-triangular, each pivot positive and
// strictly greater than every entry to its right in the same row.
//
// This is the integer analogue of RowEchelon: where RowEchelon answers "is
// Ax=b solvable over the rationals", HermiteNormalForm answers the stronger
// question oracle.Native needs for exact Presburger feasibility — "is b in
// the ℤ-linear span of A's columns" — by reducing A to H and then forward-substituting against b
// column by column, requiring an exact integer quotient at each step.
//
// Steps:
//  1. Copy a into a working buffer h.
//  2. For each row, repeatedly apply the Euclidean algorithm across the
//     columns at or after the current pivot column to drive every entry in
//     the row except the pivot to zero, via column swaps/negations/adds.
//  3. Normalize the pivot to be positive.
func HermiteNormalForm(a *matrix.Matrix) (h *matrix.Matrix, err error) {
	rows, cols := a.Dims()
	h = a.Clone()

	pivotCol := 0
	for row := 0; row < rows && pivotCol < cols; row++ {
		for {
			// Find the leftmost nonzero entry at or after pivotCol in this row.
			nz := -1
			for c := pivotCol; c < cols; c++ {
				if h.At(row, c) != 0 {
					nz = c
					break
				}
			}
			if nz == -1 {
				break // row is already zero from pivotCol onward
			}
			swapCols(h, pivotCol, nz)

			done := true
			for c := pivotCol + 1; c < cols; c++ {
				if h.At(row, c) == 0 {
					continue
				}
				if abs64(h.At(row, c)) < abs64(h.At(row, pivotCol)) {
					swapCols(h, pivotCol, c)
				}
				q := h.At(row, c) / h.At(row, pivotCol)
				addColMultiple(h, pivotCol, c, -q)
				if h.At(row, c) != 0 {
					done = false
				}
			}
			if done {
				break
			}
		}
		if h.At(row, pivotCol) < 0 {
			negateCol(h, pivotCol)
		}
		if h.At(row, pivotCol) != 0 {
			pivotCol++
		}
	}

	return h, nil
}

// LatticeContains reports whether b lies in the ℤ-span of a's columns, by
// reducing a to Hermite normal form and forward-substituting b against it.
func LatticeContains(a *matrix.Matrix, b []int64) (bool, error) {
	rows, _ := a.Dims()
	if len(b) != rows {
		return false, ErrDimensionMismatch
	}
	h, err := HermiteNormalForm(a)
	if err != nil {
		return false, err
	}

	_, hc := h.Dims()
	residual := append([]int64(nil), b...)
	for col := 0; col < hc; col++ {
		pivot := int64(0)
		pivotRow := -1
		for r := 0; r < rows; r++ {
			if h.At(r, col) != 0 {
				pivot = h.At(r, col)
				pivotRow = r
				break
			}
		}
		if pivotRow == -1 {
			continue
		}
		if residual[pivotRow]%pivot != 0 {
			return false, nil
		}
		coeff := residual[pivotRow] / pivot
		for r := 0; r < rows; r++ {
			residual[r] -= coeff * h.At(r, col)
		}
	}
	for _, v := range residual {
		if v != 0 {
			return false, nil
		}
	}

	return true, nil
}

func swapCols(m *matrix.Matrix, i, j int) {
	if i == j {
		return
	}
	rows, _ := m.Dims()
	for r := 0; r < rows; r++ {
		vi, vj := m.At(r, i), m.At(r, j)
		m.Set(r, i, vj)
		m.Set(r, j, vi)
	}
}

func negateCol(m *matrix.Matrix, j int) {
	rows, _ := m.Dims()
	for r := 0; r < rows; r++ {
		m.Set(r, j, -m.At(r, j))
	}
}

// addColMultiple sets col dst += factor * col src.
func addColMultiple(m *matrix.Matrix, src, dst int, factor int64) {
	rows, _ := m.Dims()
	for r := 0; r < rows; r++ {
		m.Set(r, dst, m.At(r, dst)+factor*m.At(r, src))
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
