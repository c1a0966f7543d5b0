package ops

import (
	"math/big"

	"github.com/halvard-labs/serialcheck/matrix"
)

// RowEchelon reduces the augmented system [A | b] to reduced row-echelon
// form over the rationals via Gauss-Jordan elimination, taking the first
// nonzero entry of each column as its pivot, and reports whether the
// system Ax = b is consistent.
//
// Contracts:
//   - A has r rows, c columns; b has r entries.
//
// Steps:
//  1. Build the augmented [r x (c+1)] rational matrix.
//  2. For each pivot column, find a nonzero row at or below the current
//     pivot row, swap it into place, and normalize it to a leading 1.
//  3. Eliminate that column from every other row.
//  4. After elimination, any row of the form [0 ... 0 | nonzero] proves
//     inconsistency.
//
// Returns the reduced augmented matrix (for callers that need the
// eliminated system, e.g. to read off a particular solution) and whether it
// is consistent.
func RowEchelon(a *matrix.Matrix, b []int64) (reduced [][]*big.Rat, consistent bool, err error) {
	rows, cols := a.Dims()
	if len(b) != rows {
		return nil, false, ErrDimensionMismatch
	}

	aug := make([][]*big.Rat, rows)
	for i := 0; i < rows; i++ {
		aug[i] = make([]*big.Rat, cols+1)
		for j := 0; j < cols; j++ {
			aug[i][j] = big.NewRat(a.At(i, j), 1)
		}
		aug[i][cols] = big.NewRat(b[i], 1)
	}

	pivotRow := 0
	for col := 0; col < cols && pivotRow < rows; col++ {
		sel := -1
		for r := pivotRow; r < rows; r++ {
			if aug[r][col].Sign() != 0 {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		aug[pivotRow], aug[sel] = aug[sel], aug[pivotRow]

		pivotVal := new(big.Rat).Set(aug[pivotRow][col])
		for j := 0; j <= cols; j++ {
			aug[pivotRow][j].Quo(aug[pivotRow][j], pivotVal)
		}

		for r := 0; r < rows; r++ {
			if r == pivotRow {
				continue
			}
			factor := new(big.Rat).Set(aug[r][col])
			if factor.Sign() == 0 {
				continue
			}
			for j := 0; j <= cols; j++ {
				term := new(big.Rat).Mul(factor, aug[pivotRow][j])
				aug[r][j].Sub(aug[r][j], term)
			}
		}
		pivotRow++
	}

	for r := pivotRow; r < rows; r++ {
		allZero := true
		for c := 0; c < cols; c++ {
			if aug[r][c].Sign() != 0 {
				allZero = false
				break
			}
		}
		if allZero && aug[r][cols].Sign() != 0 {
			return aug, false, nil
		}
	}

	return aug, true, nil
}
