package ops

import "errors"

// Sentinel errors for the ops package.
var (
	// ErrInconsistent indicates a linear system has no solution (over the
	// rationals for RowEchelon/FourierMotzkin, over the integers for
	// HermiteNormalForm).
	ErrInconsistent = errors.New("ops: linear system is inconsistent")

	// ErrDimensionMismatch indicates a matrix/vector pair had incompatible
	// shapes.
	ErrDimensionMismatch = errors.New("ops: dimension mismatch")
)
