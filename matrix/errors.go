package matrix

import "errors"

// Sentinel errors for matrix package operations.
var (
	// ErrDimensionMismatch indicates two matrices (or a matrix and a vector)
	// have incompatible shapes for the requested operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare indicates a square-only operation was given a
	// non-square matrix. No function in this module returns it;
	// ops.HermiteNormalForm accepts matrices of any shape.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates an At/Set index fell outside the matrix's
	// bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
