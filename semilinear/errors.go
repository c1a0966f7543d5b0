package semilinear

import "errors"

// Sentinel errors for semilinear package operations.
var (
	// ErrSchemaMismatch indicates two sets were combined without first being
	// harmonized onto a common schema.
	ErrSchemaMismatch = errors.New("semilinear: schema mismatch")

	// ErrVectorLength indicates a base or period vector's length does not
	// match its Schema's dimension count.
	ErrVectorLength = errors.New("semilinear: vector length does not match schema")

	// ErrNoOracle indicates an operation that requires oracle decision
	// (intersect, project, subset, emptiness) was called with a nil Oracle.
	ErrNoOracle = errors.New("semilinear: operation requires a non-nil Oracle")

	// ErrSaturationStalled indicates star's fixpoint loop exceeded its
	// configured iteration ceiling without reaching a fixpoint. This is an
	// implementation bug, not a normal failure mode, since star of a
	// semilinear relation is classically semilinear and must terminate.
	ErrSaturationStalled = errors.New("semilinear: star saturation did not converge within the iteration ceiling")
)
