// Package matrix provides a small dense integer matrix type and the
// row-reduction primitives the oracle package's pure-Go engine uses to
// prove a single point absent from a linear set.
//
// Unlike a general-purpose numeric library, every routine here operates
// over exact values rather than float64 — lattice and polyhedral
// reasoning over ℤ^n has no use for rounding error. Matrix entries are
// int64; ops.RowEchelon computes over *big.Rat, while
// ops.HermiteNormalForm and ops.FourierMotzkin use plain int64 arithmetic
// with no overflow check. The package is intentionally narrow:
// NewMatrix/At/Set for storage, and ops/ for Gaussian elimination
// (ops.RowEchelon), Hermite normal form (ops.HermiteNormalForm), and
// Fourier–Motzkin variable elimination (ops.FourierMotzkin).
//
// The Petri-net translator (package petri) also uses Matrix directly: a
// Petri net's incidence matrix (rows = places, columns = transitions,
// entries = signed arc weights) is exactly this package's Matrix type.
package matrix
