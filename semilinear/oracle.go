package semilinear

import (
	"context"

	"github.com/halvard-labs/serialcheck/schema"
)

// Oracle is the capability this package delegates every semantic decision
// to: feasibility, intersection, existential projection, and containment of
// generator-form LinearSets. The algebra in algebra.go is otherwise a pure,
// backend-agnostic implementation of union/compose/star built entirely out
// of these four primitives plus structural list operations — it never
// inspects coefficients itself.
//
// Concrete implementations live in package oracle (github.com/halvard-labs/
// serialcheck/oracle): a pure-Go Native engine and a Subprocess adapter that
// shells out to an external integer-set library. Oracle
// is declared here, at the consumer, rather than in package oracle, so that
// oracle can depend on semilinear without semilinear depending back on
// oracle.
type Oracle interface {
	// Emptiness reports whether l's generator-form description denotes the
	// empty set over sch. A bare LinearSet is never empty (it always
	// contains at least Base); Emptiness exists for pieces produced by
	// Intersect, where infeasible combinations of pre-existing constraints
	// can legitimately collapse to ∅.
	Emptiness(ctx context.Context, sch *schema.Schema, l LinearSet) (bool, error)

	// Intersect computes a ∩ b, both given over sch, as zero or more
	// LinearSets over sch. Implementations may return more than one piece
	// when the integer lattice underlying the intersection splits into
	// distinct residue classes.
	Intersect(ctx context.Context, sch *schema.Schema, a, b LinearSet) ([]LinearSet, error)

	// Project existentially eliminates every dimension of sch not present in
	// keep (keep is given as indices into sch.Dims()), returning zero or
	// more LinearSets over the schema restricted to keep, in the same
	// relative order. OracleError is the only failure mode;
	// a dimension list with no feasible projection yields an empty result,
	// not an error.
	Project(ctx context.Context, sch *schema.Schema, l LinearSet, keep []int) ([]LinearSet, error)

	// Subset decides A ⊆ B for two full Sets sharing sch. Implementations
	// are expected to compute this as is_empty(A \ B) on linear pieces
	// without requiring a general-purpose complement
	// operation from this package.
	Subset(ctx context.Context, sch *schema.Schema, a, b Set) (bool, error)
}
