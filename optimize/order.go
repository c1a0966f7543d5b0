package optimize

import (
	"sort"

	"github.com/halvard-labs/serialcheck/kleene"
)

// reorderUnion flattens a possibly-nested kleene.Union into its leaf
// subterms and rebuilds it with the cheapest-estimated leaves first,
// evaluating low-period, low-disjunct subterms before expensive ones.
// Union is associative and commutative, so any leaf order
// denotes the same relation; only the intermediate sizes Eval churns
// through change. Non-Union children are recursed into so a Concat or
// Closure's own Union subtrees are reordered too.
func reorderUnion(e kleene.Expr) kleene.Expr {
	leaves := make([]kleene.Expr, 0, 4)
	flattenUnion(e, &leaves)
	for i, leaf := range leaves {
		leaves[i] = reorderChildren(leaf)
	}
	sort.SliceStable(leaves, func(i, j int) bool {
		return estimateSize(leaves[i]) < estimateSize(leaves[j])
	})

	out := leaves[0]
	for _, leaf := range leaves[1:] {
		out = kleene.Union{X: out, Y: leaf}
	}

	return out
}

func flattenUnion(e kleene.Expr, out *[]kleene.Expr) {
	if u, ok := e.(kleene.Union); ok {
		flattenUnion(u.X, out)
		flattenUnion(u.Y, out)

		return
	}
	*out = append(*out, e)
}

// reorderChildren recurses SmartKleeneOrder into a non-Union node's
// children, since Concat/Closure may themselves contain Union subtrees
// worth reordering.
func reorderChildren(e kleene.Expr) kleene.Expr {
	switch n := e.(type) {
	case kleene.Concat:
		return kleene.Concat{X: SmartKleeneOrder(n.X), Y: SmartKleeneOrder(n.Y)}
	case kleene.Closure:
		return kleene.Closure{X: SmartKleeneOrder(n.X)}
	default:
		return e
	}
}

// SmartKleeneOrder applies the reordering heuristic to every Union node in
// e, leaving Concat sequencing and Closure bodies otherwise untouched
// (reordering a Concat chain would change its meaning — only Union is free
// to reassociate).
func SmartKleeneOrder(e kleene.Expr) kleene.Expr {
	switch e.(type) {
	case kleene.Union:
		return reorderUnion(e)
	default:
		return reorderChildren(e)
	}
}

// estimateSize approximates the cost of evaluating e: the number of linear
// components its relation would expand to, bottom-up. Union costs are
// additive; Concat costs are multiplicative, mirroring how Compose's
// pairwise Oracle.Intersect calls scale with pieces(R)*pieces(S); a Closure
// costs one more than its body.
func estimateSize(e kleene.Expr) int {
	switch n := e.(type) {
	case kleene.Atom:
		if len(n.Relation.Linears) == 0 {
			return 1
		}

		return len(n.Relation.Linears)
	case kleene.Union:
		return estimateSize(n.X) + estimateSize(n.Y)
	case kleene.Concat:
		return estimateSize(n.X) * estimateSize(n.Y)
	case kleene.Closure:
		return estimateSize(n.X) + 1
	default:
		return 1
	}
}
