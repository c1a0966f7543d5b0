package kleene

import (
	"context"

	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// Options configures Eval.
type Options struct {
	// MaxStarIterations bounds every Closure node's saturation loop
	// (forwarded to semilinear.Star). Zero means unbounded.
	MaxStarIterations int
}

// Eval reduces e to a single relation over base's doubling.
// It flattens e into a node list with an explicit work stack, then
// evaluates that list back-to-front so every child index is resolved
// before the parent that references it — no recursion on the Go call
// stack, so an unbounded or deeply right-leaning expression (e.g. a
// Closure wrapping a long Concat chain) can't exhaust it.
//
// Complexity: dominated by however many semilinear.Compose calls the
// expression requires; each Compose is O(pieces(R)·pieces(S)) oracle
// queries. Memory: O(number of nodes in e) for the flattened list, plus
// O(total linear pieces held live at once) for their evaluated relations.
func Eval(ctx context.Context, oracle semilinear.Oracle, base *schema.Schema, e Expr, opts Options) (semilinear.Set, error) {
	if e == nil {
		return semilinear.Set{}, ErrNilExpr
	}

	type node struct {
		expr        Expr
		left, right int
	}
	type pending struct {
		expr   Expr
		parent int
		slot   int
	}

	nodes := make([]node, 0, 16)
	work := []pending{{expr: e, parent: -1}}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]

		idx := len(nodes)
		nodes = append(nodes, node{expr: cur.expr, left: -1, right: -1})
		if cur.parent >= 0 {
			if cur.slot == 0 {
				nodes[cur.parent].left = idx
			} else {
				nodes[cur.parent].right = idx
			}
		}

		switch x := cur.expr.(type) {
		case Union:
			work = append(work, pending{expr: x.Y, parent: idx, slot: 1}, pending{expr: x.X, parent: idx, slot: 0})
		case Concat:
			work = append(work, pending{expr: x.Y, parent: idx, slot: 1}, pending{expr: x.X, parent: idx, slot: 0})
		case Closure:
			work = append(work, pending{expr: x.X, parent: idx, slot: 0})
		}
	}

	results := make([]semilinear.Set, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			return semilinear.Set{}, ctx.Err()
		default:
		}

		n := nodes[i]
		switch x := n.expr.(type) {
		case nil:
			return semilinear.Set{}, ErrNilExpr
		case Atom:
			results[i] = x.Relation
		case Union:
			u, err := semilinear.Union(results[n.left], results[n.right])
			if err != nil {
				return semilinear.Set{}, err
			}
			results[i] = u
		case Concat:
			c, err := semilinear.Compose(ctx, oracle, base, results[n.left], results[n.right])
			if err != nil {
				return semilinear.Set{}, err
			}
			results[i] = c
		case Closure:
			s, err := semilinear.Star(ctx, oracle, base, results[n.left], opts.MaxStarIterations)
			if err != nil {
				return semilinear.Set{}, err
			}
			results[i] = s
		default:
			return semilinear.Set{}, ErrNilExpr
		}
	}

	return results[0], nil
}

// Depth reports an expression tree's nesting depth. Neither Eval nor
// package optimize calls it.
func Depth(e Expr) int {
	switch n := e.(type) {
	case nil:
		return 0
	case Atom:
		return 1
	case Union:
		return 1 + max(Depth(n.X), Depth(n.Y))
	case Concat:
		return 1 + max(Depth(n.X), Depth(n.Y))
	case Closure:
		return 1 + Depth(n.X)
	default:
		return 0
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
