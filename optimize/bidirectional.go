package optimize

import (
	"context"

	"github.com/halvard-labs/serialcheck/kleene"
	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// bidirectionalPrune drops any Union leaf that is itself an Atom the
// Oracle proves empty, recursing into Concat/Closure children so their own
// Union subtrees get the same treatment. This is a scoped-down reading of
// bidirectional pruning (documented in doc.go): a full incremental
// forward/backward fixpoint over composite subterms would require
// evaluating each candidate subterm first (the exact cost this switch
// exists to avoid paying), so pruning is limited to relations already
// known without evaluation — the atomic ones.
func bidirectionalPrune(ctx context.Context, oracle semilinear.Oracle, doubled *schema.Schema, e kleene.Expr) (kleene.Expr, error) {
	switch n := e.(type) {
	case kleene.Union:
		leaves := make([]kleene.Expr, 0, 4)
		flattenUnion(n, &leaves)

		kept := make([]kleene.Expr, 0, len(leaves))
		for _, leaf := range leaves {
			pruned, err := bidirectionalPrune(ctx, oracle, doubled, leaf)
			if err != nil {
				return nil, err
			}
			if atom, ok := pruned.(kleene.Atom); ok {
				empty, err := semilinear.IsEmpty(ctx, oracle, atom.Relation)
				if err != nil {
					return nil, err
				}
				if empty {
					continue
				}
			}
			kept = append(kept, pruned)
		}
		if len(kept) == 0 {
			return kleene.Atom{Relation: semilinear.Empty(doubled)}, nil
		}
		out := kept[0]
		for _, k := range kept[1:] {
			out = kleene.Union{X: out, Y: k}
		}

		return out, nil
	case kleene.Concat:
		x, err := bidirectionalPrune(ctx, oracle, doubled, n.X)
		if err != nil {
			return nil, err
		}
		y, err := bidirectionalPrune(ctx, oracle, doubled, n.Y)
		if err != nil {
			return nil, err
		}

		return kleene.Concat{X: x, Y: y}, nil
	case kleene.Closure:
		x, err := bidirectionalPrune(ctx, oracle, doubled, n.X)
		if err != nil {
			return nil, err
		}

		return kleene.Closure{X: x}, nil
	default:
		return e, nil
	}
}
