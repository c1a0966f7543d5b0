package optimize

import (
	"context"

	"github.com/halvard-labs/serialcheck/kleene"
	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// Eval reduces e to a single relation over base's doubling, the same
// contract as kleene.Eval, but threaded through sw so each of the four
// switches can be independently toggled. sw == None() must produce exactly
// what kleene.Eval(ctx, oracle, base, e, kleeneOpts) would, since disabling
// every switch is the differential-testing baseline.
func Eval(ctx context.Context, oracle semilinear.Oracle, base *schema.Schema, e kleene.Expr, sw Switches) (semilinear.Set, error) {
	select {
	case <-ctx.Done():
		return semilinear.Set{}, ctx.Err()
	default:
	}

	doubling, err := schema.Double(base)
	if err != nil {
		return semilinear.Set{}, err
	}

	if sw.Bidirectional {
		e, err = bidirectionalPrune(ctx, oracle, doubling.Doubled, e)
		if err != nil {
			return semilinear.Set{}, err
		}
	}
	if sw.SmartKleeneOrder {
		e = SmartKleeneOrder(e)
	}

	return eval(ctx, oracle, base, e, sw)
}

func eval(ctx context.Context, oracle semilinear.Oracle, base *schema.Schema, e kleene.Expr, sw Switches) (semilinear.Set, error) {
	select {
	case <-ctx.Done():
		return semilinear.Set{}, ctx.Err()
	default:
	}

	switch n := e.(type) {
	case nil:
		return semilinear.Set{}, ErrNilExpr
	case kleene.Atom:
		return n.Relation, nil
	case kleene.Union:
		x, err := eval(ctx, oracle, base, n.X, sw)
		if err != nil {
			return semilinear.Set{}, err
		}
		y, err := eval(ctx, oracle, base, n.Y, sw)
		if err != nil {
			return semilinear.Set{}, err
		}
		union, err := semilinear.Union(x, y)
		if err != nil {
			return semilinear.Set{}, err
		}
		if sw.RemoveRedundant {
			return semilinear.RemoveRedundant(ctx, oracle, union, sw.RemoveRedundantMaxComponents)
		}

		return union, nil
	case kleene.Concat:
		x, err := eval(ctx, oracle, base, n.X, sw)
		if err != nil {
			return semilinear.Set{}, err
		}
		y, err := eval(ctx, oracle, base, n.Y, sw)
		if err != nil {
			return semilinear.Set{}, err
		}
		if sw.GenerateLess {
			skip, err := generateLessSkip(ctx, oracle, base, x, y)
			if err != nil {
				return semilinear.Set{}, err
			}
			if skip {
				doubling, err := schema.Double(base)
				if err != nil {
					return semilinear.Set{}, err
				}

				return semilinear.Empty(doubling.Doubled), nil
			}
		}

		return semilinear.Compose(ctx, oracle, base, x, y)
	case kleene.Closure:
		x, err := eval(ctx, oracle, base, n.X, sw)
		if err != nil {
			return semilinear.Set{}, err
		}

		return semilinear.Star(ctx, oracle, base, x, sw.MaxStarIterations)
	default:
		return semilinear.Set{}, ErrNilExpr
	}
}
