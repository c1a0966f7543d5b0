package serialnfa

import (
	"context"

	"github.com/halvard-labs/serialcheck/kleene"
	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// ParikhImage reduces the automaton to a single relation over a.Doubling:
// the reflexive-transitive closure of the union of every transition's
// relation — exactly "running any symbols, in any order, any number of
// times", since a single-state NFA's language is the star of
// its alphabet regardless of traversal order.
func ParikhImage(ctx context.Context, oracle semilinear.Oracle, a *Automaton, opts kleene.Options) (semilinear.Set, error) {
	if len(a.Transitions) == 0 {
		return semilinear.Identity(a.Doubling)
	}

	var expr kleene.Expr
	for _, t := range a.Transitions {
		atom := kleene.Atom{Relation: t.Relation}
		if expr == nil {
			expr = atom
			continue
		}
		expr = kleene.Union{X: expr, Y: atom}
	}
	expr = kleene.Closure{X: expr}

	return kleene.Eval(ctx, oracle, a.Base, expr, opts)
}

// Reach applies seq (a relation over a.Doubling, as returned by
// ParikhImage) to the single starting vector initial, returning the
// semilinear set of globals reachable by any finite sequence of complete
// serial executions from initial. The result is a Set over plain globals
// dimensions — the same naming petri.Translate's value places use — so it
// can be compared directly against the concurrent Petri-net reachable set.
func Reach(ctx context.Context, oracle semilinear.Oracle, a *Automaton, initial []int64) (semilinear.Set, error) {
	seq, err := ParikhImage(ctx, oracle, a, kleene.Options{})
	if err != nil {
		return semilinear.Set{}, err
	}

	return applyToPoint(ctx, oracle, a.Base, a.Doubling, seq, initial)
}

// applyToPoint intersects rel (over doubling.Doubled) with the constraint
// "pre = initial", projects the pre dimensions away, and relabels the
// surviving post:x dimensions back onto base's plain names.
func applyToPoint(ctx context.Context, oracle semilinear.Oracle, base *schema.Schema, doubling schema.Doubling, rel semilinear.Set, initial []int64) (semilinear.Set, error) {
	if err := base.ValidateVector(initial); err != nil {
		return semilinear.Set{}, err
	}

	// "pre = initial, post free": base pins every pre:x coordinate; each
	// post:x coordinate gets a +1 and a -1 period so ℕ-weighted
	// combinations span all of ℤ on that coordinate, not just ℕ.
	pinned := make([]int64, doubling.Doubled.Len())
	periods := make([][]int64, 0, 2*base.Len())
	for i := range base.Dims() {
		pinned[doubling.PreOf(i)] = initial[i]
		plus := make([]int64, doubling.Doubled.Len())
		plus[doubling.PostOf(i)] = 1
		minus := make([]int64, doubling.Doubled.Len())
		minus[doubling.PostOf(i)] = -1
		periods = append(periods, plus, minus)
	}
	point, err := semilinear.New(doubling.Doubled, semilinear.LinearSet{Base: pinned, Periods: periods})
	if err != nil {
		return semilinear.Set{}, err
	}

	fixed, err := semilinear.Intersect(ctx, oracle, rel, point)
	if err != nil {
		return semilinear.Set{}, err
	}

	preNames := make([]string, 0, base.Len())
	for _, d := range doubling.Pre.Dims() {
		preNames = append(preNames, d.Name)
	}
	projected, err := semilinear.Project(ctx, oracle, fixed, preNames)
	if err != nil {
		return semilinear.Set{}, err
	}

	rename := make(map[string]string, base.Len())
	for _, d := range doubling.Post.Dims() {
		rename[d.Name] = d.Name[len("post:"):]
	}
	relabeled, err := schema.Rename(projected.Schema, rename)
	if err != nil {
		return semilinear.Set{}, err
	}

	return semilinear.New(relabeled, projected.Linears...)
}
