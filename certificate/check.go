package certificate

import (
	"context"

	"github.com/halvard-labs/serialcheck/petri"
	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// Check validates the three proof obligations for invariant inv, given
// net's transitions, the initial global vector, and the target set
// inv must exclude. It returns an *InvalidProofError (wrapping
// ErrInvalidProof) naming the first obligation that fails, or nil if all
// three hold.
func Check(ctx context.Context, oracle semilinear.Oracle, globals *schema.Schema, net *petri.Net, initial []int64, target, inv semilinear.Set) error {
	point, err := semilinear.Singleton(globals, initial)
	if err != nil {
		return err
	}
	holds, err := semilinear.Subset(ctx, oracle, point, inv)
	if err != nil {
		return err
	}
	if !holds {
		return &InvalidProofError{Obligation: HoldsAtInitial}
	}

	overlap, err := semilinear.Intersect(ctx, oracle, inv, target)
	if err != nil {
		return err
	}
	excludes, err := semilinear.IsEmpty(ctx, oracle, overlap)
	if err != nil {
		return err
	}
	if !excludes {
		return &InvalidProofError{Obligation: ExcludesTarget}
	}

	doubling, err := schema.Double(globals)
	if err != nil {
		return err
	}
	for _, t := range net.Transitions {
		delta := globalDelta(globals, t)
		image, err := imageUnder(ctx, oracle, globals, doubling, inv, delta)
		if err != nil {
			return err
		}
		closed, err := semilinear.Subset(ctx, oracle, image, inv)
		if err != nil {
			return err
		}
		if !closed {
			return &InvalidProofError{Obligation: ClosedUnderTransitions, Transition: t.Name}
		}
	}

	return nil
}

// CheckSerial validates an invariant against the serial-reachable set seq
// directly, rather than against an explicit target set. The target for a
// serializability query is "every concurrently reachable global vector
// outside seq", but this module never
// materializes that complement — computing it would require a general
// Presburger complementation algorithm this repo does not implement, and
// the external reachability oracle is expected to negate seq internally
// as part of its query. Since inv ∩ (universe \ seq) = ∅ iff inv ⊆ seq,
// the ExcludesTarget obligation is equivalently checked as a Subset test
// against seq; HoldsAtInitial and ClosedUnderTransitions are unchanged
// from Check.
func CheckSerial(ctx context.Context, oracle semilinear.Oracle, globals *schema.Schema, net *petri.Net, initial []int64, seq, inv semilinear.Set) error {
	point, err := semilinear.Singleton(globals, initial)
	if err != nil {
		return err
	}
	holds, err := semilinear.Subset(ctx, oracle, point, inv)
	if err != nil {
		return err
	}
	if !holds {
		return &InvalidProofError{Obligation: HoldsAtInitial}
	}

	excludes, err := semilinear.Subset(ctx, oracle, inv, seq)
	if err != nil {
		return err
	}
	if !excludes {
		return &InvalidProofError{Obligation: ExcludesTarget}
	}

	doubling, err := schema.Double(globals)
	if err != nil {
		return err
	}
	for _, t := range net.Transitions {
		delta := globalDelta(globals, t)
		image, err := imageUnder(ctx, oracle, globals, doubling, inv, delta)
		if err != nil {
			return err
		}
		closed, err := semilinear.Subset(ctx, oracle, image, inv)
		if err != nil {
			return err
		}
		if !closed {
			return &InvalidProofError{Obligation: ClosedUnderTransitions, Transition: t.Name}
		}
	}

	return nil
}

// globalDelta reads the net place values t touches for globals and returns
// the per-dimension (Output-Input) delta, in globals order.
func globalDelta(globals *schema.Schema, t petri.Transition) []int64 {
	delta := make([]int64, globals.Len())
	for i, g := range globals.Dims() {
		place := "value:" + g.Name
		delta[i] = t.Output[place] - t.Input[place]
	}

	return delta
}

// imageUnder computes {v + delta | v ∈ inv}, a Set over globals.
func imageUnder(ctx context.Context, oracle semilinear.Oracle, globals *schema.Schema, doubling schema.Doubling, inv semilinear.Set, delta []int64) (semilinear.Set, error) {
	shift, err := shiftRelation(doubling, delta)
	if err != nil {
		return semilinear.Set{}, err
	}

	lifted, err := liftToPreFree(doubling, inv)
	if err != nil {
		return semilinear.Set{}, err
	}

	joined, err := semilinear.Intersect(ctx, oracle, lifted, shift)
	if err != nil {
		return semilinear.Set{}, err
	}

	preNames := make([]string, globals.Len())
	for i, d := range doubling.Pre.Dims() {
		preNames[i] = d.Name
	}
	projected, err := semilinear.Project(ctx, oracle, joined, preNames)
	if err != nil {
		return semilinear.Set{}, err
	}

	rename := make(map[string]string, globals.Len())
	for _, d := range doubling.Post.Dims() {
		rename[d.Name] = d.Name[len("post:"):]
	}
	relabeled, err := schema.Rename(projected.Schema, rename)
	if err != nil {
		return semilinear.Set{}, err
	}

	return semilinear.New(relabeled, projected.Linears...)
}

// shiftRelation builds {(pre, post) | post = pre + delta}: one base vector
// carrying delta on every post coordinate, and one period per dimension
// tying pre and post together (so they vary jointly, not independently).
func shiftRelation(doubling schema.Doubling, delta []int64) (semilinear.Set, error) {
	base := make([]int64, doubling.Doubled.Len())
	periods := make([][]int64, 0, doubling.Base.Len())
	for i := range doubling.Base.Dims() {
		base[doubling.PostOf(i)] = delta[i]
		p := make([]int64, doubling.Doubled.Len())
		p[doubling.PreOf(i)] = 1
		p[doubling.PostOf(i)] = 1
		periods = append(periods, p)
	}

	return semilinear.New(doubling.Doubled, semilinear.LinearSet{Base: base, Periods: periods})
}

// liftToPreFree renames s (over the plain globals schema) onto "pre:x"
// names and adds two opposite-sign periods per post dimension so the
// doubled schema's post half is unconstrained — the same construction
// package serialnfa uses to apply a relation to a starting set instead of
// a single point.
func liftToPreFree(doubling schema.Doubling, s semilinear.Set) (semilinear.Set, error) {
	rename := make(map[string]string, s.Schema.Len())
	for _, d := range s.Schema.Dims() {
		rename[d.Name] = "pre:" + d.Name
	}
	preSchema, err := schema.Rename(s.Schema, rename)
	if err != nil {
		return semilinear.Set{}, err
	}

	linears := make([]semilinear.LinearSet, len(s.Linears))
	for i, l := range s.Linears {
		base := make([]int64, doubling.Doubled.Len())
		periods := make([][]int64, 0, len(l.Periods)+2*doubling.Base.Len())
		for j, d := range preSchema.Dims() {
			idx, _ := doubling.Doubled.IndexOf(d.Name)
			base[idx] = l.Base[j]
		}
		for _, per := range l.Periods {
			p := make([]int64, doubling.Doubled.Len())
			for j, d := range preSchema.Dims() {
				idx, _ := doubling.Doubled.IndexOf(d.Name)
				p[idx] = per[j]
			}
			periods = append(periods, p)
		}
		for k := range doubling.Base.Dims() {
			plus := make([]int64, doubling.Doubled.Len())
			plus[doubling.PostOf(k)] = 1
			minus := make([]int64, doubling.Doubled.Len())
			minus[doubling.PostOf(k)] = -1
			periods = append(periods, plus, minus)
		}
		linears[i] = semilinear.LinearSet{Base: base, Periods: periods}
	}

	return semilinear.New(doubling.Doubled, linears...)
}
