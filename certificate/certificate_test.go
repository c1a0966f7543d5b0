package certificate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvard-labs/serialcheck/certificate"
	"github.com/halvard-labs/serialcheck/oracle"
	"github.com/halvard-labs/serialcheck/petri"
	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
)

func globalsX(t *testing.T) *schema.Schema {
	t.Helper()
	sch, err := schema.New(schema.Dim{Name: "x", Kind: schema.Global})
	require.NoError(t, err)

	return sch
}

func TestParseInvariantRoundTrip(t *testing.T) {
	sch := globalsX(t)
	text := "linear\nbase 0\nperiod 1\nend\nlinear\nbase 5\nend\n"

	inv, err := certificate.ParseInvariant(sch, text)
	require.NoError(t, err)
	require.Len(t, inv.Linears, 2)
	require.Equal(t, []int64{0}, inv.Linears[0].Base)
	require.Equal(t, [][]int64{{1}}, inv.Linears[0].Periods)
	require.Equal(t, []int64{5}, inv.Linears[1].Base)

	rendered := certificate.FormatInvariant(inv)
	reparsed, err := certificate.ParseInvariant(sch, rendered)
	require.NoError(t, err)
	require.Equal(t, inv, reparsed)
}

func TestParseInvariantRejectsMalformed(t *testing.T) {
	sch := globalsX(t)
	_, err := certificate.ParseInvariant(sch, "linear\nbase 0\n")
	require.ErrorIs(t, err, certificate.ErrParseError)

	_, err = certificate.ParseInvariant(sch, "base 0\nend\n")
	require.ErrorIs(t, err, certificate.ErrParseError)
}

func netWithOneTransition(t *testing.T) *petri.Net {
	t.Helper()
	net := petri.NewNet()
	require.NoError(t, net.AddPlace(petri.Place{Name: "value:x", Kind: petri.ValuePlace}))
	require.NoError(t, net.AddTransition(petri.Transition{
		Name:   "inc",
		Output: map[string]int64{"value:x": 1},
	}))

	return net
}

func TestCheckAcceptsValidProof(t *testing.T) {
	sch := globalsX(t)
	o := oracle.NewNative(oracle.Config{Bound: 4, MaxPoints: 2000})
	ctx := context.Background()

	net := petri.NewNet()
	require.NoError(t, net.AddPlace(petri.Place{Name: "value:x", Kind: petri.ValuePlace}))

	inv, err := semilinear.Singleton(sch, []int64{0})
	require.NoError(t, err)
	target, err := semilinear.Singleton(sch, []int64{100})
	require.NoError(t, err)

	err = certificate.Check(ctx, o, sch, net, []int64{0}, target, inv)
	require.NoError(t, err)
}

func TestCheckRejectsNonClosedInvariant(t *testing.T) {
	sch := globalsX(t)
	o := oracle.NewNative(oracle.Config{Bound: 4, MaxPoints: 2000})
	ctx := context.Background()

	net := netWithOneTransition(t)

	inv, err := semilinear.Singleton(sch, []int64{0})
	require.NoError(t, err)
	target, err := semilinear.Singleton(sch, []int64{100})
	require.NoError(t, err)

	err = certificate.Check(ctx, o, sch, net, []int64{0}, target, inv)
	var invalid *certificate.InvalidProofError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, certificate.ClosedUnderTransitions, invalid.Obligation)
	require.Equal(t, "inc", invalid.Transition)
}

func TestCheckRejectsInvariantNotHoldingAtInitial(t *testing.T) {
	sch := globalsX(t)
	o := oracle.NewNative(oracle.Config{Bound: 4, MaxPoints: 2000})
	ctx := context.Background()

	net := petri.NewNet()
	require.NoError(t, net.AddPlace(petri.Place{Name: "value:x", Kind: petri.ValuePlace}))

	inv, err := semilinear.Singleton(sch, []int64{7})
	require.NoError(t, err)
	target, err := semilinear.Singleton(sch, []int64{100})
	require.NoError(t, err)

	err = certificate.Check(ctx, o, sch, net, []int64{0}, target, inv)
	var invalid *certificate.InvalidProofError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, certificate.HoldsAtInitial, invalid.Obligation)
}

func TestCheckRejectsInvariantOverlappingTarget(t *testing.T) {
	sch := globalsX(t)
	o := oracle.NewNative(oracle.Config{Bound: 4, MaxPoints: 2000})
	ctx := context.Background()

	net := petri.NewNet()
	require.NoError(t, net.AddPlace(petri.Place{Name: "value:x", Kind: petri.ValuePlace}))

	inv, err := semilinear.Singleton(sch, []int64{0})
	require.NoError(t, err)
	target, err := semilinear.Singleton(sch, []int64{0})
	require.NoError(t, err)

	err = certificate.Check(ctx, o, sch, net, []int64{0}, target, inv)
	var invalid *certificate.InvalidProofError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, certificate.ExcludesTarget, invalid.Obligation)
}

func TestCheckSerialAcceptsInvariantWithinSerialSet(t *testing.T) {
	sch := globalsX(t)
	o := oracle.NewNative(oracle.Config{Bound: 4, MaxPoints: 2000})
	ctx := context.Background()

	net := petri.NewNet()
	require.NoError(t, net.AddPlace(petri.Place{Name: "value:x", Kind: petri.ValuePlace}))

	inv, err := semilinear.Singleton(sch, []int64{0})
	require.NoError(t, err)
	seq, err := semilinear.New(sch, semilinear.LinearSet{Base: []int64{0}, Periods: [][]int64{{1}}})
	require.NoError(t, err)

	err = certificate.CheckSerial(ctx, o, sch, net, []int64{0}, seq, inv)
	require.NoError(t, err)
}

func TestCheckSerialRejectsInvariantOutsideSerialSet(t *testing.T) {
	sch := globalsX(t)
	o := oracle.NewNative(oracle.Config{Bound: 4, MaxPoints: 2000})
	ctx := context.Background()

	net := petri.NewNet()
	require.NoError(t, net.AddPlace(petri.Place{Name: "value:x", Kind: petri.ValuePlace}))

	inv, err := semilinear.Singleton(sch, []int64{-1})
	require.NoError(t, err)
	seq, err := semilinear.New(sch, semilinear.LinearSet{Base: []int64{0}, Periods: [][]int64{{1}}})
	require.NoError(t, err)

	err = certificate.CheckSerial(ctx, o, sch, net, []int64{-1}, seq, inv)
	var invalid *certificate.InvalidProofError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, certificate.ExcludesTarget, invalid.Obligation)
}

func TestCheckWitnessReplaysFiringSequence(t *testing.T) {
	sch := globalsX(t)
	o := oracle.NewNative(oracle.Config{Bound: 4, MaxPoints: 2000})
	ctx := context.Background()

	net := netWithOneTransition(t)
	marking := petri.Marking{"value:x": 0}

	target, err := semilinear.Singleton(sch, []int64{2})
	require.NoError(t, err)

	w := certificate.NewWitness([]string{"inc", "inc"})
	ok, _, err := certificate.CheckWitness(ctx, o, sch, net, marking, w, target)
	require.NoError(t, err)
	require.True(t, ok)

	short := certificate.NewWitness([]string{"inc"})
	ok, _, err = certificate.CheckWitness(ctx, o, sch, net, marking, short, target)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCheckWitnessRejectsUnknownTransition(t *testing.T) {
	sch := globalsX(t)
	o := oracle.NewNative(oracle.Config{Bound: 4, MaxPoints: 2000})
	ctx := context.Background()

	net := netWithOneTransition(t)
	marking := petri.Marking{"value:x": 0}
	target, err := semilinear.Singleton(sch, []int64{1})
	require.NoError(t, err)

	w := certificate.NewWitness([]string{"missing"})
	_, _, err = certificate.CheckWitness(ctx, o, sch, net, marking, w, target)
	require.ErrorIs(t, err, certificate.ErrUnknownTransition)
}
