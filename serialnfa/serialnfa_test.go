package serialnfa_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvard-labs/serialcheck/kleene"
	"github.com/halvard-labs/serialcheck/lower"
	"github.com/halvard-labs/serialcheck/oracle"
	"github.com/halvard-labs/serialcheck/petri"
	"github.com/halvard-labs/serialcheck/program"
	"github.com/halvard-labs/serialcheck/semilinear"
	"github.com/halvard-labs/serialcheck/serialnfa"
)

func incrementSummary(t *testing.T) (*lower.Lowering, petri.NamedSummary) {
	t.Helper()
	body := program.Seq{Stmts: []program.Stmt{
		program.WriteGlobal{Var: "x", Value: program.Add{X: program.Read{Var: "x"}, Y: program.Const{Value: 1}}},
		program.Yield{},
	}}
	req, err := program.NewRequest("increment", []string{"x"}, nil, body, program.Read{Var: "x"})
	require.NoError(t, err)

	lw, expr, err := lower.Request(req)
	require.NoError(t, err)

	o := oracle.NewNative(oracle.Config{Bound: 4, MaxPoints: 2000})
	rel, err := kleene.Eval(context.Background(), o, lw.Base, expr, kleene.Options{})
	require.NoError(t, err)

	return lw, petri.NamedSummary{Name: "increment", Summary: rel}
}

func TestBuildRejectsEmptySummaries(t *testing.T) {
	_, err := serialnfa.Build(nil, nil)
	require.ErrorIs(t, err, serialnfa.ErrNoSymbols)
}

func TestBuildProducesOneSymbolPerComponent(t *testing.T) {
	lw, ns := incrementSummary(t)

	auto, err := serialnfa.Build(lw.Base, []petri.NamedSummary{ns})
	require.NoError(t, err)
	require.Len(t, auto.Transitions, len(ns.Summary.Linears))
	require.True(t, auto.Accept[auto.Start])
}

func TestReachFromZeroContainsOneAndTwo(t *testing.T) {
	lw, ns := incrementSummary(t)

	auto, err := serialnfa.Build(lw.Base, []petri.NamedSummary{ns})
	require.NoError(t, err)

	ctx := context.Background()
	o := oracle.NewNative(oracle.Config{Bound: 4, MaxPoints: 2000})
	reach, err := serialnfa.Reach(ctx, o, auto, []int64{0, 0})
	require.NoError(t, err)

	// reach.Schema is [x, return]; each firing's terminal projection
	// re-syncs return to the just-updated x value, so return mirrors x
	// after any number of firings.
	one, err := semilinear.Singleton(reach.Schema, []int64{1, 1})
	require.NoError(t, err)
	ok, err := semilinear.Subset(ctx, o, one, reach)
	require.NoError(t, err)
	require.True(t, ok)

	two, err := semilinear.Singleton(reach.Schema, []int64{2, 2})
	require.NoError(t, err)
	ok, err = semilinear.Subset(ctx, o, two, reach)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, "x", reach.Schema.Dims()[0].Name)
}
