package lower_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvard-labs/serialcheck/kleene"
	"github.com/halvard-labs/serialcheck/lower"
	"github.com/halvard-labs/serialcheck/oracle"
	"github.com/halvard-labs/serialcheck/program"
	"github.com/halvard-labs/serialcheck/semilinear"
)

func incrementRequest(t *testing.T) program.Request {
	t.Helper()
	body := program.Seq{Stmts: []program.Stmt{
		program.WriteGlobal{Var: "x", Value: program.Add{X: program.Read{Var: "x"}, Y: program.Const{Value: 1}}},
		program.Yield{},
	}}
	req, err := program.NewRequest("increment", []string{"x"}, nil, body, program.Read{Var: "x"})
	require.NoError(t, err)

	return req
}

func TestLowerIncrementProducesCorrectRelation(t *testing.T) {
	lw, expr, err := lower.Request(incrementRequest(t))
	require.NoError(t, err)

	o := oracle.NewNative(oracle.Config{Bound: 4, MaxPoints: 2000})
	ctx := context.Background()
	rel, err := kleene.Eval(ctx, o, lw.Base, expr, kleene.Options{})
	require.NoError(t, err)

	// Doubled layout is [pre:x, pre:return, post:x, post:return]; the
	// request's terminal projection writes return:=x after the increment,
	// so post:return always mirrors post:x, and pre:return is free (0 is
	// always a reachable base case).
	point, err := semilinear.Singleton(lw.Doubling.Doubled, []int64{0, 0, 1, 1})
	require.NoError(t, err)
	ok, err := semilinear.Subset(ctx, o, point, rel)
	require.NoError(t, err)
	require.True(t, ok)

	wrong, err := semilinear.Singleton(lw.Doubling.Doubled, []int64{0, 0, 2, 2})
	require.NoError(t, err)
	ok, err = semilinear.Subset(ctx, o, wrong, rel)
	require.NoError(t, err)
	require.False(t, ok)

	// The write is self-referencing (x := x+1 from any starting value),
	// not a constant reset to 1 — (3,4) must hold too.
	fromThree, err := semilinear.Singleton(lw.Doubling.Doubled, []int64{3, 0, 4, 4})
	require.NoError(t, err)
	ok, err = semilinear.Subset(ctx, o, fromThree, rel)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAssumeEqualityPinsVariable(t *testing.T) {
	req, err := program.NewRequest("guarded", []string{"x"}, nil, program.Yield{}, nil)
	require.NoError(t, err)
	lw, err := lower.New(req)
	require.NoError(t, err)

	guard, err := lw.Assume(program.Eq{X: program.Read{Var: "x"}, Y: program.Const{Value: 0}}, false)
	require.NoError(t, err)
	require.Len(t, guard.Linears, 1)
	require.Equal(t, []int64{0, 0}, guard.Linears[0].Base)
	require.Empty(t, guard.Linears[0].Periods)
}

func TestAssumeNegationExcludesPinnedValue(t *testing.T) {
	req, err := program.NewRequest("guarded", []string{"x"}, nil, program.Yield{}, nil)
	require.NoError(t, err)
	lw, err := lower.New(req)
	require.NoError(t, err)

	negGuard, err := lw.Assume(program.Eq{X: program.Read{Var: "x"}, Y: program.Const{Value: 0}}, true)
	require.NoError(t, err)

	o := oracle.NewNative(oracle.Config{Bound: 4, MaxPoints: 2000})
	ctx := context.Background()
	zero, err := semilinear.Singleton(lw.Doubling.Doubled, []int64{0, 0})
	require.NoError(t, err)
	ok, err := semilinear.Subset(ctx, o, zero, negGuard)
	require.NoError(t, err)
	require.False(t, ok)

	one, err := semilinear.Singleton(lw.Doubling.Doubled, []int64{1, 1})
	require.NoError(t, err)
	ok, err = semilinear.Subset(ctx, o, one, negGuard)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIfLowersToGuardedUnion(t *testing.T) {
	body := program.If{
		Cond: program.Eq{X: program.Read{Var: "x"}, Y: program.Const{Value: 0}},
		Then: program.WriteGlobal{Var: "x", Value: program.Const{Value: 1}},
		Else: program.WriteGlobal{Var: "x", Value: program.Const{Value: 2}},
	}
	req, err := program.NewRequest("branch", []string{"x"}, nil, body, nil)
	require.NoError(t, err)
	lw, expr, err := lower.Request(req)
	require.NoError(t, err)

	o := oracle.NewNative(oracle.Config{Bound: 4, MaxPoints: 2000})
	ctx := context.Background()
	rel, err := kleene.Eval(ctx, o, lw.Base, expr, kleene.Options{})
	require.NoError(t, err)

	fromZero, err := semilinear.Singleton(lw.Doubling.Doubled, []int64{0, 1})
	require.NoError(t, err)
	ok, err := semilinear.Subset(ctx, o, fromZero, rel)
	require.NoError(t, err)
	require.True(t, ok)

	fromOne, err := semilinear.Singleton(lw.Doubling.Doubled, []int64{1, 2})
	require.NoError(t, err)
	ok, err = semilinear.Subset(ctx, o, fromOne, rel)
	require.NoError(t, err)
	require.True(t, ok)
}
