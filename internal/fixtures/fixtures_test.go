package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvard-labs/serialcheck/internal/fixtures"
	"github.com/halvard-labs/serialcheck/program"
)

func TestBuildRejectsNilMutation(t *testing.T) {
	_, err := fixtures.Build("broken", nil, nil, nil)
	require.ErrorIs(t, err, fixtures.ErrNilMutation)
}

func TestBuildDefaultsReturnToZero(t *testing.T) {
	req, err := fixtures.Build("noop", nil, nil, fixtures.YieldPoint())
	require.NoError(t, err)
	require.Equal(t, program.Const{Value: 0}, req.Return)
}

func TestIncrementRequestShape(t *testing.T) {
	req, err := fixtures.IncrementRequest("x")
	require.NoError(t, err)
	require.Equal(t, "increment", req.Name)
	require.Equal(t, []string{"x"}, req.Globals)

	seq, ok := req.Body.(program.Seq)
	require.True(t, ok)
	require.Len(t, seq.Stmts, 2)
	require.IsType(t, program.WriteGlobal{}, seq.Stmts[0])
	require.IsType(t, program.Yield{}, seq.Stmts[1])
}

func TestEmptyRequestIsTriviallyShaped(t *testing.T) {
	req, err := fixtures.EmptyRequest("noop")
	require.NoError(t, err)
	require.Empty(t, req.Globals)
	require.Empty(t, req.Locals)
}

func TestThreeSwitchRoutingDeclaresThreeLocals(t *testing.T) {
	req, err := fixtures.ThreeSwitchRouting("counter")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"s1", "s2", "s3"}, req.Locals)
}

func TestDualInactivationMonitorSharesFlagGlobal(t *testing.T) {
	a, b, err := fixtures.DualInactivationMonitor("flag")
	require.NoError(t, err)
	require.Equal(t, []string{"flag"}, a.Globals)
	require.Equal(t, []string{"flag"}, b.Globals)
	require.NotEqual(t, a.Name, b.Name)
}

func TestBranchPropagatesNestedMutationError(t *testing.T) {
	_, err := fixtures.Build("broken", nil, nil,
		fixtures.Branch(fixtures.Equals(fixtures.Int(0), fixtures.Int(0)), []fixtures.Mutation{nil}, nil),
	)
	require.ErrorIs(t, err, fixtures.ErrNilMutation)
}
