package program_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvard-labs/serialcheck/program"
)

func TestNewRequestRejectsEmptyName(t *testing.T) {
	_, err := program.NewRequest("", nil, nil, program.Yield{}, nil)
	require.ErrorIs(t, err, program.ErrEmptyRequestName)
}

func TestNewRequestRejectsNilBody(t *testing.T) {
	_, err := program.NewRequest("r1", nil, nil, nil, nil)
	require.ErrorIs(t, err, program.ErrNilBody)
}

func TestNewRequestRejectsDuplicateLocals(t *testing.T) {
	_, err := program.NewRequest("r1", nil, []string{"tmp", "tmp"}, program.Yield{}, nil)
	require.ErrorIs(t, err, program.ErrDuplicateLocal)
}

func TestNewRequestBuildsBody(t *testing.T) {
	body := program.Seq{Stmts: []program.Stmt{
		program.WriteGlobal{Var: "balance", Value: program.Add{X: program.Read{Var: "balance"}, Y: program.Const{Value: 1}}},
		program.Yield{},
	}}
	req, err := program.NewRequest("increment", []string{"balance"}, nil, body, program.Read{Var: "balance"})
	require.NoError(t, err)
	require.Equal(t, "increment", req.Name)
	require.IsType(t, program.Seq{}, req.Body)
}
