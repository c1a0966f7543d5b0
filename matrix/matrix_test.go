package matrix_test

import (
	"testing"

	"github.com/halvard-labs/serialcheck/matrix"
	"github.com/stretchr/testify/require"
)

func TestFromRowsRejectsRaggedInput(t *testing.T) {
	_, err := matrix.FromRows([][]int64{{1, 2}, {1}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSetAtRoundTrip(t *testing.T) {
	m := matrix.NewMatrix(2, 2)
	m.Set(0, 1, 5)
	require.Equal(t, int64(5), m.At(0, 1))
	require.Equal(t, int64(0), m.At(1, 0))
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	c := m.Clone()
	c.Set(0, 0, 99)
	require.Equal(t, int64(1), m.At(0, 0))
}
