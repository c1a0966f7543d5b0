package errkit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvard-labs/serialcheck/internal/errkit"
)

func TestParseErrorWrapsSentinel(t *testing.T) {
	err := errkit.NewParseError("request foo", errors.New("unexpected token"))

	var pe *errkit.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "request foo", pe.Location)
	require.Contains(t, err.Error(), "unexpected token")
}

func TestOracleErrorCarriesRetryable(t *testing.T) {
	err := errkit.NewOracleError("Intersect", true, errors.New("subprocess exit 1"))

	var oe *errkit.OracleError
	require.ErrorAs(t, err, &oe)
	require.True(t, oe.Retryable)
}

func TestTimeoutErrorNamesStage(t *testing.T) {
	err := errkit.NewTimeoutError("kleene.Eval")

	var te *errkit.TimeoutError
	require.ErrorAs(t, err, &te)
	require.Equal(t, "kleene.Eval", te.Stage)
}

func TestInvalidProofErrorNamesObligation(t *testing.T) {
	err := errkit.NewInvalidProofError("closed_under_transitions", errors.New("subset check failed"))

	var ie *errkit.InvalidProofError
	require.ErrorAs(t, err, &ie)
	require.Equal(t, "closed_under_transitions", ie.Obligation)
}

func TestInternalErrorNamesInvariant(t *testing.T) {
	err := errkit.NewInternalError("star saturation", errors.New("exceeded max iterations"))

	var ine *errkit.InternalError
	require.ErrorAs(t, err, &ine)
	require.Equal(t, "star saturation", ine.Invariant)
}

func TestSchemaErrorNamesVariable(t *testing.T) {
	err := errkit.NewSchemaError("x", errors.New("used as both local and global"))

	var se *errkit.SchemaError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "x", se.Variable)
}
