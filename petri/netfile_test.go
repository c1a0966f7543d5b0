package petri_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvard-labs/serialcheck/petri"
)

func TestWriteNetRendersPlacesAndTransitions(t *testing.T) {
	net := petri.NewNet()
	require.NoError(t, net.AddPlace(petri.Place{Name: "value:x", Kind: petri.ValuePlace}))
	require.NoError(t, net.AddTransition(petri.Transition{
		Name:   "inc",
		Output: map[string]int64{"value:x": 1},
	}))

	var buf strings.Builder
	require.NoError(t, petri.WriteNet(&buf, net, petri.Marking{"value:x": 0}))

	out := buf.String()
	require.Contains(t, out, "pl value:x (0)")
	require.Contains(t, out, "tr inc  -> value:x*1")
}
