package certificate

import (
	"context"

	"github.com/google/uuid"

	"github.com/halvard-labs/serialcheck/petri"
	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// Witness is a REACHABLE answer's certificate: a concrete firing sequence
// from the initial marking. RunID tags the check for the stats record and
// trace-explanation output, not the proof
// itself.
type Witness struct {
	RunID   uuid.UUID
	Firings []string
}

// NewWitness tags firings with a fresh run identifier.
func NewWitness(firings []string) Witness {
	return Witness{RunID: uuid.New(), Firings: firings}
}

// CheckWitness replays w against net from marking, and reports whether the
// final marking's global vector lies in target: a REACHABLE answer is only
// sound if its firing sequence, fired from the initial marking, actually
// reaches the target. The returned slice names, per firing step, the
// instance identity petri.Net.FireInstance minted for that step —
// uuid.Nil for steps that didn't touch an accounting place — so a trace
// explanation can say which request instance completed, not just how many
// have.
func CheckWitness(ctx context.Context, oracle semilinear.Oracle, globals *schema.Schema, net *petri.Net, marking petri.Marking, w Witness, target semilinear.Set) (bool, []uuid.UUID, error) {
	byName := make(map[string]petri.Transition, len(net.Transitions))
	for _, t := range net.Transitions {
		byName[t.Name] = t
	}

	tags := make([]uuid.UUID, 0, len(w.Firings))
	cur := marking.Clone()
	for _, name := range w.Firings {
		t, ok := byName[name]
		if !ok {
			return false, nil, ErrUnknownTransition
		}
		next, tag, err := net.FireInstance(cur, t)
		if err != nil {
			return false, nil, ErrNotEnabled
		}
		cur = next
		tags = append(tags, tag)
	}

	final := make([]int64, globals.Len())
	for i, g := range globals.Dims() {
		final[i] = cur["value:"+g.Name]
	}
	point, err := semilinear.Singleton(globals, final)
	if err != nil {
		return false, nil, err
	}

	ok, err := semilinear.Subset(ctx, oracle, point, target)
	if err != nil {
		return false, nil, err
	}

	return ok, tags, nil
}
