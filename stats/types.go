package stats

import "github.com/halvard-labs/serialcheck/optimize"

// Result is the decided outcome recorded for a query.
type Result string

const (
	ResultSerializable    Result = "serializable"
	ResultNotSerializable Result = "not_serializable"
	ResultTimeout         Result = "timeout"
	ResultError           Result = "error"
)

// SwitchSet mirrors optimize.Switches with JSON tags, one struct field per
// optimization toggle actually applied for this run.
type SwitchSet struct {
	Bidirectional    bool `json:"bidirectional"`
	RemoveRedundant  bool `json:"remove_redundant"`
	GenerateLess     bool `json:"generate_less"`
	SmartKleeneOrder bool `json:"smart_kleene_order"`
}

// FromSwitches copies the four boolean toggles out of an optimize.Switches,
// dropping its two cost-bound fields (not part of the recorded identity of
// a run — they tune cost, not semantics).
func FromSwitches(sw optimize.Switches) SwitchSet {
	return SwitchSet{
		Bidirectional:    sw.Bidirectional,
		RemoveRedundant:  sw.RemoveRedundant,
		GenerateLess:     sw.GenerateLess,
		SmartKleeneOrder: sw.SmartKleeneOrder,
	}
}

// Record is one line of out/serializability_stats.jsonl.
type Record struct {
	RunID           string            `json:"run_id"`
	Example         string            `json:"example"`
	Result          Result            `json:"result"`
	CPUSeconds      float64           `json:"cpu_seconds"`
	StageTimings    map[string]float64 `json:"stage_timings_seconds"`
	Switches        SwitchSet         `json:"switches"`
	DisjunctCount   int               `json:"disjunct_count"`
	PlaceCount      int               `json:"petri_places"`
	TransitionCount int               `json:"petri_transitions"`
	ComponentCount  int               `json:"semilinear_components"`
	Error           string            `json:"error,omitempty"`
}
