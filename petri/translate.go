package petri

import (
	"fmt"

	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// UnboundedInstances is the control-place marking Translate uses when
// Options.InstanceBound is left at zero, standing in for "no practical
// limit on how many times this component may start" — real reachability tooling needs a
// finite initial marking, so this is a large finite stand-in for ω rather
// than true unboundedness. Passing InstanceBound=1 instead recovers a
// strictly 1-safe control place.
const UnboundedInstances int64 = 1 << 30

// Options configures Translate.
type Options struct {
	// InstanceBound caps how many times each (request, component) base
	// transition may fire. Zero means UnboundedInstances.
	InstanceBound int64
	// WithRequests adds one AccountingPlace per request, incremented by
	// that request's base transitions — the petri_with_requests variant
	// used by the oracle's trace explanation.
	WithRequests bool
}

// NamedSummary pairs a request's name with its global-effect summary
// relation — a semilinear.Set already projected down to the doubling of
// globals only (package lower's output is over the request's full
// variable schema; projecting away locals is the caller's job, via
// semilinear.Project, before calling Translate).
type NamedSummary struct {
	Name    string
	Summary semilinear.Set
}

// Translate builds the Petri net and initial marking for globals (ordered
// dimensions), initial (the starting global vector, in globals' order),
// and summaries (one per request).
func Translate(globals *schema.Schema, initial []int64, summaries []NamedSummary, opts Options) (*Net, Marking, error) {
	if err := globals.ValidateVector(initial); err != nil {
		return nil, nil, err
	}
	doubling, err := schema.Double(globals)
	if err != nil {
		return nil, nil, err
	}

	bound := opts.InstanceBound
	if bound <= 0 {
		bound = UnboundedInstances
	}

	net := NewNet()
	marking := make(Marking, len(globals.Dims())+4*len(summaries))

	for i, g := range globals.Dims() {
		place := valuePlace(g.Name)
		if err := net.AddPlace(Place{Name: place, Kind: ValuePlace}); err != nil {
			return nil, nil, err
		}
		marking[place] = initial[i]
	}

	for _, ns := range summaries {
		if !ns.Summary.Schema.Equal(doubling.Doubled) {
			return nil, nil, ErrSchemaMismatch
		}
		if opts.WithRequests {
			acct := accountingPlace(ns.Name)
			if err := net.AddPlace(Place{Name: acct, Kind: AccountingPlace}); err != nil {
				return nil, nil, err
			}
		}

		for ci, comp := range ns.Summary.Linears {
			control := controlPlace(ns.Name, ci)
			if err := net.AddPlace(Place{Name: control, Kind: ControlPlace}); err != nil {
				return nil, nil, err
			}
			marking[control] = bound

			if err := addBaseTransition(net, globals, doubling, ns.Name, ci, control, comp.Base, opts.WithRequests); err != nil {
				return nil, nil, err
			}
			for pi, per := range comp.Periods {
				if err := addPeriodTransition(net, globals, doubling, ns.Name, ci, pi, control, per); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	return net, marking, nil
}

func valuePlace(global string) string           { return "value:" + global }
func controlPlace(req string, comp int) string  { return fmt.Sprintf("control:%s:%d", req, comp) }
func accountingPlace(req string) string         { return "acct:" + req }

func addBaseTransition(net *Net, globals *schema.Schema, doubling schema.Doubling, req string, comp int, control string, base []int64, withRequests bool) error {
	in := map[string]int64{control: 1}
	out := map[string]int64{}
	for i, g := range globals.Dims() {
		delta := base[doubling.PostOf(i)] - base[doubling.PreOf(i)]
		applyDelta(in, out, valuePlace(g.Name), delta)
	}
	if withRequests {
		out[accountingPlace(req)] = 1
	}

	return net.AddTransition(Transition{
		Name: fmt.Sprintf("%s#%d:base", req, comp), Request: req, Component: comp,
		Input: in, Output: out,
	})
}

func addPeriodTransition(net *Net, globals *schema.Schema, doubling schema.Doubling, req string, comp, period int, control string, vec []int64) error {
	in := map[string]int64{control: 1}
	out := map[string]int64{control: 1}
	for i, g := range globals.Dims() {
		delta := vec[doubling.PostOf(i)] - vec[doubling.PreOf(i)]
		applyDelta(in, out, valuePlace(g.Name), delta)
	}

	return net.AddTransition(Transition{
		Name: fmt.Sprintf("%s#%d:period%d", req, comp, period), Request: req, Component: comp,
		Input: in, Output: out,
	})
}

func applyDelta(in, out map[string]int64, place string, delta int64) {
	switch {
	case delta > 0:
		out[place] += delta
	case delta < 0:
		in[place] += -delta
	}
}
