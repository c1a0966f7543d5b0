package petri

import (
	"fmt"
	"io"
	"sort"
)

// WriteNet renders net and an initial marking to w in the line-oriented
// ".net" convention TINA-family model checkers use: one "pl" line per
// place (name and initial marking), one "tr" line per transition (name,
// input arcs, output arcs). This is the artifact the reachability oracle
// subprocess consumes (the coordinator writes it as
// petri_with_requests.net); that subprocess is an external collaborator,
// so this writer's only job is producing a faithful, parseable rendition of
// net — it is never read back by this module itself.
func WriteNet(w io.Writer, net *Net, marking Marking) error {
	places := make([]string, len(net.Places))
	for i, p := range net.Places {
		places[i] = p.Name
	}

	for _, name := range places {
		if _, err := fmt.Fprintf(w, "pl %s (%d)\n", name, marking[name]); err != nil {
			return err
		}
	}

	for _, t := range net.Transitions {
		if _, err := fmt.Fprintf(w, "tr %s %s -> %s\n", t.Name, formatArcs(t.Input), formatArcs(t.Output)); err != nil {
			return err
		}
	}

	return nil
}

// formatArcs renders a place->weight map as "place*weight" terms sorted
// by place name, for deterministic output across runs.
func formatArcs(arcs map[string]int64) string {
	names := make([]string, 0, len(arcs))
	for name := range arcs {
		names = append(names, name)
	}
	sort.Strings(names)

	out := ""
	for i, name := range names {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s*%d", name, arcs[name])
	}

	return out
}
