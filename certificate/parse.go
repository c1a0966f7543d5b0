package certificate

import (
	"strconv"
	"strings"

	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// ParseInvariant parses the oracle's textual invariant into a semilinear.Set over sch. The grammar
// is a sequence of "linear" blocks, each one base line and zero or more
// period lines, terminated by "end":
//
//	linear
//	base 0 0
//	period 1 0
//	period 0 1
//	end
//	linear
//	base 5 5
//	end
//
// Each vector has exactly sch.Len() space-separated integers, in sch's
// dimension order. Blank lines and lines starting with "#" are ignored.
func ParseInvariant(sch *schema.Schema, text string) (semilinear.Set, error) {
	var linears []semilinear.LinearSet
	var cur *semilinear.LinearSet

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "linear":
			if cur != nil {
				return semilinear.Set{}, ErrParseError
			}
			cur = &semilinear.LinearSet{}
		case "end":
			if cur == nil {
				return semilinear.Set{}, ErrParseError
			}
			linears = append(linears, *cur)
			cur = nil
		case "base":
			if cur == nil || cur.Base != nil {
				return semilinear.Set{}, ErrParseError
			}
			vec, err := parseVector(fields[1:], sch.Len())
			if err != nil {
				return semilinear.Set{}, err
			}
			cur.Base = vec
		case "period":
			if cur == nil {
				return semilinear.Set{}, ErrParseError
			}
			vec, err := parseVector(fields[1:], sch.Len())
			if err != nil {
				return semilinear.Set{}, err
			}
			cur.Periods = append(cur.Periods, vec)
		default:
			return semilinear.Set{}, ErrParseError
		}
	}
	if cur != nil {
		return semilinear.Set{}, ErrParseError
	}

	return semilinear.New(sch, linears...)
}

func parseVector(fields []string, want int) ([]int64, error) {
	if len(fields) != want {
		return nil, ErrParseError
	}
	vec := make([]int64, want)
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, ErrParseError
		}
		vec[i] = n
	}

	return vec, nil
}

// FormatInvariant renders inv back into ParseInvariant's textual form —
// used when writing smpt_constraints_disjunct_i_proof.txt artifacts.
func FormatInvariant(inv semilinear.Set) string {
	var b strings.Builder
	for _, l := range inv.Linears {
		b.WriteString("linear\n")
		b.WriteString("base " + formatVector(l.Base) + "\n")
		for _, p := range l.Periods {
			b.WriteString("period " + formatVector(p) + "\n")
		}
		b.WriteString("end\n")
	}

	return b.String()
}

func formatVector(vec []int64) string {
	parts := make([]string, len(vec))
	for i, v := range vec {
		parts[i] = strconv.FormatInt(v, 10)
	}

	return strings.Join(parts, " ")
}
