package lower

import "github.com/halvard-labs/serialcheck/program"

// affineOf reduces e to Σ coeffs[name]·name + constant. program.Expr's
// grammar (Const, Read, Add, Sub) is closed under affine combination, so
// this never needs to introduce a fresh local for a hypothetical
// non-affine operand — the default case below exists only to guard
// against a future grammar extension.
func affineOf(e program.Expr) (map[string]int64, int64, error) {
	switch n := e.(type) {
	case program.Const:
		return map[string]int64{}, n.Value, nil
	case program.Read:
		return map[string]int64{n.Var: 1}, 0, nil
	case program.Add:
		cx, kx, err := affineOf(n.X)
		if err != nil {
			return nil, 0, err
		}
		cy, ky, err := affineOf(n.Y)
		if err != nil {
			return nil, 0, err
		}

		return mergeAdd(cx, cy), kx + ky, nil
	case program.Sub:
		cx, kx, err := affineOf(n.X)
		if err != nil {
			return nil, 0, err
		}
		cy, ky, err := affineOf(n.Y)
		if err != nil {
			return nil, 0, err
		}

		return mergeAdd(cx, negateCoeffs(cy)), kx - ky, nil
	default:
		return nil, 0, ErrNonAffineExpr
	}
}

func mergeAdd(a, b map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(a)+len(b))
	for k, v := range a {
		out[k] += v
	}
	for k, v := range b {
		out[k] += v
	}

	return out
}

func negateCoeffs(a map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(a))
	for k, v := range a {
		out[k] = -v
	}

	return out
}
