package optimize

// Switches configures which of the four independent optimizations Eval
// applies. Every combination must produce the same decided answer
//; only timing and intermediate sizes may differ. The CLI's
// `--without-*` flags each clear exactly one field.
type Switches struct {
	Bidirectional    bool
	RemoveRedundant  bool
	GenerateLess     bool
	SmartKleeneOrder bool

	// RemoveRedundantMaxComponents bounds semilinear.RemoveRedundant's cost
	//; zero means unbounded.
	RemoveRedundantMaxComponents int
	// MaxStarIterations bounds every Closure node's saturation loop,
	// forwarded to semilinear.Star; zero means unbounded.
	MaxStarIterations int
}

// All returns every switch enabled — the default configuration.
func All() Switches {
	return Switches{
		Bidirectional:    true,
		RemoveRedundant:  true,
		GenerateLess:     true,
		SmartKleeneOrder: true,
	}
}

// None disables every switch — Eval then behaves exactly like kleene.Eval,
// used as the differential-testing baseline.
func None() Switches {
	return Switches{}
}
