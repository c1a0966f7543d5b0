package fixtures

import "github.com/halvard-labs/serialcheck/program"

// IncrementRequest returns a single request incrementing global by 1 and
// yielding once — the smallest non-trivial fixture, used as a smoke test
// across lower/petri/serialnfa/certificate.
func IncrementRequest(global string) (program.Request, error) {
	return Build("increment", []string{global}, nil,
		Increment(global, 1),
		YieldPoint(),
		Return(Var(global)),
	)
}

// EmptyRequest returns a request whose body does nothing and yields once
// before returning a constant — the trivially-serializable empty-body
// scenario.
func EmptyRequest(name string) (program.Request, error) {
	return Build(name, nil, nil,
		YieldPoint(),
		Return(Int(0)),
	)
}

// ThreeSwitchRouting returns a request modeling three independent routing
// switches each flipped by a guarded branch before a shared counter is
// updated — deep enough branching that interleaving two or more instances
// can realize an outcome no serial order produces.
func ThreeSwitchRouting(counter string) (program.Request, error) {
	return Build("route", []string{counter}, []string{"s1", "s2", "s3"},
		WriteLocal("s1", Int(0)),
		WriteLocal("s2", Int(0)),
		WriteLocal("s3", Int(0)),
		YieldPoint(),
		Branch(Equals(Var("s1"), Int(0)),
			[]Mutation{WriteLocal("s1", Int(1)), Increment(counter, 1)},
			[]Mutation{Increment(counter, 2)},
		),
		YieldPoint(),
		Branch(Equals(Var("s2"), Int(0)),
			[]Mutation{WriteLocal("s2", Int(1)), Increment(counter, 4)},
			[]Mutation{Increment(counter, 8)},
		),
		YieldPoint(),
		Branch(Equals(Var("s3"), Int(0)),
			[]Mutation{WriteLocal("s3", Int(1)), Increment(counter, 16)},
			[]Mutation{Increment(counter, 32)},
		),
		YieldPoint(),
		Return(Var(counter)),
	)
}

// DualInactivationMonitor returns two requests sharing a single flag
// global that each try to clear it after observing it set, modeling a
// two-node monitor where both nodes racing to inactivate produces an
// outcome — both flags cleared via two distinct writes — unreachable by
// any serial order.
func DualInactivationMonitor(flag string) (program.Request, program.Request, error) {
	node := func(name string) (program.Request, error) {
		return Build(name, []string{flag}, nil,
			YieldPoint(),
			Branch(Equals(Var(flag), Int(1)),
				[]Mutation{WriteGlobal(flag, Int(0))},
				nil,
			),
			YieldPoint(),
			Return(Var(flag)),
		)
	}

	a, err := node("node_a")
	if err != nil {
		return program.Request{}, program.Request{}, err
	}
	b, err := node("node_b")
	if err != nil {
		return program.Request{}, program.Request{}, err
	}

	return a, b, nil
}
