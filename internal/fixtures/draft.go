package fixtures

import (
	"fmt"

	"github.com/halvard-labs/serialcheck/program"
)

// Draft accumulates a request body as Mutations run against it in order.
type Draft struct {
	stmts []program.Stmt
	ret   program.Expr
}

// Append adds stmt to the end of the body under construction.
func (d *Draft) Append(stmt program.Stmt) { d.stmts = append(d.stmts, stmt) }

// SetReturn sets the request's terminal expression; the last call wins.
func (d *Draft) SetReturn(expr program.Expr) { d.ret = expr }

// Mutation applies one deterministic change to a Draft. Mutations MUST NOT
// panic; they return an error instead, mirroring builder.Constructor's
// contract.
type Mutation func(*Draft) error

// Build resolves globals/locals into a program.Request, running muts in
// order against a fresh Draft — the same single-orchestrator shape as
// builder.BuildGraph: one place that resolves configuration and applies
// mutations in call order, wrapping the first error at the API boundary.
func Build(name string, globals, locals []string, muts ...Mutation) (program.Request, error) {
	d := &Draft{}
	for i, m := range muts {
		if m == nil {
			return program.Request{}, fmt.Errorf("fixtures: Build: nil mutation at index %d: %w", i, ErrNilMutation)
		}
		if err := m(d); err != nil {
			return program.Request{}, fmt.Errorf("fixtures: Build: %w", err)
		}
	}

	ret := d.ret
	if ret == nil {
		ret = program.Const{Value: 0}
	}

	return program.NewRequest(name, globals, locals, program.Seq{Stmts: d.stmts}, ret)
}
