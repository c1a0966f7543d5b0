package fixtures

import "github.com/halvard-labs/serialcheck/program"

// Var reads variable name — a thin alias so fixture call sites read as a
// small expression DSL rather than bare program.Read{Var: ...} literals.
func Var(name string) program.Expr { return program.Read{Var: name} }

// Int is an integer literal.
func Int(v int64) program.Expr { return program.Const{Value: v} }

// Plus is X + Y.
func Plus(x, y program.Expr) program.Expr { return program.Add{X: x, Y: y} }

// Minus is X - Y.
func Minus(x, y program.Expr) program.Expr { return program.Sub{X: x, Y: y} }

// Equals is the guard X = Y.
func Equals(x, y program.Expr) program.Cond { return program.Eq{X: x, Y: y} }

// WriteGlobal appends "global := value" to the body.
func WriteGlobal(name string, value program.Expr) Mutation {
	return func(d *Draft) error {
		d.Append(program.WriteGlobal{Var: name, Value: value})
		return nil
	}
}

// WriteLocal appends "local := value" to the body.
func WriteLocal(name string, value program.Expr) Mutation {
	return func(d *Draft) error {
		d.Append(program.WriteLocal{Var: name, Value: value})
		return nil
	}
}

// Increment appends "global := global + by".
func Increment(global string, by int64) Mutation {
	return WriteGlobal(global, Plus(Var(global), Int(by)))
}

// YieldPoint appends an explicit Yield — a boundary between atomic
// segments.
func YieldPoint() Mutation {
	return func(d *Draft) error {
		d.Append(program.Yield{})
		return nil
	}
}

// Return sets the request's terminal expression.
func Return(expr program.Expr) Mutation {
	return func(d *Draft) error {
		d.SetReturn(expr)
		return nil
	}
}

// runBranch threads a fresh Draft through muts and returns the resulting
// Stmt, so Branch/Loop/Choice can nest Mutations without sharing the
// parent Draft's accumulated statement list.
func runBranch(muts []Mutation) (program.Stmt, error) {
	d := &Draft{}
	for _, m := range muts {
		if m == nil {
			return nil, ErrNilMutation
		}
		if err := m(d); err != nil {
			return nil, err
		}
	}

	return program.Seq{Stmts: d.stmts}, nil
}

// Branch appends an If running then when cond holds, els otherwise.
func Branch(cond program.Cond, then, els []Mutation) Mutation {
	return func(d *Draft) error {
		thenStmt, err := runBranch(then)
		if err != nil {
			return err
		}
		elsStmt, err := runBranch(els)
		if err != nil {
			return err
		}
		d.Append(program.If{Cond: cond, Then: thenStmt, Else: elsStmt})

		return nil
	}
}

// Loop appends a While repeating body for as long as cond holds.
func Loop(cond program.Cond, body []Mutation) Mutation {
	return func(d *Draft) error {
		bodyStmt, err := runBranch(body)
		if err != nil {
			return err
		}
		d.Append(program.While{Cond: cond, Body: bodyStmt})

		return nil
	}
}

// Choice appends a nondeterministic choice between branch a and branch b.
func Choice(a, b []Mutation) Mutation {
	return func(d *Draft) error {
		aStmt, err := runBranch(a)
		if err != nil {
			return err
		}
		bStmt, err := runBranch(b)
		if err != nil {
			return err
		}
		d.Append(program.Choice{A: aStmt, B: bStmt})

		return nil
	}
}
