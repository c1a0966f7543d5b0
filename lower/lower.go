package lower

import (
	"github.com/halvard-labs/serialcheck/kleene"
	"github.com/halvard-labs/serialcheck/program"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// Stmt lowers one statement to a Kleene expression.
func (lw *Lowering) Stmt(s program.Stmt) (kleene.Expr, error) {
	switch n := s.(type) {
	case program.Yield:
		return kleene.Atom{Relation: lw.identity()}, nil
	case program.Comment:
		return kleene.Atom{Relation: lw.identity()}, nil
	case program.WriteLocal:
		return lw.write(n.Var, n.Value)
	case program.WriteGlobal:
		return lw.write(n.Var, n.Value)
	case program.Seq:
		return lw.seq(n.Stmts)
	case program.If:
		return lw.ifStmt(n)
	case program.While:
		return lw.whileStmt(n)
	case program.Choice:
		x, err := lw.Stmt(n.A)
		if err != nil {
			return nil, err
		}
		y, err := lw.Stmt(n.B)
		if err != nil {
			return nil, err
		}

		return kleene.Union{X: x, Y: y}, nil
	default:
		return nil, ErrNonAffineExpr
	}
}

func (lw *Lowering) seq(stmts []program.Stmt) (kleene.Expr, error) {
	if len(stmts) == 0 {
		return kleene.Atom{Relation: lw.identity()}, nil
	}
	acc, err := lw.Stmt(stmts[0])
	if err != nil {
		return nil, err
	}
	for _, s := range stmts[1:] {
		next, err := lw.Stmt(s)
		if err != nil {
			return nil, err
		}
		acc = kleene.Concat{X: acc, Y: next}
	}

	return acc, nil
}

// write lowers an assignment: pre=post on every dimension except name,
// whose post value is the affine evaluation of value in terms of the
// pre-state.
func (lw *Lowering) write(name string, value program.Expr) (kleene.Expr, error) {
	idx, known := lw.Base.IndexOf(name)
	if !known {
		return nil, ErrUnknownVariable
	}
	coeffs, k, err := affineOf(value)
	if err != nil {
		return nil, err
	}
	for n := range coeffs {
		if _, known := lw.Base.IndexOf(n); !known {
			return nil, ErrUnknownVariable
		}
	}

	base := make([]int64, lw.Doubling.Doubled.Len())
	base[lw.Doubling.PostOf(idx)] = k

	periods := make([][]int64, 0, lw.Base.Len())
	for _, d := range lw.Base.Dims() {
		j, _ := lw.Base.IndexOf(d.Name)
		p := make([]int64, lw.Doubling.Doubled.Len())
		if j == idx {
			// name's own pre-copy varies freely — its old value is
			// unconstrained and projected away — but it can still
			// appear as a term on the RHS (e.g. x := x+1), so it still
			// contributes to post[idx] below like any other variable.
			p[lw.Doubling.PreOf(idx)] = 1
		} else {
			p[lw.Doubling.PreOf(j)] = 1
			p[lw.Doubling.PostOf(j)] = 1
		}
		if c := coeffs[d.Name]; c != 0 {
			p[lw.Doubling.PostOf(idx)] += c
		}
		periods = append(periods, p)
	}

	rel, err := semilinear.New(lw.Doubling.Doubled, semilinear.LinearSet{Base: base, Periods: periods})
	if err != nil {
		return nil, err
	}

	return kleene.Atom{Relation: rel}, nil
}

func (lw *Lowering) ifStmt(n program.If) (kleene.Expr, error) {
	thenGuard, err := lw.Assume(n.Cond, false)
	if err != nil {
		return nil, err
	}
	thenBody, err := lw.orIdentity(n.Then)
	if err != nil {
		return nil, err
	}
	elseGuard, err := lw.Assume(n.Cond, true)
	if err != nil {
		return nil, err
	}
	elseBody, err := lw.orIdentity(n.Else)
	if err != nil {
		return nil, err
	}

	return kleene.Union{
		X: kleene.Concat{X: kleene.Atom{Relation: thenGuard}, Y: thenBody},
		Y: kleene.Concat{X: kleene.Atom{Relation: elseGuard}, Y: elseBody},
	}, nil
}

func (lw *Lowering) whileStmt(n program.While) (kleene.Expr, error) {
	guard, err := lw.Assume(n.Cond, false)
	if err != nil {
		return nil, err
	}
	body, err := lw.Stmt(n.Body)
	if err != nil {
		return nil, err
	}
	exitGuard, err := lw.Assume(n.Cond, true)
	if err != nil {
		return nil, err
	}

	loop := kleene.Closure{X: kleene.Concat{X: kleene.Atom{Relation: guard}, Y: body}}

	return kleene.Concat{X: loop, Y: kleene.Atom{Relation: exitGuard}}, nil
}

func (lw *Lowering) orIdentity(s program.Stmt) (kleene.Expr, error) {
	if s == nil {
		return kleene.Atom{Relation: lw.identity()}, nil
	}

	return lw.Stmt(s)
}

// Request lowers req's entire body to a single Kleene expression: the
// request's summary is this expression's evaluation, restricted by
// whatever initial projection the caller applies. When req.Return is
// non-nil, the body is followed by a terminal projection step that writes
// the evaluated return expression into ReturnDim, so the value a request
// exposes as its observable result becomes part of the summary relation
// instead of being dropped along with every other local.
func Request(req program.Request) (*Lowering, kleene.Expr, error) {
	lw, err := New(req)
	if err != nil {
		return nil, nil, err
	}
	expr, err := lw.Stmt(req.Body)
	if err != nil {
		return nil, nil, err
	}
	if req.Return != nil {
		term, err := lw.write(ReturnDim, req.Return)
		if err != nil {
			return nil, nil, err
		}
		expr = kleene.Concat{X: expr, Y: term}
	}

	return lw, expr, nil
}
