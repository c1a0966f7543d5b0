package kleene

import "github.com/halvard-labs/serialcheck/semilinear"

// Expr is a Kleene algebra expression over relations. The four node kinds
// below are the whole grammar: an atomic relation, union,
// sequential composition, and reflexive-transitive closure.
type Expr interface {
	isExpr()
}

// Atom wraps an already-computed relation — a semilinear.Set over a doubled
// variable schema — as a Kleene expression leaf.
type Atom struct {
	Relation semilinear.Set
}

// Union is R ∪ S.
type Union struct {
	X, Y Expr
}

// Concat is sequential composition R;S.
type Concat struct {
	X, Y Expr
}

// Closure is R* — zero or more applications of R.
type Closure struct {
	X Expr
}

func (Atom) isExpr()    {}
func (Union) isExpr()   {}
func (Concat) isExpr()  {}
func (Closure) isExpr() {}
