package lower

import "errors"

var (
	// ErrNonAffineExpr is returned when an arithmetic Expr node is not one
	// of Const/Read/Add/Sub. The program package's Expr grammar is closed
	// under these four, so this only fires if a caller extends the
	// grammar without extending affineOf to match.
	ErrNonAffineExpr = errors.New("lower: expression is not affine")

	// ErrUnknownVariable is returned when an Expr reads a variable not
	// declared in the request's Globals/Locals.
	ErrUnknownVariable = errors.New("lower: read of undeclared variable")

	// ErrUnsupportedCond is returned for a Cond implementation other than
	// Eq; Eq is the only comparison program.Cond currently defines.
	ErrUnsupportedCond = errors.New("lower: unsupported condition kind")

	// ErrNonUnitPivot is returned when an equality guard's affine
	// difference has no variable with coefficient ±1 to pivot on. Exact
	// lowering of such a guard requires general integer lattice-basis
	// construction (the same machinery matrix/ops.HermiteNormalForm
	// applies to feasibility) that this package does not yet implement;
	// guards produced by straightforward counter/lock arithmetic (the
	// kind this DSL's Add/Sub/Const/Read grammar naturally produces)
	// always have one.
	ErrNonUnitPivot = errors.New("lower: equality guard has no unit-coefficient variable to pivot on")

	// ErrNegationBoundExceeded is returned when a negated equality guard's
	// pivot value is large enough that enumerating its finite "below"
	// branch would be impractical.
	ErrNegationBoundExceeded = errors.New("lower: negated guard's finite branch exceeds its bound")
)
