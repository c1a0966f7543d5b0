package kleene

import "errors"

// ErrNilExpr is returned when Eval is asked to evaluate a nil Expr node —
// always a construction bug in the caller (package lower or optimize),
// never a condition arising from valid input.
var ErrNilExpr = errors.New("kleene: nil expression node")
