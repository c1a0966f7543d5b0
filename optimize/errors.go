package optimize

import "errors"

// ErrNilExpr mirrors kleene.ErrNilExpr for Eval's own walk.
var ErrNilExpr = errors.New("optimize: nil expression")
