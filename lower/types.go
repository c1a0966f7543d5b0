package lower

import (
	"github.com/halvard-labs/serialcheck/program"
	"github.com/halvard-labs/serialcheck/schema"
)

// NegationBound caps the finite "below the pivot value" branch a negated
// equality guard can enumerate (see assume.go). Guards in realistic
// counter/lock programs pin small values; anything past this bound is
// almost certainly a modeling mistake rather than deliberate.
const NegationBound = 256

// ReturnDim is the reserved dimension name Request's terminal projection
// writes the request's evaluated Return expression into. It is treated as
// a Global so a value summary can expose it the same way any other shared
// variable is exposed, and is only present in a request's schema when
// Return is non-nil.
const ReturnDim = "return"

// Lowering holds the per-request schema a Request's AST is lowered
// against: one dimension per declared global, then ReturnDim when the
// request declares a Return expression, then one per declared local.
type Lowering struct {
	Base     *schema.Schema
	Doubling schema.Doubling
}

// New builds the Lowering for req: its variable schema and doubling.
func New(req program.Request) (*Lowering, error) {
	dims := make([]schema.Dim, 0, len(req.Globals)+len(req.Locals)+1)
	for _, g := range req.Globals {
		dims = append(dims, schema.Dim{Name: g, Kind: schema.Global})
	}
	if req.Return != nil {
		dims = append(dims, schema.Dim{Name: ReturnDim, Kind: schema.Global})
	}
	for _, l := range req.Locals {
		dims = append(dims, schema.Dim{Name: l, Kind: schema.Local})
	}
	base, err := schema.New(dims...)
	if err != nil {
		return nil, err
	}
	doubling, err := schema.Double(base)
	if err != nil {
		return nil, err
	}

	return &Lowering{Base: base, Doubling: doubling}, nil
}
