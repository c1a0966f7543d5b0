package program

// Expr is a pure arithmetic expression over ℤ: Const, Read, Add, or Sub.
type Expr interface {
	isExpr()
}

// Const is an integer literal.
type Const struct {
	Value int64
}

// Read reads a variable (local or global — which is decided by the
// enclosing Request's Locals/Globals lists, not by the node itself).
type Read struct {
	Var string
}

// Add is X + Y.
type Add struct {
	X, Y Expr
}

// Sub is X - Y.
type Sub struct {
	X, Y Expr
}

func (Const) isExpr() {}
func (Read) isExpr()  {}
func (Add) isExpr()   {}
func (Sub) isExpr()   {}

// Cond is a boolean condition usable as an If/While guard. Eq is the only
// primitive comparison; negation is handled structurally during lowering
// (package lower builds ¬(X=Y) as a disjunction of strict inequalities
// directly, rather than requiring a Not AST node).
type Cond interface {
	isCond()
}

// Eq is X = Y.
type Eq struct {
	X, Y Expr
}

func (Eq) isCond() {}

// Stmt is a statement in a request body.
type Stmt interface {
	isStmt()
}

// WriteLocal assigns Value to a local variable.
type WriteLocal struct {
	Var   string
	Value Expr
}

// WriteGlobal assigns Value to a global variable.
type WriteGlobal struct {
	Var   string
	Value Expr
}

// Seq runs Stmts in order.
type Seq struct {
	Stmts []Stmt
}

// If runs Then when Cond holds, Else otherwise.
type If struct {
	Cond Cond
	Then Stmt
	Else Stmt
}

// While repeats Body for as long as Cond holds.
type While struct {
	Cond Cond
	Body Stmt
}

// Yield is the sole observable statement — a request's execution is a
// sequence of atomic segments separated by Yield points.
type Yield struct{}

// Choice nondeterministically runs A or B.
type Choice struct {
	A, B Stmt
}

// Comment is a no-op carrying free-form text, preserved through lowering
// only for diagnostics (it lowers to the identity atom, same as an empty
// Seq).
type Comment struct {
	Text string
}

func (WriteLocal) isStmt()  {}
func (WriteGlobal) isStmt() {}
func (Seq) isStmt()         {}
func (If) isStmt()          {}
func (While) isStmt()       {}
func (Yield) isStmt()       {}
func (Choice) isStmt()      {}
func (Comment) isStmt()     {}

// Request is a named concurrent program: its declared globals and locals,
// its body, and the expression whose value is exposed as its observable
// return value.
type Request struct {
	Name    string
	Globals []string
	Locals  []string
	Body    Stmt
	Return  Expr
}

// NewRequest validates and constructs a Request.
func NewRequest(name string, globals, locals []string, body Stmt, ret Expr) (Request, error) {
	if name == "" {
		return Request{}, ErrEmptyRequestName
	}
	if body == nil {
		return Request{}, ErrNilBody
	}
	seen := make(map[string]bool, len(locals))
	for _, l := range locals {
		if seen[l] {
			return Request{}, ErrDuplicateLocal
		}
		seen[l] = true
	}

	return Request{Name: name, Globals: globals, Locals: locals, Body: body, Return: ret}, nil
}
