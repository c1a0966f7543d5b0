// Package lower translates a program.Request's AST into a kleene.Expr over
// atomic relations: Seq becomes Concat, If becomes a union
// of assume-guarded branches, While becomes a guarded Closure, Choice
// becomes Union, and Yield/Comment lower to the identity atom. Evaluating
// the resulting expression (via package kleene) produces the request's
// summary relation.
//
// Condition lowering (assume.go) solves each Eq guard's defining equation
// symbolically rather than leaving it for the oracle: a guard's affine
// difference is pivoted on a unit-coefficient variable and the resulting
// lattice — or, for a negated guard, the finite run of values below the
// pinned value unioned with the half-line above it — is expressed directly
// in generator form. This only
// requires oracle consultation later, during kleene.Eval, the same way any
// other atom does.
package lower
