// Package kleene evaluates Kleene algebra expressions over relations
//: Atom, Union, Concat, and Closure (star), built on top of package
// semilinear's Union/Compose/Star primitives. An expression's leaves are
// atomic relations already expressed as semilinear.Sets over a doubled
// variable schema (typically produced by package lower from a request's
// AST); this package only handles combining them.
//
// Evaluation order matters for cost, not correctness: Concat and Star both
// eventually call semilinear.Compose, whose cost is dominated by the number
// of linear-piece pairs considered, so evaluating a deeply nested
// expression left-to-right versus right-to-left can change the component
// counts seen by intermediate steps substantially. Eval always evaluates
// in the expression's literal structure (no rewriting); package optimize's
// SmartKleeneOrder switch is where reassociation happens, ahead of handing
// the (possibly rewritten) Expr to Eval.
package kleene
