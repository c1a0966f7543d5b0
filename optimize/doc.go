// Package optimize implements four independent, individually
// correctness-preserving switches: bidirectional pruning, redundant-
// component removal, generate-less forward pruning, and strategic Kleene
// ordering. Eval re-implements kleene.Eval's walk wired through Switches,
// so every combination — including all four off, which must reduce to
// kleene.Eval's own output — produces the same decided relation, only with
// different intermediate sizes and timings.
//
// Each switch is a distinct local-search technique: SmartKleeneOrder does
// cheapest-first greedy reordering; GenerateLess does branch-and-bound-style
// pruning, cutting a Compose once its pre/post-domain intersection proves
// the result empty before paying for the full composition; RemoveRedundant
// wires semilinear.RemoveRedundant directly; Bidirectional drops
// Kleene union branches whose own relation the Oracle already proves empty,
// the same "skip the provably-useless region before paying for it" shape,
// scoped down from a full incremental forward/backward fixpoint (see
// DESIGN.md).
package optimize
