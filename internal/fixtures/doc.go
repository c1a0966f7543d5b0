// Package fixtures builds canonical program.Request values deterministically
// from small composable Mutations, applied in order by a single
// orchestrator, Build, the same shape as any builder that assembles a
// value from a closure list applied to an accumulator.
//
// This package exists for tests and cmd/serialcheck's bundled example
// fixtures — it is not part of the decision pipeline itself.
package fixtures
