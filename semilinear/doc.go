// Package semilinear implements the Presburger / semilinear set algebra at
// the center of the reduction pipeline.
//
// A LinearSet is a generator-form description {b + Σ nᵢ·pᵢ | nᵢ ∈ ℕ} of a
// subset of ℤ^n: a base vector plus a finite list of period vectors. A Set
// is a finite union of LinearSets sharing one Schema. Set equality is
// semantic, decided by the Oracle, never by comparing generator lists
// structurally — two differently-generated descriptions can denote the same
// integer set.
//
// Every operation that mixes sets first harmonizes them onto a shared
// schema (see Harmonize); every operation that must decide feasibility,
// emptiness, or containment delegates to an injected Oracle rather than
// deciding it in-package, keeping the algebra itself backend-agnostic of
// whatever decision procedure answers those questions.
//
// This file is the package overview; types.go declares LinearSet and Set,
// errors.go the sentinel errors, oracle.go the Oracle contract, and
// algebra.go the union/intersect/project/compose/star/subset operations.
package semilinear
