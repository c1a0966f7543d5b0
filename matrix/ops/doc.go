// Package ops implements the exact-integer linear algebra routines package
// oracle's Native engine chains to prove a single point absent from a
// linear set (oracle/native_exact.go):
//
//   - RowEchelon  — rational Gaussian elimination, used to detect an
//     inconsistent equality system.
//   - HermiteNormalForm — integer column reduction via the Euclidean
//     algorithm, used to decide lattice membership (does an integer
//     solution exist, as opposed to merely a rational one).
//   - FourierMotzkin — classical variable-at-a-time elimination over a
//     system of linear inequalities; Feasible uses it to decide
//     real-relaxation feasibility, and Project to compute the projection of
//     a polyhedron onto a subset of its dimensions (Native's own Project
//     does not call it).
//
// None of these routines know anything about semilinear sets, Petri nets,
// or requests — they operate purely on Matrix/vector arguments, keeping
// matrix.Matrix storage separate from the linear-algebra routines built on
// top of it.
package ops
