// Package oracle implements semilinear.Oracle: the external integer-set
// decision procedure the algebra package delegates feasibility,
// intersection, and projection to.
//
// Two implementations are provided:
//
//   - Native — a pure-Go, dependency-free engine good for the schema sizes
//     and period counts exercised by this repo's bundled examples. Project
//     and Emptiness are exact and mechanical in this module's generator-form
//     representation (projecting a generator set onto fewer dimensions only
//     ever restricts its vectors; a generator-form set always contains its
//     own base point, so it is never empty). Intersect and Subset are the
//     genuinely hard operations — deciding them exactly in general requires
//     full integer-programming machinery — so Native answers them by
//     bounded generator enumeration (see native.go) and returns
//     ErrBoundExceeded, wrapped as an OracleError, once a query's candidate
//     space exceeds its configured Bound. Subset's common singleton-point
//     case is strengthened first by matrix/ops's exact linear-algebra
//     primitives (native_exact.go): row echelon, Fourier-Motzkin, and
//     Hermite normal form each supply a necessary condition for membership,
//     so a point can often be proven excluded from a LinearSet — and Subset
//     answered exactly — without enumerating it at all.
//   - Subprocess — shells out to an external integer-set binary located via
//     ISL_PREFIX, for exact answers beyond Native's bound.
//
// The coordinator picks one of the two from its configured backend before a
// run starts and uses it for the whole run. It does not switch backends or
// retry: an ErrBoundExceeded from Native ends the run with result error.
package oracle
