// Package smpt wraps the external reachability-checker subprocess: an
// SMPT-shaped model checker consuming a .net file and an XML query,
// answering REACHABLE/NOT_REACHABLE/TIMEOUT, and on NOT_REACHABLE emitting
// an inductive invariant in the certificate package's textual form.
// Invoking that checker is explicitly out of scope for this module beyond
// a thin wrapper, so this package stays deliberately thin: it resolves a
// configured binary, shells out once per query exactly the way
// oracle.Subprocess does for the integer-set library, and returns any
// NOT_REACHABLE invariant text to its caller. This package does not check
// that invariant itself; internal/coordinator validates it with
// certificate.CheckSerial before trusting the verdict.
package smpt
