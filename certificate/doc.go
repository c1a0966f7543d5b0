// Package certificate parses and checks the oracle's proof obligations. A
// NOT REACHABLE answer comes with an inductive invariant in a textual
// generator-form syntax (see parse.go); Check validates the three
// obligations an invariant must satisfy: it holds at the initial marking,
// is closed under every transition, and excludes the target set. Any
// failure is reported as ErrInvalidProof naming the failing obligation — a
// failure here means the oracle or the adapter lied, so it is always fatal
// to the run, never recovered.
//
// A REACHABLE answer instead comes with a firing sequence; CheckWitness
// replays it against the net and confirms the final marking lies in the
// target set.
package certificate
