// Package coordinator wires the symbolic reduction pipeline end to end:
// per-request lowering and Kleene/optimization evaluation, projection down
// to the shared global schema, Petri-net translation, the serial-execution
// NFA's reachable set, the handoff to the external reachability checker
// (internal/smpt), and certificate validation of whatever invariant comes
// back. It is the one place the whole data-flow is actually assembled;
// cmd/serialcheck is a thin CLI shell around Decide.
package coordinator
