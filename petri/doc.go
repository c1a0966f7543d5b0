// Package petri translates a set of requests' global-effect summary
// relations into a Petri net whose reachability question is equivalent to
// "does some firing sequence of request instances, chosen with
// multiplicity, reach a given target vector on the global-variable value
// places".
//
// Net construction is purely structural: one value place per global
// dimension, one control place per (request, linear-component) pair, one
// one-shot transition per component's base vector (consuming a control
// token), and one self-looping transition per period vector (requiring,
// not consuming net, a control token — see translate.go for why a source
// place with multiplicity equal to the allowed instance count and a
// 1-safe control place are the same mechanism under different
// InstanceBound configurations rather than a contradiction).
//
// Incidence returns the net's incidence matrix (rows=places, cols=
// transitions) via package matrix, the standard row/column convention for
// vertex/edge incidence.
package petri
