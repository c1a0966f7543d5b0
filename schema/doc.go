// Package schema defines the ordered variable dimensions every linear set,
// constraint, and relation in this module is indexed against.
//
// A Schema is a finite ordered list of named integer dimensions, partitioned
// into globals (shared across concurrently-running requests) and locals
// (private to one request instance). Every vector produced anywhere in the
// pipeline — a base vector, a period, a marking projection — carries its
// Schema, and operations that combine vectors from different schemas must
// first Harmonize them onto a common, dimension-aligned superschema.
//
// types.go declares Kind, Dim, Schema, and the constructors; errors.go the
// sentinel errors. See harmonize.go for cross-schema alignment and
// doubled.go for the pre/post doubling used by relations.
package schema
