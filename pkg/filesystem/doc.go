// Package filesystem provides implementations of types.FS: the real OS
// filesystem for production and an afero-backed one so discovery and
// hashing can be tested against an in-memory tree.
package filesystem
