// Package types defines the core data model shared across mediastore:
// content identifiers, assets, the canonical asset set, placement modes,
// and the filesystem interface used by discovery and hashing.
package types
