// Package storage defines the persistence interfaces for exported trait
// catalogs.
//
// An exported catalog is a read-only copy of a fully loaded coordinator:
// traits, source classes and the presentation order. Tools and wikis read it;
// the game itself never does. Implementations live in subpackages.
//
// # Error Types
//
//   - ErrNotFound: no catalog has been exported yet.
package storage
