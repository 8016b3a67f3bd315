// Package trait registers data-driven traits and classifies them by the
// source classes that can yield them.
//
// A Coordinator owns the three tables built during startup: the Registry of
// admitted descriptors, the SourceIndex mapping source classes to traits and
// colors, and the Sequencer that orders host artifacts for display. All
// registration happens once, on one goroutine, before lookups begin; none of
// the types in this package lock.
//
// # Error Types
//
//   - ErrInvalidDescriptor: the descriptor failed validation and was skipped.
//   - ErrDuplicateKey: the trait id is already registered. Fatal.
//   - ErrUnknownBucket: an append targeted a bucket outside the fixed five. Fatal.
//   - ErrNotFound: a lookup found no trait or class.
//   - ErrNotAllowed: the trait exists but may not currently be granted.
package trait
