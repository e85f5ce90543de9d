// Package artree implements an in-memory Adaptive Radix Tree keyed by
// variable-length byte strings, storing one 8-byte opaque value per key.
//
// A [Tree] wraps the recursive search/insert/delete/traversal algorithms in
// github.com/flier/artree/pkg/art/tree and the tagged node layouts in
// github.com/flier/artree/pkg/art/node behind a single allocator-owning
// type, mirroring how the node and tree subpackages split "the shape of the
// data" from "the operations on it".
//
// A zero Tree is not ready to use; construct one with [New]. Trees are not
// safe for concurrent use — a caller that needs concurrent access wraps a
// *Tree in its own sync.RWMutex.
package artree
