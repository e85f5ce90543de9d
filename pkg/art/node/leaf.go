package node

import (
	"bytes"

	"github.com/flier/artree/pkg/arena"
)

// Leaf stores one key/value pair. Keys are kept inline rather than as a
// pointer into caller-owned memory, so a Leaf remains valid regardless of
// what the caller does with the byte slice it was constructed from.
type Leaf struct {
	Key   []byte
	Value Value
}

// NewLeaf allocates a Leaf tracked by a, copying key and pairing it with
// value.
func NewLeaf(a arena.Allocator, key []byte, value Value) *Leaf {
	return arena.New(a, Leaf{Key: append([]byte(nil), key...), Value: value})
}

// Matches reports whether this leaf's key is exactly key.
func (l *Leaf) Matches(key []byte) bool {
	return bytes.Equal(l.Key, key)
}

// MatchesPrefix reports whether this leaf's key starts with prefix. It is
// used to reject optimistic-path-compression false positives when a
// prefix-filtered traversal descends past the point where the stored
// partial bytes alone can confirm a match (see [github.com/flier/artree/pkg/art/tree].WalkPrefix).
func (l *Leaf) MatchesPrefix(prefix []byte) bool {
	return bytes.HasPrefix(l.Key, prefix)
}
