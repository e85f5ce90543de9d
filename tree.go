package artree

import (
	"errors"
	"fmt"

	"github.com/flier/artree/pkg/arena"
	"github.com/flier/artree/pkg/art/node"
	"github.com/flier/artree/pkg/art/tree"
	"github.com/flier/artree/pkg/opt"
	"github.com/flier/artree/pkg/tuple"
	"github.com/flier/artree/pkg/untrust"
)

// MaxKeyLen is the largest key this tree accepts. It is generous enough for
// any realistic key (UUIDs, URLs, file paths) while keeping a pathological
// caller from driving path-compression bookkeeping unbounded.
const MaxKeyLen = 1 << 20 // 1 MiB

// ErrKeyTooLong is returned by [Tree.Insert] and its variants when key
// exceeds [MaxKeyLen].
var ErrKeyTooLong = errors.New("artree: key exceeds MaxKeyLen")

// Tree is an Adaptive Radix Tree mapping variable-length byte-string keys to
// 8-byte opaque [Value]s.
//
// The zero Tree is not ready to use; construct one with [New]. Trees are
// not safe for concurrent use.
type Tree struct {
	arena arena.Arena
	root  node.Ref
	count int
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}

// Count returns the number of keys currently stored.
func (t *Tree) Count() int { return t.count }

// NodeCount returns the number of live inner nodes and leaves backing this
// tree, for introspection/benchmarking.
func (t *Tree) NodeCount() int { return t.arena.NodeCount() }

// ByteSize returns the approximate number of bytes of node storage backing
// this tree.
func (t *Tree) ByteSize() int64 { return t.arena.ByteSize() }

func checkKeyLen(key []byte) error {
	in := untrust.Input(key)
	if in.Len() > MaxKeyLen {
		return fmt.Errorf("%w: got %d bytes", ErrKeyTooLong, in.Len())
	}
	return nil
}

// Insert stores value under key, replacing any existing value. It reports
// whether key was newly inserted.
func (t *Tree) Insert(key []byte, value Value) (old Value, isNew bool, err error) {
	if err = checkKeyLen(key); err != nil {
		return 0, false, err
	}
	old, isNew = tree.Insert(&t.root, &t.arena, key, value, node.IncrementReplace, true)
	if isNew {
		t.count++
	}
	return old, isNew, nil
}

// InsertNoReplace stores value under key only if key is not already
// present. If key already exists, its value is left untouched and the
// existing value is returned.
func (t *Tree) InsertNoReplace(key []byte, value Value) (old Value, isNew bool, err error) {
	if err = checkKeyLen(key); err != nil {
		return 0, false, err
	}
	old, isNew = tree.Insert(&t.root, &t.arena, key, value, node.IncrementReplace, false)
	if isNew {
		t.count++
	}
	return old, isNew, nil
}

// InsertIncrement implements the counting-insert variant: a new key's
// selected counter view (per kind) is initialized to 1; an existing key has
// that view incremented in place. kind must not be [IncrementReplace].
func (t *Tree) InsertIncrement(key []byte, kind IncrementKind) (old Value, isNew bool, err error) {
	if err = checkKeyLen(key); err != nil {
		return 0, false, err
	}
	old, isNew = tree.Insert(&t.root, &t.arena, key, 0, kind, true)
	if isNew {
		t.count++
	}
	return old, isNew, nil
}

// Delete removes key, if present. It reports whether the key was found.
func (t *Tree) Delete(key []byte) (old Value, removed bool) {
	old, removed = tree.Delete(&t.root, &t.arena, key, node.IncrementReplace)
	if removed {
		t.count--
	}
	return old, removed
}

// DeleteDecrement implements the counting-delete variant: key's selected
// counter view (per kind) is decremented in place, and the key is only
// actually removed once that view would reach zero. removed reports
// whether the key was actually removed, as opposed to merely decremented.
func (t *Tree) DeleteDecrement(key []byte, kind IncrementKind) (old Value, removed bool) {
	old, removed = tree.Delete(&t.root, &t.arena, key, kind)
	if removed {
		t.count--
	}
	return old, removed
}

// Search returns the value stored under key and whether it was found.
func (t *Tree) Search(key []byte) (Value, bool) {
	return tree.Search(t.root, key)
}

// TrySearch is [Tree.Search] expressed as an [opt.Option], for callers that
// prefer chaining Option combinators over a (Value, bool) pair.
func (t *Tree) TrySearch(key []byte) opt.Option[Value] {
	if v, ok := tree.Search(t.root, key); ok {
		return opt.Some(v)
	}
	return opt.None[Value]()
}

// Minimum returns the key and value of the lexicographically smallest key
// in the tree. ok is false if the tree is empty.
func (t *Tree) Minimum() (key []byte, value Value, ok bool) {
	leaf := tree.Minimum(t.root)
	if leaf == nil {
		return nil, 0, false
	}
	return leaf.Key, leaf.Value, true
}

// Maximum returns the key and value of the lexicographically largest key
// in the tree. ok is false if the tree is empty.
func (t *Tree) Maximum() (key []byte, value Value, ok bool) {
	leaf := tree.Maximum(t.root)
	if leaf == nil {
		return nil, 0, false
	}
	return leaf.Key, leaf.Value, true
}

// Visit calls visit for every key in the tree, in ascending lexicographic
// order, stopping early if visit returns false. It reports whether the
// traversal ran to completion.
func (t *Tree) Visit(visit func(key []byte, value Value) bool) bool {
	return tree.Walk(t.root, tree.Visitor(visit))
}

// VisitPrefix calls visit for every key starting with prefix, in ascending
// order, stopping early if visit returns false. It reports whether the
// traversal ran to completion.
func (t *Tree) VisitPrefix(prefix []byte, visit func(key []byte, value Value) bool) bool {
	return tree.WalkPrefix(t.root, prefix, tree.Visitor(visit))
}

// Entries materializes a full traversal as a slice of key/value tuples, for
// callers that want a value rather than a callback.
func (t *Tree) Entries() []tuple.Tuple2[[]byte, Value] {
	entries := make([]tuple.Tuple2[[]byte, Value], 0, t.count)
	t.Visit(func(key []byte, value Value) bool {
		entries = append(entries, tuple.New2(key, value))
		return true
	})
	return entries
}

// EntriesPrefix is [Tree.Entries] restricted to keys starting with prefix.
func (t *Tree) EntriesPrefix(prefix []byte) []tuple.Tuple2[[]byte, Value] {
	var entries []tuple.Tuple2[[]byte, Value]
	t.VisitPrefix(prefix, func(key []byte, value Value) bool {
		entries = append(entries, tuple.New2(key, value))
		return true
	})
	return entries
}
