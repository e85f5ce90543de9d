package artree

import "iter"

// All returns an iterator over every key/value pair in the tree, in
// ascending lexicographic key order.
func (t *Tree) All() iter.Seq2[[]byte, Value] {
	return func(yield func([]byte, Value) bool) {
		t.Visit(func(key []byte, value Value) bool {
			return yield(key, value)
		})
	}
}

// AllPrefix returns an iterator over every key/value pair whose key starts
// with prefix, in ascending lexicographic key order.
func (t *Tree) AllPrefix(prefix []byte) iter.Seq2[[]byte, Value] {
	return func(yield func([]byte, Value) bool) {
		t.VisitPrefix(prefix, func(key []byte, value Value) bool {
			return yield(key, value)
		})
	}
}
