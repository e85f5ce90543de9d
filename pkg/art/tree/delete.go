package tree

import (
	"github.com/flier/artree/internal/debug"
	"github.com/flier/artree/pkg/arena"
	"github.com/flier/artree/pkg/art/node"
)

// Delete removes key from root, if present.
//
// kind mirrors the reference implementation's shared recursive_delete:
//   - [node.IncrementReplace]: unconditional removal (the plain Delete).
//   - Any other kind: the matching leaf's selected counter view is
//     decremented; the leaf is only actually removed once that view would
//     reach zero. removed reports whether the leaf was actually removed,
//     as opposed to merely decremented in place.
//
// It returns the value the leaf held immediately before this call.
func Delete(root *node.Ref, a arena.Allocator, key []byte, kind node.IncrementKind) (old node.Value, removed bool) {
	return recursiveDelete(root, a, key, 0, kind)
}

func recursiveDelete(ref *node.Ref, a arena.Allocator, key []byte, depth int, kind node.IncrementKind) (old node.Value, removed bool) {
	if ref.Empty() {
		return 0, false
	}

	if ref.IsLeaf() {
		// Only reachable when ref is the tree's root and the whole tree
		// is a single leaf.
		leaf := ref.AsLeaf()
		if !leaf.Matches(key) {
			return 0, false
		}

		old = leaf.Value
		if kind == node.IncrementReplace {
			*ref = node.Ref{}
			arena.Free(a, leaf)
			return old, true
		}

		newVal, remove := applyDecrement(leaf.Value, kind)
		if !remove {
			leaf.Value = newVal
			return old, false
		}
		*ref = node.Ref{}
		arena.Free(a, leaf)
		return old, true
	}

	inner := ref.AsInner()
	h := inner.Head()

	if h.PartialLen > 0 {
		matched := checkPrefix(h, key, depth)
		if matched != min(h.PartialLen, node.MaxPrefixLen) {
			return 0, false
		}
		depth += h.PartialLen
	}

	b := byteAt(key, depth)
	child := inner.FindChild(b)
	if child.Empty() {
		return 0, false
	}

	if child.IsLeaf() {
		leaf := child.AsLeaf()
		if !leaf.Matches(key) {
			return 0, false
		}
		old = leaf.Value

		if kind != node.IncrementReplace {
			newVal, remove := applyDecrement(leaf.Value, kind)
			if !remove {
				leaf.Value = newVal
				return old, false
			}
		}

		inner.RemoveChild(b)
		arena.Free(a, leaf)
		if replacement, shrink := inner.Shrink(a); shrink {
			debug.Assert(!replacement.Empty(), "node: %s shrink produced an empty replacement", inner.Type())
			*ref = replacement
			inner.Free(a)
		}
		return old, true
	}

	slot := inner.ChildSlot(b)
	return recursiveDelete(slot, a, key, depth+1, kind)
}

// applyDecrement returns the Value old would have after one decrement of
// the view selected by kind, and whether that view has now reached zero
// (in which case the caller must remove the whole leaf rather than store
// the returned Value).
func applyDecrement(old node.Value, kind node.IncrementKind) (node.Value, bool) {
	switch kind {
	case node.IncrementWhole:
		if old.Uint() <= 1 {
			return 0, true
		}
		return node.UintValue(old.Uint() - 1), false
	case node.IncrementHalfA:
		a, b := old.Pair()
		if a <= 1 {
			return 0, true
		}
		return node.PairValue(a-1, b), false
	case node.IncrementHalfB:
		a, b := old.Pair()
		if b <= 1 {
			return 0, true
		}
		return node.PairValue(a, b-1), false
	default:
		return 0, true
	}
}
