package tree

import (
	"github.com/flier/artree/internal/debug"
	"github.com/flier/artree/pkg/arena"
	"github.com/flier/artree/pkg/art/node"
)

// Insert walks root (a pointer so the root itself can be replaced when the
// tree is empty or splits at its very first node), inserting key/value.
//
// kind selects which semantics the leaf gets, mirroring the reference
// implementation's single recursive_insert shared by plain insert and the
// counting insert_increment variant:
//   - [node.IncrementReplace]: a plain insert. value is stored verbatim. If
//     key already exists, its value is replaced only when replaceExisting
//     is true (this is the Insert/InsertNoReplace distinction); value is
//     ignored for any other kind.
//   - Any other kind: value is ignored. A brand new key gets its selected
//     counter view initialized to 1; an existing key has that view
//     incremented in place.
//
// It returns the value that was at key before this call (zero if the key
// was new) and whether the key was newly inserted (as opposed to already
// present).
func Insert(
	root *node.Ref,
	a arena.Allocator,
	key []byte,
	value node.Value,
	kind node.IncrementKind,
	replaceExisting bool,
) (old node.Value, isNew bool) {
	return insert(root, a, key, value, 0, kind, replaceExisting)
}

func leafValue(value node.Value, kind node.IncrementKind) node.Value {
	if kind == node.IncrementReplace {
		return value
	}
	return initialIncrement(kind)
}

func insert(
	ref *node.Ref,
	a arena.Allocator,
	key []byte,
	value node.Value,
	depth int,
	kind node.IncrementKind,
	replaceExisting bool,
) (old node.Value, isNew bool) {
	if ref.Empty() {
		*ref = node.LeafRef(node.NewLeaf(a, key, leafValue(value, kind)))
		return 0, true
	}

	if ref.IsLeaf() {
		leaf := ref.AsLeaf()

		if leaf.Matches(key) {
			old = leaf.Value
			if kind == node.IncrementReplace {
				if replaceExisting {
					leaf.Value = value
				}
			} else {
				leaf.Value = applyIncrement(leaf.Value, kind)
			}
			return old, false
		}

		newLeaf := node.NewLeaf(a, key, leafValue(value, kind))
		*ref = node.InnerRef(splitLeaf(a, leaf, newLeaf, depth))
		return 0, true
	}

	inner := ref.AsInner()
	h := inner.Head()

	if h.PartialLen > 0 {
		mismatch := prefixMismatch(inner, key, depth)
		if mismatch != h.PartialLen {
			splitPrefix(inner, a, ref, key, value, depth, mismatch, kind)
			return 0, true
		}
		depth += h.PartialLen
	}

	b := byteAt(key, depth)
	slot := inner.ChildSlot(b)
	if slot == nil {
		newLeaf := node.LeafRef(node.NewLeaf(a, key, leafValue(value, kind)))
		addChild(ref, a, b, newLeaf)
		return 0, true
	}

	return insert(slot, a, key, value, depth+1, kind, replaceExisting)
}

// splitPrefix handles the case where key diverges from n's compressed
// prefix partway through: n is split into a new Node4 holding the shared
// prefix, with n (shortened) and a fresh leaf for key as its two children.
func splitPrefix(
	inner node.Inner,
	a arena.Allocator,
	ref *node.Ref,
	key []byte,
	value node.Value,
	depth, mismatch int,
	kind node.IncrementKind,
) {
	h := inner.Head()
	minKey := inner.Minimum().Key

	newInner := node.NewNode4(a)
	newH := newInner.Head()
	newH.SetPrefix(prefixBytesFrom(minKey, depth, mismatch))
	newH.PartialLen = mismatch

	oldByte := byteAt(minKey, depth+mismatch)

	remainingLen := h.PartialLen - mismatch - 1
	h.SetPrefix(prefixBytesFrom(minKey, depth+mismatch+1, remainingLen))
	h.PartialLen = remainingLen

	newInner.AddChild(oldByte, *ref)

	newLeaf := node.NewLeaf(a, key, leafValue(value, kind))
	newByte := byteAt(key, depth+mismatch)
	newInner.AddChild(newByte, node.LeafRef(newLeaf))

	*ref = node.InnerRef(newInner)
}

// splitLeaf builds the Node4 that replaces a single leaf once a second,
// differing key reaches it: their shared prefix becomes the new node's
// compressed prefix, and each leaf hangs off the byte at which they first
// differ.
func splitLeaf(a arena.Allocator, oldLeaf, newLeaf *node.Leaf, depth int) *node.Node4 {
	prefixLen := longestCommonPrefix(oldLeaf.Key, newLeaf.Key, depth)

	newInner := node.NewNode4(a)
	h := newInner.Head()
	h.SetPrefix(prefixBytesFrom(oldLeaf.Key, depth, prefixLen))
	h.PartialLen = prefixLen

	oldByte := byteAt(oldLeaf.Key, depth+prefixLen)
	newByte := byteAt(newLeaf.Key, depth+prefixLen)

	newInner.AddChild(oldByte, node.LeafRef(oldLeaf))
	newInner.AddChild(newByte, node.LeafRef(newLeaf))

	return newInner
}

// addChild adds (b, child) to the inner node held by ref, growing it first
// (and replacing ref with the grown node) if it has no room. The node it
// outgrew is freed back to a.
func addChild(ref *node.Ref, a arena.Allocator, b byte, child node.Ref) {
	inner := ref.AsInner()
	if inner.Full() {
		old := inner
		inner = old.Grow(a)
		debug.Assert(!inner.Full(), "node: %s grown from a full %s is still full", inner.Type(), old.Type())
		*ref = node.InnerRef(inner)
		if old != inner {
			old.Free(a)
		}
	}
	inner.AddChild(b, child)
}

// applyIncrement returns old with the view selected by kind incremented by
// one.
func applyIncrement(old node.Value, kind node.IncrementKind) node.Value {
	switch kind {
	case node.IncrementWhole:
		return node.UintValue(old.Uint() + 1)
	case node.IncrementHalfA:
		a, b := old.Pair()
		return node.PairValue(a+1, b)
	case node.IncrementHalfB:
		a, b := old.Pair()
		return node.PairValue(a, b+1)
	default:
		return old
	}
}

// initialIncrement returns the Value a brand new key gets under kind: the
// selected counter view starts at 1, every other bit is zero.
func initialIncrement(kind node.IncrementKind) node.Value {
	switch kind {
	case node.IncrementWhole:
		return node.UintValue(1)
	case node.IncrementHalfA:
		return node.PairValue(1, 0)
	case node.IncrementHalfB:
		return node.PairValue(0, 1)
	default:
		return 0
	}
}
