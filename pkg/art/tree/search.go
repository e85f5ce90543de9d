package tree

import "github.com/flier/artree/pkg/art/node"

// Search walks root looking for key, returning its value and true if
// found. Path-compressed prefixes are trusted optimistically — checkPrefix
// only verifies the physically stored portion of a prefix, the logical
// depth still advances by the full (possibly truncated) PartialLen — so a
// false-positive descent is always caught by the exact key comparison at
// the leaf reached at the end of the walk.
func Search(root node.Ref, key []byte) (node.Value, bool) {
	ref := root
	depth := 0

	for {
		if ref.Empty() {
			return 0, false
		}

		if ref.IsLeaf() {
			leaf := ref.AsLeaf()
			if leaf.Matches(key) {
				return leaf.Value, true
			}
			return 0, false
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

		child := inner.FindChild(byteAt(key, depth))
		if child.Empty() {
			return 0, false
		}

		ref = child
		depth++
	}
}

// Minimum returns the leftmost leaf under root, or nil if root is empty.
func Minimum(root node.Ref) *node.Leaf { return root.Minimum() }

// Maximum returns the rightmost leaf under root, or nil if root is empty.
func Maximum(root node.Ref) *node.Leaf { return root.Maximum() }
