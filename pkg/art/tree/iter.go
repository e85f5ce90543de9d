package tree

import "github.com/flier/artree/pkg/art/node"

// Visitor is called once per key/value pair during a traversal. Returning
// false stops the traversal early.
type Visitor func(key []byte, value node.Value) bool

// Walk performs a full, in-key-order traversal of root, calling visit for
// every leaf. It reports whether the traversal ran to completion (false
// means visit returned false and the walk stopped early).
func Walk(root node.Ref, visit Visitor) bool {
	if root.Empty() {
		return true
	}

	if root.IsLeaf() {
		leaf := root.AsLeaf()
		return visit(leaf.Key, leaf.Value)
	}

	complete := true
	root.AsInner().Each(func(_ byte, child node.Ref) bool {
		complete = Walk(child, visit)
		return complete
	})
	return complete
}

// WalkPrefix traverses every key in root that starts with prefix, in
// key order.
//
// It descends exactly like Search until prefix is fully consumed (or the
// current node's compressed prefix only partially overlaps what remains of
// prefix, in which case there is nothing to do), then switches to a full
// Walk of whatever subtree it lands in. Because path compression is
// optimistic, a descent can land on a subtree whose minimum leaf doesn't
// actually start with prefix (a false positive from trusting a truncated
// PartialLen); that is caught once by checking the subtree's minimum leaf
// before walking it.
func WalkPrefix(root node.Ref, prefix []byte, visit Visitor) bool {
	return walkPrefix(root, prefix, 0, visit)
}

func walkPrefix(ref node.Ref, prefix []byte, depth int, visit Visitor) bool {
	if ref.Empty() {
		return true
	}

	if ref.IsLeaf() {
		leaf := ref.AsLeaf()
		if leaf.MatchesPrefix(prefix) {
			return visit(leaf.Key, leaf.Value)
		}
		return true
	}

	if depth >= len(prefix) {
		// prefix fully consumed by the path so far; the remainder of
		// this subtree all shares it, modulo the optimistic-compression
		// caveat documented above.
		if minLeaf := ref.Minimum(); minLeaf == nil || !minLeaf.MatchesPrefix(prefix) {
			return true
		}
		return Walk(ref, visit)
	}

	inner := ref.AsInner()
	h := inner.Head()

	if h.PartialLen > 0 {
		remaining := prefix[depth:]
		matched := prefixMismatch(inner, prefix, depth)

		switch {
		case matched == len(remaining):
			// The entire remaining prefix lies within this node's
			// compressed path: everything below shares it.
			if minLeaf := ref.Minimum(); minLeaf == nil || !minLeaf.MatchesPrefix(prefix) {
				return true
			}
			return Walk(ref, visit)
		case matched < min(h.PartialLen, node.MaxPrefixLen):
			return true // Diverges before prefix is exhausted: no match here.
		}
		depth += h.PartialLen
	}

	child := inner.FindChild(byteAt(prefix, depth))
	if child.Empty() {
		return true
	}
	return walkPrefix(child, prefix, depth+1, visit)
}
