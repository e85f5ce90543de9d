// Package node implements the four adaptive inner-node layouts of an
// Adaptive Radix Tree — Node4, Node16, Node48 and Node256 — plus the leaf
// type and the tagged reference that lets a parent hold either kind of
// child without an interface dispatch on the hot search path.
package node

import "github.com/flier/artree/pkg/arena"

// Type identifies the concrete shape of an inner node.
type Type uint8

const (
	TypeNode4 Type = iota
	TypeNode16
	TypeNode48
	TypeNode256
)

func (t Type) String() string {
	switch t {
	case TypeNode4:
		return "Node4"
	case TypeNode16:
		return "Node16"
	case TypeNode48:
		return "Node48"
	case TypeNode256:
		return "Node256"
	default:
		return "Type(?)"
	}
}

// MaxPrefixLen is the number of prefix bytes stored inline in a node's
// header. Longer common prefixes are compressed optimistically: only the
// first MaxPrefixLen bytes are kept, and the remainder is reconstructed by
// walking down to the subtree's minimum leaf when a full comparison is
// needed (see prefixMismatch in [github.com/flier/artree/pkg/art/tree]).
const MaxPrefixLen = 14

// Header is the state common to every inner node: its compressed path
// segment and its child count. It is embedded, not wrapped, by Node4,
// Node16, Node48 and Node256, mirroring the layout of the C union that
// inspired this package.
type Header struct {
	Partial     [MaxPrefixLen]byte
	PartialLen  int
	NumChildren int
}

// Prefix returns the (possibly truncated) stored prefix bytes.
func (h *Header) Prefix() []byte {
	n := h.PartialLen
	if n > MaxPrefixLen {
		n = MaxPrefixLen
	}
	return h.Partial[:n]
}

// SetPrefix stores p as this node's compressed path segment. p may be
// longer than MaxPrefixLen: PartialLen records the true logical length,
// while only the first MaxPrefixLen bytes are physically retained.
func (h *Header) SetPrefix(p []byte) {
	h.PartialLen = len(p)
	n := copy(h.Partial[:], p)
	_ = n
}

// Inner is implemented by Node4, Node16, Node48 and Node256. It is the
// interface a tree walk uses once a [Ref] has been confirmed not to be a
// leaf.
type Inner interface {
	// Type reports which concrete layout this node uses.
	Type() Type

	// Head returns the node's embedded path-compression and
	// child-count state.
	Head() *Header

	// Full reports whether this node has no room for another child at
	// its current layout and must grow before AddChild can proceed.
	Full() bool

	// FindChild returns the child stored under key byte b, or an empty
	// Ref if there is none.
	FindChild(b byte) Ref

	// ChildSlot returns a pointer to the stored Ref for key byte b, or
	// nil if there is none. Unlike FindChild, this lets a caller mutate
	// the child in place (e.g. to replace a leaf with a split-off inner
	// node, or to let a grandchild grow in place) without a second
	// lookup.
	ChildSlot(b byte) *Ref

	// Minimum returns the leftmost leaf in this node's subtree.
	Minimum() *Leaf

	// Maximum returns the rightmost leaf in this node's subtree.
	Maximum() *Leaf

	// AddChild inserts (b, child). It panics if Full reports true;
	// callers must Grow first and add to the grown node instead.
	AddChild(b byte, child Ref)

	// RemoveChild deletes the child stored under key byte b, if any.
	RemoveChild(b byte)

	// Grow returns a new node of the next larger layout, pre-populated
	// with this node's children and header. It does not mutate n and
	// does not add any new child.
	Grow(a arena.Allocator) Inner

	// Shrink reports whether this node should collapse to a smaller
	// layout (or, for Node4, directly into its one remaining child)
	// given its current child count, returning the replacement Ref and
	// true if so.
	Shrink(a arena.Allocator) (Ref, bool)

	// Each calls yield for every child in ascending key-byte order,
	// stopping early if yield returns false. It reports whether it ran
	// to completion.
	Each(yield func(b byte, child Ref) bool) bool

	// Free releases this node back to a, for recycling by a later New of
	// the same concrete type. Callers must not use n again afterward.
	Free(a arena.Allocator)
}
