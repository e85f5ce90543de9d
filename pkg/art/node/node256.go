package node

import "github.com/flier/artree/pkg/arena"

// Node256 stores a child for every possible key byte directly, with no
// index indirection at all. It never needs to grow; it is only ever
// entered via Node48.Grow and left via Shrink.
type Node256 struct {
	Header

	Children [256]Ref
}

var _ Inner = (*Node256)(nil)

// NewNode256 allocates a fresh, empty Node256 tracked by a.
func NewNode256(a arena.Allocator) *Node256 {
	return arena.New(a, Node256{})
}

func (n *Node256) Type() Type      { return TypeNode256 }
func (n *Node256) Head() *Header { return &n.Header }

// Full always reports false: Node256 is the largest layout.
func (n *Node256) Full() bool { return false }

func (n *Node256) FindChild(b byte) Ref { return n.Children[b] }

// ChildSlot returns a pointer to the stored child for b, or nil.
func (n *Node256) ChildSlot(b byte) *Ref {
	if n.Children[b].Empty() {
		return nil
	}
	return &n.Children[b]
}

func (n *Node256) AddChild(b byte, child Ref) {
	if n.Children[b].Empty() {
		n.NumChildren++
	}
	n.Children[b] = child
}

func (n *Node256) RemoveChild(b byte) {
	if !n.Children[b].Empty() {
		n.Children[b] = Ref{}
		n.NumChildren--
	}
}

// Grow is a no-op: Node256 is already the largest layout.
func (n *Node256) Grow(arena.Allocator) Inner { return n }

// Shrink demotes this node to a Node48 once its child count drops to 37
// or fewer.
func (n *Node256) Shrink(a arena.Allocator) (Ref, bool) {
	if n.NumChildren > 37 {
		return Ref{}, false
	}

	shrunk := NewNode48(a)
	shrunk.Header = n.Header
	slot := 0
	for b := 0; b < 256; b++ {
		if !n.Children[b].Empty() {
			shrunk.Children[slot] = n.Children[b]
			shrunk.Keys[b] = byte(slot + 1)
			slot++
		}
	}
	shrunk.NumChildren = slot
	return InnerRef(shrunk), true
}

func (n *Node256) Each(yield func(b byte, child Ref) bool) bool {
	for b := 0; b < 256; b++ {
		if !n.Children[b].Empty() {
			if !yield(byte(b), n.Children[b]) {
				return false
			}
		}
	}
	return true
}

// Minimum scans the full 256-entry index rather than trusting NumChildren,
// mirroring the reference implementation's observation that NODE48 and
// NODE256 should always scan the whole index rather than stop early.
func (n *Node256) Minimum() *Leaf {
	for b := 0; b < 256; b++ {
		if !n.Children[b].Empty() {
			return n.Children[b].Minimum()
		}
	}
	return nil
}

func (n *Node256) Maximum() *Leaf {
	for b := 255; b >= 0; b-- {
		if !n.Children[b].Empty() {
			return n.Children[b].Maximum()
		}
	}
	return nil
}

func (n *Node256) Free(a arena.Allocator) { arena.Free(a, n) }
