package node

import (
	"github.com/flier/artree/pkg/arena"
	"github.com/flier/artree/pkg/art/simd"
)

// Node16 stores up to 16 children as parallel arrays, kept sorted by key
// byte. Lookups use [simd.FindKeyIndex] and insertions use
// [simd.FindInsertPosition], so this node benefits from whatever
// vectorized scan simd offers on the running architecture.
type Node16 struct {
	Header

	Keys     [16]byte
	Children [16]Ref
}

var _ Inner = (*Node16)(nil)

// NewNode16 allocates a fresh, empty Node16 tracked by a.
func NewNode16(a arena.Allocator) *Node16 {
	return arena.New(a, Node16{})
}

func (n *Node16) Type() Type { return TypeNode16 }
func (n *Node16) Head() *Header { return &n.Header }
func (n *Node16) Full() bool  { return n.NumChildren >= len(n.Keys) }

func (n *Node16) FindChild(b byte) Ref {
	if i, ok := simd.FindKeyIndex(n.Keys[:n.NumChildren], b); ok {
		return n.Children[i]
	}
	return Ref{}
}

// ChildSlot returns a pointer to the stored child for b, or nil.
func (n *Node16) ChildSlot(b byte) *Ref {
	if i, ok := simd.FindKeyIndex(n.Keys[:n.NumChildren], b); ok {
		return &n.Children[i]
	}
	return nil
}

func (n *Node16) AddChild(b byte, child Ref) {
	if n.Full() {
		panic("node: Node16.AddChild called on a full node")
	}

	i := simd.FindInsertPosition(n.Keys[:n.NumChildren], b)

	copy(n.Keys[i+1:n.NumChildren+1], n.Keys[i:n.NumChildren])
	copy(n.Children[i+1:n.NumChildren+1], n.Children[i:n.NumChildren])

	n.Keys[i] = b
	n.Children[i] = child
	n.NumChildren++
}

func (n *Node16) RemoveChild(b byte) {
	i, ok := simd.FindKeyIndex(n.Keys[:n.NumChildren], b)
	if !ok {
		return
	}

	copy(n.Keys[i:], n.Keys[i+1:n.NumChildren])
	copy(n.Children[i:], n.Children[i+1:n.NumChildren])
	n.Children[n.NumChildren-1] = Ref{}
	n.NumChildren--
}

// Grow promotes this node to a Node48, re-keying each child by its byte
// value into the sparse 256-entry index.
func (n *Node16) Grow(a arena.Allocator) Inner {
	grown := NewNode48(a)
	grown.Header = n.Header
	for i := 0; i < n.NumChildren; i++ {
		grown.Children[i] = n.Children[i]
		grown.Keys[n.Keys[i]] = byte(i + 1) // 1-based; 0 means "absent".
	}
	return grown
}

// Shrink demotes this node to a Node4 once its child count drops to 3 or
// fewer, the hysteresis threshold that keeps a node from oscillating
// between Node4 and Node16 on alternating inserts/deletes right at the
// boundary.
func (n *Node16) Shrink(a arena.Allocator) (Ref, bool) {
	if n.NumChildren > 3 {
		return Ref{}, false
	}

	shrunk := NewNode4(a)
	shrunk.Header = n.Header
	copy(shrunk.Keys[:], n.Keys[:n.NumChildren])
	copy(shrunk.Children[:], n.Children[:n.NumChildren])
	shrunk.NumChildren = n.NumChildren
	return InnerRef(shrunk), true
}

func (n *Node16) Each(yield func(b byte, child Ref) bool) bool {
	for i := 0; i < n.NumChildren; i++ {
		if !yield(n.Keys[i], n.Children[i]) {
			return false
		}
	}
	return true
}

func (n *Node16) Minimum() *Leaf {
	if n.NumChildren == 0 {
		return nil
	}
	return n.Children[0].Minimum()
}

func (n *Node16) Maximum() *Leaf {
	if n.NumChildren == 0 {
		return nil
	}
	return n.Children[n.NumChildren-1].Maximum()
}

func (n *Node16) Free(a arena.Allocator) { arena.Free(a, n) }
