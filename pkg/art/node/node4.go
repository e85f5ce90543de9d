package node

import "github.com/flier/artree/pkg/arena"

// Node4 stores up to 4 children as parallel arrays of key bytes and
// references, scanned linearly. It is the smallest and most common node
// shape in a typical tree, since most inner nodes in a radix tree have very
// few children.
type Node4 struct {
	Header

	Keys     [4]byte
	Children [4]Ref
}

var _ Inner = (*Node4)(nil)

// NewNode4 allocates a fresh, empty Node4 tracked by a.
func NewNode4(a arena.Allocator) *Node4 {
	return arena.New(a, Node4{})
}

func (n *Node4) Type() Type { return TypeNode4 }
func (n *Node4) Head() *Header { return &n.Header }
func (n *Node4) Full() bool  { return n.NumChildren >= len(n.Keys) }

// FindChild scans the (small, unsorted-by-insertion-but-kept-sorted) key
// array for b.
func (n *Node4) FindChild(b byte) Ref {
	for i := 0; i < n.NumChildren; i++ {
		if n.Keys[i] == b {
			return n.Children[i]
		}
	}
	return Ref{}
}

// ChildSlot returns a pointer to the stored child for b, or nil.
func (n *Node4) ChildSlot(b byte) *Ref {
	for i := 0; i < n.NumChildren; i++ {
		if n.Keys[i] == b {
			return &n.Children[i]
		}
	}
	return nil
}

// AddChild inserts (b, child) keeping Keys sorted, so that Minimum/Maximum
// and ordered traversal can rely on index order. It panics if the node is
// Full; callers must Grow first.
func (n *Node4) AddChild(b byte, child Ref) {
	if n.Full() {
		panic("node: Node4.AddChild called on a full node")
	}

	i := 0
	for i < n.NumChildren && n.Keys[i] < b {
		i++
	}

	copy(n.Keys[i+1:n.NumChildren+1], n.Keys[i:n.NumChildren])
	copy(n.Children[i+1:n.NumChildren+1], n.Children[i:n.NumChildren])

	n.Keys[i] = b
	n.Children[i] = child
	n.NumChildren++
}

// RemoveChild deletes the child stored under key byte b, if any.
func (n *Node4) RemoveChild(b byte) {
	for i := 0; i < n.NumChildren; i++ {
		if n.Keys[i] != b {
			continue
		}

		copy(n.Keys[i:], n.Keys[i+1:n.NumChildren])
		copy(n.Children[i:], n.Children[i+1:n.NumChildren])
		n.Children[n.NumChildren-1] = Ref{}
		n.NumChildren--
		return
	}
}

// Grow promotes this node to a Node16 with the same children.
func (n *Node4) Grow(a arena.Allocator) Inner {
	grown := NewNode16(a)
	grown.Header = n.Header
	copy(grown.Keys[:], n.Keys[:n.NumChildren])
	copy(grown.Children[:], n.Children[:n.NumChildren])
	return grown
}

// Shrink implements the ART single-child collapse: when a Node4 is reduced
// to exactly one child by a delete, it is replaced by that child directly,
// with the child's own path-compression prefix extended to absorb this
// node's prefix and the single remaining key byte. This is the same
// transformation the reference implementation's remove_child4 performs.
//
// Shrink returns (Ref{}, false) when no collapse is warranted.
func (n *Node4) Shrink(arena.Allocator) (Ref, bool) {
	if n.NumChildren != 1 {
		return Ref{}, false
	}

	child := n.Children[0]
	if inner, ok := child.inner, child.IsInner(); ok {
		h := inner.Head()
		merged := append(append([]byte{}, n.Prefix()...), n.Keys[0])
		merged = append(merged, h.Prefix()...)
		h.PartialLen = n.PartialLen + 1 + h.PartialLen
		if len(merged) > MaxPrefixLen {
			merged = merged[:MaxPrefixLen]
		}
		copy(h.Partial[:], merged)
	}

	return child, true
}

func (n *Node4) Each(yield func(b byte, child Ref) bool) bool {
	for i := 0; i < n.NumChildren; i++ {
		if !yield(n.Keys[i], n.Children[i]) {
			return false
		}
	}
	return true
}

func (n *Node4) Minimum() *Leaf {
	if n.NumChildren == 0 {
		return nil
	}
	return n.Children[0].Minimum()
}

func (n *Node4) Maximum() *Leaf {
	if n.NumChildren == 0 {
		return nil
	}
	return n.Children[n.NumChildren-1].Maximum()
}

func (n *Node4) Free(a arena.Allocator) { arena.Free(a, n) }
