package node

import "github.com/flier/artree/pkg/arena"

// Node48 stores up to 48 children. Keys is a sparse, direct 256-entry index
// from key byte to a 1-based slot in Children; 0 means "absent", so a
// lookup is one array read plus one branch, at the cost of 256 bytes of
// mostly-empty index versus Node16's dense-but-linear scan.
type Node48 struct {
	Header

	Keys     [256]byte
	Children [48]Ref
}

var _ Inner = (*Node48)(nil)

// NewNode48 allocates a fresh, empty Node48 tracked by a.
func NewNode48(a arena.Allocator) *Node48 {
	return arena.New(a, Node48{})
}

func (n *Node48) Type() Type { return TypeNode48 }
func (n *Node48) Head() *Header { return &n.Header }
func (n *Node48) Full() bool  { return n.NumChildren >= len(n.Children) }

func (n *Node48) FindChild(b byte) Ref {
	if i := n.Keys[b]; i != 0 {
		return n.Children[i-1]
	}
	return Ref{}
}

// ChildSlot returns a pointer to the stored child for b, or nil.
func (n *Node48) ChildSlot(b byte) *Ref {
	if i := n.Keys[b]; i != 0 {
		return &n.Children[i-1]
	}
	return nil
}

func (n *Node48) AddChild(b byte, child Ref) {
	if n.Full() {
		panic("node: Node48.AddChild called on a full node")
	}

	slot := n.firstFreeSlot()
	n.Children[slot] = child
	n.Keys[b] = byte(slot + 1)
	n.NumChildren++
}

func (n *Node48) firstFreeSlot() int {
	for i, c := range n.Children {
		if c.Empty() {
			return i
		}
	}
	panic("node: Node48 has no free slot despite not being Full")
}

func (n *Node48) RemoveChild(b byte) {
	i := n.Keys[b]
	if i == 0 {
		return
	}

	n.Children[i-1] = Ref{}
	n.Keys[b] = 0
	n.NumChildren--
}

// Grow promotes this node to a Node256, scattering each occupied slot to
// its direct byte-indexed position.
func (n *Node48) Grow(a arena.Allocator) Inner {
	grown := NewNode256(a)
	grown.Header = n.Header
	for b := 0; b < 256; b++ {
		if i := n.Keys[b]; i != 0 {
			grown.Children[b] = n.Children[i-1]
		}
	}
	return grown
}

// Shrink demotes this node to a Node16 once its child count drops to 12
// or fewer.
func (n *Node48) Shrink(a arena.Allocator) (Ref, bool) {
	if n.NumChildren > 12 {
		return Ref{}, false
	}

	shrunk := NewNode16(a)
	shrunk.Header = n.Header
	idx := 0
	for b := 0; b < 256; b++ {
		if i := n.Keys[b]; i != 0 {
			shrunk.Keys[idx] = byte(b)
			shrunk.Children[idx] = n.Children[i-1]
			idx++
		}
	}
	shrunk.NumChildren = idx
	return InnerRef(shrunk), true
}

func (n *Node48) Each(yield func(b byte, child Ref) bool) bool {
	for b := 0; b < 256; b++ {
		if i := n.Keys[b]; i != 0 {
			if !yield(byte(b), n.Children[i-1]) {
				return false
			}
		}
	}
	return true
}

// Minimum scans the full 256-entry index rather than trusting NumChildren,
// mirroring the reference implementation's observation that NODE48 and
// NODE256 should always scan the whole index rather than stop early.
func (n *Node48) Minimum() *Leaf {
	for b := 0; b < 256; b++ {
		if i := n.Keys[b]; i != 0 {
			return n.Children[i-1].Minimum()
		}
	}
	return nil
}

func (n *Node48) Maximum() *Leaf {
	for b := 255; b >= 0; b-- {
		if i := n.Keys[b]; i != 0 {
			return n.Children[i-1].Maximum()
		}
	}
	return nil
}

func (n *Node48) Free(a arena.Allocator) { arena.Free(a, n) }
