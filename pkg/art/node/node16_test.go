package node

import (
	"testing"

	"github.com/flier/artree/pkg/arena"
)

func fillNode16(t *testing.T, a arena.Allocator, n int) *Node16 {
	t.Helper()
	node := NewNode16(a)
	for i := 0; i < n; i++ {
		b := byte(i * 2)
		node.AddChild(b, LeafRef(NewLeaf(a, []byte{b}, UintValue(uint64(i)))))
	}
	return node
}

func TestNode16FindChild(t *testing.T) {
	var a arena.Arena
	n := fillNode16(t, &a, 10)

	if r := n.FindChild(8); r.Empty() || r.AsLeaf().Value.Uint() != 4 {
		t.Fatal("FindChild(8) did not return the expected leaf")
	}
	if r := n.FindChild(9); !r.Empty() {
		t.Fatal("FindChild(9) should be empty")
	}
}

func TestNode16GrowToNode48(t *testing.T) {
	var a arena.Arena
	n := fillNode16(t, &a, 16)

	if !n.Full() {
		t.Fatal("Node16 with 16 children should be Full")
	}

	grown := n.Grow(&a).(*Node48)
	if grown.NumChildren != 16 {
		t.Fatalf("grown.NumChildren = %d, want 16", grown.NumChildren)
	}
	if r := grown.FindChild(10); r.Empty() {
		t.Fatal("grown Node48 missing child at key 10")
	}
}

func TestNode16ShrinkAtThreshold(t *testing.T) {
	var a arena.Arena
	n := fillNode16(t, &a, 3)

	replacement, ok := n.Shrink(&a)
	if !ok {
		t.Fatal("Shrink should demote a Node16 with 3 children")
	}
	shrunk := replacement.AsInner().(*Node4)
	if shrunk.NumChildren != 3 {
		t.Fatalf("shrunk.NumChildren = %d, want 3", shrunk.NumChildren)
	}
}

func TestNode16ShrinkAboveThreshold(t *testing.T) {
	var a arena.Arena
	n := fillNode16(t, &a, 4)

	if _, ok := n.Shrink(&a); ok {
		t.Fatal("Shrink should not demote a Node16 with 4 children")
	}
}
