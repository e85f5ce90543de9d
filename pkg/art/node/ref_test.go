package node

import (
	"testing"

	"github.com/flier/artree/pkg/arena"
)

func TestRefEmpty(t *testing.T) {
	var r Ref
	if !r.Empty() {
		t.Fatal("zero Ref should be Empty")
	}
	if r.IsLeaf() || r.IsInner() {
		t.Fatal("zero Ref should be neither a leaf nor an inner node")
	}
}

func TestRefLeaf(t *testing.T) {
	var a arena.Arena
	l := NewLeaf(&a, []byte("k"), UintValue(7))
	r := LeafRef(l)

	if r.Empty() || !r.IsLeaf() || r.IsInner() {
		t.Fatal("LeafRef should hold a leaf and nothing else")
	}
	if r.AsLeaf() != l {
		t.Fatal("AsLeaf should return the wrapped leaf")
	}
	if r.Minimum() != l || r.Maximum() != l {
		t.Fatal("Minimum/Maximum of a leaf Ref should be the leaf itself")
	}
}

func TestRefAsLeafPanicsOnInner(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("AsLeaf should panic when the Ref holds an inner node")
		}
	}()

	r := InnerRef(&Node4{})
	r.AsLeaf()
}

func TestRefAsInnerPanicsOnLeaf(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("AsInner should panic when the Ref holds a leaf")
		}
	}()

	var a arena.Arena
	r := LeafRef(NewLeaf(&a, []byte("k"), 0))
	r.AsInner()
}
