package artree

import (
	"unsafe"

	"github.com/flier/artree/pkg/art/node"
)

// Value is the 8-byte opaque payload stored alongside each key. It has no
// fixed type of its own; callers pick one of the views below depending on
// what they're using the tree for.
type Value = node.Value

// PtrValue views an unsafe.Pointer as a Value. The pointer is the caller's
// responsibility to keep alive independently of the tree.
func PtrValue(p unsafe.Pointer) Value { return node.PtrValue(p) }

// UintValue views a uint64 counter or identifier as a Value.
func UintValue(n uint64) Value { return node.UintValue(n) }

// IntValue views a signed int64 as a Value.
func IntValue(n int64) Value { return node.IntValue(n) }

// PairValue packs two uint32s into a single Value, for callers that want to
// store two independent small counters (see [IncrementHalfA]/[IncrementHalfB]).
func PairValue(a, b uint32) Value { return node.PairValue(a, b) }

// IncrementKind selects which numeric view of a leaf's Value [Tree.InsertIncrement]
// and [Tree.DeleteDecrement] operate on.
type IncrementKind = node.IncrementKind

const (
	// IncrementReplace is the plain insert/delete behavior: Insert stores
	// the given value verbatim (replacing or not, per the method called),
	// and Delete removes the leaf unconditionally.
	IncrementReplace = node.IncrementReplace

	// IncrementWhole treats the Value as a single uint64 counter: a new key
	// starts at 1, an existing key's counter is incremented; deletion
	// decrements the counter, removing the leaf only once it would reach 0.
	IncrementWhole = node.IncrementWhole

	// IncrementHalfA operates on the low 32 bits of a [PairValue], leaving
	// the high 32 bits untouched.
	IncrementHalfA = node.IncrementHalfA

	// IncrementHalfB operates on the high 32 bits of a [PairValue], leaving
	// the low 32 bits untouched.
	IncrementHalfB = node.IncrementHalfB
)
