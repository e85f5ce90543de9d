package node

import "unsafe"

// Value is the 8-byte opaque payload stored at every leaf.
//
// It has no single canonical interpretation: callers may stash a pointer
// (via [PtrValue]/[Ptr]), a 64-bit counter (via [UintValue]/[Uint]), a
// signed 64-bit counter (via [IntValue]/[Int]), or a pair of 32-bit halves
// (via [PairValue]/[Pair]) in the same 8 bytes. Insert/Delete never
// interpret a Value on their own; only [IncrementKind] tells the counting
// variants (Tree.InsertIncrement/Tree.DeleteDecrement in package artree)
// which view to update.
type Value uint64

// PtrValue packs p into a Value. p must outlive the Value, exactly as if it
// had been stored in any other field; the tree does nothing to keep it
// alive on p's behalf.
func PtrValue(p unsafe.Pointer) Value { return Value(uintptr(p)) }

// Ptr unpacks the pointer view of v. The caller is responsible for knowing
// that v was produced by [PtrValue] and that the pointee is still alive.
func Ptr(v Value) unsafe.Pointer { return unsafe.Pointer(uintptr(v)) } //nolint:govet

// UintValue packs an unsigned 64-bit counter into a Value.
func UintValue(n uint64) Value { return Value(n) }

// IntValue packs a signed 64-bit counter into a Value.
func IntValue(n int64) Value { return Value(uint64(n)) }

// PairValue packs two independent 32-bit halves into a single Value.
func PairValue(a, b uint32) Value { return Value(uint64(a)) | Value(uint64(b))<<32 }

// Uint unpacks the unsigned 64-bit view of v.
func (v Value) Uint() uint64 { return uint64(v) }

// Int unpacks the signed 64-bit view of v.
func (v Value) Int() int64 { return int64(v) }

// Pair unpacks the two 32-bit halves of v.
func (v Value) Pair() (a, b uint32) { return uint32(v), uint32(v >> 32) }

// IncrementKind selects which view of a [Value] an InsertIncrement/
// DeleteDecrement call operates on. It mirrors the `artIncrementDesc` enum
// that the counting insert/delete variants were modeled on: REPLACE
// overwrites the whole value unconditionally, WHOLE/A/B each treat one
// numeric view of the Value as a counter.
type IncrementKind int

const (
	// IncrementReplace makes InsertIncrement behave like a plain Insert
	// (the new Value always replaces the old one) and makes
	// DeleteDecrement behave like a plain Delete (the leaf is always
	// removed).
	IncrementReplace IncrementKind = iota

	// IncrementWhole treats the Value's Uint view as a single counter.
	IncrementWhole

	// IncrementHalfA treats the low 32-bit half (see [Value.Pair]) as a
	// counter, leaving the high half untouched.
	IncrementHalfA

	// IncrementHalfB treats the high 32-bit half (see [Value.Pair]) as a
	// counter, leaving the low half untouched.
	IncrementHalfB
)
