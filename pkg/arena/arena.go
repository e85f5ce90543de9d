// Package arena provides a lightweight accounting layer over ordinary
// garbage-collected allocation for node-based data structures.
//
// # Design
//
// The package used to be backed by a bump allocator that relied on
// reflection and unsafe pointer tagging to let the Go runtime keep whole
// memory blocks alive as long as any interior pointer into them was
// reachable (see "Cheating the Reaper in Go",
// https://mcyoung.xyz/2025/04/21/go-arenas/, for the technique). That trick
// only pays off when the allocator itself must hand out raw, untyped
// pointers — which in turn forces every consumer to tag and untag pointers
// by hand.
//
// This package instead hands out ordinary, GC-tracked `*T` pointers from
// [New], and layers two things on top of plain allocation:
//
//   - Node/byte accounting, so a structure built from many small node
//     allocations can report its footprint without walking itself.
//   - Recycling, via internal/xsync.Pool, so that nodes freed by one
//     mutation (e.g. a tree delete that shrinks a node) can be handed back
//     to a later allocation of the same type without round-tripping
//     through the garbage collector.
//
// A zero [Arena] is empty and ready to use.
package arena

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/flier/artree/internal/xsync"
)

// Allocator is the interface that wraps the basic memory accounting
// operations used by the node-based structures in this module.
//
// Unlike the bump-allocator design it replaces, an Allocator does not hand
// out the memory itself — callers allocate with ordinary Go `new`/composite
// literals and only use the Allocator to record and recycle those
// allocations. This keeps every pointer a plain, GC-visible `*T`.
type Allocator interface {
	// track records that size bytes were allocated for one node.
	track(size int)

	// untrack records that size bytes were released by one node.
	untrack(size int)
}

// Arena tracks the node and byte footprint of a structure built from many
// small, individually GC-managed allocations.
//
// Arena does not itself allocate memory; [New] and [Free] call it for
// bookkeeping and to reach its per-type free lists. This keeps the accounting centralized in one place
// (mirroring the original bump allocator's [Arena] type) while letting the
// Go runtime manage the actual memory.
type Arena struct {
	nodes int
	bytes int64

	pools sync.Map // reflect.Type -> *xsync.Pool[T], keyed per concrete node type
}

var _ Allocator = (*Arena)(nil)

func (a *Arena) track(size int) {
	a.nodes++
	a.bytes += int64(size)
}

func (a *Arena) untrack(size int) {
	a.nodes--
	a.bytes -= int64(size)
}

// NodeCount returns the number of live nodes tracked by this arena.
func (a *Arena) NodeCount() int { return a.nodes }

// ByteSize returns the approximate number of bytes of node storage tracked
// by this arena.
func (a *Arena) ByteSize() int64 { return a.bytes }

// Reset zeroes the arena's accounting. It does not release any memory —
// the caller is responsible for dropping references to whatever the arena
// was tracking (e.g. a tree's root) so the GC can reclaim it.
func (a *Arena) Reset() {
	a.nodes = 0
	a.bytes = 0
}

// pool returns the free list of *T values for a, creating it on first use.
// Pools are keyed by reflect.Type purely to let one sync.Map hold a
// pool-per-concrete-type without an Arena field per node layout; nothing
// about the values themselves is inspected or laid out via reflection.
func pool[T any](a *Arena) *xsync.Pool[T] {
	var zero T
	key := reflect.TypeOf(zero)

	if p, ok := a.pools.Load(key); ok {
		return p.(*xsync.Pool[T]) //nolint:errcheck
	}

	p, _ := a.pools.LoadOrStore(key, new(xsync.Pool[T]))
	return p.(*xsync.Pool[T]) //nolint:errcheck
}

// New allocates a new value of type T, recording its size with a.
//
// If a previously [Free]d value of the same concrete type is available, it
// is reused instead of allocating; otherwise a fresh `new(T)` is made. The
// returned pointer is an ordinary Go pointer, valid for as long as it is
// reachable, exactly like any other allocation.
func New[T any](a Allocator, value T) *T {
	var p *T
	if ar, ok := a.(*Arena); ok {
		p = pool[T](ar).Get()
	} else {
		p = new(T)
	}
	*p = value
	a.track(int(unsafe.Sizeof(value)))
	return p
}

// Free records that p, previously returned by [New], has been released,
// and returns it to the type's free list so a later New of the same type
// can reuse it instead of allocating.
func Free[T any](a Allocator, p *T) {
	var zero T
	a.untrack(int(unsafe.Sizeof(zero)))

	if ar, ok := a.(*Arena); ok {
		*p = zero
		pool[T](ar).Put(p)
	}
}
