// Package tree implements the recursive search/insert/delete/traversal
// algorithms that walk a [github.com/flier/artree/pkg/art/node].Ref tree.
// Every function here is free-standing rather than a method, so that the
// top-level Tree type (in the module root) stays a thin, allocator-owning
// wrapper around these algorithms — mirroring how the reference
// implementation splits "the tree shape" from "the operations on it".
package tree

import "github.com/flier/artree/pkg/art/node"

// byteAt returns the key byte at index, or the synthesized terminator byte
// 0 if index is at or past the end of key. This lets search/insert/delete
// treat a key that has been fully consumed as if it were followed by one
// more, distinguished byte — without a dedicated "zero-length child" slot.
// A stored key that is a byte-for-byte prefix of another is told apart
// from it by this byte, unless the longer key holds a literal 0 byte at
// that index: such a pair (for example "a" and "a\x00") collides on the
// synthesized byte (see the module's prefix-collision test scenario).
func byteAt(key []byte, index int) byte {
	if index < len(key) {
		return key[index]
	}
	return 0
}

// checkPrefix compares h's stored prefix bytes against key starting at
// depth, stopping at the first mismatch, the end of the physically stored
// bytes, or the end of key. It does not consult a minimum leaf: callers
// that need the full, possibly-truncated logical prefix compared should
// use prefixMismatch instead.
func checkPrefix(h *node.Header, key []byte, depth int) int {
	maxCmp := min(h.PartialLen, node.MaxPrefixLen, len(key)-depth)

	i := 0
	for ; i < maxCmp; i++ {
		if h.Partial[i] != key[depth+i] {
			break
		}
	}
	return i
}

// prefixMismatch compares n's full logical prefix against key starting at
// depth, returning the number of leading bytes that match. When the
// prefix's logical length exceeds [node.MaxPrefixLen] (so part of it was
// never physically stored), the remaining bytes are recovered from n's
// minimum leaf — whose key is guaranteed to begin with n's true,
// uncompressed prefix, since every key under n was inserted after
// confirming it shared this prefix.
func prefixMismatch(n node.Inner, key []byte, depth int) int {
	h := n.Head()

	i := checkPrefix(h, key, depth)
	if i < min(h.PartialLen, node.MaxPrefixLen) {
		return i // A genuine mismatch within the physically stored bytes.
	}

	if h.PartialLen > node.MaxPrefixLen {
		minKey := n.Minimum().Key
		limit := min(h.PartialLen, len(key)-depth)
		for ; i < limit; i++ {
			if byteAt(minKey, depth+i) != byteAt(key, depth+i) {
				break
			}
		}
	}
	return i
}

// longestCommonPrefix returns the number of bytes k1 and k2 share starting
// at depth, using byteAt so that one key being a structural prefix of the
// other still terminates the comparison rather than reading out of bounds.
func longestCommonPrefix(k1, k2 []byte, depth int) int {
	maxLen := max(len(k1), len(k2))

	i := depth
	for i < maxLen && byteAt(k1, i) == byteAt(k2, i) {
		i++
	}
	return i - depth
}

// prefixBytesFrom extracts up to node.MaxPrefixLen bytes of key starting at
// start, for use as a node's physically stored prefix. logicalLen bounds
// how much of key is actually part of the prefix (which may be shorter
// than what's physically available in key past start).
func prefixBytesFrom(key []byte, start, logicalLen int) []byte {
	end := start + min(logicalLen, node.MaxPrefixLen)
	if end > len(key) {
		end = len(key)
	}
	if start > end {
		start = end
	}
	return key[start:end]
}
