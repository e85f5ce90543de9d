//go:build debug

// Package debug provides invariant-checking helpers that compile to nothing
// unless the binary is built with the debug tag.
package debug

import "fmt"

// Enabled is true if the compiler is being built with the debug tag, which
// enables internal invariant checks.
const Enabled = true

// Assert panics if cond is false, but only in debug mode. Used to check
// structural invariants (prefix lengths, child counts, key ordering) that a
// correct caller can never violate — never used to validate untrusted input.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("artree: internal assertion failed: "+format, args...))
	}
}
