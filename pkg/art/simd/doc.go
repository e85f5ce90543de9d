// Package simd provides the small linear scans Node16 needs: finding a key
// byte among its (at most 16) sorted children, and finding the sorted
// insertion point for a new one.
//
// The scalar implementation in find_scalar.go is canonical: every other
// variant must agree with it byte-for-byte. On amd64, FindKeyIndex is
// backed by the standard library's [bytes.IndexByte], which the runtime
// already lowers to a vectorized scan on that architecture — this package
// does not carry any hand-written assembly, so there is exactly one code
// path to keep correct instead of a scalar implementation plus an
// unverifiable accelerated one.
package simd
