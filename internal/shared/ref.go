// Package shared provides the reference-counted state block behind
// threadlog's value handles.
//
// A Ref is a small value; copying it shares the payload. Retain takes an
// additional reference and Release drops one. The release callback runs
// exactly once, on the Release that brings the count to zero.
package shared

import (
	"sync/atomic"
)

type block[T any] struct {
	refs    atomic.Int32
	value   T
	release func(T)
}

// Ref is a counted reference to a shared payload. The zero Ref is empty.
type Ref[T any] struct {
	b *block[T]
}

// New returns a Ref holding one reference to value. release may be nil.
func New[T any](value T, release func(T)) Ref[T] {
	b := &block[T]{value: value, release: release}
	b.refs.Store(1)
	return Ref[T]{b: b}
}

// Valid reports whether the Ref points at a payload
func (r Ref[T]) Valid() bool {
	return r.b != nil
}

// Value returns the payload, or the zero T for an empty Ref
func (r Ref[T]) Value() T {
	if r.b == nil {
		var zero T
		return zero
	}
	return r.b.value
}

// Count returns the current number of references
func (r Ref[T]) Count() int32 {
	if r.b == nil {
		return 0
	}
	return r.b.refs.Load()
}

// Retain adds a reference and returns a Ref sharing the same payload.
// Retaining a payload that has already been released returns an empty Ref.
func (r Ref[T]) Retain() Ref[T] {
	if r.b == nil {
		return r
	}
	for {
		n := r.b.refs.Load()
		if n <= 0 {
			return Ref[T]{}
		}
		if r.b.refs.CompareAndSwap(n, n+1) {
			return r
		}
	}
}

// Release drops a reference. It reports whether this call released the
// payload. Releases beyond the last reference are ignored.
func (r Ref[T]) Release() bool {
	if r.b == nil {
		return false
	}
	for {
		n := r.b.refs.Load()
		if n <= 0 {
			return false
		}
		if r.b.refs.CompareAndSwap(n, n-1) {
			if n != 1 {
				return false
			}
			if r.b.release != nil {
				r.b.release(r.b.value)
			}
			return true
		}
	}
}

// Same reports whether r and o share one payload
func (r Ref[T]) Same(o Ref[T]) bool {
	return r.b == o.b
}
