// Package dirty tracks which layers need their masks rebuilt.
package dirty

import (
	"math/bits"
	"sync/atomic"
)

// Set is a fixed-size bitmap of dirty layer indices, one bit per layer,
// packed into uint64 words. All methods are safe for concurrent use.
type Set struct {
	words []atomic.Uint64
	n     int
}

// New creates a set for n layers with every layer clean.
// Returns nil if n is not positive.
func New(n int) *Set {
	if n <= 0 {
		return nil
	}
	return &Set{
		words: make([]atomic.Uint64, (n+63)/64),
		n:     n,
	}
}

// Mark flags layer i as dirty. Out-of-range indices are ignored.
func (s *Set) Mark(i int) {
	if i < 0 || i >= s.n {
		return
	}
	s.words[i/64].Or(1 << (i & 63))
}

// MarkAll flags every layer as dirty.
func (s *Set) MarkAll() {
	full := s.n / 64
	for i := 0; i < full; i++ {
		s.words[i].Store(^uint64(0))
	}
	if rem := s.n % 64; rem > 0 {
		s.words[full].Store((uint64(1) << rem) - 1)
	}
}

// IsDirty reports whether layer i is dirty.
// Returns false for out-of-range indices.
func (s *Set) IsDirty(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}
	return s.words[i/64].Load()&(1<<(i&63)) != 0
}

// TakeAll atomically clears the set and returns the indices that were
// dirty, in ascending order.
func (s *Set) TakeAll() []int {
	var out []int
	for w := range s.words {
		word := s.words[w].Swap(0)
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out = append(out, w*64+b)
			word &^= 1 << b
		}
	}
	return out
}
