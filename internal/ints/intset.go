// Package ints provides a dense bitset of small integers, used by the
// langdef package to track sets of node unique IDs during optionality
// analysis (the "unresolved" set) and left-recursion detection (the
// on-path set), without allocating a map[int]bool per call.
package ints

import "math/bits"

const wordBits = 64

// Set is a dense bitset over non-negative ints, sized lazily to its
// highest-added member. UniqueIDs are contiguous from 0, so this beats a
// map[int]bool both in footprint and in Contains cost.
type Set struct {
	words []uint64
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{}
}

func (s *Set) grow(item int) {
	word := item / wordBits
	if word >= len(s.words) {
		grown := make([]uint64, word+1)
		copy(grown, s.words)
		s.words = grown
	}
}

// Add puts item in the set.
func (s *Set) Add(item int) {
	s.grow(item)
	s.words[item/wordBits] |= 1 << uint(item%wordBits)
}

// Remove takes item out of the set, if present.
func (s *Set) Remove(item int) {
	word := item / wordBits
	if word >= len(s.words) {
		return
	}
	s.words[word] &^= 1 << uint(item%wordBits)
}

// Contains reports whether item is in the set.
func (s *Set) Contains(item int) bool {
	word := item / wordBits
	if word >= len(s.words) {
		return false
	}
	return s.words[word]&(1<<uint(item%wordBits)) != 0
}

// ToSlice returns every member of the set in ascending order.
func (s *Set) ToSlice() []int {
	var result []int
	for word, w := range s.words {
		for w != 0 {
			i := bits.TrailingZeros64(w)
			result = append(result, word*wordBits+i)
			w &= w - 1
		}
	}
	return result
}
