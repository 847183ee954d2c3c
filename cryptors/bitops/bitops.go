// Package bitops keeps small sets of alphabet offsets in a single bit mask.
package bitops

import "math/bits"

// Set is a set of offsets 0..31, one bit per member.
type Set uint32

func SetBit(s Set, bit uint) Set {
	return s | (1 << (bit & 31))
}

func ClrBit(s Set, bit uint) Set {
	return s &^ (1 << (bit & 31))
}

func GetBit(s Set, bit uint) bool {
	return s&(1<<(bit&31)) != 0
}

// Count returns the number of members of s.
func Count(s Set) int {
	return bits.OnesCount32(uint32(s))
}

// Members returns the members of s in ascending order.
func Members(s Set) []int {
	m := make([]int, 0, Count(s))
	for s != 0 {
		b := bits.TrailingZeros32(uint32(s))
		m = append(m, b)
		s = ClrBit(s, uint(b))
	}
	return m
}
