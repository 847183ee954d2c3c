// Package permutator provides the fixed letter permutations that make up
// rotor and reflector wiring.
package permutator

import (
	"fmt"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/bitops"
)

// Permutator is a bijection over the alphabet offsets.  The inverse table is
// built at construction so both directions are a single array lookup.
type Permutator struct {
	forward  [cryptors.AlphabetSize]int
	backward [cryptors.AlphabetSize]int
}

// New creates a permutator from a wiring string such as
// "EKMFLGDQVZNTOWYHXUSPAIBRCJ", where the letter at index i is the image of i.
func New(wiring string) (*Permutator, error) {
	if len(wiring) != cryptors.AlphabetSize {
		return nil, fmt.Errorf("wiring %q has %d letters, want %d",
			wiring, len(wiring), cryptors.AlphabetSize)
	}

	var table [cryptors.AlphabetSize]int
	for i, r := range wiring {
		o, err := cryptors.ToOffset(r)
		if err != nil {
			return nil, fmt.Errorf("wiring %q: %w", wiring, err)
		}
		table[i] = o
	}

	return FromTable(table)
}

// FromTable creates a permutator from a table of offsets.
func FromTable(table [cryptors.AlphabetSize]int) (*Permutator, error) {
	var p Permutator
	var seen bitops.Set

	for i, v := range table {
		if v < 0 || v >= cryptors.AlphabetSize {
			return nil, fmt.Errorf("offset %d out of range at index %d", v, i)
		}
		if bitops.GetBit(seen, uint(v)) {
			return nil, fmt.Errorf("%c appears more than once", cryptors.FromOffset(v))
		}
		seen = bitops.SetBit(seen, uint(v))
		p.forward[i] = v
		p.backward[v] = i
	}

	return &p, nil
}

// Forward maps offset through the wiring.
func (p *Permutator) Forward(offset int) int {
	return p.forward[offset]
}

// Backward maps offset through the inverse wiring.
func (p *Permutator) Backward(offset int) int {
	return p.backward[offset]
}

// IsInvolution reports whether the permutation is its own inverse.
func (p *Permutator) IsInvolution() bool {
	return p.forward == p.backward
}

// FixedPoints returns the offsets that map to themselves.
func (p *Permutator) FixedPoints() []int {
	var fixed bitops.Set
	for i, v := range p.forward {
		if i == v {
			fixed = bitops.SetBit(fixed, uint(i))
		}
	}
	return bitops.Members(fixed)
}

func (p *Permutator) String() string {
	return cryptors.FormatLetters(p.forward[:])
}
