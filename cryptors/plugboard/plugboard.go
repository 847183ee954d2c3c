// Package plugboard implements the Steckerbrett: cables that swap pairs of
// letters on the way into and out of the rotors.
package plugboard

import (
	"fmt"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/bitops"
)

type Plugboard struct {
	wiring [cryptors.AlphabetSize]int
	pairs  []string
}

// New returns a plugboard with the given pairs plugged in.
func New(pairs []string) (*Plugboard, error) {
	p := new(Plugboard)
	if err := p.Configure(pairs); err != nil {
		return nil, err
	}
	return p, nil
}

// Configure replaces the cabling with pairs, each a two letter string such as
// "AB".  On error the previous cabling is left in place.
func (p *Plugboard) Configure(pairs []string) error {
	var wiring [cryptors.AlphabetSize]int
	for i := range wiring {
		wiring[i] = i
	}

	var used bitops.Set
	for _, pair := range pairs {
		if len(pair) != 2 {
			return fmt.Errorf("%w: %q is not a pair of letters", cryptors.ErrInvalidPlugboardPairing, pair)
		}
		a, err := cryptors.ToOffset(rune(pair[0]))
		if err != nil {
			return fmt.Errorf("%w: %q: %v", cryptors.ErrInvalidPlugboardPairing, pair, err)
		}
		b, err := cryptors.ToOffset(rune(pair[1]))
		if err != nil {
			return fmt.Errorf("%w: %q: %v", cryptors.ErrInvalidPlugboardPairing, pair, err)
		}
		if a == b {
			return fmt.Errorf("%w: %q pairs a letter with itself", cryptors.ErrInvalidPlugboardPairing, pair)
		}
		for _, o := range []int{a, b} {
			if bitops.GetBit(used, uint(o)) {
				return fmt.Errorf("%w: %c is used by more than one pair",
					cryptors.ErrInvalidPlugboardPairing, cryptors.FromOffset(o))
			}
			used = bitops.SetBit(used, uint(o))
		}
		wiring[a], wiring[b] = b, a
	}

	p.wiring = wiring
	p.pairs = append([]string(nil), pairs...)
	return nil
}

// Swap returns the partner of offset, or offset itself when it is unplugged.
func (p *Plugboard) Swap(offset int) int {
	return p.wiring[offset]
}

// Pairs returns a copy of the configured pairs.
func (p *Plugboard) Pairs() []string {
	return append([]string(nil), p.pairs...)
}
