// Package reflector implements the Umkehrwalze, the fixed wheel that turns
// the signal around and sends it back through the rotors.
package reflector

import (
	"fmt"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/permutator"
)

type Reflector struct {
	Name   string
	wiring *permutator.Permutator
}

// New creates a reflector.  The wiring must pair every letter with a
// different letter: an involution without fixed points.
func New(name, wiring string) (*Reflector, error) {
	p, err := permutator.New(wiring)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", cryptors.ErrInvalidReflectorWiring, name, err)
	}
	if !p.IsInvolution() {
		return nil, fmt.Errorf("%w: %s: wiring is not reciprocal", cryptors.ErrInvalidReflectorWiring, name)
	}
	if fixed := p.FixedPoints(); len(fixed) > 0 {
		return nil, fmt.Errorf("%w: %s: %s wired to itself",
			cryptors.ErrInvalidReflectorWiring, name, cryptors.FormatLetters(fixed))
	}
	return &Reflector{Name: name, wiring: p}, nil
}

func (r *Reflector) Reflect(offset int) int {
	return r.wiring.Forward(offset)
}

// Wiring returns the wiring in letter form.
func (r *Reflector) Wiring() string {
	return r.wiring.String()
}
