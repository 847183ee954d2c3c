// Package stepper drives a set of rotors and a reflector: it advances the
// rotors for each key press and passes the signal through them and back.
package stepper

import (
	"fmt"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/reflector"
	"github.com/bgallie/enigma/cryptors/rotor"
)

// Assembly is an ordered set of rotors, left to right as installed.  The
// rightmost rotor is the fast one and is nearest the entry wheel.
type Assembly struct {
	rotors    []*rotor.Rotor
	reflector *reflector.Reflector
}

func New(refl *reflector.Reflector, rotors ...*rotor.Rotor) *Assembly {
	if len(rotors) == 0 {
		panic("you must give at least one rotor!")
	}
	return &Assembly{rotors: rotors, reflector: refl}
}

// Step advances the rotors for one key press.
//
// Every decision is taken from the notch state before anything moves:
//   - the rightmost rotor always advances;
//   - a rotor advances when the rotor to its right is at a notch;
//   - a rotor other than the leftmost also advances when it is itself at a
//     notch, because the pawl on its left pushes it through that notch.  This
//     is the double step of the middle rotor.
//
// The leftmost rotor has no pawl on its left, so unlike a literal reading of
// the notch rule it is never moved by its own notch.
func (a *Assembly) Step() {
	last := len(a.rotors) - 1
	atNotch := make([]bool, len(a.rotors))
	for i, r := range a.rotors {
		atNotch[i] = r.AtNotch()
	}

	for i, r := range a.rotors {
		switch {
		case i == last:
			r.Advance()
		case atNotch[i+1]:
			r.Advance()
		case i > 0 && atNotch[i]:
			r.Advance()
		}
	}
}

// Process passes offset right to left through the rotors, off the reflector,
// and left to right back out.  It does not move the rotors.
func (a *Assembly) Process(offset int) int {
	for i := len(a.rotors) - 1; i >= 0; i-- {
		offset = a.rotors[i].EncodeForward(offset)
	}
	offset = a.reflector.Reflect(offset)
	for _, r := range a.rotors {
		offset = r.EncodeBackward(offset)
	}
	return offset
}

// Positions returns the rotor positions, left to right.
func (a *Assembly) Positions() []int {
	p := make([]int, len(a.rotors))
	for i, r := range a.rotors {
		p[i] = r.Position()
	}
	return p
}

// SetPositions turns the rotors to positions, left to right.
func (a *Assembly) SetPositions(positions []int) error {
	if len(positions) != len(a.rotors) {
		return fmt.Errorf("%w: %d positions for %d rotors",
			cryptors.ErrInvalidConfiguration, len(positions), len(a.rotors))
	}
	for _, p := range positions {
		if p < 0 || p >= cryptors.AlphabetSize {
			return fmt.Errorf("%w: position %d out of range", cryptors.ErrInvalidConfiguration, p)
		}
	}
	for i, p := range positions {
		a.rotors[i].SetPosition(p)
	}
	return nil
}

func (a *Assembly) Reflector() *reflector.Reflector {
	return a.reflector
}
