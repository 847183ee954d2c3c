// rotor
package rotor

import (
	"fmt"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/bitops"
	"github.com/bgallie/enigma/cryptors/permutator"
)

// Type describes a rotor model: its internal wiring and the window letters at
// which it carries its left neighbour along.
type Type struct {
	Name    string
	wiring  *permutator.Permutator
	notches bitops.Set
}

// NewType builds a rotor type from a wiring string and the notch letters,
// e.g. NewType("I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", "Q").
func NewType(name, wiring, notches string) (Type, error) {
	p, err := permutator.New(wiring)
	if err != nil {
		return Type{}, fmt.Errorf("%w: rotor %s: %v", cryptors.ErrInvalidRotorWiring, name, err)
	}

	t := Type{Name: name, wiring: p}
	for _, r := range notches {
		o, err := cryptors.ToOffset(r)
		if err != nil {
			return Type{}, fmt.Errorf("%w: rotor %s notch: %v", cryptors.ErrInvalidRotorWiring, name, err)
		}
		t.notches = bitops.SetBit(t.notches, uint(o))
	}

	return t, nil
}

// Wiring returns the wiring in letter form.
func (t Type) Wiring() string {
	if t.wiring == nil {
		return ""
	}
	return t.wiring.String()
}

// Notches returns the notch letters.
func (t Type) Notches() string {
	return cryptors.FormatLetters(bitops.Members(t.notches))
}

type Rotor struct {
	kind     Type
	ring     int
	position int
}

// New installs a rotor of type t with the given ring setting and start
// position.  Both are reduced into 0..25.
func New(t Type, ring, position int) *Rotor {
	return &Rotor{
		kind:     t,
		ring:     cryptors.Mod(ring),
		position: cryptors.Mod(position),
	}
}

func (r *Rotor) Type() Type {
	return r.kind
}

func (r *Rotor) Ring() int {
	return r.ring
}

func (r *Rotor) Position() int {
	return r.position
}

func (r *Rotor) SetPosition(position int) {
	r.position = cryptors.Mod(position)
}

// EncodeForward passes a signal entering from the right through the rotor.
func (r *Rotor) EncodeForward(offset int) int {
	shift := r.position - r.ring
	return cryptors.Mod(r.kind.wiring.Forward(cryptors.Mod(offset+shift)) - shift)
}

// EncodeBackward passes a signal entering from the left through the rotor.
func (r *Rotor) EncodeBackward(offset int) int {
	shift := r.position - r.ring
	return cryptors.Mod(r.kind.wiring.Backward(cryptors.Mod(offset+shift)) - shift)
}

// AtNotch reports whether the rotor shows one of its notch letters.
func (r *Rotor) AtNotch() bool {
	return bitops.GetBit(r.kind.notches, uint(r.position))
}

func (r *Rotor) Advance() {
	r.position = (r.position + 1) % cryptors.AlphabetSize
}

func (r *Rotor) String() string {
	return fmt.Sprintf("%s(ring %c, pos %c)", r.kind.Name,
		cryptors.FromOffset(r.ring), cryptors.FromOffset(r.position))
}
