// Package cryptors holds the alphabet and the error kinds shared by the
// components of the Enigma cipher machine.
package cryptors

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// AlphabetSize is the number of symbols the machine works on.
	AlphabetSize = 26
	// Letters is the alphabet in offset order.
	Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	ErrInvalidCharacter        = errors.New("invalid character")
	ErrInvalidPlugboardPairing = errors.New("invalid plugboard pairing")
	ErrInvalidReflectorWiring  = errors.New("invalid reflector wiring")
	ErrInvalidRotorWiring      = errors.New("invalid rotor wiring")
	ErrInvalidConfiguration    = errors.New("invalid configuration")
	ErrNotConfigured           = errors.New("machine is not configured")
)

// ToOffset converts an alphabet symbol into its offset 0..25.  Only the upper
// case letters A..Z are accepted.
func ToOffset(r rune) (int, error) {
	if r < 'A' || r > 'Z' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, r)
	}
	return int(r - 'A'), nil
}

// FromOffset converts an offset back into its symbol.  The offset is reduced
// modulo the alphabet size first.
func FromOffset(offset int) rune {
	return rune(Letters[Mod(offset)])
}

// Mod reduces v into the range 0..25.
func Mod(v int) int {
	v %= AlphabetSize
	if v < 0 {
		v += AlphabetSize
	}
	return v
}

// ParseLetters converts a string of letters such as "AQV" into offsets.
func ParseLetters(s string) ([]int, error) {
	offsets := make([]int, 0, len(s))
	for _, r := range s {
		o, err := ToOffset(r)
		if err != nil {
			return nil, err
		}
		offsets = append(offsets, o)
	}
	return offsets, nil
}

// FormatLetters is the inverse of ParseLetters.
func FormatLetters(offsets []int) string {
	var sb strings.Builder
	for _, o := range offsets {
		sb.WriteRune(FromOffset(o))
	}
	return sb.String()
}
