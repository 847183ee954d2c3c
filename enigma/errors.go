package enigma

import (
	"errors"
	"fmt"

	"github.com/bgallie/enigma/cryptors"
)

var (
	ErrInvalidCharacter        = cryptors.ErrInvalidCharacter
	ErrInvalidPlugboardPairing = cryptors.ErrInvalidPlugboardPairing
	ErrInvalidReflectorWiring  = cryptors.ErrInvalidReflectorWiring
	ErrInvalidRotorWiring      = cryptors.ErrInvalidRotorWiring
	ErrInvalidConfiguration    = cryptors.ErrInvalidConfiguration
	ErrNotConfigured           = cryptors.ErrNotConfigured

	ErrUnknownRotor     = errors.New("unknown rotor type")
	ErrUnknownReflector = errors.New("unknown reflector type")
	ErrLengthMismatch   = errors.New("setting count does not match rotor count")
)

// ConfigError reports which part of a configuration was rejected.  It matches
// both ErrInvalidConfiguration and the underlying cause under errors.Is.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrInvalidConfiguration, e.Field, e.Err)
}

func (e *ConfigError) Unwrap() []error {
	return []error{ErrInvalidConfiguration, e.Err}
}
