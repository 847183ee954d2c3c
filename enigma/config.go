package enigma

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every configuration check.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Config is a complete key setting.  Rotors are named left to right; Rings and
// Positions hold one offset 0..25 per rotor, or are empty for all zeros.
type Config struct {
	Rotors    []string `mapstructure:"rotors" yaml:"rotors" validate:"required,min=1,unique,dive,required"`
	Reflector string   `mapstructure:"reflector" yaml:"reflector" validate:"required"`
	Rings     []int    `mapstructure:"rings" yaml:"rings" validate:"omitempty,dive,min=0,max=25"`
	Positions []int    `mapstructure:"positions" yaml:"positions" validate:"omitempty,dive,min=0,max=25"`
	Plugboard []string `mapstructure:"plugboard" yaml:"plugboard"`
}

// DefaultConfig is rotors I, II and III on reflector B with A-B and C-D
// plugged, all rings and positions at A.
func DefaultConfig() Config {
	return Config{
		Rotors:    []string{"I", "II", "III"},
		Reflector: "B",
		Plugboard: []string{"AB", "CD"},
	}
}

// Validate checks the shape of the configuration.  Catalog membership and
// plugboard cabling are checked when the machine is configured.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if len(c.Rings) != 0 && len(c.Rings) != len(c.Rotors) {
		return &ConfigError{Field: "Rings", Err: fmt.Errorf("%w: %d ring settings for %d rotors",
			ErrLengthMismatch, len(c.Rings), len(c.Rotors))}
	}
	if len(c.Positions) != 0 && len(c.Positions) != len(c.Rotors) {
		return &ConfigError{Field: "Positions", Err: fmt.Errorf("%w: %d positions for %d rotors",
			ErrLengthMismatch, len(c.Positions), len(c.Rotors))}
	}
	return nil
}

// clone returns a deep copy so the machine does not alias caller slices.
func (c Config) clone() Config {
	return Config{
		Rotors:    append([]string(nil), c.Rotors...),
		Reflector: c.Reflector,
		Rings:     append([]int(nil), c.Rings...),
		Positions: append([]int(nil), c.Positions...),
		Plugboard: append([]string(nil), c.Plugboard...),
	}
}

// settings returns s, or n zeros when s is empty.
func settings(s []int, n int) []int {
	if len(s) == 0 {
		return make([]int, n)
	}
	return append([]int(nil), s...)
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ConfigError{
			Field: fe.Field(),
			Err:   fmt.Errorf("failed on the '%s' rule (value %v)", fe.Tag(), fe.Value()),
		}
	}
	return &ConfigError{Field: "Config", Err: err}
}
