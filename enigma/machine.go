// Package enigma assembles plugboard, rotors and reflector into a working
// Enigma cipher machine.
//
// A Machine is not safe for concurrent use.  Each session should own its own
// Machine; the rotor positions after one character are the starting state for
// the next.
package enigma

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/plugboard"
	"github.com/bgallie/enigma/cryptors/rotor"
	"github.com/bgallie/enigma/cryptors/stepper"
)

type State int

const (
	Unconfigured State = iota
	Configured
)

func (s State) String() string {
	switch s {
	case Unconfigured:
		return "unconfigured"
	case Configured:
		return "configured"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Machine struct {
	state     State
	catalog   *Catalog
	logger    *zap.Logger
	config    Config
	plugboard *plugboard.Plugboard
	assembly  *stepper.Assembly
	start     []int
}

type Option func(*Machine)

// WithLogger sets the logger used for configuration events.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithCatalog sets the catalog rotor and reflector names are resolved in.
// The default is Historical().
func WithCatalog(c *Catalog) Option {
	return func(m *Machine) {
		if c != nil {
			m.catalog = c
		}
	}
}

// New returns an unconfigured machine.
func New(opts ...Option) *Machine {
	m := &Machine{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	if m.catalog == nil {
		m.catalog = Historical()
	}
	return m
}

// NewMachine returns a machine configured with cfg.
func NewMachine(cfg Config, opts ...Option) (*Machine, error) {
	m := New(opts...)
	if err := m.Configure(cfg); err != nil {
		return nil, err
	}
	return m, nil
}

// Configure builds the machine from cfg.  A rejected configuration returns a
// *ConfigError and leaves the machine as it was.
func (m *Machine) Configure(cfg Config) error {
	if err := m.configure(cfg.clone()); err != nil {
		m.logger.Warn("configuration rejected", zap.Error(err))
		return err
	}
	m.logger.Info("machine configured",
		zap.Strings("rotors", m.config.Rotors),
		zap.String("reflector", m.config.Reflector),
		zap.Int("plugs", len(m.config.Plugboard)))
	return nil
}

func (m *Machine) configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	refl, ok := m.catalog.Reflector(cfg.Reflector)
	if !ok {
		return &ConfigError{Field: "Reflector", Err: fmt.Errorf("%w: %q", ErrUnknownReflector, cfg.Reflector)}
	}

	pb, err := plugboard.New(cfg.Plugboard)
	if err != nil {
		return &ConfigError{Field: "Plugboard", Err: err}
	}

	rings := settings(cfg.Rings, len(cfg.Rotors))
	start := settings(cfg.Positions, len(cfg.Rotors))
	rotors := make([]*rotor.Rotor, len(cfg.Rotors))
	for i, name := range cfg.Rotors {
		t, ok := m.catalog.Rotor(name)
		if !ok {
			return &ConfigError{Field: "Rotors", Err: fmt.Errorf("%w: %q", ErrUnknownRotor, name)}
		}
		rotors[i] = rotor.New(t, rings[i], start[i])
	}

	m.config = cfg
	m.plugboard = pb
	m.assembly = stepper.New(refl, rotors...)
	m.start = start
	m.state = Configured
	return nil
}

func (m *Machine) State() State {
	return m.state
}

// Config returns a copy of the configuration in force.
func (m *Machine) Config() Config {
	return m.config.clone()
}

// EncodeChar steps the rotors and enciphers one letter A..Z.  Anything else
// is rejected with ErrInvalidCharacter and the rotors do not move.
func (m *Machine) EncodeChar(c rune) (rune, error) {
	if m.state != Configured {
		return 0, ErrNotConfigured
	}
	in, err := cryptors.ToOffset(c)
	if err != nil {
		return 0, err
	}
	return cryptors.FromOffset(m.encode(in)), nil
}

func (m *Machine) encode(offset int) int {
	m.assembly.Step()
	offset = m.plugboard.Swap(offset)
	offset = m.assembly.Process(offset)
	return m.plugboard.Swap(offset)
}

// EncodeMessage enciphers s one letter at a time.  Because the cipher is
// reciprocal this also deciphers.  The whole message is checked before the
// first letter is enciphered, so an invalid message leaves the rotors where
// they were.
func (m *Machine) EncodeMessage(s string) (string, error) {
	if m.state != Configured {
		return "", ErrNotConfigured
	}
	runes := []rune(s)
	offsets := make([]int, 0, len(runes))
	for i, r := range runes {
		o, err := cryptors.ToOffset(r)
		if err != nil {
			return "", fmt.Errorf("at index %d: %w", i, err)
		}
		offsets = append(offsets, o)
	}

	var sb strings.Builder
	sb.Grow(len(offsets))
	for _, o := range offsets {
		sb.WriteRune(cryptors.FromOffset(m.encode(o)))
	}
	return sb.String(), nil
}

// Positions returns the rotor positions left to right, or nil when the
// machine is not configured.
func (m *Machine) Positions() []int {
	if m.state != Configured {
		return nil
	}
	return m.assembly.Positions()
}

// PositionLetters returns the letters showing in the rotor windows.
func (m *Machine) PositionLetters() string {
	return cryptors.FormatLetters(m.Positions())
}

// SetPositions turns the rotors without changing the rest of the key.  The
// new positions become the ones Reset returns to.
func (m *Machine) SetPositions(positions []int) error {
	if m.state != Configured {
		return ErrNotConfigured
	}
	if err := m.assembly.SetPositions(positions); err != nil {
		return &ConfigError{Field: "Positions", Err: err}
	}
	m.start = append([]int(nil), positions...)
	m.config.Positions = append([]int(nil), positions...)
	return nil
}

// Reset turns the rotors back to their start positions.
func (m *Machine) Reset() error {
	if m.state != Configured {
		return ErrNotConfigured
	}
	return m.assembly.SetPositions(m.start)
}
