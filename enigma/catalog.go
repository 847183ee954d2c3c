package enigma

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bgallie/enigma/cryptors/reflector"
	"github.com/bgallie/enigma/cryptors/rotor"
)

// Catalog is the box of wheels a machine may be configured from.
type Catalog struct {
	rotors         map[string]rotor.Type
	reflectors     map[string]*reflector.Reflector
	rotorNames     []string
	reflectorNames []string
}

// historicalRotors are the Enigma I and M3 wheels with their turnover letters.
var historicalRotors = []struct {
	name, wiring, notches string
}{
	{"I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", "Q"},
	{"II", "AJDKSIRUXBLHWTMCQGZNPYFVOE", "E"},
	{"III", "BDFHJLCPRTXVZNYEIWGAKMUSQO", "V"},
	{"IV", "ESOVPZJAYQUIRHXLNFTGKDCMWB", "J"},
	{"V", "VZBRGITYUPSDNHLXAWMJQOFECK", "Z"},
	{"VI", "JPGVOUMFYQBENHZRDKASXLICTW", "ZM"},
	{"VII", "NZJHGRCXMYSWBOUFAIVLPEKQDT", "ZM"},
	{"VIII", "FKQHTLXOCBJSPDZRAMEWNIUYGV", "ZM"},
}

var historicalReflectors = []struct {
	name, wiring string
}{
	{"A", "EJMZALYXVBWFCRQUONTSPIKHGD"},
	{"B", "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
	{"C", "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
}

func NewCatalog() *Catalog {
	return &Catalog{
		rotors:     make(map[string]rotor.Type),
		reflectors: make(map[string]*reflector.Reflector),
	}
}

// Historical returns a catalog holding rotors I to VIII and reflectors A, B
// and C.
func Historical() *Catalog {
	c := NewCatalog()
	for _, r := range historicalRotors {
		if err := c.AddRotor(r.name, r.wiring, r.notches); err != nil {
			panic(err)
		}
	}
	for _, r := range historicalReflectors {
		if err := c.AddReflector(r.name, r.wiring); err != nil {
			panic(err)
		}
	}
	return c
}

// AddRotor adds or replaces a rotor type.
func (c *Catalog) AddRotor(name, wiring, notches string) error {
	t, err := rotor.NewType(name, wiring, notches)
	if err != nil {
		return err
	}
	if _, ok := c.rotors[name]; !ok {
		c.rotorNames = append(c.rotorNames, name)
	}
	c.rotors[name] = t
	return nil
}

// AddReflector adds or replaces a reflector.
func (c *Catalog) AddReflector(name, wiring string) error {
	r, err := reflector.New(name, wiring)
	if err != nil {
		return err
	}
	if _, ok := c.reflectors[name]; !ok {
		c.reflectorNames = append(c.reflectorNames, name)
	}
	c.reflectors[name] = r
	return nil
}

func (c *Catalog) Rotor(name string) (rotor.Type, bool) {
	t, ok := c.rotors[name]
	return t, ok
}

func (c *Catalog) Reflector(name string) (*reflector.Reflector, bool) {
	r, ok := c.reflectors[name]
	return r, ok
}

// RotorNames returns the rotor names in the order they were added.
func (c *Catalog) RotorNames() []string {
	return append([]string(nil), c.rotorNames...)
}

// ReflectorNames returns the reflector names in the order they were added.
func (c *Catalog) ReflectorNames() []string {
	return append([]string(nil), c.reflectorNames...)
}

type catalogFile struct {
	Historical bool `yaml:"historical"`
	Rotors     []struct {
		Name    string `yaml:"name"`
		Wiring  string `yaml:"wiring"`
		Notches string `yaml:"notches"`
	} `yaml:"rotors"`
	Reflectors []struct {
		Name   string `yaml:"name"`
		Wiring string `yaml:"wiring"`
	} `yaml:"reflectors"`
}

// LoadCatalog reads a YAML catalog:
//
//	historical: true   # start from the historical wheels
//	rotors:
//	  - {name: X, wiring: QWERTZUIOASDFGHJKPYXCVBNML, notches: Q}
//	reflectors:
//	  - {name: Y, wiring: YRUHQSLDPXNGOKMIEBFZCWVJAT}
func LoadCatalog(rdr io.Reader) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(rdr)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	c := NewCatalog()
	if f.Historical {
		c = Historical()
	}
	for _, r := range f.Rotors {
		if err := c.AddRotor(r.Name, r.Wiring, r.Notches); err != nil {
			return nil, err
		}
	}
	for _, r := range f.Reflectors {
		if err := c.AddReflector(r.Name, r.Wiring); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadCatalogFile reads a YAML catalog from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}
