package plugin

import (
	"errors"
	"io"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/veldhost/veld/stringify"
)

// Plugin ids are lowercase, start with a letter, and stay short enough to
// key maps and log lines comfortably.
var idPattern = regexp.MustCompile(`^[a-z][a-z0-9-_]{0,63}$`)

// ErrNoID is returned when descriptor metadata omits the plugin id.
var ErrNoID = errors.New("plugin: descriptor has no id")

// InvalidIDError is returned when a plugin or dependency id does not match
// the required form [a-z][a-z0-9-_]{0,63}.
type InvalidIDError struct{ ID string }

// Error implements the error interface.
func (e InvalidIDError) Error() string {
	// Example: plugin: invalid plugin id "My Plugin"
	return "plugin: invalid plugin id " + strconv.Quote(e.ID)
}

// Dependency names another plugin a descriptor depends on.
type Dependency struct {
	ID       string `yaml:"id"`
	Optional bool   `yaml:"optional"`
}

// Descriptor is the static metadata describing a loadable plugin, shipped
// alongside the plugin as a small YAML document.
type Descriptor struct {
	ID           string       `yaml:"id"`
	Name         string       `yaml:"name"`
	Version      string       `yaml:"version"`
	Authors      []string     `yaml:"authors"`
	Dependencies []Dependency `yaml:"dependencies"`
}

// LoadDescriptor parses and validates descriptor metadata from r.
func LoadDescriptor(r io.Reader) (Descriptor, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Descriptor{}, err
	}
	var d Descriptor
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Descriptor{}, err
	}
	if err := d.Validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// Validate checks the descriptor's own id and every dependency id.
func (d Descriptor) Validate() error {
	if d.ID == "" {
		return ErrNoID
	}
	if !idPattern.MatchString(d.ID) {
		return InvalidIDError{ID: d.ID}
	}
	for _, dep := range d.Dependencies {
		if !idPattern.MatchString(dep.ID) {
			return InvalidIDError{ID: dep.ID}
		}
	}
	return nil
}

// String renders the descriptor in canonical form, dropping fields the
// metadata left empty.
func (d Descriptor) String() string {
	b := stringify.New("Descriptor").
		OmitNilValues(true).
		Add("id", d.ID)
	if d.Name != "" {
		b.Add("name", d.Name)
	}
	if d.Version != "" {
		b.Add("version", d.Version)
	}
	if len(d.Authors) > 0 {
		b.Add("authors", d.Authors)
	}
	return b.String()
}
