package dock

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/dockmenu/internal/menu"
)

// Orientation selects which side submenus open towards.
type Orientation string

const (
	OrientationLeft  Orientation = "left"
	OrientationRight Orientation = "right"
)

// Options is the serialisable part of a menu configuration.
type Options struct {
	ID            string      `yaml:"id,omitempty"`
	Container     string      `yaml:"container,omitempty"`
	DrawOnInit    bool        `yaml:"drawOnInit"`
	Partner       string      `yaml:"partner,omitempty"`
	PartnerMethod string      `yaml:"partnerMethod,omitempty"`
	FromHTML      bool        `yaml:"fromHTML,omitempty"`
	Items         []menu.Item `yaml:"items,omitempty"`
	CSSClass      string      `yaml:"cssClass,omitempty"`
	Divider       bool        `yaml:"divider,omitempty"`
	Orientation   Orientation `yaml:"orientation,omitempty"`
}

// DefaultOptions returns the options every menu starts from.
func DefaultOptions() Options {
	return Options{
		DrawOnInit:  true,
		Orientation: OrientationLeft,
	}
}

// Validate checks option values. Items are checked separately at draw time.
func (o Options) Validate() error {
	switch o.Orientation {
	case "", OrientationLeft, OrientationRight:
	default:
		return fmt.Errorf("orientation must be %q or %q (got %q)", OrientationLeft, OrientationRight, o.Orientation)
	}
	return nil
}

// LoadOptions decodes YAML over DefaultOptions.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("decode menu options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	if err := menu.Validate(opts.Items); err != nil {
		return Options{}, err
	}
	return opts, nil
}
