package twin

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"co2-twin/internal/capture"
	"co2-twin/internal/core"
	"co2-twin/internal/dispersion"
	"co2-twin/internal/emission"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Layout is a saved device arrangement.
type Layout struct {
	Wind    core.Wind        `json:"wind" yaml:"wind" toml:"wind"`
	Devices []capture.Device `json:"devices" yaml:"devices" toml:"devices" validate:"dive"`
}

// Config bundles every injected constant of the twin.
type Config struct {
	Dispersion dispersion.Config `json:"dispersion" yaml:"dispersion" toml:"dispersion"`
	Devices    capture.Catalog   `json:"devices" yaml:"devices" toml:"devices" validate:"required,dive"`

	// SourceSeed drives the traffic jitter of the default inventory.
	SourceSeed int64 `json:"source_seed" yaml:"source_seed" toml:"source_seed"`
	// Sources replaces the default inventory when non-empty.
	Sources []emission.Source `json:"sources,omitempty" yaml:"sources,omitempty" toml:"sources,omitempty" validate:"dive"`

	Layout Layout `json:"layout" yaml:"layout" toml:"layout"`
}

// DefaultConfig returns the standard city configuration.
func DefaultConfig() Config {
	return Config{
		Dispersion: dispersion.DefaultConfig(),
		Devices:    capture.DefaultCatalog(),
		SourceSeed: 1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Override(cfg)
}

// Override returns c with the recognised keys of cfg applied on top.
func (c Config) Override(cfg map[string]string) Config {
	c.Dispersion = c.Dispersion.Override(cfg)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.SourceSeed = parsed
		}
	}
	if v, ok := cfg["wind"]; ok {
		if parsed, err := core.ParseWind(v); err == nil {
			c.Layout.Wind = parsed
		}
	}
	return c
}

// LoadConfig reads a YAML or TOML file on top of DefaultConfig and validates
// it. Device entries replace the stock spec of their kind wholesale.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := decode(path, b, &c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// LoadLayout reads a saved device arrangement from a YAML or TOML file.
func LoadLayout(path string) (Layout, error) {
	var l Layout
	b, err := os.ReadFile(path)
	if err != nil {
		return l, fmt.Errorf("reading layout %s: %w", path, err)
	}
	if err := decode(path, b, &l); err != nil {
		return l, fmt.Errorf("parsing layout %s: %w", path, err)
	}
	return l, nil
}

// decode picks the format from the file extension; anything but .toml is
// read as YAML.
func decode(path string, b []byte, v any) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(b, v)
	}
	return yaml.Unmarshal(b, v)
}

// Validate checks field constraints and that layout devices use known kinds.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	for i, d := range c.Layout.Devices {
		if _, ok := c.Devices.Lookup(d.Kind); !ok {
			return fmt.Errorf("layout device %d: unknown kind %q", i, d.Kind)
		}
	}
	return nil
}

// SourceList returns the configured inventory.
func (c Config) SourceList() []emission.Source {
	if len(c.Sources) > 0 {
		return c.Sources
	}
	return emission.DefaultCatalog(c.SourceSeed)
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
