package capture

import (
	"fmt"
	"strings"
)

// Kind identifies a class of capture device.
type Kind string

const (
	Scrubber  Kind = "scrubber"
	Garden    Kind = "garden"
	Biofilter Kind = "biofilter"
)

// Kinds lists the built-in kinds in dashboard order.
var Kinds = []Kind{Scrubber, Garden, Biofilter}

// ParseKind accepts the kind name or the long display-style aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scrubber", "roadside-scrubber", "roadsidescrubber":
		return Scrubber, nil
	case "garden", "vertical-garden", "verticalgarden":
		return Garden, nil
	case "biofilter", "industrial-biofilter", "industrialbiofilter":
		return Biofilter, nil
	}
	return "", fmt.Errorf("unknown device kind %q", s)
}

// Spec holds the static parameters of a device kind.
type Spec struct {
	Name        string  `json:"name" yaml:"name" toml:"name"`
	CaptureRate float64 `json:"capture_rate" yaml:"capture_rate" toml:"capture_rate" validate:"gt=0"`
	Radius      int     `json:"radius" yaml:"radius" toml:"radius" validate:"gt=0"`
	Cost        float64 `json:"cost" yaml:"cost" toml:"cost" validate:"gt=0"`
}

// Catalog maps each kind to its parameters.
type Catalog map[Kind]Spec

// DefaultCatalog returns the stock device line-up.
func DefaultCatalog() Catalog {
	return Catalog{
		Scrubber:  {Name: "Roadside Scrubber", CaptureRate: 45, Radius: 2, Cost: 50000},
		Garden:    {Name: "Vertical Garden", CaptureRate: 25, Radius: 3, Cost: 25000},
		Biofilter: {Name: "Industrial Biofilter", CaptureRate: 90, Radius: 4, Cost: 120000},
	}
}

// Lookup returns the spec for kind when it is known and usable.
func (c Catalog) Lookup(kind Kind) (Spec, bool) {
	spec, ok := c[kind]
	if !ok || spec.Radius <= 0 {
		return Spec{}, false
	}
	return spec, true
}

// Clone returns an independent copy of the catalog.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
