package dispersion

import "strconv"

// Config holds the propagation constants.
type Config struct {
	// Size is the edge length of the square grid.
	Size int `json:"size" yaml:"size" toml:"size" validate:"gt=0"`
	// DecayFactor is the share of concentration a neighbour inherits.
	DecayFactor float64 `json:"decay_factor" yaml:"decay_factor" toml:"decay_factor" validate:"gt=0,lt=1"`
	// WindStrength skews DecayFactor up downwind and down upwind.
	WindStrength float64 `json:"wind_strength" yaml:"wind_strength" toml:"wind_strength" validate:"gte=0,lt=1"`
	// Cutoff is the value at or below which spreading stops.
	Cutoff float64 `json:"cutoff" yaml:"cutoff" toml:"cutoff" validate:"gte=0"`
}

// DefaultConfig returns the standard city configuration.
func DefaultConfig() Config {
	return Config{
		Size:         25,
		DecayFactor:  0.85,
		WindStrength: 0.5,
		Cutoff:       1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Override(cfg)
}

// Override returns c with the recognised keys of cfg applied. Unparsable or
// out-of-range values are ignored.
func (c Config) Override(cfg map[string]string) Config {
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["decay_factor"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 1 {
			c.DecayFactor = parsed
		}
	}
	if v, ok := cfg["wind_strength"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 1 {
			c.WindStrength = parsed
		}
	}
	if v, ok := cfg["cutoff"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Cutoff = parsed
		}
	}
	return c
}
