package app

import "github.com/spf13/pflag"

// Config represents the command-line parameters for the GUI.
type Config struct {
	Scale    int
	TPS      int
	HUDWidth int
	File     string
	LogLevel string
	Watch    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 24, TPS: 30, HUDWidth: 300, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per grid cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "dashboard panel width in pixels (0 hides it)")
	fs.StringVarP(&c.File, "config", "c", c.File, "YAML or TOML configuration file")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "reload the configuration file when it changes")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}
