package main

import (
	"encoding/json"
	"fmt"
	"io"

	"co2-twin/internal/twin"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// cli carries the state shared by every subcommand.
type cli struct {
	configPath string
	logLevel   string
	jsonOut    bool
	overrides  map[string]string

	log *logrus.Logger
	cfg twin.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{log: logrus.New()}
	rootCmd := &cobra.Command{
		Use:   "twin",
		Short: "CO2 concentration twin of a city grid",
		Long: `twin propagates CO2 from the city's emission sources across a grid,
applies capture devices and reports what they remove.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "YAML or TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringToStringVar(&c.overrides, "set", nil, "parameter override as key=value (size, decay_factor, wind_strength, cutoff, seed, wind)")

	rootCmd.AddCommand(
		newRunCmd(c),
		newSweepCmd(c),
		newCatalogCmd(c),
	)
	return rootCmd
}

func (c *cli) setup(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(c.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	c.log.SetOutput(cmd.ErrOrStderr())
	c.log.SetLevel(level)

	c.cfg = twin.DefaultConfig()
	if c.configPath != "" {
		cfg, err := twin.LoadConfig(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
		c.log.WithField("path", c.configPath).Debug("configuration loaded")
	}
	if len(c.overrides) > 0 {
		c.cfg = c.cfg.Override(c.overrides)
		if err := c.cfg.Validate(); err != nil {
			return fmt.Errorf("--set: %w", err)
		}
		c.log.WithField("overrides", c.overrides).Debug("parameters overridden")
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
