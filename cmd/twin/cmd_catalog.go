package main

import (
	"fmt"

	"co2-twin/internal/capture"
	"co2-twin/internal/emission"
	"co2-twin/internal/report"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newCatalogCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the emission sources and device kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := c.cfg.SourceList()
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), struct {
					Sources []emission.Source `json:"sources"`
					Devices capture.Catalog   `json:"devices"`
				}{sources, c.cfg.Devices})
			}
			view := lipgloss.JoinVertical(lipgloss.Left, report.Catalog(c.cfg.Devices), report.Sources(sources))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), view)
			return err
		},
	}
}
