package main

import (
	"fmt"

	"co2-twin/internal/capture"
	"co2-twin/internal/report"
	"co2-twin/internal/twin"

	"github.com/spf13/cobra"
)

func newSweepCmd(c *cli) *cobra.Command {
	var (
		kind     string
		wind     string
		devices  []string
		scenario string
		opts     twin.SweepOptions
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Rank every free cell as the spot for one more device",
		Long: `Rank every free cell as the spot for one more device. Cells are ranked by
the capture attributed to the devices against the current-wind field, which
stays meaningful when the wind is not calm.`,
		Example: `  twin sweep --kind biofilter --limit 5
  twin sweep --kind garden --wind west --device scrubber@10,12 --by-cost`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := capture.ParseKind(kind)
			if err != nil {
				k = capture.Kind(kind)
			}
			s, err := c.buildScenario(scenario, wind, devices)
			if err != nil {
				return err
			}
			opts.Log = c.log
			cands, err := twin.Sweep(cmd.Context(), s.Config(), s.Sources(), s.Devices(), s.Wind(), k, opts)
			if err != nil {
				return fmt.Errorf("sweep: %w", err)
			}
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), cands)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), report.Sweep(cands, k))
			return err
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", string(capture.Scrubber), "device kind to place")
	cmd.Flags().StringVarP(&wind, "wind", "w", "", "wind direction (calm, north, south, east, west)")
	cmd.Flags().StringArrayVarP(&devices, "device", "d", nil, "already placed device as kind@x,y (repeatable)")
	cmd.Flags().StringVar(&scenario, "scenario", "", "YAML or TOML layout file (wind and devices)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 10, "number of placements to show (0 for all)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "concurrent evaluations (0 uses GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.ByCost, "by-cost", false, "rank by investment per attributed unit")
	return cmd
}
