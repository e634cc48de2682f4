package main

import (
	"fmt"

	"co2-twin/internal/capture"
	"co2-twin/internal/core"
	"co2-twin/internal/report"
	"co2-twin/internal/twin"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type runOutput struct {
	Wind    core.Wind        `json:"wind"`
	Devices []capture.Device `json:"devices"`
	Stats   twin.Stats       `json:"stats"`
	Field   [][]float64      `json:"field,omitempty"`
}

func newRunCmd(c *cli) *cobra.Command {
	var (
		wind     string
		devices  []string
		scenario string
		showMap  bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate a device layout and print the dashboard",
		Example: `  twin run --wind east --device scrubber@5,12 --device biofilter@5,6
  twin run --scenario layout.yaml --map`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.buildScenario(scenario, wind, devices)
			if err != nil {
				return err
			}
			res := s.Evaluate()
			out := cmd.OutOrStdout()
			if c.jsonOut {
				o := runOutput{Wind: s.Wind(), Devices: s.Devices(), Stats: res.Stats}
				if o.Devices == nil {
					o.Devices = []capture.Device{}
				}
				if showMap {
					o.Field = rows(res.Field)
				}
				return writeJSON(out, o)
			}
			view := report.Dashboard(res.Stats, s.Wind())
			if showMap {
				view = lipgloss.JoinHorizontal(lipgloss.Top,
					report.Heatmap(res.Field, s.Sources(), s.Devices()), "  ", view)
			}
			_, err = fmt.Fprintln(out, view)
			return err
		},
	}
	cmd.Flags().StringVarP(&wind, "wind", "w", "", "wind direction (calm, north, south, east, west)")
	cmd.Flags().StringArrayVarP(&devices, "device", "d", nil, "device to place as kind@x,y (repeatable)")
	cmd.Flags().StringVar(&scenario, "scenario", "", "YAML or TOML layout file (wind and devices)")
	cmd.Flags().BoolVar(&showMap, "map", false, "include the concentration map")
	return cmd
}

func rows(g *core.Grid) [][]float64 {
	out := make([][]float64, g.H)
	values := g.Values()
	for y := range out {
		out[y] = append([]float64(nil), values[y*g.W:(y+1)*g.W]...)
	}
	return out
}
