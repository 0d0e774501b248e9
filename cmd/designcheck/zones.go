package main

import (
	"fmt"
	"strconv"
	"strings"

	"designzone/internal/scene"
	"designzone/internal/zone"

	"github.com/spf13/cobra"
)

type zoneFailure struct {
	Zone  string `json:"zone"`
	Error string `json:"error"`
}

type pointReport struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Top    string   `json:"top,omitempty"`
	Inside []string `json:"inside"`
}

type zonesReport struct {
	Rendered []string      `json:"rendered"`
	Failed   []zoneFailure `json:"failed"`
	Point    *pointReport  `json:"point,omitempty"`
}

func newZonesCmd(a *app) *cobra.Command {
	var (
		zonesPath string
		point     string
	)

	cmd := &cobra.Command{
		Use:   "zones",
		Short: "Render a zone configuration and report which zones could be displayed",
		Long: `Renders every zone of a zones file onto an in-memory surface. Zones that
cannot be displayed are reported, never fatal. With --point, also reports which
zones contain the point and which visible zone is on top.

Example:
  designcheck zones --zones zones.yaml --point 120,80`,
		RunE: func(cmd *cobra.Command, args []string) error {
			zones, err := readZones(zonesPath)
			if err != nil {
				return err
			}

			m := zone.NewManager(a.cfg.ZoneOptions(a.logger)...)
			renderErr := m.RenderAllZones(zones, scene.NewLayer())

			report := zonesReport{
				Rendered: m.Zones(),
				Failed:   []zoneFailure{},
			}
			for _, f := range zone.RenderFailures(renderErr) {
				report.Failed = append(report.Failed, zoneFailure{Zone: f.ZoneID, Error: f.Err.Error()})
			}

			if point != "" {
				x, y, err := parsePoint(point)
				if err != nil {
					return err
				}
				p := &pointReport{X: x, Y: y, Top: m.ZoneAt(x, y), Inside: []string{}}
				for _, id := range report.Rendered {
					if m.IsPointInZone(id, x, y) {
						p.Inside = append(p.Inside, id)
					}
				}
				report.Point = p
			}

			return writeJSON(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVarP(&zonesPath, "zones", "z", "", "zones YAML file")
	cmd.Flags().StringVarP(&point, "point", "p", "", "point to hit-test, as x,y")
	_ = cmd.MarkFlagRequired("zones")
	return cmd
}

// parsePoint: "x,y"
func parsePoint(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return 0, 0, fmt.Errorf("invalid point %q: want x,y", s)
	}
	return x, y, nil
}
