package main

import (
	"fmt"

	"designzone/internal/scene"
	"designzone/internal/validation"
	"designzone/internal/zone"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newValidateCmd(a *app) *cobra.Command {
	var (
		designPath string
		zonesPath  string
		zoneID     string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a design against the configured brand rules",
		Long: `Loads a design (JSON nodes), optionally keeps its content inside a zone,
and prints the validation result as JSON. Exits 1 when the design has errors;
complexity warnings never fail the command.

Example:
  designcheck validate --design design.json --config brand.yaml
  designcheck validate --design design.json --zones zones.yaml --zone front`,
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := readDesign(designPath)
			if err != nil {
				return err
			}

			layer := scene.NewLayer()
			content := make([]*scene.Node, 0, len(nodes))
			for _, d := range nodes {
				n := scene.FromDesign(d)
				layer.Add(n)
				content = append(content, n)
			}

			if zonesPath != "" {
				if err := a.placeInZone(layer, content, zonesPath, zoneID); err != nil {
					return err
				}
			}

			result := validation.ValidateDesign(layer.DesignNodes(), a.cfg.Validation)
			a.logger.Debug("design validated",
				zap.Int("nodes", len(nodes)),
				zap.Int("errors", len(result.Errors)),
				zap.Int("warnings", len(result.Warnings)),
			)

			if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			if !result.IsValid {
				return errDesignInvalid
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&designPath, "design", "d", "", "design JSON file")
	cmd.Flags().StringVar(&zonesPath, "zones", "", "zones YAML file")
	cmd.Flags().StringVar(&zoneID, "zone", "", "zone to keep the content inside (needs --zones)")
	_ = cmd.MarkFlagRequired("design")
	return cmd
}

// placeInZone renders the zones behind the content and, if zoneID is set,
// clamps every top-level content node into that zone
func (a *app) placeInZone(layer *scene.Layer, content []*scene.Node, zonesPath, zoneID string) error {
	zones, err := readZones(zonesPath)
	if err != nil {
		return err
	}

	m := zone.NewManager(a.cfg.ZoneOptions(a.logger)...)
	// failures are logged by the manager; the rest still render
	_ = m.RenderAllZones(zones, layer)

	if zoneID == "" {
		return nil
	}
	if m.ZoneHandle(zoneID) == nil {
		return fmt.Errorf("zone %q is not rendered", zoneID)
	}

	moved := 0
	for _, n := range content {
		if m.EnforceConstraints(n, zoneID) {
			moved++
		}
	}
	a.logger.Info("content kept inside zone", zap.String("zone_id", zoneID), zap.Int("moved", moved))
	return nil
}
