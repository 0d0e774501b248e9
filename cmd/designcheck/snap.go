package main

import (
	"fmt"
	"strconv"

	"designzone/internal/geometry"

	"github.com/spf13/cobra"
)

func newSnapCmd(a *app) *cobra.Command {
	var grid float64

	cmd := &cobra.Command{
		Use:   "snap x y",
		Short: "Snap a point to the grid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid x %q", args[0])
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid y %q", args[1])
			}

			if !cmd.Flags().Changed("grid") {
				grid = a.cfg.GridSize
			}
			sx, sy := geometry.SnapToGrid(x, y, grid)
			return writeJSON(cmd.OutOrStdout(), geometry.Point{X: sx, Y: sy})
		},
	}

	cmd.Flags().Float64VarP(&grid, "grid", "g", 0, "grid size (default from config)")
	return cmd
}
