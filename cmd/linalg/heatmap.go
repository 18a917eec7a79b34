// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvlath/matrix"
	"github.com/katalvlaran/lvlath/matrixio"
)

// heatColors is the number of palette steps used for the heat map.
const heatColors = 16

// gridXYZ adapts a float64 matrix to plotter.GridXYZ: column j is X = j,
// row i is Y = rows-1-i so row 0 is drawn on top.
type gridXYZ struct {
	m *matrix.Matrix[float64]
}

func (g gridXYZ) Dims() (c, r int)   { return g.m.Cols(), g.m.Rows() }
func (g gridXYZ) X(c int) float64    { return float64(c) }
func (g gridXYZ) Y(r int) float64    { return float64(r) }
func (g gridXYZ) Z(c, r int) float64 { return g.m.Row(g.m.Rows() - 1 - r)[c] }

func newHeatmapCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Render a matrix as a heat map image (png, svg, pdf by extension)",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load()
			if err != nil {
				return err
			}

			return runHeatmap(a, doc)
		},
	}
	addMatrixFlag(cmd.Flags())
	cmd.Flags().String(flagOut, "", "output image path")
	cmd.Flags().Float64(flagSize, 4, "image side in inches")

	return cmd
}

func runHeatmap(a *app, doc *matrixio.Document) error {
	name := a.v.GetString(flagMatrix)
	path := a.v.GetString(flagOut)
	if path == "" {
		return fmt.Errorf("--%s is required", flagOut)
	}
	m, err := matrixio.Matrix[float64](doc, name)
	if err != nil {
		return err
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return matrix.InvalidOperationf("cannot plot a %dx%d matrix", m.Rows(), m.Cols())
	}

	p := plot.New()
	p.Title.Text = name
	p.Add(plotter.NewHeatMap(gridXYZ{m: m}, palette.Heat(heatColors, 1)))

	side := vg.Length(a.v.GetFloat64(flagSize)) * vg.Inch
	if err := p.Save(side, side, path); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{"matrix": name, "out": path}).Info("heat map written")

	return nil
}
