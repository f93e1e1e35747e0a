/*
 * plots.go, part of godensity.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * godensity is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package densplot draws the standard plots of a potential analysis: the
//convergence of a cube sweep and the planar-average profile of the field.
package densplot

import (
	"fmt"
	"image/color"

	density "github.com/rmera/godensity"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//Convergence plots the variance of a cube sweep against the cube size, the
//picture an analyst looks at to spot where the sampling cube grows out of
//the plateau. The plot is saved as plotname.png.
func Convergence(points []density.SweepPoint, title, plotname string) error {
	if len(points) == 0 {
		return fmt.Errorf("densplot: given an empty sweep")
	}
	p := basicPlot(title, "Cube size (grid points)", "Variance")
	pts := make(plotter.XYs, len(points))
	for i, v := range points {
		pts[i].X = float64(v.Size)
		pts[i].Y = v.Variance
	}
	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	l.Color = color.RGBA{B: 255, A: 255}
	s.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	p.Add(l, s)
	return p.Save(5*vg.Inch, 5*vg.Inch, fmt.Sprintf("%s.png", plotname))
}

//Profile plots a planar average of the field against distance along the
//axis, spacing being the grid resolution along that axis in Angstrom. The
//plot is saved as plotname.png.
func Profile(avg []float64, spacing float64, title, plotname string) error {
	if len(avg) == 0 {
		return fmt.Errorf("densplot: given an empty profile")
	}
	if spacing <= 0 {
		return fmt.Errorf("densplot: non-positive grid spacing %v", spacing)
	}
	p := basicPlot(title, "Distance (A)", "Planar average (eV)")
	pts := make(plotter.XYs, len(avg))
	for i, v := range avg {
		pts[i].X = float64(i) * spacing
		pts[i].Y = v
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.Color = color.RGBA{B: 255, A: 255}
	p.Add(l)
	return p.Save(5*vg.Inch, 5*vg.Inch, fmt.Sprintf("%s.png", plotname))
}
