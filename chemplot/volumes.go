/*
 * volumes.go, part of cavity.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * cavity is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package chemplot

import (
	"fmt"

	"github.com/rmera/cavity/batch"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
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

// VolumeBoxes draws one box per group of the report, with the distribution of its void volumes,
// and saves the plot to plotname. The format is given by the extension of plotname (png, svg, pdf...).
func VolumeBoxes(rep *batch.Report, plotname string) error {
	if len(rep.Groups) == 0 {
		return fmt.Errorf("VolumeBoxes: No void volumes to plot")
	}
	p := basicPlot("Void volumes", "Group", "Volume (A^3)")
	w := vg.Points(20)
	names := make([]string, 0, len(rep.Groups))
	for i, g := range rep.Groups {
		b, err := plotter.NewBoxPlot(w, float64(i), plotter.Values(g.Volumes()))
		if err != nil {
			return fmt.Errorf("VolumeBoxes: group %s: %w", g.Label, err)
		}
		p.Add(b)
		names = append(names, g.Label)
	}
	p.NominalX(names...)
	//about 3 cm per group, but never narrower than 8 cm.
	width := vg.Centimeter * vg.Length(3*len(names))
	if width < 8*vg.Centimeter {
		width = 8 * vg.Centimeter
	}
	return p.Save(width, 10*vg.Centimeter, plotname)
}

// EnergyBars draws the energy ranking of the report as a bar chart, from the lowest
// to the highest energy, and saves it to plotname.
func EnergyBars(rep *batch.Report, plotname string) error {
	if len(rep.Energies) == 0 {
		return fmt.Errorf("EnergyBars: No energies to plot")
	}
	p := basicPlot("Potential on the marker", "", "Energy")
	vals := make(plotter.Values, len(rep.Energies))
	names := make([]string, len(rep.Energies))
	for i, e := range rep.Energies {
		vals[i] = e.Energy
		names[i] = e.Job
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(15))
	if err != nil {
		return fmt.Errorf("EnergyBars: %w", err)
	}
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 1.2
	p.X.Tick.Label.XAlign = draw.XRight
	width := vg.Centimeter * vg.Length(len(names))
	if width < 8*vg.Centimeter {
		width = 8 * vg.Centimeter
	}
	return p.Save(width, 10*vg.Centimeter, plotname)
}
