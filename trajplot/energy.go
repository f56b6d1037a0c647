/*
 * energy.go, part of goxdna.
 *
 * Copyright 2023 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

//Package trajplot plots quantities along an oxDNA trajectory.
package trajplot

import (
	"fmt"
	"image/color"

	"github.com/rmera/goxdna"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var energyNames = [3]string{"Potential", "Kinetic", "Total"}

var energyColors = [3]color.RGBA{
	{R: 255, A: 255},
	{G: 180, A: 255},
	{B: 255, A: 255},
}

//EnergyPlot plots the three per-nucleotide energy components of the given
//configurations against simulation time, and saves the plot to filename
//(the format is deduced from the extension, as gonum/plot does).
func EnergyPlot(confs []*oxdna.Configuration, filename string) error {
	if len(confs) == 0 {
		return fmt.Errorf("Given no configurations to plot")
	}
	p := plot.New()
	p.Title.Text = "Energy per nucleotide"
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Energy"
	p.Add(plotter.NewGrid())
	for comp := 0; comp < 3; comp++ {
		pts := make(plotter.XYs, len(confs))
		for i, conf := range confs {
			if len(conf.Energy) != 3 {
				return fmt.Errorf("Configuration %d has %d energy values, not 3", i, len(conf.Energy))
			}
			pts[i].X = float64(conf.Time)
			pts[i].Y = conf.Energy[comp]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Color = energyColors[comp]
		p.Add(line)
		p.Legend.Add(energyNames[comp], line)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

//TrajectoryEnergyPlot decodes every configuration of the trajectory in
//trajname and plots its energies with EnergyPlot. It reads chunk
//configurations per trip to the file.
func TrajectoryEnergyPlot(trajname, plotname string, chunk int) error {
	if chunk <= 0 {
		chunk = oxdna.DefaultChunkSize
	}
	var confs []*oxdna.Configuration
	var offset int64
	for {
		chunkConfs, err := oxdna.ReadConfs(trajname, offset, chunk)
		if err != nil {
			return err
		}
		if len(chunkConfs) == 0 {
			break
		}
		for _, c := range chunkConfs {
			confs = append(confs, c.Conf)
		}
		offset = chunkConfs[len(chunkConfs)-1].EndOffset
	}
	return EnergyPlot(confs, plotname)
}
