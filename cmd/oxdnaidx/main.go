/*
 * main.go, part of goxdna.
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

//oxdnaidx builds the sidecar byte-offset index of an oxDNA trajectory file,
//so later random access by analysis tools does not pay for a full scan, and
//reports what it found. It can also plot the energy components of the whole
//trajectory.
package main

import (
	"flag"
	"log"

	"github.com/rmera/goxdna"
	"github.com/rmera/goxdna/trajplot"
	"go.uber.org/zap"
)

func main() {
	var (
		chunk    = flag.Int("chunk", oxdna.DefaultChunkSize, "configurations to index per read")
		toponame = flag.String("top", "", "topology file to check against the trajectory")
		plotname = flag.String("plot", "", "write an energy plot to this file")
		debug    = flag.Bool("debug", false, "verbose logging")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: oxdnaidx [flags] trajectory-file")
	}
	trajname := flag.Arg(0)

	logger, err := zap.NewProduction()
	if *debug {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	traj, err := oxdna.NewTrajectory(trajname, *chunk)
	if err != nil {
		sugar.Fatalw("open trajectory", "file", trajname, "err", err)
	}
	defer traj.Close()
	n, err := traj.Len()
	if err != nil {
		sugar.Fatalw("index trajectory", "file", trajname, "err", err)
	}
	sugar.Infow("trajectory indexed", "file", trajname, "configurations", n)

	first, err := traj.Conf(0)
	if err != nil {
		sugar.Fatalw("read first configuration", "err", err)
	}
	last, err := traj.Conf(n - 1)
	if err != nil {
		sugar.Fatalw("read last configuration", "err", err)
	}
	sugar.Infow("trajectory range",
		"nucleotides", first.Len(),
		"first_time", first.Time,
		"last_time", last.Time,
		"last_total_energy", last.Energy[2],
	)

	if *toponame != "" {
		topo, err := oxdna.NewTopology(*toponame)
		if err != nil {
			sugar.Fatalw("read topology", "file", *toponame, "err", err)
		}
		if topo.NMonomers != first.Len() {
			sugar.Fatalw("topology does not match trajectory",
				"topology_monomers", topo.NMonomers, "trajectory_nucleotides", first.Len())
		}
		sugar.Infow("topology matches", "strands", topo.Len(), "monomers", topo.NMonomers)
	}

	if *plotname != "" {
		if err := trajplot.TrajectoryEnergyPlot(trajname, *plotname, *chunk); err != nil {
			sugar.Fatalw("energy plot", "file", *plotname, "err", err)
		}
		sugar.Infow("energy plot written", "file", *plotname)
	}
}
