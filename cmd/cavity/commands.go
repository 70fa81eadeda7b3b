/*
 * commands.go, part of cavity.
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

package main

import (
	"fmt"
	"os"

	"github.com/rmera/cavity"
	"github.com/rmera/cavity/batch"
	"github.com/rmera/cavity/chemgraph"
	"github.com/rmera/cavity/chemplot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) batchCommand(name string, mode batch.Mode, short string) *cobra.Command {
	var outDir, plotFile string
	var bins int
	cmd := &cobra.Command{
		Use:   name + " <dir|file>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := inputFiles(args)
			if err != nil {
				return err
			}
			if outDir != "" {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return err
				}
			}
			rep, err := batch.Run(a.ctx, batch.FileJobs(files), a.cfg, batch.Options{
				Workers: a.workers,
				Mode:    mode,
				OutDir:  outDir,
				Logger:  a.log,
				Metrics: a.metric,
			})
			if err != nil {
				return err
			}
			if err := rep.Write(a.out); err != nil {
				return err
			}
			if bins > 0 {
				for i := range rep.Groups {
					g := &rep.Groups[i]
					fmt.Fprintf(a.out, "Volume distribution for group %s:\n%s", g.Label, g.Histogram(bins))
				}
			}
			if plotFile == "" {
				return nil
			}
			if mode == batch.ModeEnergy {
				err = chemplot.EnergyBars(rep, plotFile)
			} else {
				err = chemplot.VolumeBoxes(rep, plotFile)
			}
			if err != nil {
				return err
			}
			a.log.Info("plot written", zap.String("file", plotFile))
			return nil
		},
	}
	if mode == batch.ModeGhost {
		cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory for the substituted structures")
	}
	if mode != batch.ModeEnergy {
		cmd.Flags().IntVar(&bins, "bins", 0, "print a histogram of the void volumes of each group with this many bins")
	}
	cmd.Flags().StringVar(&plotFile, "plot", "", "save a plot of the results to this file (png, svg, pdf)")
	return cmd
}

func (a *app) fragmentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fragments <file>",
		Short: "Show the bonded fragments of a structure and its central fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mol, err := cavity.XYZRead(args[0])
			if err != nil {
				return err
			}
			g := cavity.NewBondGraph(mol, a.cfg)
			top := chemgraph.Directed(g)
			cc := top.Components()
			fmt.Fprintf(a.out, "%s: %d atoms, %d bonds, %d fragments\n", mol.Name, mol.Len(), len(g.Bonds()), len(cc))
			for i, c := range cc {
				fmt.Fprintf(a.out, "  fragment %d: %d atoms %v\n", i+1, len(c), c)
			}
			pair, err := cavity.FindSeedPair(g, a.cfg)
			if err != nil {
				a.log.Warn("no central fragment", zap.Error(err))
				return nil
			}
			frag := cavity.Fragment(g, pair.Seeds()...)
			fmt.Fprintf(a.out, "central %s-%s pair: atoms %d-%d (%.3f A), central fragment: %v\n",
				a.cfg.SeedElements[0], a.cfg.SeedElements[1], pair.First, pair.Second, pair.Dist, frag)
			return nil
		},
	}
}
