/*
 * root.go, part of cavity.
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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/rmera/cavity"
	"github.com/rmera/cavity/batch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app holds the state shared by all the subcommands, set up before any of them runs.
type app struct {
	configPath  string
	logLevel    string
	logFormat   string
	workers     int
	metricsFile string

	v      *viper.Viper
	cfg    *cavity.Config
	log    *zap.Logger
	out    io.Writer
	ctx    context.Context
	metric *batch.Metrics
}

func newRootCommand(ctx context.Context, out io.Writer) *cobra.Command {
	a := &app{v: newViper(), out: out, ctx: ctx}
	cmd := &cobra.Command{
		Use:   "cavity",
		Short: "Measures the cavity left by the central fragment of molecular clusters",
		Long: `cavity replaces the central C-N fragment of each structure in a cluster by a
marker atom, and measures the empty space around the marker (void volume) and a
pairwise repulsive potential between the marker and the rest of the cluster.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.finish()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "console", "log format (console, json)")
	pf.IntVarP(&a.workers, "workers", "w", 0, "concurrent workers (default: number of CPUs)")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file when done")
	pf.Float64("grid-step", 0, "grid step for the void volume, in A")
	pf.Float64("probe-radius", 0, "radius of the sphere sampled around the marker, in A")
	pf.String("potential", "", "pair potential: repulsive or lj126")
	pf.Bool("spatial-index", false, "use a k-d tree to find the neighbors of grid points")
	for key, flag := range map[string]string{
		"grid_step":     "grid-step",
		"probe_radius":  "probe-radius",
		"potential":     "potential",
		"spatial_index": "spatial-index",
	} {
		//only flags actually given override the configuration.
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("cavity: can't bind flag %s: %v", flag, err))
		}
	}
	cmd.AddCommand(
		a.batchCommand("ghost", batch.ModeGhost, "Replace the central fragment of each structure by a marker and measure around it"),
		a.batchCommand("void", batch.ModeVoid, "Measure the void volume around every marker of substituted structures"),
		a.batchCommand("energy", batch.ModeEnergy, "Rank substituted structures by the potential on their marker"),
		a.fragmentsCommand(),
	)
	return cmd
}

func (a *app) setup() error {
	var err error
	a.log, err = newLogger(a.logLevel, a.logFormat)
	if err != nil {
		return err
	}
	a.cfg, err = loadConfig(a.v, a.configPath)
	if err != nil {
		return err
	}
	if a.metricsFile != "" {
		a.metric = batch.NewMetrics()
	}
	a.log.Debug("configuration loaded", zap.Any("config", a.cfg))
	return nil
}

func (a *app) finish() error {
	defer a.log.Sync()
	if a.metric == nil {
		return nil
	}
	if err := a.metric.WriteToTextfile(a.metricsFile); err != nil {
		return fmt.Errorf("can't write metrics: %w", err)
	}
	a.log.Info("metrics written", zap.String("file", a.metricsFile))
	return nil
}

// inputFiles expands the arguments into a sorted list of XYZ files. Directories
// contribute all the (possibly compressed) XYZ files directly in them.
func inputFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		st, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !st.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		var dirfiles []string
		for _, e := range entries {
			if !e.IsDir() && cavity.IsXYZName(e.Name()) {
				dirfiles = append(dirfiles, filepath.Join(arg, e.Name()))
			}
		}
		sort.Strings(dirfiles)
		files = append(files, dirfiles...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no XYZ files found in %v", args)
	}
	return files, nil
}
