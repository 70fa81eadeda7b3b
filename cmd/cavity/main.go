/*
 * main.go, part of cavity.
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

// cavity is the command line interface to the cavity library.
//
// Usage:
//
//	cavity ghost clusters/ --out ghosts/
//	cavity void ghosts/ --plot volumes.png
//	cavity energy ghosts/
//	cavity fragments cluster.xyz
//
// The configuration can be given in a YAML file (--config) with the keys default_threshold,
// halogen_threshold, sulfur_threshold, radii, default_radius, seed_elements, marker_symbol,
// probe_radius, marker_radius, grid_step, potential and spatial_index. Each key can also be set
// with a CAVITY_ environment variable (CAVITY_GRID_STEP=0.05).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCommand(ctx, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cavity:", err)
		stop()
		os.Exit(1)
	}
}
