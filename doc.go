/*
 * doc.go, part of cavity.
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

/*
Package cavity locates the central molecule of a molecular crystal, replaces it with a
single "ghost" marker atom, and measures the cavity left behind.



	**cavity Capabilities**


    Reads/writes XYZ files, plain or compressed with zstd or gzip.

    Builds a distance-based bond graph where the bonding threshold depends
	on the element of the target atom (halogens and sulfur get their own thresholds),
	so the relation can be directional.

    Selects the seed pair (by default a C-N pair) closest to the centroid of the
	structure, and flood-fills the bond graph from each seed to obtain the
	central fragment.

    Removes the fragment and appends a marker atom at the midpoint of the seeds.

    Estimates the void volume around the marker by grid sampling (package void)
	and the Lennard-Jones-like repulsion felt by the marker (package lj).

    Processes many structures concurrently and aggregates the results (package batch).

All the tables (bond thresholds, van der Waals radii, marker parameters) live in a
Config value that is passed explicitly to every operation, so several configurations
can be used concurrently.

Recoverable conditions (unknown elements, degenerate sampling grids) are not fatal.
They are returned as warnings, i.e. non-critical errors wrapping the sentinel errors of
this package, so callers can log them.
*/
package cavity
