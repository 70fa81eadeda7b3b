/*
 * lj.go, part of cavity.
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

package lj

import (
	"math"

	"github.com/rmera/cavity"
	v3 "github.com/rmera/cavity/v3"
)

// Term is the contribution of one neighbor to the potential on the marker.
type Term struct {
	Index   int //index of the neighbor in its molecule
	Symbol  string
	Dist    float64
	Rho     float64 //sum of the radii of the neighbor and the marker
	Epsilon float64 //geometric mean of both radii. Not used in the energy.
	Energy  float64
}

// Result is the potential on a marker.
type Result struct {
	Sum      float64
	Terms    []Term //only for neighbors with a known radius and non-zero distance
	Excluded int    //neighbors on top of the marker, which are left out of the sum
	Warnings []error
}

// Pair returns the energy of a pair with the contact distance rho at the distance d, in the given mode.
// It is 0 for d >= rho. d must be positive.
func Pair(rho, d float64, mode cavity.PotentialMode) float64 {
	if d >= rho {
		return 0
	}
	r6 := math.Pow(rho/d, 6)
	if mode == cavity.LJ126 {
		return r6 * (r6 - 1) //stays +Inf, not NaN, when r6 overflows.
	}
	return r6 * r6
}

// Sum returns the sum of the pair potentials between marker and all the atoms in neighbors.
// The contact distance for each pair is the sum of the neighbor's radius (from cfg) and the marker's
// radius. Neighbors with elements not in the radius table are skipped, with one ErrUnknownRadius warning
// per element. Neighbors exactly on the marker are also skipped, and counted in Excluded, so the sum
// is always finite. The form of the potential is given by cfg.Potential.
func Sum(marker *cavity.Marker, neighbors *cavity.Molecule, cfg *cavity.Config) Result {
	var res Result
	warned := make(map[string]bool)
	for i, at := range neighbors.Atoms {
		r, ok := cfg.Radius(at.Symbol)
		if !ok {
			if !warned[at.Symbol] {
				warned[at.Symbol] = true
				err := cavity.NewError(cavity.ErrUnknownRadius, false, "No radius for element %q, atom skipped", at.Symbol).InFile(neighbors.Name)
				err.Decorate("lj.Sum")
				res.Warnings = append(res.Warnings, err)
			}
			continue
		}
		d := v3.Dist(neighbors.Coord(i), marker.Position)
		if d == 0 {
			res.Excluded++
			continue
		}
		t := Term{
			Index:   i,
			Symbol:  at.Symbol,
			Dist:    d,
			Rho:     r + marker.Radius,
			Epsilon: math.Sqrt(r * marker.Radius),
		}
		t.Energy = Pair(t.Rho, d, cfg.Potential)
		res.Sum += t.Energy
		res.Terms = append(res.Terms, t)
	}
	return res
}

// Marker evaluates the potential on the first marker atom of mol, with all the non-marker atoms
// as neighbors. It returns an ErrNoMarker error if mol contains no marker.
func Marker(mol *cavity.Molecule, cfg *cavity.Config) (Result, error) {
	m, _, err := cavity.FirstMarker(mol, cfg)
	if err != nil {
		return Result{}, err
	}
	neighbors := mol.Without(cavity.FindMarkers(mol, cfg))
	return Sum(m, neighbors, cfg), nil
}
