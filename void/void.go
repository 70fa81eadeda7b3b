/*
 * void.go, part of cavity.
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

package void

import (
	"math"

	"github.com/rmera/cavity"
	v3 "github.com/rmera/cavity/v3"
)

// Result contains the void volume estimated around one point.
type Result struct {
	Center     []float64
	Volume     float64 //A^3
	Fraction   float64 //unoccupied fraction of the probe sphere, in [0,1]
	Total      int     //grid points inside the probe sphere
	Occupied   int     //grid points inside the probe sphere and inside some neighbor
	Degenerate bool    //true if no grid point fell inside the probe sphere
	Warnings   []error
}

// Volume is the Result for one marker atom of a molecule.
type Volume struct {
	Index int //index of the marker in the molecule
	Result
}

// Estimate samples the probe sphere of radius cfg.ProbeRadius around center on a cubic grid with
// step cfg.GridStep, and returns the volume of the part of the sphere not covered by the van der Waals
// spheres of the atoms in neighbors. A grid point is occupied if it is at or within the radius of any
// neighbor. Elements without a radius in cfg take cfg.DefaultRadius, and produce one ErrUnknownRadius
// warning per element. If the step is too coarse for any point to fall inside the sphere, the result
// has zero volume and fraction, the Degenerate flag, and an ErrDegenerateGrid warning.
// With cfg.SpatialIndex the neighbors are looked up in a k-d tree. The results are the
// same either way.
func Estimate(center []float64, neighbors *cavity.Molecule, cfg *cavity.Config) Result {
	R := cfg.ProbeRadius
	h := cfg.GridStep
	res := Result{Center: center}
	sites, warnings := prepare(center, neighbors, cfg)
	res.Warnings = warnings
	var occ occupier = bruteForce(sites)
	if cfg.SpatialIndex && len(sites) > 0 {
		occ = newTree(sites)
	}
	n := int(math.Floor(2*R/h + 1e-9))
	R2 := R * R
	lo, _ := v3.Cube(center, R)
	p := make([]float64, 3)
	for i := 0; i <= n; i++ {
		p[0] = lo[0] + float64(i)*h
		for j := 0; j <= n; j++ {
			p[1] = lo[1] + float64(j)*h
			for k := 0; k <= n; k++ {
				p[2] = lo[2] + float64(k)*h
				if v3.Dist2(p, center) > R2 {
					continue
				}
				res.Total++
				if occ.occupied(p) {
					res.Occupied++
				}
			}
		}
	}
	if res.Total == 0 {
		res.Degenerate = true
		err := cavity.NewError(cavity.ErrDegenerateGrid, false, "No grid point with step %g inside the %g A probe sphere", h, R)
		err.Decorate("void.Estimate")
		res.Warnings = append(res.Warnings, err)
		return res
	}
	res.Fraction = 1 - float64(res.Occupied)/float64(res.Total)
	res.Volume = v3.SphereVolume(R) * res.Fraction
	return res
}

// Markers estimates the void volume around every marker atom (atoms with cfg.MarkerSymbol) of
// mol, taking all the other atoms, except other markers, as neighbors.
// It returns an ErrNoMarker error if mol has no marker atoms.
func Markers(mol *cavity.Molecule, cfg *cavity.Config) ([]Volume, error) {
	markers := cavity.FindMarkers(mol, cfg)
	if len(markers) == 0 {
		err := cavity.NewError(cavity.ErrNoMarker, false, "No %s atom found", cfg.MarkerSymbol).InFile(mol.Name)
		err.Decorate("void.Markers")
		return nil, err
	}
	neighbors := mol.Without(markers)
	ret := make([]Volume, 0, len(markers))
	for _, m := range markers {
		c := make([]float64, 3)
		copy(c, mol.Coord(m))
		ret = append(ret, Volume{Index: m, Result: Estimate(c, neighbors, cfg)})
	}
	return ret, nil
}

// prepare assigns radii to the neighbors, and keeps only those that can reach the probe sphere.
func prepare(center []float64, mol *cavity.Molecule, cfg *cavity.Config) ([]site, []error) {
	var warnings []error
	var sites []site
	warned := make(map[string]bool)
	for i, at := range mol.Atoms {
		r, ok := cfg.Radius(at.Symbol)
		if !ok {
			r = cfg.DefaultRadius
			if !warned[at.Symbol] {
				warned[at.Symbol] = true
				err := cavity.NewError(cavity.ErrUnknownRadius, false, "No radius for element %q, using %g A", at.Symbol, r).InFile(mol.Name)
				err.Decorate("void.Estimate")
				warnings = append(warnings, err)
			}
		}
		pos := mol.Coord(i)
		//a neighbor farther than this can't cover any point of the sphere.
		reach := cfg.ProbeRadius + r + 1e-6
		if v3.Dist2(pos, center) > reach*reach {
			continue
		}
		sites = append(sites, site{pos: pos, r2: r * r})
	}
	return sites, warnings
}

type occupier interface {
	occupied(p []float64) bool
}

// bruteForce checks every site for each point.
type bruteForce []site

func (b bruteForce) occupied(p []float64) bool {
	for _, s := range b {
		if v3.Dist2(p, s.pos) <= s.r2 {
			return true
		}
	}
	return false
}
