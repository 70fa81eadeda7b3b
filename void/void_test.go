/*
 * void_test.go, part of cavity.
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
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/rmera/cavity"
	v3 "github.com/rmera/cavity/v3"
)

func mol(Te *testing.T, symbols []string, coords []float64) *cavity.Molecule {
	m, err := cavity.MakeMolecule(symbols, coords)
	if err != nil {
		Te.Fatal(err)
	}
	return m
}

func TestEmpty(Te *testing.T) {
	cfg := cavity.DefaultConfig()
	r := Estimate([]float64{1, 2, 3}, mol(Te, nil, nil), cfg)
	if r.Fraction != 1 || r.Occupied != 0 || r.Total == 0 {
		Te.Errorf("Expected an empty sphere, got %+v", r)
	}
	if math.Abs(r.Volume-v3.SphereVolume(cfg.ProbeRadius)) > 1e-9 {
		Te.Errorf("Volume %g, expected %g", r.Volume, v3.SphereVolume(cfg.ProbeRadius))
	}
}

func TestFullyOccupied(Te *testing.T) {
	cfg := cavity.DefaultConfig()
	cfg.Radii["Xe"] = 2.5
	for _, idx := range []bool{false, true} {
		cfg.SpatialIndex = idx
		r := Estimate([]float64{0, 0, 0}, mol(Te, []string{"Xe"}, []float64{0, 0, 0}), cfg)
		if r.Fraction != 0 || r.Volume != 0 || r.Occupied != r.Total {
			Te.Errorf("Expected a fully occupied sphere, got %+v", r)
		}
		if len(r.Warnings) != 0 {
			Te.Errorf("Unexpected warnings %v", r.Warnings)
		}
	}
}

func TestDegenerate(Te *testing.T) {
	cfg := cavity.DefaultConfig()
	cfg.GridStep = 5
	r := Estimate([]float64{0, 0, 0}, mol(Te, nil, nil), cfg)
	if !r.Degenerate || r.Total != 0 || r.Fraction != 0 || r.Volume != 0 {
		Te.Errorf("Expected a degenerate result, got %+v", r)
	}
	if len(r.Warnings) != 1 || !errors.Is(r.Warnings[0], cavity.ErrDegenerateGrid) {
		Te.Errorf("Expected an ErrDegenerateGrid warning, got %v", r.Warnings)
	}
}

func TestUnknownRadius(Te *testing.T) {
	cfg := cavity.DefaultConfig()
	r := Estimate([]float64{0, 0, 0}, mol(Te, []string{"Xx", "Xx", "C"}, []float64{1, 0, 0, -1, 0, 0, 0, 1, 0}), cfg)
	if len(r.Warnings) != 1 || !errors.Is(r.Warnings[0], cavity.ErrUnknownRadius) {
		Te.Errorf("Expected one ErrUnknownRadius warning, got %v", r.Warnings)
	}
	if r.Fraction <= 0 || r.Fraction >= 1 {
		Te.Errorf("Fraction out of range: %g", r.Fraction)
	}
}

// lens returns the volume of the intersection of two spheres of radii R and r with centers
// d apart, for |R-r| < d < R+r.
func lens(R, r, d float64) float64 {
	return math.Pi * (R + r - d) * (R + r - d) * (d*d + 2*d*r - 3*r*r + 2*d*R + 6*r*R - 3*R*R) / (12 * d)
}

func TestConvergence(Te *testing.T) {
	cfg := cavity.DefaultConfig()
	R := cfg.ProbeRadius
	exact := v3.SphereVolume(R) - lens(R, 1.70, 2.0)
	neigh := mol(Te, []string{"C"}, []float64{2.0, 0, 0})
	prev := math.Inf(1)
	for _, h := range []float64{0.2, 0.1, 0.05} {
		cfg.GridStep = h
		r := Estimate([]float64{0, 0, 0}, neigh, cfg)
		e := math.Abs(r.Volume - exact)
		Te.Logf("h=%g volume=%g exact=%g", h, r.Volume, exact)
		if e > 0.05*v3.SphereVolume(R) {
			Te.Errorf("h=%g: volume %g too far from %g", h, r.Volume, exact)
		}
		if h < 0.2 && e > prev+0.01*v3.SphereVolume(R) {
			Te.Errorf("h=%g: error grew from %g to %g", h, prev, e)
		}
		prev = e
	}
}

func TestIndexMatchesBruteForce(Te *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	syms := []string{"C", "N", "O", "H", "S", "Cl"}
	n := 40
	s := make([]string, n)
	c := make([]float64, 3*n)
	for i := range s {
		s[i] = syms[rnd.Intn(len(syms))]
		for j := 0; j < 3; j++ {
			c[3*i+j] = rnd.Float64()*8 - 4
		}
	}
	m := mol(Te, s, c)
	cfg := cavity.DefaultConfig()
	cfg.GridStep = 0.2
	for _, center := range [][]float64{{0, 0, 0}, {1, -1, 0.5}, {3, 3, 3}} {
		cfg.SpatialIndex = false
		a := Estimate(center, m, cfg)
		cfg.SpatialIndex = true
		b := Estimate(center, m, cfg)
		if a.Total != b.Total || a.Occupied != b.Occupied {
			Te.Errorf("Brute force %d/%d, k-d tree %d/%d", a.Occupied, a.Total, b.Occupied, b.Total)
		}
	}
}

func TestMarkers(Te *testing.T) {
	cfg := cavity.DefaultConfig()
	//The C-N pair is the whole molecule, so only the marker is left.
	cn := mol(Te, []string{"C", "N"}, []float64{0, 0, 0, 1.3, 0, 0})
	s, err := cavity.Ghost(cn, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Reduced.Len() != 1 || v3.Dist(s.Marker.Position, []float64{0.65, 0, 0}) > 1e-12 {
		Te.Fatalf("Unexpected substitution %v %v", s.Reduced.Symbols(), s.Marker.Position)
	}
	vols, err := Markers(s.Reduced, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	if len(vols) != 1 || vols[0].Fraction != 1 || vols[0].Index != 0 {
		Te.Errorf("Expected a single empty sphere, got %+v", vols)
	}
	//Markers don't occupy each other's spheres.
	two := mol(Te, []string{"Ba", "O", "Ba"}, []float64{0, 0, 0, 10, 0, 0, 0.5, 0, 0})
	vols, err = Markers(two, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	if len(vols) != 2 || vols[0].Fraction != 1 || vols[1].Fraction != 1 || vols[1].Index != 2 {
		Te.Errorf("Unexpected volumes %+v", vols)
	}
	if _, err = Markers(cn, cfg); !errors.Is(err, cavity.ErrNoMarker) {
		Te.Errorf("Expected ErrNoMarker, got %v", err)
	}
}
