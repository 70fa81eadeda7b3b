/*
 * fragment.go, part of cavity.
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

package cavity

import (
	"math"
	"sort"

	v3 "github.com/rmera/cavity/v3"
)

// SeedPair is a pair of bonded atoms of the elements in Config.SeedElements
// (by default, a carbon First and a nitrogen Second).
type SeedPair struct {
	First, Second int
	Dist          float64 //distance between the seeds
}

// Seeds returns the indexes of both seeds.
func (S SeedPair) Seeds() []int {
	return []int{S.First, S.Second}
}

// Midpoint returns the point halfway between both seeds in mol.
func (S SeedPair) Midpoint(mol *Molecule) []float64 {
	return v3.Midpoint(mol.Coord(S.First), mol.Coord(S.Second))
}

// FindSeedPair returns the central seed pair of the molecule in g: among all
// the ordered pairs (i,j) where i has the first seed element, j the second one, and
// both are closer than cfg.DefaultThreshold, the one whose midpoint is closest to the centroid of
// the molecule. Ties go to the pair that comes first in (i,j) order, so the result
// is stable. It returns an ErrNoSeedPair error if there are no candidates.
func FindSeedPair(g *BondGraph, cfg *Config) (SeedPair, error) {
	mol := g.Molecule()
	first := mol.Indexes(cfg.SeedElements[0])
	second := mol.Indexes(cfg.SeedElements[1])
	var best SeedPair
	bestd := math.Inf(1)
	found := false
	if len(first) == 0 || len(second) == 0 {
		return best, noSeeds(mol, cfg)
	}
	center := mol.Centroid()
	for _, i := range first {
		for _, j := range second {
			if i == j {
				continue
			}
			d := g.Dist(i, j)
			if d >= cfg.DefaultThreshold {
				continue
			}
			m := v3.Midpoint(mol.Coord(i), mol.Coord(j))
			dc := v3.Dist(m, center)
			if dc < bestd {
				bestd = dc
				best = SeedPair{First: i, Second: j, Dist: d}
				found = true
			}
		}
	}
	if !found {
		return best, noSeeds(mol, cfg)
	}
	return best, nil
}

func noSeeds(mol *Molecule, cfg *Config) error {
	err := NewError(ErrNoSeedPair, false, "No central %s-%s pair found within %.2f A", cfg.SeedElements[0], cfg.SeedElements[1], cfg.DefaultThreshold).InFile(mol.Name)
	err.Decorate("FindSeedPair")
	return err
}

// Reach returns the indexes of all the atoms reachable from start in g, start included,
// in the order they are found. It uses an explicit stack, so there is no recursion
// depth limit.
func Reach(g Bonder, start int) []int {
	visited := make([]bool, g.Len())
	return reach(g, start, visited)
}

// reach does the depth-first search from start, skipping (and marking) the atoms in
// visited.
func reach(g Bonder, start int, visited []bool) []int {
	var found []int
	stack := []int{start}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[idx] {
			continue
		}
		visited[idx] = true
		found = append(found, idx)
		for j := 0; j < g.Len(); j++ {
			if !visited[j] && g.Bonded(idx, j) {
				stack = append(stack, j)
			}
		}
	}
	return found
}

// Fragment returns, in ascending order, the union of the atoms reachable from each of the
// seeds. The seeds need not be connected to each other.
func Fragment(g Bonder, seeds ...int) []int {
	visited := make([]bool, g.Len())
	var frag []int
	for _, s := range seeds {
		frag = append(frag, reach(g, s, visited)...)
	}
	sort.Ints(frag)
	return frag
}
