/*
 * bonds.go, part of cavity.
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
	"gonum.org/v1/gonum/mat"
)

// Bond is a directed edge of a BondGraph: atom To is within the bonding threshold
// of its element from atom From.
type Bond struct {
	From, To int
	Dist     float64
}

// BondGraph is the connectivity of a molecule under a distance criterion.
// Atom i is bonded to atom j if they are closer than the threshold for the element
// of j. Since the threshold depends only on the target, the relation is directional:
// a C-Cl pair 2.0 A apart gives a C->Cl bond but no Cl->C bond.
// All pairwise distances are computed once, when the graph is built.
type BondGraph struct {
	mol  *Molecule
	dist *mat.SymDense
	thr  []float64 //thr[j] is the bonding threshold towards atom j
}

// NewBondGraph computes the distance matrix of mol and returns its bond graph under the
// thresholds in cfg. It takes O(N^2) time and memory.
func NewBondGraph(mol *Molecule, cfg *Config) *BondGraph {
	B := &BondGraph{mol: mol}
	B.dist = mol.Coords.DistMatrix()
	B.thr = make([]float64, mol.Len())
	for j, at := range mol.Atoms {
		B.thr[j] = cfg.Threshold(at.Symbol)
	}
	return B
}

// Molecule returns the molecule the graph was built for.
func (B *BondGraph) Molecule() *Molecule {
	return B.mol
}

// Len returns the number of atoms in the graph.
func (B *BondGraph) Len() int {
	return len(B.thr)
}

// Dist returns the distance between atoms i and j.
func (B *BondGraph) Dist(i, j int) float64 {
	return B.dist.At(i, j)
}

// Bonded returns true if there is a bond from atom i to atom j. An atom is never bonded to itself.
func (B *BondGraph) Bonded(i, j int) bool {
	if i == j {
		return false
	}
	return B.dist.At(i, j) < B.thr[j]
}

// Neighbors returns, in ascending order, the atoms j for which there is a bond i->j.
func (B *BondGraph) Neighbors(i int) []int {
	ret := make([]int, 0, 4)
	for j := 0; j < B.Len(); j++ {
		if B.Bonded(i, j) {
			ret = append(ret, j)
		}
	}
	return ret
}

// Bonds returns all the directed bonds in the graph, sorted by origin and then by target.
func (B *BondGraph) Bonds() []Bond {
	bonds := make([]Bond, 0, 2*B.Len())
	for i := 0; i < B.Len(); i++ {
		for _, j := range B.Neighbors(i) {
			bonds = append(bonds, Bond{From: i, To: j, Dist: B.Dist(i, j)})
		}
	}
	return bonds
}
