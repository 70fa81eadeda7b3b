/*
 * atom.go, part of cavity.
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
	"fmt"

	v3 "github.com/rmera/cavity/v3"
)

//Atom contains the information read for one atom, except for the coordinates, which
//are in the coordinate matrix of the Molecule.
type Atom struct {
	Symbol string
	ID     int //position in the source file, starting from 1. 0 for synthetic atoms.
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	ret := *A
	return &ret
}

// Molecule is an ordered set of atoms and their coordinates.
// Atom i has its coordinates in row i of Coords. The order is that of the source
// and it is preserved by every operation that derives a new Molecule.
// A Molecule is not modified once built, all the operations return new ones.
type Molecule struct {
	Atoms  []*Atom
	Coords *v3.Matrix
	Name   string //source file or label, may be empty.
}

// NewMolecule builds a Molecule from atoms and coordinates. It returns an error if the number of
// atoms and coordinates don't match.
func NewMolecule(ats []*Atom, coords *v3.Matrix) (*Molecule, error) {
	if coords == nil {
		coords = v3.Zeros(0)
	}
	if len(ats) != coords.NVecs() {
		return nil, NewError(ErrParse, true, "Inconsistent atoms/coordinates: Atoms %d, coords: %d", len(ats), coords.NVecs())
	}
	return &Molecule{Atoms: ats, Coords: coords}, nil
}

// MakeMolecule builds a Molecule from a slice of symbols and a flat slice of coordinates
// (x1,y1,z1,x2...). Handy for building structures in code.
func MakeMolecule(symbols []string, coords []float64) (*Molecule, error) {
	if len(symbols)*3 != len(coords) {
		return nil, NewError(ErrParse, true, "%d symbols but %d coordinates", len(symbols), len(coords))
	}
	ats := make([]*Atom, len(symbols))
	for i, s := range symbols {
		ats[i] = &Atom{Symbol: s, ID: i + 1}
	}
	c := make([]float64, len(coords))
	copy(c, coords)
	m, err := v3.NewMatrix(c)
	if err != nil {
		return nil, errDecorate(err, "MakeMolecule")
	}
	return NewMolecule(ats, m)
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns the Atom corresponding to the index i. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() {
		panic(fmt.Sprintf("Molecule: Requested Atom %d out of bounds (%d)", i, M.Len()))
	}
	return M.Atoms[i]
}

// Coord returns the coordinates of atom i. The slice shares memory with the molecule
// and must not be modified.
func (M *Molecule) Coord(i int) []float64 {
	return M.Coords.Vec(i)
}

// Symbols returns the element symbols of the atoms, in order.
func (M *Molecule) Symbols() []string {
	ret := make([]string, M.Len())
	for i, a := range M.Atoms {
		ret[i] = a.Symbol
	}
	return ret
}

// Centroid returns the mean position of all the atoms. Panics for an empty molecule.
func (M *Molecule) Centroid() []float64 {
	return M.Coords.Centroid()
}

// Indexes returns the indexes of the atoms with the given symbol, in ascending order.
func (M *Molecule) Indexes(symbol string) []int {
	var ret []int
	for i, a := range M.Atoms {
		if a.Symbol == symbol {
			ret = append(ret, i)
		}
	}
	return ret
}

// Without returns a new molecule containing all the atoms of M except those with the indexes
// in exclude, in their original order. Atoms are copied.
func (M *Molecule) Without(exclude []int) *Molecule {
	skip := make([]bool, M.Len())
	nskip := 0
	for _, v := range exclude {
		if v >= 0 && v < M.Len() && !skip[v] {
			skip[v] = true
			nskip++
		}
	}
	keep := make([]int, 0, M.Len()-nskip)
	for i := range M.Atoms {
		if !skip[i] {
			keep = append(keep, i)
		}
	}
	return M.SomeAtoms(keep)
}

// SomeAtoms returns a new molecule with copies of the atoms with the indexes in list, in the order
// given by list.
func (M *Molecule) SomeAtoms(list []int) *Molecule {
	ats := make([]*Atom, len(list))
	coords := v3.Zeros(len(list))
	if len(list) > 0 {
		coords.SomeVecs(M.Coords, list)
	}
	for k, v := range list {
		ats[k] = M.Atoms[v].Copy()
	}
	return &Molecule{Atoms: ats, Coords: coords, Name: M.Name}
}

// AddAtom returns a new molecule with the atoms of M followed by at, placed at pos.
func (M *Molecule) AddAtom(at *Atom, pos []float64) *Molecule {
	n := M.Len()
	coords := v3.Zeros(n + 1)
	ats := make([]*Atom, 0, n+1)
	for i, a := range M.Atoms {
		ats = append(ats, a.Copy())
		coords.SetVec(i, M.Coords.Vec(i))
	}
	ats = append(ats, at)
	coords.SetVec(n, pos)
	return &Molecule{Atoms: ats, Coords: coords, Name: M.Name}
}
