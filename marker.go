/*
 * marker.go, part of cavity.
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
)

// Marker is the "ghost" atom that replaces a removed fragment.
type Marker struct {
	Symbol   string
	Position []float64
	Radius   float64 //used by the pair potential
}

// Substitution contains the results of replacing the central fragment of a molecule
// by a marker.
type Substitution struct {
	Original *Molecule
	Pair     SeedPair
	Fragment []int //indexes in the original molecule, ascending
	Marker   *Marker
	Reduced  *Molecule //the original molecule without the fragment, with the marker as its last atom
}

// Comment returns the comment line used when writing the reduced structure to an XYZ file.
func (S *Substitution) Comment(name string) string {
	return fmt.Sprintf("Modified molecule with central %s-%s replaced by %s from %s",
		S.Original.Atom(S.Pair.First).Symbol, S.Original.Atom(S.Pair.Second).Symbol, S.Marker.Symbol, name)
}

// Substitute returns a new molecule with the atoms of mol not in frag, in their original order,
// followed by a marker atom placed at the midpoint of the seed pair. mol is not modified.
// The new molecule has len(mol)-len(frag)+1 atoms.
func Substitute(mol *Molecule, frag []int, pair SeedPair, cfg *Config) (*Molecule, *Marker) {
	marker := &Marker{
		Symbol:   cfg.MarkerSymbol,
		Position: pair.Midpoint(mol),
		Radius:   cfg.MarkerRadius,
	}
	reduced := mol.Without(frag).AddAtom(&Atom{Symbol: marker.Symbol}, marker.Position)
	return reduced, marker
}

// Ghost finds the central seed pair of mol, the fragment bonded to it, and replaces the fragment
// by a marker. It returns an ErrNoSeedPair error if mol has no seed pair.
func Ghost(mol *Molecule, cfg *Config) (*Substitution, error) {
	g := NewBondGraph(mol, cfg)
	pair, err := FindSeedPair(g, cfg)
	if err != nil {
		return nil, errDecorate(err, "Ghost")
	}
	frag := Fragment(g, pair.Seeds()...)
	reduced, marker := Substitute(mol, frag, pair, cfg)
	return &Substitution{Original: mol, Pair: pair, Fragment: frag, Marker: marker, Reduced: reduced}, nil
}

// FindMarkers returns the indexes of all the atoms in mol with the marker symbol, in ascending order.
func FindMarkers(mol *Molecule, cfg *Config) []int {
	return mol.Indexes(cfg.MarkerSymbol)
}

// FirstMarker returns the first marker atom in mol, with the radius from cfg, and the index
// of that atom. It returns an ErrNoMarker error if there is none.
func FirstMarker(mol *Molecule, cfg *Config) (*Marker, int, error) {
	m := FindMarkers(mol, cfg)
	if len(m) == 0 {
		err := NewError(ErrNoMarker, false, "No %s atom found", cfg.MarkerSymbol).InFile(mol.Name)
		err.Decorate("FirstMarker")
		return nil, -1, err
	}
	pos := make([]float64, 3)
	copy(pos, mol.Coord(m[0]))
	return &Marker{Symbol: cfg.MarkerSymbol, Position: pos, Radius: cfg.MarkerRadius}, m[0], nil
}
