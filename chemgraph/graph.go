/*
 * graph.go, part of cavity.
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

package chemgraph

import (
	"math"
	"sort"

	"github.com/rmera/cavity"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

// Atom is a node of the graph. Its ID is the index of the atom in the molecule.
type Atom struct {
	*cavity.Atom
	index int
}

func (A *Atom) ID() int64 {
	return int64(A.index)
}

// Index returns the index of the atom in the molecule.
func (A *Atom) Index() int {
	return A.index
}

// Bond is a directed edge, weighted by the distance between its atoms.
type Bond struct {
	At1, At2 *Atom
	Dist     float64
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

// ReversedEdge returns a new Bond going the other way. Bonds are directional here, so
// the reversed bond need not be in the graph.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{At1: B.At2, At2: B.At1, Dist: B.Dist}
}

func (B *Bond) Weight() float64 {
	return B.Dist
}

// Topology implements the gonum graph.Directed and graph.Weighted interfaces for
// the bonds of a molecule.
type Topology struct {
	*simple.WeightedDirectedGraph
	mol *cavity.Molecule
}

// Directed returns the bond graph g as a gonum weighted directed graph.
// Every atom is a node, even if it has no bonds.
func Directed(g *cavity.BondGraph) *Topology {
	mol := g.Molecule()
	T := &Topology{WeightedDirectedGraph: simple.NewWeightedDirectedGraph(0, math.Inf(1)), mol: mol}
	ats := make([]*Atom, mol.Len())
	for i := range ats {
		ats[i] = &Atom{Atom: mol.Atom(i), index: i}
		T.AddNode(ats[i])
	}
	for _, b := range g.Bonds() {
		T.SetWeightedEdge(&Bond{At1: ats[b.From], At2: ats[b.To], Dist: b.Dist})
	}
	return T
}

// Molecule returns the molecule the topology was built for.
func (T *Topology) Molecule() *cavity.Molecule {
	return T.mol
}

// Reach returns, in ascending order, the indexes of all the atoms reachable from start
// following the direction of the bonds.
func (T *Topology) Reach(start int) []int {
	return T.Fragment(start)
}

// Fragment returns, in ascending order, the union of the atoms reachable from each
// of the seeds.
func (T *Topology) Fragment(seeds ...int) []int {
	var ret []int
	dfs := traverse.DepthFirst{
		Visit: func(n graph.Node) { ret = append(ret, int(n.ID())) },
	}
	for _, s := range seeds {
		dfs.Walk(T, T.Node(int64(s)), nil)
	}
	sort.Ints(ret)
	return ret
}

// Components returns the weakly connected components of the graph, i.e. the groups
// of atoms connected by bonds in any direction. Each component is sorted, and the
// components are sorted by their first atom.
func (T *Topology) Components() [][]int {
	und := simple.NewUndirectedGraph()
	nodes := T.Nodes()
	for nodes.Next() {
		und.AddNode(nodes.Node())
	}
	edges := T.Edges()
	for edges.Next() {
		e := edges.Edge()
		if und.HasEdgeBetween(e.From().ID(), e.To().ID()) {
			continue
		}
		und.SetEdge(und.NewEdge(e.From(), e.To()))
	}
	cc := topo.ConnectedComponents(und)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		ids := make([]int, len(c))
		for i, n := range c {
			ids[i] = int(n.ID())
		}
		sort.Ints(ids)
		ret = append(ret, ids)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

// Molecules splits the molecule of T into one molecule per weakly connected component,
// in the order given by Components.
func (T *Topology) Molecules() []*cavity.Molecule {
	cc := T.Components()
	ret := make([]*cavity.Molecule, len(cc))
	for i, c := range cc {
		ret[i] = T.mol.SomeAtoms(c)
	}
	return ret
}
