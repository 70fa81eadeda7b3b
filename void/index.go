/*
 * index.go, part of cavity.
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

	v3 "github.com/rmera/cavity/v3"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// site is an atom that can occupy grid points. It implements kdtree.Comparable,
// with squared distances, as the kdtree package requires.
type site struct {
	pos []float64
	r2  float64 //squared radius
}

func (s site) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return s.pos[d] - c.(site).pos[d]
}

func (s site) Dims() int { return 3 }

func (s site) Distance(c kdtree.Comparable) float64 {
	return v3.Dist2(s.pos, c.(site).pos)
}

// sites implements kdtree.Interface.
type sites []site

func (s sites) Index(i int) kdtree.Comparable { return s[i] }
func (s sites) Len() int                      { return len(s) }
func (s sites) Slice(start, end int) kdtree.Interface {
	return s[start:end]
}
func (s sites) Pivot(d kdtree.Dim) int {
	return plane{sites: s, Dim: d}.Pivot()
}

// plane sorts sites along one dimension, so the median can be found.
type plane struct {
	kdtree.Dim
	sites
}

func (p plane) Less(i, j int) bool { return p.sites[i].pos[p.Dim] < p.sites[j].pos[p.Dim] }
func (p plane) Swap(i, j int)      { p.sites[i], p.sites[j] = p.sites[j], p.sites[i] }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	return plane{sites: p.sites[start:end], Dim: p.Dim}
}
func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

// tree finds the sites close to a point with a k-d tree. Only the sites within the
// largest radius are retrieved, and then checked against their own radius.
type tree struct {
	t     *kdtree.Tree
	maxr2 float64
}

func newTree(s []site) *tree {
	cp := make(sites, len(s))
	copy(cp, s)
	maxr2 := 0.0
	for _, v := range cp {
		maxr2 = math.Max(maxr2, v.r2)
	}
	return &tree{t: kdtree.New(cp, false), maxr2: maxr2}
}

func (t *tree) occupied(p []float64) bool {
	keep := kdtree.NewDistKeeper(t.maxr2)
	t.t.NearestSet(keep, site{pos: p})
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue //the keeper's sentinel, when nothing was found.
		}
		if c.Dist <= c.Comparable.(site).r2 {
			return true
		}
	}
	return false
}
