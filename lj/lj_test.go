/*
 * lj_test.go, part of cavity.
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
	"errors"
	"math"
	"testing"

	"github.com/rmera/cavity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPair(t *testing.T) {
	assert.Equal(t, 0.0, Pair(4.38, 4.38, cavity.Repulsive))
	assert.Equal(t, 0.0, Pair(4.38, 10, cavity.LJ126))
	x := 4.38 / 4.0
	assert.InDelta(t, math.Pow(x, 12), Pair(4.38, 4, cavity.Repulsive), 1e-9)
	assert.InDelta(t, math.Pow(x, 12)-math.Pow(x, 6), Pair(4.38, 4, cavity.LJ126), 1e-9)
	//neighbors almost on top of the marker give an infinite energy in both modes.
	assert.True(t, math.IsInf(Pair(4.38, 1e-60, cavity.LJ126), 1))
	assert.True(t, math.IsInf(Pair(4.38, 1e-60, cavity.Repulsive), 1))
	for _, d := range []float64{0.5, 1, 2, 3, 4.3} {
		assert.Greater(t, Pair(4.38, d, cavity.Repulsive), 0.0)
		assert.Greater(t, Pair(4.38, d, cavity.LJ126), 0.0)
	}
}

func TestSum(t *testing.T) {
	cfg := cavity.DefaultConfig()
	m := &cavity.Marker{Symbol: "Ba", Position: []float64{0, 0, 0}, Radius: cfg.MarkerRadius}
	neigh, err := cavity.MakeMolecule([]string{"C", "H", "Xx", "Xx", "O"}, []float64{
		4, 0, 0,
		0, 10, 0,
		0, 0, 1,
		0, 0, -1,
		0, 0, 0,
	})
	require.NoError(t, err)
	res := Sum(m, neigh, cfg)
	assert.Equal(t, 1, res.Excluded)
	require.Len(t, res.Warnings, 1)
	assert.True(t, errors.Is(res.Warnings[0], cavity.ErrUnknownRadius))
	require.Len(t, res.Terms, 2)
	assert.Equal(t, 0.0, res.Terms[1].Energy, "H at 10 A is out of range")
	assert.InDelta(t, math.Pow(4.38/4, 12), res.Sum, 1e-9)
	assert.InDelta(t, math.Sqrt(1.70*2.68), res.Terms[0].Epsilon, 1e-12)
	assert.False(t, math.IsInf(res.Sum, 0) || math.IsNaN(res.Sum))

	cfg.Potential = cavity.LJ126
	lj := Sum(m, neigh, cfg)
	assert.Less(t, lj.Sum, res.Sum)
}

func TestMarker(t *testing.T) {
	cfg := cavity.DefaultConfig()
	mol, err := cavity.MakeMolecule([]string{"O", "Ba", "Ba"}, []float64{3, 0, 0, 0, 0, 0, 1, 0, 0})
	require.NoError(t, err)
	res, err := Marker(mol, cfg)
	require.NoError(t, err)
	require.Len(t, res.Terms, 1, "other markers are not neighbors")
	assert.Empty(t, res.Warnings)
	assert.InDelta(t, math.Pow((1.52+2.68)/3, 12), res.Sum, 1e-9)

	_, err = Marker(mol.Without([]int{1, 2}), cfg)
	assert.ErrorIs(t, err, cavity.ErrNoMarker)
}
