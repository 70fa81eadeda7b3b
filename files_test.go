/*
 * files_test.go, part of cavity.
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
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadXYZ(t *testing.T) {
	in := "3\nwater\nO 0.0 0.0 0.0\nH 0.96 0.0 0.0\nH -0.24 0.93 0.0"
	mol, err := ReadXYZ(strings.NewReader(in), "water.xyz")
	require.NoError(t, err)
	assert.Equal(t, 3, mol.Len())
	assert.Equal(t, []string{"O", "H", "H"}, mol.Symbols())
	assert.InDelta(t, 0.93, mol.Coord(2)[1], 1e-12)
	assert.Equal(t, "water.xyz", mol.Name)
	assert.Equal(t, 3, mol.Atom(2).ID)
}

func TestReadXYZMalformed(t *testing.T) {
	bad := map[string]string{
		"empty":    "",
		"count":    "three\n\nO 0 0 0\n",
		"zero":     "0\n\n",
		"short":    "3\ncomment\nO 0 0 0\nH 1 0 0\n",
		"coord":    "1\ncomment\nO 0 x 0\n",
		"fields":   "1\ncomment\nO 0 0\n",
		"nocoment": "1",
	}
	for name, in := range bad {
		_, err := ReadXYZ(strings.NewReader(in), name)
		assert.Truef(t, errors.Is(err, ErrParse), "%s: expected ErrParse, got %v", name, err)
	}
}

func TestXYZRoundTrip(t *testing.T) {
	mol, err := MakeMolecule([]string{"C", "N", "Ba"}, []float64{0, 0, 0, 1.4, 0.5, -0.25, 0.7, 0.25, -0.125})
	require.NoError(t, err)
	dir := t.TempDir()
	for _, name := range []string{"mol.xyz", "mol.xyz.gz", "mol.xyz.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(t, XYZWrite(path, mol, "round\ntrip"))
		assert.True(t, IsXYZName(path))
		back, err := XYZRead(path)
		require.NoError(t, err, name)
		require.Equal(t, mol.Len(), back.Len())
		assert.Equal(t, mol.Symbols(), back.Symbols())
		for i := 0; i < mol.Len(); i++ {
			assert.InDeltaSlice(t, mol.Coord(i), back.Coord(i), 1e-8, name)
		}
	}
	_, err = XYZRead(filepath.Join(dir, "missing.xyz"))
	assert.ErrorIs(t, err, ErrParse)
	assert.False(t, IsXYZName("notes.txt"))
}
