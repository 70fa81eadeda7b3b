/*
 * gonum.go, part of cavity.
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

package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Matrix is a set of vectors in 3D space. Within the package it is understood that a
// "vector" is a row vector, i.e. the cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// data is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return Zeros(0), nil
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
// Zeros(0) gives an empty matrix, which gonum's NewDense refuses to build.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	if vecs == 0 {
		return &Matrix{&mat.Dense{}}
	}
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if r != 0 && c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Len is the same as NVecs, so a Matrix can stand in for a Traj-like reader.
func (F *Matrix) Len() int {
	return F.NVecs()
}

// Vec returns the coordinates of the ith vector. The slice shares memory with F.
func (F *Matrix) Vec(i int) []float64 {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return F.RawRowView(i)
}

// VecView returns a 1x3 view of the ith vector. Changes in the view are reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// SetVec copies the 3 coordinates in v to the ith vector of F.
func (F *Matrix) SetVec(i int, v []float64) {
	if len(v) != 3 {
		panic(ErrShape)
	}
	F.SetRow(i, v)
}

// SomeVecs puts in the receiver the vectors of A with the indexes in clist, in the
// same order as clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar, ac := A.Dims()
	fr, fc := F.Dims()
	if ac != fc || fr != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		if val >= ar {
			panic(ErrIndexOutOfRange)
		}
		F.SetRow(key, A.RawRowView(val))
	}
}

// Copy returns a deep copy of F.
func (F *Matrix) Copy() *Matrix {
	ret := Zeros(F.NVecs())
	if F.NVecs() > 0 {
		ret.Dense.Copy(F.Dense)
	}
	return ret
}

// String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		v = append(v, fmt.Sprintf("%6.2f %6.2f %6.2f", row[0], row[1], row[2]))
	}
	return "\n[" + strings.Join(v, "\n ") + " ]"
}

// Centroid returns the arithmetic mean of all the vectors in F.
// Panics if F is empty.
func (F *Matrix) Centroid() []float64 {
	r := F.NVecs()
	if r == 0 {
		panic(ErrNotEnoughElements)
	}
	ret := make([]float64, 3)
	col := make([]float64, r)
	for j := 0; j < 3; j++ {
		mat.Col(col, j, F.Dense)
		ret[j] = stat.Mean(col, nil)
	}
	return ret
}

// DistMatrix returns the symmetric matrix of Euclidean distances between every pair
// of vectors in F.
func (F *Matrix) DistMatrix() *mat.SymDense {
	n := F.NVecs()
	if n == 0 {
		return &mat.SymDense{}
	}
	D := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		vi := F.RawRowView(i)
		for j := i + 1; j < n; j++ {
			D.SetSym(i, j, Dist(vi, F.RawRowView(j)))
		}
	}
	return D
}

// Box returns the lowest and highest corners of the axis-aligned box that
// contains every vector of F, enlarged by pad on each side.
func (F *Matrix) Box(pad float64) (lo, hi [3]float64) {
	r := F.NVecs()
	if r == 0 {
		panic(ErrNotEnoughElements)
	}
	col := make([]float64, r)
	for j := 0; j < 3; j++ {
		mat.Col(col, j, F.Dense)
		lo[j] = floats.Min(col) - pad
		hi[j] = floats.Max(col) + pad
	}
	return lo, hi
}

// Dist returns the Euclidean distance between the points a and b.
func Dist(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Dist2 returns the squared Euclidean distance between a and b. It is the
// hot path of grid sampling, so it avoids the square root.
func Dist2(a, b []float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return dx*dx + dy*dy + dz*dz
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b []float64) []float64 {
	ret := make([]float64, 3)
	floats.AddTo(ret, a, b)
	floats.Scale(0.5, ret)
	return ret
}

// Cube returns the lowest and highest corners of the axis-aligned cube of half-side
// half centered on c.
func Cube(c []float64, half float64) (lo, hi [3]float64) {
	for i := 0; i < 3; i++ {
		lo[i] = c[i] - half
		hi[i] = c[i] + half
	}
	return lo, hi
}

// SphereVolume returns the volume of a sphere of radius r.
func SphereVolume(r float64) float64 {
	return 4.0 / 3.0 * math.Pi * r * r * r
}

//Errors

// Error is the error type for the v3 package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("cavity/v3: A Matrix should have 3 columns")
	ErrNotEnoughElements = PanicMsg("cavity/v3: not enough elements in Matrix")
	ErrShape             = PanicMsg("cavity/v3: Dimension mismatch")
	ErrIndexOutOfRange   = PanicMsg("cavity/v3: index out of range")
)
