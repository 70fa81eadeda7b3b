/*
 * v3_test.go, part of cavity.
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
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("Expected 3 vectors, got %d", A.NVecs())
	}
	if _, err := NewMatrix([]float64{1, 2}); err == nil {
		Te.Error("A slice not divisible by 3 should give an error")
	}
	E, err := NewMatrix(nil)
	if err != nil || E.NVecs() != 0 {
		Te.Errorf("Expected an empty matrix, got %v %v", E, err)
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Error("Changes in a VecView should be seen by the parent matrix")
	}
	fmt.Println("View\n", A, "\n", View)
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	cind := []int{5, 1, 3}
	B := Zeros(len(cind))
	B.SomeVecs(A, cind)
	if B.At(0, 0) != 16 || B.At(1, 0) != 4 || B.At(2, 2) != 12 {
		Te.Errorf("Wrong vectors selected %v", B)
	}
	B.Set(0, 0, -1)
	if A.At(5, 0) != 16 {
		Te.Error("SomeVecs should copy, not view")
	}
}

func TestCentroidAndBox(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0, 2, 0, 0, 0, 4, 0, 2, 4, -6})
	c := A.Centroid()
	want := []float64{1, 2, -1.5}
	for i := range c {
		if math.Abs(c[i]-want[i]) > 1e-12 {
			Te.Errorf("Centroid %v, expected %v", c, want)
		}
	}
	lo, hi := A.Box(1)
	if lo != [3]float64{-1, -1, -7} || hi != [3]float64{3, 5, 1} {
		Te.Errorf("Box %v %v", lo, hi)
	}
	clo, chi := Cube([]float64{1, 1, 1}, 2)
	if clo != [3]float64{-1, -1, -1} || chi != [3]float64{3, 3, 3} {
		Te.Errorf("Cube %v %v", clo, chi)
	}
}

func TestDistances(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0, 3, 4, 0, 0, 0, 1})
	D := A.DistMatrix()
	if D.At(0, 1) != 5 || D.At(1, 0) != 5 || D.At(0, 2) != 1 || D.At(1, 1) != 0 {
		Te.Errorf("Wrong distance matrix %v", D)
	}
	if d2 := Dist2(A.Vec(0), A.Vec(1)); d2 != 25 {
		Te.Errorf("Dist2 %f, expected 25", d2)
	}
	m := Midpoint(A.Vec(0), A.Vec(1))
	if m[0] != 1.5 || m[1] != 2 || m[2] != 0 {
		Te.Errorf("Midpoint %v", m)
	}
	if math.Abs(SphereVolume(1)-4.0/3.0*math.Pi) > 1e-12 {
		Te.Error("Wrong sphere volume")
	}
}

func TestCopy(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3})
	B := A.Copy()
	B.Set(0, 0, 9)
	if A.At(0, 0) != 1 {
		Te.Error("Copy shares memory with the original")
	}
	if Zeros(0).Copy().NVecs() != 0 {
		Te.Error("Copy of an empty matrix should be empty")
	}
}
