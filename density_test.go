/*
 * density_test.go, part of godensity.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package density

import (
	"math"
	"testing"
)

func TestGridConstruction(Te *testing.T) {
	data := make([]float64, 24)
	if _, err := NewScalarGrid(data, 2, 3, 4); err != nil {
		Te.Error(err)
	}
	//shape disagreeing with the data must fail at construction
	if _, err := NewScalarGrid(data, 2, 3, 5); err == nil {
		Te.Error("2x3x5 should not accept 24 values")
	}
	if _, err := NewScalarGrid(data, -2, -3, -4); err == nil {
		Te.Error("negative dimensions should be rejected")
	}
	if _, err := NewScalarGrid(nil, 0, 0, 0); err == nil {
		Te.Error("nil data should be rejected")
	}
}

func TestWrapIndex(Te *testing.T) {
	cases := [][3]int{ //i, n, want
		{0, 10, 0},
		{9, 10, 9},
		{10, 10, 0},
		{-1, 10, 9},
		{-10, 10, 0},
		{-13, 10, 7},
		{25, 10, 5},
	}
	for _, c := range cases {
		if got := wrapIndex(c[0], c[1]); got != c[2] {
			Te.Errorf("wrapIndex(%d, %d) = %d, want %d", c[0], c[1], got, c[2])
		}
	}
}

func TestAtWraps(Te *testing.T) {
	g := rampGrid(3, 4, 5)
	if g.At(-1, -1, -1) != g.At(2, 3, 4) {
		Te.Error("negative indices did not wrap to the far corner")
	}
	if g.At(3, 4, 5) != g.At(0, 0, 0) {
		Te.Error("indices one past the extent did not wrap to the origin")
	}
}

func TestLatticeRoundTrip(Te *testing.T) {
	//A monoclinic-ish cell, so the norms are not just the diagonal entries.
	lat, err := NewLattice([3]float64{8.1, 0, 0}, [3]float64{1.2, 8.9, 0}, [3]float64{0.3, -0.4, 10.2})
	if err != nil {
		Te.Fatal(err)
	}
	nx, ny, nz := 96, 108, 120
	res, err := lat.Resolution(nx, ny, nz)
	if err != nil {
		Te.Fatal(err)
	}
	l := lat.Lengths()
	dims := [3]int{nx, ny, nz}
	for i := 0; i < 3; i++ {
		back := res[i] * float64(dims[i])
		if math.Abs(back-l[i]) > 1e-10 {
			Te.Errorf("axis %d: %v * %d = %v, want %v", i, res[i], dims[i], back, l[i])
		}
	}
	shape, err := lat.GridShape(res)
	if err != nil {
		Te.Fatal(err)
	}
	if shape != dims {
		Te.Errorf("grid shape round trip: got %v, want %v", shape, dims)
	}
}

func TestLatticeVolume(Te *testing.T) {
	lat, err := NewLattice([3]float64{8, 0, 0}, [3]float64{0, 9, 0}, [3]float64{0, 0, 10})
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(lat.Volume()-720) > 1e-10 {
		Te.Errorf("orthorhombic 8x9x10 cell: volume %v, want 720", lat.Volume())
	}
	a := lat.Vector(0)
	if a != [3]float64{8, 0, 0} {
		Te.Errorf("first lattice vector came back as %v", a)
	}
	//coplanar vectors span no cell
	if _, err := NewLattice([3]float64{1, 0, 0}, [3]float64{0, 1, 0}, [3]float64{1, 1, 0}); err == nil {
		Te.Error("coplanar vectors should be rejected")
	}
}
