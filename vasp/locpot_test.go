/*
 * locpot_test.go, part of godensity.
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

package vasp

import (
	"fmt"
	"math"
	"testing"
)

//The small fixture is a 3x4x5 grid over an 8x9x10 A orthorhombic cell whose
//value at i,j,k is i + 3*(j + 4*k), i.e. the points numbered in file order.
func TestPotentialRead(Te *testing.T) {
	grid, lat, err := PotentialRead("test/LOCPOT.small", nil)
	if err != nil {
		Te.Fatal(err)
	}
	nx, ny, nz := grid.Dims()
	if nx != 3 || ny != 4 || nz != 5 {
		Te.Fatalf("got a %dx%dx%d grid, want 3x4x5", nx, ny, nz)
	}
	if grid.At(0, 0, 0) != 0.0 || grid.At(2, 3, 4) != 59.0 {
		Te.Errorf("corner values came out as %v and %v", grid.At(0, 0, 0), grid.At(2, 3, 4))
	}
	if grid.At(1, 2, 3) != 43.0 { //1 + 3*(2 + 4*3)
		Te.Errorf("value at 1,2,3 is %v, want 43", grid.At(1, 2, 3))
	}
	l := lat.Lengths()
	want := [3]float64{8, 9, 10}
	for i := 0; i < 3; i++ {
		if math.Abs(l[i]-want[i]) > 1e-10 {
			Te.Errorf("lattice vector %d has length %v, want %v", i, l[i], want[i])
		}
	}
	fmt.Println("LOCPOT read!")
}

func TestPotentialReadCompressed(Te *testing.T) {
	grid, _, err := PotentialRead("test/LOCPOT.small.gz", nil)
	if err != nil {
		Te.Fatal(err)
	}
	plain, _, err := PotentialRead("test/LOCPOT.small", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if grid.Len() != plain.Len() || grid.At(1, 2, 3) != plain.At(1, 2, 3) {
		Te.Error("the gzipped file did not read the same as the plain one")
	}
}

func TestProgressReporting(Te *testing.T) {
	var lastRead, lastTotal, calls int
	prog := func(read, total int) {
		lastRead, lastTotal = read, total
		calls++
	}
	if _, _, err := PotentialRead("test/LOCPOT.small", prog); err != nil {
		Te.Fatal(err)
	}
	if calls == 0 || lastRead != 60 || lastTotal != 60 {
		Te.Errorf("progress ended at %d/%d after %d calls, want 60/60 and at least one call", lastRead, lastTotal, calls)
	}
}

//CHGCAR values are stored multiplied by the cell volume (720 A^3 here), so
//the grid must come back scaled down, and the trailing augmentation part
//must be ignored.
func TestChargeRead(Te *testing.T) {
	grid, _, err := ChargeRead("test/CHGCAR.small", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(grid.At(1, 2, 3)-43.0) > 1e-8 {
		Te.Errorf("volume-scaled value at 1,2,3 is %v, want 43", grid.At(1, 2, 3))
	}
}

func TestReadFailures(Te *testing.T) {
	cases := []string{"test/LOCPOT.bad", "test/no_such_file"}
	for _, f := range cases {
		_, _, err := PotentialRead(f, nil)
		if err == nil {
			Te.Fatalf("%s should have failed", f)
		}
		verr, ok := err.(Error)
		if !ok {
			Te.Fatalf("%s: wrong error type %T", f, err)
		}
		if !verr.Critical() || verr.FileName() != f || verr.Format() != "locpot" {
			Te.Errorf("%s: error metadata came out wrong: %v", f, verr)
		}
		fmt.Println("failed as it should:", err.Error())
	}
}
