/*
 * density.go, part of godensity.
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
 * godensity is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package density

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//ScalarGrid is a dense scalar field sampled on a regular nx x ny x nz grid
//spanning one unit cell. The field is periodic: every index is taken modulo
//the corresponding dimension. A ScalarGrid is built once and never modified.
type ScalarGrid struct {
	nx, ny, nz int
	data       []float64 //x runs fastest: index = i + nx*(j + ny*k), the layout of the VASP value stream.
}

//NewScalarGrid builds a grid of shape nx x ny x nz backed by data. It returns
//a DimensionMismatch error if the length of data disagrees with the declared
//shape, so a malformed grid fails at construction rather than at some
//arbitrary later access.
func NewScalarGrid(data []float64, nx, ny, nz int) (*ScalarGrid, error) {
	if data == nil || len(data) == 0 {
		return nil, CError{ErrNilGrid, []string{"NewScalarGrid"}}
	}
	if nx <= 0 || ny <= 0 || nz <= 0 || len(data) != nx*ny*nz {
		return nil, CError{fmt.Sprintf("%s: declared %dx%dx%d, %d values given", ErrDimensionMismatch, nx, ny, nz, len(data)), []string{"NewScalarGrid"}}
	}
	return &ScalarGrid{nx: nx, ny: ny, nz: nz, data: data}, nil
}

//Dims returns the number of grid points along each lattice vector.
func (G *ScalarGrid) Dims() (int, int, int) {
	return G.nx, G.ny, G.nz
}

//Len returns the total number of grid points.
func (G *ScalarGrid) Len() int {
	return len(G.data)
}

//wrapIndex maps any integer to [0,n), with negative values wrapping from the
//far end. All periodic index arithmetic in the library goes through here.
func wrapIndex(i, n int) int {
	i = i % n
	if i < 0 {
		i += n
	}
	return i
}

//At returns the value at grid point i,j,k, wrapping each index into the cell.
func (G *ScalarGrid) At(i, j, k int) float64 {
	i = wrapIndex(i, G.nx)
	j = wrapIndex(j, G.ny)
	k = wrapIndex(k, G.nz)
	return G.data[i+G.nx*(j+G.ny*k)]
}

//Stats returns the mean and population variance of the field over the whole
//cell. It equals a cube sample of the full grid dimensions, at much less
//index arithmetic.
func (G *ScalarGrid) Stats() (mean, variance float64) {
	mean = stat.Mean(G.data, nil)
	variance = stat.PopVariance(G.data, nil)
	return mean, variance
}

//Lattice holds the three vectors spanning the unit cell, in Angstrom.
type Lattice struct {
	vecs *mat.Dense //3x3, one vector per row
}

//NewLattice builds a Lattice from the vectors a, b and c. It fails if the
//three vectors do not span a cell of nonzero volume.
func NewLattice(a, b, c [3]float64) (*Lattice, error) {
	v := mat.NewDense(3, 3, []float64{a[0], a[1], a[2], b[0], b[1], b[2], c[0], c[1], c[2]})
	if math.Abs(mat.Det(v)) < 1e-10 {
		return nil, CError{ErrNotALattice, []string{"NewLattice"}}
	}
	return &Lattice{vecs: v}, nil
}

//Vector returns the ith lattice vector (0 for a, 1 for b, 2 for c).
func (L *Lattice) Vector(i int) [3]float64 {
	r := L.vecs.RawRowView(i)
	return [3]float64{r[0], r[1], r[2]}
}

//Lengths returns the norms of the three lattice vectors.
func (L *Lattice) Lengths() [3]float64 {
	var ret [3]float64
	for i := 0; i < 3; i++ {
		ret[i] = floats.Norm(L.vecs.RawRowView(i), 2)
	}
	return ret
}

//Volume returns the volume of the unit cell, |a.(b x c)|.
func (L *Lattice) Volume() float64 {
	return math.Abs(mat.Det(L.vecs))
}

//Resolution returns the grid spacing along each lattice vector for a grid of
//the given shape, i.e. |v|/N per axis.
func (L *Lattice) Resolution(nx, ny, nz int) ([3]float64, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return [3]float64{}, CError{fmt.Sprintf("%s: non-positive shape %dx%dx%d", ErrDimensionMismatch, nx, ny, nz), []string{"Resolution"}}
	}
	l := L.Lengths()
	return [3]float64{l[0] / float64(nx), l[1] / float64(ny), l[2] / float64(nz)}, nil
}

//GridShape is the inverse of Resolution: it returns the grid shape whose
//spacing best matches res. Lengths recovered as spacing times shape agree
//with the original vector norms to floating point accuracy.
func (L *Lattice) GridShape(res [3]float64) ([3]int, error) {
	var ret [3]int
	l := L.Lengths()
	for i := 0; i < 3; i++ {
		if res[i] <= 0 {
			return ret, CError{fmt.Sprintf("%s: non-positive resolution %v", ErrDimensionMismatch, res[i]), []string{"GridShape"}}
		}
		ret[i] = int(math.Round(l[i] / res[i]))
	}
	return ret, nil
}
