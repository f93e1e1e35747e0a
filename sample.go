/*
 * sample.go, part of godensity.
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
	"math"

	"gonum.org/v1/gonum/stat"
)

//SampleRegion defines an axis-aligned cube of grid points over which the
//field is to be aggregated. The cube is anchored at the grid point closest
//below Origin (given in fractional coordinates of the cell) displaced by
//Travelled grid points, and extends Size points in the positive direction
//along each axis. Cubes crossing the cell boundary wrap around, the field
//being periodic.
type SampleRegion struct {
	Origin    [3]float64
	Travelled [3]int
	Size      [3]int
}

//Cube is a convenience constructor for the common case of a cubic region of
//edge n anchored at the fractional coordinates x,y,z, with no displacement.
func Cube(x, y, z float64, n int) SampleRegion {
	return SampleRegion{Origin: [3]float64{x, y, z}, Size: [3]int{n, n, n}}
}

//SampleResult holds the aggregate of the field over one SampleRegion.
//Variance is the population variance (mean of squared deviations).
type SampleResult struct {
	Mean     float64
	Variance float64
	N        int //number of grid points aggregated
}

//anchor maps the region's fractional origin plus displacement to the integer
//grid point anchoring the cube. The result may lie outside [0,N); the
//per-axis wrapping downstream takes care of that.
func (G *ScalarGrid) anchor(r SampleRegion) [3]int {
	dims := [3]int{G.nx, G.ny, G.nz}
	var a [3]int
	for i := 0; i < 3; i++ {
		a[i] = int(math.Floor(r.Origin[i]*float64(dims[i]))) + r.Travelled[i]
	}
	return a
}

//checkRegion validates a SampleRegion against the grid. The cube may be as
//large as the full periodic extent along each axis, but no larger: beyond
//that the same points would just be counted twice.
func (G *ScalarGrid) checkRegion(caller string, r SampleRegion) error {
	dims := [3]int{G.nx, G.ny, G.nz}
	for i := 0; i < 3; i++ {
		if r.Size[i] <= 0 {
			return invalidRegion(caller, "size", r.Size[i])
		}
		if r.Size[i] > dims[i] {
			return invalidRegion(caller, "size", r.Size[i])
		}
		if math.IsNaN(r.Origin[i]) || math.IsInf(r.Origin[i], 0) {
			return invalidRegion(caller, "origin", r.Origin[i])
		}
	}
	return nil
}

//wrappedAxis returns the wrapped grid indices covered by a cube edge of
//length size anchored at a, along an axis of dimension n.
func wrappedAxis(a, size, n int) []int {
	idx := make([]int, size)
	for i := 0; i < size; i++ {
		idx[i] = wrapIndex(a+i, n)
	}
	return idx
}

//CubeSample computes the mean and population variance of the field over the
//given region. It is a pure read: the grid is not modified, and no state is
//kept between calls. The aggregation is two-pass (mean first, then squared
//deviations) so it stays accurate for cells with many millions of points.
func (G *ScalarGrid) CubeSample(r SampleRegion) (*SampleResult, error) {
	if err := G.checkRegion("CubeSample", r); err != nil {
		return nil, err
	}
	a := G.anchor(r)
	xs := wrappedAxis(a[0], r.Size[0], G.nx)
	ys := wrappedAxis(a[1], r.Size[1], G.ny)
	zs := wrappedAxis(a[2], r.Size[2], G.nz)
	vals := make([]float64, 0, r.Size[0]*r.Size[1]*r.Size[2])
	for _, k := range zs {
		base := G.nx * G.ny * k
		for _, j := range ys {
			row := base + G.nx*j
			for _, i := range xs {
				vals = append(vals, G.data[row+i])
			}
		}
	}
	ret := &SampleResult{N: len(vals)}
	ret.Mean = stat.Mean(vals, nil)
	ret.Variance = stat.PopVariance(vals, nil)
	return ret, nil
}

//partial is one worker's share of a concurrent cube sample.
type partial struct {
	n        int
	mean, m2 float64 //m2 is the population variance of the worker's slab
}

//CubeSampleConc is the concurrent version of CubeSample. It partitions the
//cube into slabs along the z axis, one goroutine per slab group, and merges
//the per-slab statistics. The merge runs in slab order, so the result is
//deterministic for a given number of CPUs, though it may differ from the
//serial result in the last few bits. If cpus is less than 1, 1 is used.
func (G *ScalarGrid) CubeSampleConc(r SampleRegion, cpus int) (*SampleResult, error) {
	if err := G.checkRegion("CubeSampleConc", r); err != nil {
		return nil, err
	}
	if cpus < 1 {
		cpus = 1
	}
	if cpus > r.Size[2] {
		cpus = r.Size[2]
	}
	a := G.anchor(r)
	xs := wrappedAxis(a[0], r.Size[0], G.nx)
	ys := wrappedAxis(a[1], r.Size[1], G.ny)
	zs := wrappedAxis(a[2], r.Size[2], G.nz)
	results := make([]chan partial, cpus)
	chunk := len(zs) / cpus
	for w := 0; w < cpus; w++ {
		results[w] = make(chan partial, 1)
		lo := w * chunk
		hi := lo + chunk
		if w == cpus-1 {
			hi = len(zs)
		}
		go func(planes []int, res chan partial) {
			vals := make([]float64, 0, len(planes)*len(ys)*len(xs))
			for _, k := range planes {
				base := G.nx * G.ny * k
				for _, j := range ys {
					row := base + G.nx*j
					for _, i := range xs {
						vals = append(vals, G.data[row+i])
					}
				}
			}
			res <- partial{n: len(vals), mean: stat.Mean(vals, nil), m2: stat.PopVariance(vals, nil)}
		}(zs[lo:hi], results[w])
	}
	//Pooled mean and variance over the slabs, merged in slab order.
	var total, mean, second float64
	for w := 0; w < cpus; w++ {
		p := <-results[w]
		total += float64(p.n)
		mean += float64(p.n) * p.mean
		second += float64(p.n) * (p.m2 + p.mean*p.mean)
	}
	mean /= total
	ret := &SampleResult{N: int(total)}
	ret.Mean = mean
	ret.Variance = second/total - mean*mean
	if ret.Variance < 0 { //cancellation noise on constant fields
		ret.Variance = 0
	}
	return ret, nil
}

//PlanarAverage returns the mean of the field over each plane perpendicular
//to the given axis (0 for a, 1 for b, 2 for c), the first step of the usual
//macroscopic-averaging analysis. The returned slice has one entry per grid
//point along the axis.
func (G *ScalarGrid) PlanarAverage(axis int) ([]float64, error) {
	if axis < 0 || axis > 2 {
		return nil, invalidRegion("PlanarAverage", "axis", axis)
	}
	dims := [3]int{G.nx, G.ny, G.nz}
	n := dims[axis]
	ret := make([]float64, n)
	plane := make([]float64, 0, len(G.data)/n)
	var idx [3]int
	for l := 0; l < n; l++ {
		plane = plane[:0]
		idx[axis] = l
		u, v := (axis+1)%3, (axis+2)%3
		for p := 0; p < dims[u]; p++ {
			idx[u] = p
			for q := 0; q < dims[v]; q++ {
				idx[v] = q
				plane = append(plane, G.data[idx[0]+G.nx*(idx[1]+G.ny*idx[2])])
			}
		}
		ret[l] = stat.Mean(plane, nil)
	}
	return ret, nil
}
