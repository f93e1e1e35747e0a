/*
 * sweep.go, part of godensity.
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
	"strings"
)

//SweepPoint is one step of a convergence sweep: the statistics of the field
//over a cube of edge Size grid points.
type SweepPoint struct {
	Size     int
	Mean     float64
	Variance float64
}

//Sweep samples cubes of increasing edge length from a fixed anchor and
//returns one SweepPoint per size, in the order given. A plateau shows as a
//run of sizes with near-zero variance; the edge of the plateau, where the
//cube has grown out of the flat region into a feature, shows as the variance
//taking off. Sizes are in grid points and must each be valid for the grid.
func (G *ScalarGrid) Sweep(origin [3]float64, travelled [3]int, sizes []int) ([]SweepPoint, error) {
	if len(sizes) == 0 {
		return nil, invalidRegion("Sweep", "sizes", sizes)
	}
	ret := make([]SweepPoint, 0, len(sizes))
	for _, s := range sizes {
		r := SampleRegion{Origin: origin, Travelled: travelled, Size: [3]int{s, s, s}}
		res, err := G.CubeSample(r)
		if err != nil {
			return nil, errDecorate(err, "Sweep")
		}
		ret = append(ret, SweepPoint{Size: s, Mean: res.Mean, Variance: res.Variance})
	}
	return ret, nil
}

//SweepUntil is Sweep with early termination: it stops after the first cube
//whose variance exceeds maxvar, which is all an analyst hunting for the
//plateau edge needs. The crossing point is included in the returned slice,
//so the caller can tell whether the sweep ran out of sizes or out of
//plateau.
func (G *ScalarGrid) SweepUntil(origin [3]float64, travelled [3]int, sizes []int, maxvar float64) ([]SweepPoint, error) {
	if len(sizes) == 0 {
		return nil, invalidRegion("SweepUntil", "sizes", sizes)
	}
	ret := make([]SweepPoint, 0, len(sizes))
	for _, s := range sizes {
		r := SampleRegion{Origin: origin, Travelled: travelled, Size: [3]int{s, s, s}}
		res, err := G.CubeSample(r)
		if err != nil {
			return nil, errDecorate(err, "SweepUntil")
		}
		ret = append(ret, SweepPoint{Size: s, Mean: res.Mean, Variance: res.Variance})
		if res.Variance > maxvar {
			break
		}
	}
	return ret, nil
}

//SweepTable formats a sweep as the plain-text table of
//(cube size, mean, variance) that the analysis scripts print.
func SweepTable(points []SweepPoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%8s %14s %14s\n", "Size", "Mean", "Variance")
	for _, p := range points {
		fmt.Fprintf(&b, "%8d %14.6f %14.6f\n", p.Size, p.Mean, p.Variance)
	}
	return b.String()
}
