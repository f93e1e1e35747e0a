/*
 * plot_test.go
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
 *
 */

package densplot

import (
	"os"
	"testing"

	density "github.com/rmera/godensity"
)

//TestConvergence draws the convergence plot for a made-up sweep that levels
//off and then takes off, the shape a pore-center sweep produces.
func TestConvergence(Te *testing.T) {
	if err := os.MkdirAll("test", 0755); err != nil {
		Te.Fatal(err)
	}
	points := []density.SweepPoint{
		{Size: 1, Mean: 2.3068, Variance: 0},
		{Size: 10, Mean: 2.3068, Variance: 0.000001},
		{Size: 20, Mean: 2.3067, Variance: 0.000004},
		{Size: 40, Mean: 2.3061, Variance: 0.000322},
		{Size: 60, Mean: 2.3010, Variance: 0.002378},
		{Size: 80, Mean: 2.2852, Variance: 0.009482},
		{Size: 100, Mean: 2.2576, Variance: 0.015872},
	}
	if err := Convergence(points, "Test convergence", "test/Convergence"); err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat("test/Convergence.png"); err != nil {
		Te.Error("the convergence plot was not written")
	}
	if err := Convergence(nil, "empty", "test/Nope"); err == nil {
		Te.Error("an empty sweep should not plot")
	}
}

func TestProfile(Te *testing.T) {
	if err := os.MkdirAll("test", 0755); err != nil {
		Te.Fatal(err)
	}
	avg := []float64{2.31, 2.30, 2.28, 1.10, -3.2, 1.05, 2.29, 2.30}
	if err := Profile(avg, 0.125, "Test profile", "test/Profile"); err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat("test/Profile.png"); err != nil {
		Te.Error("the profile plot was not written")
	}
	if err := Profile(avg, -1, "bad spacing", "test/Nope"); err == nil {
		Te.Error("a non-positive spacing should not plot")
	}
}
