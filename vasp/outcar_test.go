/*
 * outcar_test.go, part of godensity.
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
	"math"
	"testing"

	density "github.com/rmera/godensity"
)

//The fixture has two k-points; the highest occupied eigenvalue over both is
//-2.4396 eV and the lowest unoccupied one is 1.5 eV.
func TestBandExtrema(Te *testing.T) {
	vbm, cbm, err := BandExtrema("test/OUTCAR.small")
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(vbm-(-2.4396)) > 1e-10 {
		Te.Errorf("got VBM %v, want -2.4396", vbm)
	}
	if math.Abs(cbm-1.5) > 1e-10 {
		Te.Errorf("got CBM %v, want 1.5", cbm)
	}
	//the worked ionisation-potential example, signs taken literally
	ip := density.IonisationPotential(2.3068, vbm)
	if math.Abs(ip-4.7464) > 1e-10 {
		Te.Errorf("got IP %v, want 4.7464", ip)
	}
}

func TestBandExtremaFailures(Te *testing.T) {
	if _, _, err := BandExtrema("test/OUTCAR.nobands"); err == nil {
		Te.Error("an OUTCAR with no eigenvalue blocks should fail")
	}
	if _, _, err := BandExtrema("test/no_such_file"); err == nil {
		Te.Error("a missing file should fail")
	}
}
