/*
 * outcar.go, part of godensity.
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

package vasp

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"
)

//occupied is the occupation above which a band counts as occupied. VASP
//reports 2 (or 1, with spin polarization) for filled bands and 0 for empty
//ones, with fractional values only right at the Fermi level.
const occupied = 0.5

//BandExtrema scrapes an OUTCAR file for the band extrema over all k-points:
//the valence band maximum (highest occupied eigenvalue) and the conduction
//band minimum (lowest unoccupied eigenvalue), both in eV, with whatever sign
//and reference VASP used. Note that for the usual ionisation-potential
//arithmetic the VBM is used as-is, without flipping its sign.
func BandExtrema(filename string) (vbm, cbm float64, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, 0, Error{UnableToOpen + ": " + err.Error(), "outcar", filename, []string{"BandExtrema"}, true}
	}
	defer f.Close()
	vbm = math.Inf(-1)
	cbm = math.Inf(1)
	found := false
	inblock := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "band No.") {
			inblock = true
			continue
		}
		if !inblock {
			continue
		}
		//Inside an eigenvalue block: "band-index  energy  occupation",
		//terminated by anything that doesn't parse as such.
		fields := strings.Fields(line)
		if len(fields) != 3 {
			inblock = false
			continue
		}
		if _, err2 := strconv.Atoi(fields[0]); err2 != nil {
			inblock = false
			continue
		}
		energy, err2 := strconv.ParseFloat(fields[1], 64)
		if err2 != nil {
			return 0, 0, Error{WrongFormat + ": eigenvalue: " + err2.Error(), "outcar", filename, []string{"BandExtrema"}, true}
		}
		occ, err2 := strconv.ParseFloat(fields[2], 64)
		if err2 != nil {
			return 0, 0, Error{WrongFormat + ": occupation: " + err2.Error(), "outcar", filename, []string{"BandExtrema"}, true}
		}
		found = true
		if occ > occupied && energy > vbm {
			vbm = energy
		}
		if occ <= occupied && energy < cbm {
			cbm = energy
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, Error{WrongFormat + ": " + err.Error(), "outcar", filename, []string{"BandExtrema"}, true}
	}
	if !found || math.IsInf(vbm, -1) || math.IsInf(cbm, 1) {
		return 0, 0, Error{NoExtrema, "outcar", filename, []string{"BandExtrema"}, true}
	}
	return vbm, cbm, nil
}
