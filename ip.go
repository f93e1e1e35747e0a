/*
 * ip.go, part of godensity.
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

//IonisationPotential returns the energy needed to take an electron from the
//valence band maximum to the vacuum level, IP = Vvac - Evbm. Both arguments
//are in eV, on the same reference, with their signs exactly as the upstream
//code reports them: for a VBM below the potential reference (negative Evbm)
//the subtraction adds the magnitudes, e.g. 2.3068 - (-2.4396) = 4.7464 eV.
func IonisationPotential(vacuum, vbm float64) float64 {
	return vacuum - vbm
}

//ElectronAffinity returns the energy gained by bringing an electron from the
//vacuum level to the conduction band minimum, EA = Vvac - Ecbm, in eV, with
//the same sign conventions as IonisationPotential.
func ElectronAffinity(vacuum, cbm float64) float64 {
	return vacuum - cbm
}
