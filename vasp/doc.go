/*
 * doc.go, part of godensity.
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

//Package vasp reads volumetric and electronic-structure output from the VASP
//plane-wave DFT code. PotentialRead and ChargeRead parse LOCPOT/CHGCAR-style
//files into a density.ScalarGrid plus its density.Lattice; BandExtrema
//scrapes an OUTCAR for the valence band maximum and conduction band minimum.
//Files compressed with gzip or z-standard are read transparently, going by
//the file extension.
package vasp
