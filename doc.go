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
 * godensity is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package density provides structures and functions to analyze scalar fields defined
on periodic 3D grids, as produced by plane-wave DFT codes: electrostatic potentials,
charge densities and similar volumetric data spanning one unit cell.


	**goDensity capabilities**

    Holds a dense 3D periodic scalar field with its lattice vectors, with
	all index arithmetic wrapped at the periodic boundaries.

    Samples the mean and population variance of the field over an axis-aligned
	cube of grid points, anywhere in the cell, including cubes that cross
	the periodic boundary. A concurrent version of the sampler is provided.

    Sweeps cubes of increasing size from a fixed point to locate a
	potential plateau (a flat, vacuum-like region such as a pore center),
	reporting (size, mean, variance) for each cube.

    Averages the field over planes perpendicular to a lattice axis
	(planar/macroscopic averaging).

    Combines a sampled vacuum potential with band extrema to obtain
	ionisation potentials and electron affinities.

    Reads VASP LOCPOT/CHGCAR volumetric files, plain or compressed,
	and scrapes band extrema from OUTCAR files (subpackage vasp).

    Plots convergence sweeps and planar-average profiles with the
	Plotinum-descended gonum/plot library (subpackage densplot).

The sampling functions are pure reads over the grid; the grid itself is meant
to be built once, from a file or otherwise, and never modified.
*/
package density
