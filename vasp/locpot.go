/*
 * locpot.go, part of godensity.
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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	density "github.com/rmera/godensity"
)

//ProgressFunc is called periodically while the value stream of a volumetric
//file is read, with the number of points read so far and the total expected.
//It replaces the ad hoc "reading point N" prints of older analysis scripts;
//pass nil for no reporting.
type ProgressFunc func(read, total int)

//progressEvery is how many grid points go by between progress calls.
const progressEvery = 100000

//zstd.Decoder does not implement io.ReadCloser, as its Close returns nothing.
type stdql struct {
	closeql func()
	*zstd.Decoder
}

func (s stdql) Close() error {
	s.closeql()
	return nil
}

//anyNewReader returns a decompressing reader for the file, going by its
//extension: .gz is gzip, .zst/.zstd is z-standard, anything else is read as
//plain text.
func anyNewReader(name string, a io.Reader) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewReader(a)
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		r, err := zstd.NewReader(a)
		return &stdql{r.Close, r}, err
	}
	return io.NopCloser(a), nil
}

//PotentialRead reads a LOCPOT-type volumetric file: an electrostatic
//potential, in eV, on a regular periodic grid. It returns the grid and the
//lattice vectors of the cell it spans.
func PotentialRead(filename string, prog ProgressFunc) (*density.ScalarGrid, *density.Lattice, error) {
	return readVolumetric(filename, false, prog)
}

//ChargeRead reads a CHGCAR-type volumetric file. VASP stores charge density
//multiplied by the cell volume, so the values are scaled down by the volume
//before the grid is returned; everything else is as in PotentialRead.
func ChargeRead(filename string, prog ProgressFunc) (*density.ScalarGrid, *density.Lattice, error) {
	return readVolumetric(filename, true, prog)
}

//fields2Floats parses all whitespace-separated fields of line as floats.
func fields2Floats(line string) ([]float64, error) {
	f := strings.Fields(line)
	ret := make([]float64, len(f))
	for i, v := range f {
		var err error
		ret[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func readVolumetric(filename string, scaleByVolume bool, prog ProgressFunc) (*density.ScalarGrid, *density.Lattice, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, Error{UnableToOpen + ": " + err.Error(), "locpot", filename, []string{"readVolumetric"}, true}
	}
	defer f.Close()
	unz, err := anyNewReader(filename, bufio.NewReader(f))
	if err != nil {
		return nil, nil, Error{UnableToOpen + ": " + err.Error(), "locpot", filename, []string{"readVolumetric"}, true}
	}
	defer unz.Close()
	b := bufio.NewReader(unz)
	lat, natoms, err := readHeader(filename, b)
	if err != nil {
		return nil, nil, errDecorate(err, "readVolumetric")
	}
	//the coordinates block, which we don't need.
	for i := 0; i < natoms; i++ {
		if _, err := b.ReadString('\n'); err != nil {
			return nil, nil, Error{TruncatedFile + ": in coordinates block", "locpot", filename, []string{"readVolumetric"}, true}
		}
	}
	nx, ny, nz, err := readShape(filename, b)
	if err != nil {
		return nil, nil, errDecorate(err, "readVolumetric")
	}
	total := nx * ny * nz
	data := make([]float64, 0, total)
	for len(data) < total {
		line, err := b.ReadString('\n')
		if line == "" && err != nil {
			return nil, nil, Error{fmt.Sprintf("%s: got %d of %d grid values", TruncatedFile, len(data), total), "locpot", filename, []string{"readVolumetric"}, true}
		}
		vals, err2 := fields2Floats(line)
		if err2 != nil {
			return nil, nil, Error{WrongFormat + ": " + err2.Error(), "locpot", filename, []string{"readVolumetric"}, true}
		}
		prev := len(data) / progressEvery
		data = append(data, vals...)
		if prog != nil && len(data)/progressEvery > prev {
			prog(len(data), total)
		}
	}
	if len(data) > total {
		data = data[:total] //a CHGCAR line can spill past the grid into the augmentation part
	}
	if prog != nil {
		prog(total, total)
	}
	if scaleByVolume {
		vol := lat.Volume()
		for i := range data {
			data[i] /= vol
		}
	}
	grid, err := density.NewScalarGrid(data, nx, ny, nz)
	if err != nil {
		return nil, nil, errDecorate(err, "readVolumetric "+filename)
	}
	return grid, lat, nil
}

//readHeader parses the POSCAR-style header: title, scale factor, the three
//lattice vectors, the (optional, VASP >= 5) species line, the counts line and
//the coordinate-mode line. It returns the scaled lattice and the atom count.
func readHeader(filename string, b *bufio.Reader) (*density.Lattice, int, error) {
	fail := func(msg string) (*density.Lattice, int, error) {
		return nil, 0, Error{msg, "locpot", filename, []string{"readHeader"}, true}
	}
	if _, err := b.ReadString('\n'); err != nil { //title
		return fail(TruncatedFile)
	}
	line, err := b.ReadString('\n')
	if err != nil {
		return fail(TruncatedFile)
	}
	scale, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return fail(WrongFormat + ": scale factor: " + err.Error())
	}
	var vecs [3][3]float64
	for i := 0; i < 3; i++ {
		line, err := b.ReadString('\n')
		if err != nil {
			return fail(TruncatedFile)
		}
		v, err2 := fields2Floats(line)
		if err2 != nil || len(v) < 3 {
			return fail(WrongFormat + ": lattice vector")
		}
		for j := 0; j < 3; j++ {
			vecs[i][j] = v[j] * scale
		}
	}
	lat, err := density.NewLattice(vecs[0], vecs[1], vecs[2])
	if err != nil {
		return nil, 0, errDecorate(err, "readHeader "+filename)
	}
	line, err = b.ReadString('\n')
	if err != nil {
		return fail(TruncatedFile)
	}
	counts := strings.Fields(line)
	if len(counts) == 0 {
		return fail(WrongFormat + ": empty species line")
	}
	if _, err := strconv.Atoi(counts[0]); err != nil {
		//a VASP 5 species-name line; the counts come next.
		line, err = b.ReadString('\n')
		if err != nil {
			return fail(TruncatedFile)
		}
		counts = strings.Fields(line)
	}
	natoms := 0
	for _, v := range counts {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fail(WrongFormat + ": species counts: " + err.Error())
		}
		natoms += n
	}
	if _, err := b.ReadString('\n'); err != nil { //"Direct" or "Cartesian"
		return fail(TruncatedFile)
	}
	return lat, natoms, nil
}

//readShape skips blank lines and parses the NGX NGY NGZ line.
func readShape(filename string, b *bufio.Reader) (int, int, int, error) {
	for {
		line, err := b.ReadString('\n')
		if err != nil {
			return 0, 0, 0, Error{TruncatedFile + ": no grid shape found", "locpot", filename, []string{"readShape"}, true}
		}
		f := strings.Fields(line)
		if len(f) == 0 {
			continue
		}
		if len(f) != 3 {
			return 0, 0, 0, Error{WrongFormat + ": expected NGX NGY NGZ, got " + strings.TrimSpace(line), "locpot", filename, []string{"readShape"}, true}
		}
		var dims [3]int
		for i, v := range f {
			dims[i], err = strconv.Atoi(v)
			if err != nil {
				return 0, 0, 0, Error{WrongFormat + ": grid shape: " + err.Error(), "locpot", filename, []string{"readShape"}, true}
			}
		}
		return dims[0], dims[1], dims[2], nil
	}
}

//Errors

//errDecorate asserts that err implements density.Error and decorates it with
//the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(density.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for VASP file errors. It fulfills
//density.Error and density.GridError.
type Error struct {
	message  string
	format   string //"locpot" or "outcar"
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("vasp %s file %s error: %s", err.format, err.filename, err.message)
}

//Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated to the error
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file associated to the error
func (err Error) Format() string { return err.format }

//Critical returns true if the error is critical, false otherwise. All
//upstream parse failures here are critical: a one-shot analysis has nothing
//to retry.
func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen  = "Unable to open file"
	WrongFormat   = "Wrong format in file"
	TruncatedFile = "File ends too early"
	NoExtrema     = "Output does not contain band eigenvalues"
)
