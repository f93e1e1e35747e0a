/*
 * errors.go, part of godensity.
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

import "fmt"

//CError is the concrete error type for the density package. It fulfills the
//density.Error interface.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds new information to the error
func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate asserts that err implements density.Error and decorates it with
//the caller's name before returning it. It panics on any other error type.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//The error messages for the sampling core. InvalidRegion covers malformed
//sampling parameters, DimensionMismatch covers grids whose declared shape
//disagrees with the data backing them.
const (
	ErrInvalidRegion     = "godensity: Invalid sampling region"
	ErrDimensionMismatch = "godensity: Grid dimensions don't match the data"
	ErrNilGrid           = "godensity: Nil or empty grid given"
	ErrNilLattice        = "godensity: Nil lattice given"
	ErrNotALattice       = "godensity: Lattice vectors don't span a cell"
)

//invalidRegion builds an InvalidRegion error identifying the offending
//parameter, so a failed query says what was wrong instead of just failing.
func invalidRegion(caller, param string, value interface{}) error {
	return CError{fmt.Sprintf("%s: %s=%v", ErrInvalidRegion, param, value), []string{caller}}
}
