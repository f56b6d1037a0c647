/*
 * errors.go, part of goxdna.
 *
 * Copyright 2023 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package oxdna

import "fmt"

//errDecorate is a helper function that asserts that the error
//implements Error and decorates the error with the caller's name before returning it.
//if used with an error not from this package, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//ParseError is the structure for malformed-content errors. It fulfills
//Error, TrajError and FormatError. The message always names the offending text.
type ParseError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
}

func (err ParseError) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("oxDNA format error: %s", err.message)
	}
	return fmt.Sprintf("oxDNA file %s format error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (E ParseError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing trajectory was associated
func (err ParseError) FileName() string { return err.filename }

//Format returns the format of the file (always "oxDNA") associated to the error
func (err ParseError) Format() string { return "oxDNA" }

//Critical returns true if the error is critical, false otherwise
func (err ParseError) Critical() bool { return true }

//Malformed does nothing. It marks the error as a FormatError.
func (err ParseError) Malformed() {}

//ReadError is the structure for storage-layer errors: failures to open, seek
//or read a file. It fulfills Error, TrajError and IOError.
type ReadError struct {
	message  string
	filename string
	deco     []string
}

func (err ReadError) Error() string {
	return fmt.Sprintf("oxDNA file %s read error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (E ReadError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing trajectory was associated
func (err ReadError) FileName() string { return err.filename }

//Format returns the format of the file (always "oxDNA") associated to the error
func (err ReadError) Format() string { return "oxDNA" }

//Critical returns true if the error is critical, false otherwise
func (err ReadError) Critical() bool { return true }

//IO does nothing. It marks the error as an IOError.
func (err ReadError) IO() {}

const (
	TrajUnIniRead = "Traj object uninitialized to read"
	UnableToOpen  = "Unable to open file"
	UnableToSeek  = "Unable to seek in file"
	WrongFormat   = "Wrong format in the oxDNA file or configuration"
	OutOfRange    = "Configuration index out of range"
	NilConf       = "Given nil configuration"
	EOF           = "EOF"
)

//lastFrameError implements LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//NormalLastFrameTermination does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "oxDNA" }

func (E lastFrameError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
