/*
 * interfaces.go, part of goxdna.
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

// Error is the interface for errors that everything in this library implements.
// The Decorate method allows to add and retrieve info from the error as it is
// passed up the call stack, without changing its type or wrapping it around
// something else. If passed an empty string, Decorate just returns the current
// decoration slice, without adding the empty string to it.
type Error interface {
	Error() string
	Decorate(string) []string
}

// TrajError is the interface for errors related to a trajectory file.
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// FormatError is the interface for errors caused by malformed content in a
// trajectory or topology file: a missing or mis-prefixed header, a wrong
// number of values, or a token that does not parse as a number. The Malformed
// method does nothing, it only separates this interface from other TrajErrors
// so the two failure classes can be told apart in a typeswitch.
type FormatError interface {
	TrajError
	Malformed()
}

// IOError is the interface for errors coming from the storage layer (open,
// seek or read failures) rather than from the file's content. The IO method
// does nothing, it only separates this interface from other TrajErrors.
type IOError interface {
	TrajError
	IO()
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. normal
// end of the trajectory) so they can be filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
