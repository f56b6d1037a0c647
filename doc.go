/*
 * doc.go, part of goxdna.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package oxdna reads and writes oxDNA trajectory files: sequences of
"configuration" blocks in a line-oriented text format, each with a time
header, box dimensions, energies and one 15-value line per nucleotide.

The package is built for analysis of very large trajectories, where parsing
the whole file to reach one configuration is not an option:

    Configurations are located by a sequential boundary scan, but parsed
    in parallel, in file order.

    Byte offsets are the resume mechanism: any end offset previously
    returned restarts a read exactly at the following configuration.

    ReadOffsets indexes boundaries without materializing content, and
    Trajectory keeps that index in a sidecar file so it is only ever
    built once.

    Configurations serialize back to the exact text they came from
    (shortest round-trip float formatting).

It also reads oxDNA topology files, and converts configurations to and from
gonum matrices, including the derived geometric sites (a2 versors, base and
backbone centroids) that the trajectory does not store.

Everything a caller can get back as an error from this package fulfills the
Error interface; file-related errors also fulfill TrajError and either
FormatError (malformed content) or IOError (storage failures). The normal end
of a trajectory is a LastFrameError, which is not an actual error.
*/
package oxdna
