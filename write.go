/*
 * write.go, part of goxdna.
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

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

//formatFloats joins the given values with single spaces, each formatted with
//the shortest representation that parses back to exactly the same float64.
//Dumping a configuration and parsing the result therefore round-trips with
//no tolerance involved.
func formatFloats(values []float64) string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(strs, " ")
}

//Dump returns the canonical textual block for the configuration: the three
//header lines, one line per nucleotide and a trailing newline. It is the
//exact inverse of ConfFromLines. A Box or Energy of length other than 3, or
//a nucleotide row of length other than NNucCols, is a format error: such a
//configuration has no valid textual form.
func (C *Configuration) Dump() (string, error) {
	if C == nil {
		return "", ParseError{message: NilConf, deco: []string{"Dump"}}
	}
	if len(C.Box) != 3 {
		return "", ParseError{message: fmt.Sprintf("box must have 3 values, not %d", len(C.Box)), deco: []string{"Dump"}}
	}
	if len(C.Energy) != 3 {
		return "", ParseError{message: fmt.Sprintf("energy must have 3 values, not %d", len(C.Energy)), deco: []string{"Dump"}}
	}
	lines := make([]string, 0, len(C.Nucleotides)+4)
	lines = append(lines, fmt.Sprintf("t = %d", C.Time))
	lines = append(lines, "b = "+formatFloats(C.Box))
	lines = append(lines, "E = "+formatFloats(C.Energy))
	for i, nuc := range C.Nucleotides {
		if len(nuc) != NNucCols {
			return "", ParseError{message: fmt.Sprintf("nucleotide %d must have %d values, not %d", i, NNucCols, len(nuc)), deco: []string{"Dump"}}
		}
		lines = append(lines, formatFloats(nuc))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n"), nil
}

//DumpConfs serializes the given configurations in parallel and returns their
//textual blocks in the same order, ready to be written out one after the
//other. Input order is the only order here: no boundary discovery is
//involved, so nothing needs reordering. As with ReadConfs, a failure on any
//configuration fails the whole call, and the lowest-index failure wins.
func DumpConfs(confs []*Configuration) ([]string, error) {
	blocks := make([]string, len(confs))
	errs := make([]error, len(confs))
	var pool errgroup.Group
	pool.SetLimit(runtime.GOMAXPROCS(0))
	for i, conf := range confs {
		i, conf := i, conf
		pool.Go(func() error {
			block, err := conf.Dump()
			if err != nil {
				errs[i] = errDecorate(err, "DumpConfs")
				return nil
			}
			blocks[i] = block
			return nil
		})
	}
	pool.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return blocks, nil
}
