/*
 * conf.go, part of goxdna.
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

package oxdna

import (
	"fmt"
	"strconv"
	"strings"
)

//NNucCols is the number of values per nucleotide line in an oxDNA
//configuration: centre of mass, a1 versor, a3 versor, velocity and
//angular velocity, 3 values each.
const NNucCols = 15

//Configuration is one snapshot of an oxDNA trajectory: a simulation time,
//the 3 box dimensions, the 3 energy values (potential, kinetic and total,
//per nucleotide) and one row of NNucCols values per nucleotide.
type Configuration struct {
	Time        uint64
	Box         []float64
	Energy      []float64
	Nucleotides [][]float64
}

//Len returns the number of nucleotides in the configuration.
func (C *Configuration) Len() int {
	return len(C.Nucleotides)
}

//getHeader checks that the line at the given index exists and starts with
//the given prefix, and returns the trimmed text after its '=' sign.
func getHeader(lines []string, index int, prefix, name string) (string, error) {
	if index >= len(lines) {
		return "", ParseError{message: fmt.Sprintf("Missing %s header line", name)}
	}
	line := lines[index]
	if !strings.HasPrefix(line, prefix) {
		return "", ParseError{message: fmt.Sprintf("line %s does not start with %s: %s", name, prefix, strings.TrimSuffix(line, "\n"))}
	}
	_, value, found := strings.Cut(line, "=")
	if !found {
		return "", ParseError{message: fmt.Sprintf("Invalid %s header format: %s", name, strings.TrimSuffix(line, "\n"))}
	}
	return strings.TrimSpace(value), nil
}

//parseValues parses exactly count space-separated floats out of values.
//Splitting is strict, on single spaces: repeated spaces produce empty tokens,
//which fail to parse. That matches the behavior of oxDNA's own output, which
//is always single-space-joined.
func parseValues(values string, count int, name string) ([]float64, error) {
	fields := strings.Split(values, " ")
	parsed := make([]float64, 0, count)
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, ParseError{message: fmt.Sprintf("Invalid %s value \"%s\"", name, values)}
		}
		parsed = append(parsed, v)
	}
	if len(parsed) != count {
		return nil, ParseError{message: fmt.Sprintf("Invalid %s values \"%s\": expected %d fields", name, values, count)}
	}
	return parsed, nil
}

//ConfFromLines builds a Configuration from the raw lines of one trajectory
//block, headers first. Parsing is all-or-nothing: a single bad line fails
//the whole configuration, and no partial result is ever returned.
func ConfFromLines(lines []string) (*Configuration, error) {
	timestr, err := getHeader(lines, 0, "t", "time")
	if err != nil {
		return nil, errDecorate(err, "ConfFromLines")
	}
	time, err2 := strconv.ParseUint(timestr, 10, 64)
	if err2 != nil {
		return nil, ParseError{message: fmt.Sprintf("Invalid time header value \"%s\"", timestr), deco: []string{"ConfFromLines"}}
	}
	boxstr, err := getHeader(lines, 1, "b", "box")
	if err != nil {
		return nil, errDecorate(err, "ConfFromLines")
	}
	box, err := parseValues(boxstr, 3, "box header")
	if err != nil {
		return nil, errDecorate(err, "ConfFromLines")
	}
	energystr, err := getHeader(lines, 2, "E", "energy")
	if err != nil {
		return nil, errDecorate(err, "ConfFromLines")
	}
	energy, err := parseValues(energystr, 3, "energy header")
	if err != nil {
		return nil, errDecorate(err, "ConfFromLines")
	}
	nucleotides := make([][]float64, 0, len(lines)-3)
	for _, line := range lines[3:] {
		row, err := parseValues(strings.TrimSpace(line), NNucCols, "nucleotide")
		if err != nil {
			return nil, errDecorate(err, "ConfFromLines")
		}
		nucleotides = append(nucleotides, row)
	}
	return &Configuration{Time: time, Box: box, Energy: energy, Nucleotides: nucleotides}, nil
}
