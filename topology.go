/*
 * topology.go, part of goxdna.
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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//Strand is one strand of the system: the indexes of its first and last
//nucleotides in each configuration (both inclusive) and its base sequence.
type Strand struct {
	Start    int
	End      int
	Sequence string
}

//Len returns the number of nucleotides in the strand.
func (S *Strand) Len() int {
	return len(S.Sequence)
}

//Slice returns the nucleotide rows of the strand within the given
//configuration. The rows are shared with the configuration, not copied.
func (S *Strand) Slice(C *Configuration) ([][]float64, error) {
	if S.End >= len(C.Nucleotides) {
		return nil, ParseError{message: fmt.Sprintf("strand spans nucleotides %d-%d but the configuration only has %d", S.Start, S.End, len(C.Nucleotides)), deco: []string{"Slice"}}
	}
	return C.Nucleotides[S.Start : S.End+1], nil
}

//Topology holds the fixed part of an oxDNA system: how many monomers it
//has and how they are grouped into strands. It is read from the oxDNA
//topology file: a header line with the monomer and strand counts, then one
//"strand base previous next" line per monomer, where previous and next are
//the monomer's neighbors within its strand, or -1.
type Topology struct {
	NMonomers int
	strands   map[int]*Strand
	ids       []int //strand ids in order of appearance
}

//topoLine is one monomer line of the topology file, while being checked for
//strand contiguity.
type topoLine struct {
	strand, prev, next int
	base               string
}

func parseTopoLine(fields []string, raw string) (*topoLine, error) {
	if len(fields) != 4 {
		return nil, ParseError{message: fmt.Sprintf("topology line must have 4 fields: %s", strings.TrimSuffix(raw, "\n"))}
	}
	var t topoLine
	var err error
	t.base = fields[1]
	if t.strand, err = strconv.Atoi(fields[0]); err != nil {
		return nil, ParseError{message: fmt.Sprintf("Invalid strand id \"%s\"", fields[0])}
	}
	if t.prev, err = strconv.Atoi(fields[2]); err != nil {
		return nil, ParseError{message: fmt.Sprintf("Invalid previous-monomer index \"%s\"", fields[2])}
	}
	if t.next, err = strconv.Atoi(fields[3]); err != nil {
		return nil, ParseError{message: fmt.Sprintf("Invalid next-monomer index \"%s\"", fields[3])}
	}
	return &t, nil
}

//NewTopology reads the oxDNA topology file in filename. The strand layout is
//checked while reading: monomers of one strand must be contiguous and in
//order, every strand must end before the file does, and the counts announced
//in the header must match what the file actually holds. Any violation is a
//FormatError.
func NewTopology(filename string) (*Topology, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, ReadError{UnableToOpen + ": " + err.Error(), filename, []string{"NewTopology"}}
	}
	defer f.Close()
	r := bufio.NewReader(f)
	header, err := r.ReadString('\n')
	if err != nil && header == "" {
		return nil, ReadError{err.Error(), filename, []string{"NewTopology"}}
	}
	hfields := strings.Fields(header)
	if len(hfields) != 2 {
		return nil, ParseError{fmt.Sprintf("topology header must have 2 fields: %s", strings.TrimSuffix(header, "\n")), filename, []string{"NewTopology"}}
	}
	nmono, err1 := strconv.Atoi(hfields[0])
	nstrands, err2 := strconv.Atoi(hfields[1])
	if err1 != nil || err2 != nil {
		return nil, ParseError{fmt.Sprintf("Invalid topology header \"%s\"", strings.TrimSuffix(header, "\n")), filename, []string{"NewTopology"}}
	}
	T := &Topology{NMonomers: nmono, strands: make(map[int]*Strand)}
	//next-monomer index each known strand expects to see, for the
	//contiguity checks
	expect := make(map[int]int)
	sequences := make(map[int][]string)
	index := 0
	for {
		line, rerr := r.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			t, err := parseTopoLine(strings.Fields(line), line)
			if err != nil {
				return nil, errDecorate(err, "NewTopology")
			}
			if t.prev == -1 {
				if _, dup := T.strands[t.strand]; dup {
					return nil, ParseError{fmt.Sprintf("strand %d starts twice, at monomers %d and %d", t.strand, T.strands[t.strand].Start, index), filename, []string{"NewTopology"}}
				}
				T.strands[t.strand] = &Strand{Start: index, End: index}
				T.ids = append(T.ids, t.strand)
			} else {
				S, ok := T.strands[t.strand]
				if !ok || t.prev != index-1 || S.End != t.prev || expect[t.strand] != index {
					return nil, ParseError{fmt.Sprintf("monomer %d is not contiguous with the rest of strand %d: %s", index, t.strand, strings.TrimSuffix(line, "\n")), filename, []string{"NewTopology"}}
				}
				S.End = index
			}
			expect[t.strand] = t.next
			sequences[t.strand] = append(sequences[t.strand], t.base)
			index++
		}
		if rerr != nil {
			break
		}
	}
	total := 0
	for id, S := range T.strands {
		S.Sequence = strings.Join(sequences[id], "")
		total += len(sequences[id])
		if expect[id] != -1 {
			return nil, ParseError{fmt.Sprintf("strand %d does not end: its last monomer points to %d", id, expect[id]), filename, []string{"NewTopology"}}
		}
	}
	if len(T.strands) != nstrands {
		return nil, ParseError{fmt.Sprintf("topology header announces %d strands but the file has %d", nstrands, len(T.strands)), filename, []string{"NewTopology"}}
	}
	if total != nmono {
		return nil, ParseError{fmt.Sprintf("topology header announces %d monomers but the file has %d", nmono, total), filename, []string{"NewTopology"}}
	}
	return T, nil
}

//Len returns the number of strands in the topology.
func (T *Topology) Len() int {
	return len(T.strands)
}

//Strand returns the strand with the given id, or nil if there is none.
func (T *Topology) Strand(id int) *Strand {
	return T.strands[id]
}

//Strands returns the strands in their order of appearance in the topology
//file.
func (T *Topology) Strands() []*Strand {
	ret := make([]*Strand, len(T.ids))
	for i, id := range T.ids {
		ret[i] = T.strands[id]
	}
	return ret
}
