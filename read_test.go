/*
 * read_test.go, part of goxdna.
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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

//testBlock returns the canonical text of one configuration with
//recognizable values derived from time.
func testBlock(time, nnucs int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "t = %d\n", time)
	b.WriteString("b = 20 20 20\n")
	fmt.Fprintf(&b, "E = %g %g %g\n", -1.5, 0.25, -1.25)
	for n := 0; n < nnucs; n++ {
		row := make([]string, NNucCols)
		for j := range row {
			row[j] = fmt.Sprintf("%g", float64(time)+float64(n)/8+float64(j)/128)
		}
		b.WriteString(strings.Join(row, " ") + "\n")
	}
	return b.String()
}

//testTraj writes a trajectory with nconfs configurations (times 0, 10,
//20...) to a temporary file and returns its name and the start offset of
//every block.
func testTraj(Te *testing.T, nconfs, nnucs int) (string, []int64) {
	var b strings.Builder
	starts := make([]int64, nconfs)
	for i := 0; i < nconfs; i++ {
		starts[i] = int64(b.Len())
		b.WriteString(testBlock(i*10, nnucs))
	}
	name := filepath.Join(Te.TempDir(), "traj.oxdna")
	if err := os.WriteFile(name, []byte(b.String()), 0644); err != nil {
		Te.Fatal(err)
	}
	return name, starts
}

//The two-configuration trajectory in the test directory, read whole.
func TestReadConfsFile(Te *testing.T) {
	confs, err := ReadConfs("test/traj.oxdna", 0, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if len(confs) != 2 {
		Te.Fatalf("expected 2 configurations, got %d", len(confs))
	}
	first, second := confs[0].Conf, confs[1].Conf
	if first.Time != 0 || second.Time != 1 {
		Te.Errorf("wrong times: %d %d", first.Time, second.Time)
	}
	if first.Box[0] != 10.0 || first.Energy[1] != 2.0 || second.Energy[2] != 3.1 {
		Te.Errorf("wrong headers: %v %v", first.Box, second.Energy)
	}
	if first.Len() != 1 || second.Len() != 1 {
		Te.Fatalf("wrong nucleotide counts: %d %d", first.Len(), second.Len())
	}
	for j := 0; j < NNucCols; j++ {
		if first.Nucleotides[0][j] != 0 || second.Nucleotides[0][j] != 1 {
			Te.Fatalf("wrong nucleotide rows: %v %v", first.Nucleotides[0], second.Nucleotides[0])
		}
	}
	offsets, err := ReadOffsets("test/traj.oxdna", 0, 2)
	if err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat("test/traj.oxdna")
	if err != nil {
		Te.Fatal(err)
	}
	//the first end offset is where the second "t = " line starts, the
	//second is the end of the file
	if len(offsets) != 2 || offsets[0] != confs[0].EndOffset || offsets[1] != info.Size() {
		Te.Errorf("wrong offsets: %v", offsets)
	}
	fmt.Println("test file read, offsets:", offsets)
}

func TestBoundedRead(Te *testing.T) {
	name, _ := testTraj(Te, 5, 3)
	for _, k := range []int{0, 1, 3, 5, 8} {
		confs, err := ReadConfs(name, 0, k)
		if err != nil {
			Te.Fatal(err)
		}
		want := k
		if want > 5 {
			want = 5
		}
		if len(confs) != want {
			Te.Errorf("limit %d: expected %d configurations, got %d", k, want, len(confs))
		}
	}
}

func TestOffsetChaining(Te *testing.T) {
	name, starts := testTraj(Te, 6, 2)
	offsets, err := ReadOffsets(name, 0, 6)
	if err != nil {
		Te.Fatal(err)
	}
	if len(offsets) != 6 {
		Te.Fatalf("expected 6 offsets, got %d", len(offsets))
	}
	prev := int64(0)
	for i, off := range offsets {
		if off <= prev {
			Te.Fatalf("offsets not strictly increasing: %v", offsets)
		}
		prev = off
		//each end offset is the next block's start offset
		if i < 5 && off != starts[i+1] {
			Te.Errorf("offset %d is %d, expected %d", i, off, starts[i+1])
		}
	}
	//resuming at each returned offset yields exactly the next configuration
	for i := 0; i < 5; i++ {
		confs, err := ReadConfs(name, offsets[i], 1)
		if err != nil {
			Te.Fatal(err)
		}
		if len(confs) != 1 || confs[0].Conf.Time != uint64((i+1)*10) {
			Te.Fatalf("resume at offset %d read time %d, expected %d", offsets[i], confs[0].Conf.Time, (i+1)*10)
		}
	}
	//resuming at the last offset (the end of the file) reads nothing
	confs, err := ReadConfs(name, offsets[5], 1)
	if err != nil || len(confs) != 0 {
		Te.Fatalf("resume at EOF should read nothing: %v %v", confs, err)
	}
}

//Starting strictly inside a block, even in the middle of a line, the scanner
//skips forward to the next boundary, so the result equals a scan started at
//the following block.
func TestMidBlockStart(Te *testing.T) {
	name, starts := testTraj(Te, 3, 2)
	fromStart, err := ReadConfs(name, starts[1], 5)
	if err != nil {
		Te.Fatal(err)
	}
	for _, inside := range []int64{starts[0] + 1, starts[0] + 9, starts[1] - 2} {
		fromInside, err := ReadConfs(name, inside, 5)
		if err != nil {
			Te.Fatal(err)
		}
		if len(fromInside) != len(fromStart) {
			Te.Fatalf("start at %d read %d configurations, expected %d", inside, len(fromInside), len(fromStart))
		}
		for i := range fromInside {
			if fromInside[i].EndOffset != fromStart[i].EndOffset || fromInside[i].Conf.Time != fromStart[i].Conf.Time {
				Te.Fatalf("start at %d gave different boundaries", inside)
			}
		}
	}
}

func TestReadOrder(Te *testing.T) {
	//enough configurations to keep the parser pool busy out of order
	name, _ := testTraj(Te, 60, 4)
	confs, err := ReadConfs(name, 0, 100)
	if err != nil {
		Te.Fatal(err)
	}
	if len(confs) != 60 {
		Te.Fatalf("expected 60 configurations, got %d", len(confs))
	}
	prevOff := int64(0)
	for i, c := range confs {
		if c.Conf.Time != uint64(i*10) {
			Te.Fatalf("configuration %d has time %d: results out of file order", i, c.Conf.Time)
		}
		if c.EndOffset <= prevOff {
			Te.Fatalf("end offsets not increasing at %d", i)
		}
		prevOff = c.EndOffset
	}
}

//If several configurations are bad, the error reported must belong to the
//lowest-index one, no matter how the workers were scheduled.
func TestLowestErrorWins(Te *testing.T) {
	var b strings.Builder
	for i := 0; i < 12; i++ {
		block := testBlock(i*10, 2)
		if i == 4 {
			block = strings.Replace(block, "t = 40", "t = first-bad-one", 1)
		}
		if i == 9 {
			block = strings.Replace(block, "t = 90", "t = second-bad-one", 1)
		}
		b.WriteString(block)
	}
	name := filepath.Join(Te.TempDir(), "bad.oxdna")
	if err := os.WriteFile(name, []byte(b.String()), 0644); err != nil {
		Te.Fatal(err)
	}
	for trial := 0; trial < 5; trial++ {
		confs, err := ReadConfs(name, 0, 12)
		if err == nil {
			Te.Fatal("expected an error")
		}
		if confs != nil {
			Te.Fatal("no partial results should come with an error")
		}
		if !strings.Contains(err.Error(), "first-bad-one") {
			Te.Fatalf("wrong block reported: %v", err)
		}
		if _, ok := err.(FormatError); !ok {
			Te.Errorf("bad content should be a FormatError, got %T", err)
		}
	}
	//an unreadable file, in contrast, is an IOError
	_, err := ReadConfs(filepath.Join(Te.TempDir(), "no-such-file"), 0, 1)
	if err == nil {
		Te.Fatal("expected an error")
	}
	if _, ok := err.(IOError); !ok {
		Te.Errorf("open failure should be an IOError, got %T", err)
	}
}

//Content that never begins a block is skipped before the first boundary and
//swallowed into the preceding configuration after it.
func TestStrayContent(Te *testing.T) {
	text := "# a comment the format does not really allow\n\n" + testBlock(0, 1)
	name := filepath.Join(Te.TempDir(), "stray.oxdna")
	if err := os.WriteFile(name, []byte(text), 0644); err != nil {
		Te.Fatal(err)
	}
	confs, err := ReadConfs(name, 0, 3)
	if err != nil {
		Te.Fatal(err)
	}
	if len(confs) != 1 || confs[0].Conf.Time != 0 {
		Te.Fatalf("leading junk not skipped: %v", confs)
	}
	//junk after the last block's rows becomes part of that block and fails
	//to parse as a nucleotide row
	if err := os.WriteFile(name, []byte(testBlock(0, 1)+"not a row\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	_, err = ReadConfs(name, 0, 3)
	if err == nil || !strings.Contains(err.Error(), "not a row") {
		Te.Fatalf("trailing junk not reported: %v", err)
	}
	//an empty file has no configurations, which is not an error
	if err := os.WriteFile(name, nil, 0644); err != nil {
		Te.Fatal(err)
	}
	confs, err = ReadConfs(name, 0, 3)
	if err != nil || len(confs) != 0 {
		Te.Fatalf("empty file: %v %v", confs, err)
	}
	offsets, err := ReadOffsets(name, 0, 3)
	if err != nil || len(offsets) != 0 {
		Te.Fatalf("empty file offsets: %v %v", offsets, err)
	}
}
