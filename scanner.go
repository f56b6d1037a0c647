/*
 * scanner.go, part of goxdna.
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
	"io"
	"os"
	"strings"
)

//lineReader reads one trajectory file line by line, keeping track of the
//byte offset at which each line starts. Reaching the end of the file is
//signaled by a zero-length read, not by an error. Any actual I/O failure
//marks the reader as exhausted for good: no further reads are attempted.
type lineReader struct {
	f               *os.File
	r               *bufio.Reader
	line            string
	reachedEnd      bool
	gotError        bool
	cursorOffset    int64
	lineStartOffset int64
}

func newLineReader(filename string, offset int64) (*lineReader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, ReadError{UnableToOpen + ": " + err.Error(), filename, []string{"newLineReader"}}
	}
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		f.Close()
		return nil, ReadError{UnableToSeek + ": " + err.Error(), filename, []string{"newLineReader"}}
	}
	L := &lineReader{
		f:               f,
		r:               bufio.NewReader(f),
		cursorOffset:    offset,
		lineStartOffset: offset,
	}
	return L, nil
}

//readLine reads the next line, including its trailing newline, into L.line.
//A final line without a trailing newline is returned as a normal line; the
//call after it reads zero bytes and flags the end of the file.
func (L *lineReader) readLine() error {
	L.lineStartOffset = L.cursorOffset
	line, err := L.r.ReadString('\n')
	L.cursorOffset += int64(len(line))
	L.line = line
	if err == io.EOF {
		if len(line) == 0 {
			L.reachedEnd = true
		}
		return nil
	}
	if err != nil {
		L.line = ""
		L.gotError = true
		L.reachedEnd = true
		return err
	}
	return nil
}

//takeLine hands the current line over to the caller, leaving the reader
//holding an empty one.
func (L *lineReader) takeLine() string {
	line := L.line
	L.line = ""
	return line
}

func (L *lineReader) close() {
	if L.f != nil {
		L.f.Close()
	}
}

//rawConf is one configuration as extracted from the file: its boundaries in
//bytes and, if requested, its raw lines (3 header lines followed by one line
//per nucleotide). It only lives between scanning and parsing.
type rawConf struct {
	start int64
	end   int64
	lines []string
}

//confScanner walks a trajectory file, yielding one configuration per call to
//next. A configuration starts at a line with the 't' time-header prefix and
//ends where the next such line begins (that line is not consumed; it stays
//pending for the following call) or at the end of the file. The scanner is
//finite and cannot be restarted. With saveLines false, configuration content
//is never retained, only its boundaries: this is how offsets are indexed on
//large files without materializing them.
type confScanner struct {
	r         *lineReader
	filename  string
	saveLines bool
}

func newConfScanner(filename string, offset int64, saveLines bool) (*confScanner, error) {
	r, err := newLineReader(filename, offset)
	if err != nil {
		return nil, errDecorate(err, "newConfScanner")
	}
	return &confScanner{r: r, filename: filename, saveLines: saveLines}, nil
}

//next returns the next configuration in the file. A clean end of the
//trajectory (no configuration left, including a start offset past the last
//time header) is signaled with a LastFrameError. An I/O failure is returned
//as a ReadError and ends the sequence: every later call returns a
//LastFrameError.
func (S *confScanner) next() (*rawConf, error) {
	if S.r.reachedEnd || S.r.gotError {
		return nil, newlastFrameError(S.filename, "next")
	}
	for !strings.HasPrefix(S.r.line, "t") {
		if err := S.r.readLine(); err != nil {
			return nil, ReadError{err.Error(), S.filename, []string{"next"}}
		}
		if S.r.reachedEnd || S.r.gotError {
			return nil, newlastFrameError(S.filename, "next")
		}
	}
	start := S.r.lineStartOffset
	var lines []string
	if S.saveLines {
		lines = append(lines, S.r.takeLine())
	}
	if err := S.r.readLine(); err != nil {
		return nil, ReadError{err.Error(), S.filename, []string{"next"}}
	}
	for !strings.HasPrefix(S.r.line, "t") && !S.r.reachedEnd {
		if S.saveLines {
			lines = append(lines, S.r.takeLine())
		}
		if err := S.r.readLine(); err != nil {
			return nil, ReadError{err.Error(), S.filename, []string{"next"}}
		}
	}
	return &rawConf{start: start, end: S.r.lineStartOffset, lines: lines}, nil
}

func (S *confScanner) close() {
	S.r.close()
}
