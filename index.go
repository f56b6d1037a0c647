/*
 * index.go, part of goxdna.
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
	"encoding/json"
	"fmt"
	"log"
	"os"
)

//trajIndex is the random-access index of a trajectory file: the end offset
//of each configuration, in file order. It is built lazily, chunkSize
//boundaries at a time, and persisted next to the trajectory in a sidecar
//file (the trajectory name plus ".idx") holding a JSON list of
//[start, length, index] triples. A sidecar that fails any consistency check,
//for instance because the trajectory grew since it was written, is discarded
//and rebuilt from scratch.
type trajIndex struct {
	filename   string
	fileSize   int64
	chunkSize  int
	endOffsets []int64
}

func newTrajIndex(filename string, chunkSize int) (*trajIndex, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, ReadError{UnableToOpen + ": " + err.Error(), filename, []string{"newTrajIndex"}}
	}
	X := &trajIndex{filename: filename, fileSize: info.Size(), chunkSize: chunkSize}
	X.endOffsets = X.loadSidecar()
	return X, nil
}

//IndexFileName returns the name of the sidecar file for the index.
func (X *trajIndex) IndexFileName() string {
	return X.filename + ".idx"
}

//partial returns true if the index does not yet cover the whole trajectory.
func (X *trajIndex) partial() bool {
	if len(X.endOffsets) == 0 {
		return X.fileSize > 0
	}
	return X.endOffsets[len(X.endOffsets)-1] < X.fileSize
}

//loadSidecar reads the sidecar file and returns the end offsets stored in
//it, or nil if the file is absent, unreadable or inconsistent with the
//current trajectory. A bad sidecar is never an error: the index is simply
//rebuilt.
func (X *trajIndex) loadSidecar() []int64 {
	data, err := os.ReadFile(X.IndexFileName())
	if err != nil {
		return nil
	}
	var entries [][3]int64
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}
	if len(entries) == 0 {
		return nil
	}
	ends := make([]int64, len(entries))
	prevEnd := int64(0)
	for i, e := range entries {
		start, length, index := e[0], e[1], e[2]
		if index != int64(i) || start != prevEnd || length <= 0 {
			return nil
		}
		ends[i] = start + length
		prevEnd = ends[i]
	}
	if ends[len(ends)-1] != X.fileSize {
		return nil
	}
	return ends
}

//saveSidecar writes the index to the sidecar file. It is only called once
//the index covers the whole trajectory.
func (X *trajIndex) saveSidecar() error {
	entries := make([][3]int64, len(X.endOffsets))
	start := int64(0)
	for i, end := range X.endOffsets {
		entries[i] = [3]int64{start, end - start, int64(i)}
		start = end
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return ReadError{err.Error(), X.IndexFileName(), []string{"saveSidecar"}}
	}
	if err := os.WriteFile(X.IndexFileName(), data, 0644); err != nil {
		return ReadError{err.Error(), X.IndexFileName(), []string{"saveSidecar"}}
	}
	return nil
}

//startOffset returns the byte offset at which the configuration with the
//given index starts. The index must already be covered by the end offsets
//known so far, unless the offsets are complete, in which case anything past
//the last configuration returns a LastFrameError.
func (X *trajIndex) startOffset(index int) (int64, error) {
	if index < 0 {
		return 0, ReadError{fmt.Sprintf("%s: %d", OutOfRange, index), X.filename, []string{"startOffset"}}
	}
	if index == 0 {
		return 0, nil
	}
	if index > len(X.endOffsets) {
		if !X.partial() {
			return 0, newlastFrameError(X.filename, "startOffset")
		}
		return 0, ReadError{fmt.Sprintf("%s: %d", OutOfRange, index), X.filename, []string{"startOffset"}}
	}
	offset := X.endOffsets[index-1]
	if offset >= X.fileSize {
		return 0, newlastFrameError(X.filename, "startOffset")
	}
	return offset, nil
}

//update extends the known end offsets with the ones in offsets, which start
//at configuration index first. The new offsets must be contiguous with the
//known ones. Once the index covers the whole trajectory it is persisted; a
//failure to write the sidecar is only logged, as the index itself is fine.
func (X *trajIndex) update(first int, offsets []int64) error {
	if first < 0 || first > len(X.endOffsets) {
		return ReadError{fmt.Sprintf("index update at %d is not contiguous with the %d known offsets", first, len(X.endOffsets)), X.filename, []string{"update"}}
	}
	if len(X.endOffsets) >= first+len(offsets) {
		return nil
	}
	X.endOffsets = append(X.endOffsets[:first], offsets...)
	if !X.partial() {
		if err := X.saveSidecar(); err != nil {
			log.Printf("Failed to save the index for trajectory %s: %v", X.filename, err) //just a heads-up
		}
	}
	return nil
}

//analyze scans forward from the end of the known offsets until the index
//covers at least the configuration with index target, or the trajectory ends.
func (X *trajIndex) analyze(target int) error {
	start := len(X.endOffsets)
	limit := X.chunkSize
	if target-start > limit {
		limit = target - start
	}
	startOffset, err := X.startOffset(start)
	if err != nil {
		return errDecorate(err, "analyze")
	}
	offsets, err := ReadOffsets(X.filename, startOffset, limit)
	if err != nil {
		return errDecorate(err, "analyze")
	}
	if len(offsets) == 0 {
		return ReadError{fmt.Sprintf("failed to build index from configuration %d to %d", start, target), X.filename, []string{"analyze"}}
	}
	return X.update(start, offsets)
}

//ensure scans whatever part of the trajectory is not yet covered, completing
//the index.
func (X *trajIndex) ensure() error {
	for X.partial() {
		if err := X.analyze(len(X.endOffsets) + X.chunkSize); err != nil {
			return errDecorate(err, "ensure")
		}
	}
	return nil
}

//Len completes the index if needed and returns the number of configurations
//in the trajectory.
func (X *trajIndex) Len() (int, error) {
	if err := X.ensure(); err != nil {
		return 0, errDecorate(err, "Len")
	}
	return len(X.endOffsets), nil
}
