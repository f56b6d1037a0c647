/*
 * trajectory.go, part of goxdna.
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

//DefaultChunkSize is the number of configurations a Trajectory decodes, and
//the number of boundaries it indexes, per trip to the file.
const DefaultChunkSize = 20

//Trajectory gives random access to the configurations of an oxDNA
//trajectory file, using the byte-offset index to avoid parsing everything
//before the configuration asked for. Configurations are decoded one chunk at
//a time and the last chunk is kept, so iterating forward reads the file only
//once per chunk. Every read opens its own file handle and no state is shared
//between Trajectory values, but a single Trajectory is not meant for
//concurrent use.
type Trajectory struct {
	filename    string
	chunkSize   int
	idx         *trajIndex
	cached      []ConfAt
	cachedFirst int
	current     int
	readable    bool
}

//NewTrajectory opens the oxDNA trajectory in filename. If a valid sidecar
//index is found next to it, it is used; otherwise the index is built on
//demand. The optional argument overrides DefaultChunkSize. Only the first
//optional argument is read.
func NewTrajectory(filename string, chunkSize ...int) (*Trajectory, error) {
	size := DefaultChunkSize
	if len(chunkSize) > 0 && chunkSize[0] > 0 {
		size = chunkSize[0]
	}
	idx, err := newTrajIndex(filename, size)
	if err != nil {
		return nil, errDecorate(err, "NewTrajectory")
	}
	return &Trajectory{filename: filename, chunkSize: size, idx: idx, readable: true}, nil
}

//Readable returns true if it is possible to read configurations from the
//trajectory.
func (T *Trajectory) Readable() bool {
	return T.readable
}

//Len completes the index if needed and returns the number of configurations
//in the trajectory.
func (T *Trajectory) Len() (int, error) {
	n, err := T.idx.Len()
	if err != nil {
		return 0, errDecorate(err, "Len")
	}
	return n, nil
}

//EnsureIndex scans whatever part of the trajectory is not indexed yet, so
//later random access does not pay for it.
func (T *Trajectory) EnsureIndex() error {
	if err := T.idx.ensure(); err != nil {
		return errDecorate(err, "EnsureIndex")
	}
	return nil
}

//loadChunk decodes the chunk of configurations starting at index, growing
//the offset index first if it does not reach that far, and feeding it the
//boundaries the decode discovers.
func (T *Trajectory) loadChunk(index int) error {
	if T.idx.partial() && index > len(T.idx.endOffsets) {
		if err := T.idx.analyze(index); err != nil {
			return err
		}
	}
	offset, err := T.idx.startOffset(index)
	if err != nil {
		return err
	}
	confs, err := ReadConfs(T.filename, offset, T.chunkSize)
	if err != nil {
		return err
	}
	if len(confs) == 0 {
		return newlastFrameError(T.filename, "loadChunk")
	}
	ends := make([]int64, len(confs))
	for i, c := range confs {
		ends[i] = c.EndOffset
	}
	if err := T.idx.update(index, ends); err != nil {
		return err
	}
	T.cached = confs
	T.cachedFirst = index
	return nil
}

//Conf returns the configuration with the given index, counting from zero.
//Asking past the last configuration returns a LastFrameError.
func (T *Trajectory) Conf(index int) (*Configuration, error) {
	if !T.readable {
		return nil, ReadError{TrajUnIniRead, T.filename, []string{"Conf"}}
	}
	if index < 0 {
		return nil, ReadError{fmt.Sprintf("%s: %d", OutOfRange, index), T.filename, []string{"Conf"}}
	}
	if rel := index - T.cachedFirst; rel >= 0 && rel < len(T.cached) {
		return T.cached[rel].Conf, nil
	}
	if err := T.loadChunk(index); err != nil {
		return nil, errDecorate(err, "Conf")
	}
	return T.cached[0].Conf, nil
}

//Next returns the next configuration of the trajectory, starting from the
//first. The end of the trajectory is signaled with a LastFrameError, which
//is not an actual error.
func (T *Trajectory) Next() (*Configuration, error) {
	conf, err := T.Conf(T.current)
	if err != nil {
		return nil, err
	}
	T.current++
	return conf, nil
}

//Close marks the trajectory as unreadable and drops the cached
//configurations. No file handle outlives the individual reads, so there is
//nothing else to release.
func (T *Trajectory) Close() {
	T.cached = nil
	T.readable = false
}
