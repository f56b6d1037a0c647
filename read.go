/*
 * read.go, part of goxdna.
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
	"runtime"

	"golang.org/x/sync/errgroup"
)

//ConfAt pairs a Configuration with the byte offset at which its block ends
//in the trajectory file, i.e. the offset at which the next configuration
//starts. End offsets are the resume mechanism: a new read started at one of
//them picks up exactly at the following configuration.
type ConfAt struct {
	EndOffset int64
	Conf      *Configuration
}

//ReadConfs decodes at most limit configurations from the trajectory in
//filename, scanning from the byte offset given. The offset does not need to
//land on a configuration boundary; the scanner skips forward to the next
//time header. Boundary discovery is sequential (boundary N+1 requires having
//consumed the bytes through boundary N) but the extracted blocks are parsed
//on a worker pool sized to the available parallelism, then reordered, so the
//returned slice always follows file order no matter the completion order.
//On failure no partial result is returned; if several blocks are bad, the
//error for the lowest-index one is reported, independent of scheduling.
func ReadConfs(filename string, offset int64, limit int) ([]ConfAt, error) {
	scanner, err := newConfScanner(filename, offset, true)
	if err != nil {
		return nil, errDecorate(err, "ReadConfs")
	}
	defer scanner.close()
	raws := make([]*rawConf, 0, limit)
	var scanErr error
	for i := 0; i < limit; i++ {
		raw, err := scanner.next()
		if err != nil {
			if _, ok := err.(LastFrameError); ok {
				break
			}
			scanErr = errDecorate(err, "ReadConfs")
			break
		}
		raws = append(raws, raw)
	}
	confs := make([]ConfAt, len(raws))
	errs := make([]error, len(raws))
	var pool errgroup.Group
	pool.SetLimit(runtime.GOMAXPROCS(0))
	for i, raw := range raws {
		i, raw := i, raw
		pool.Go(func() error {
			conf, err := ConfFromLines(raw.lines)
			if err != nil {
				errs[i] = errDecorate(err, "ReadConfs")
				return nil
			}
			confs[i] = ConfAt{EndOffset: raw.end, Conf: conf}
			return nil
		})
	}
	pool.Wait()
	//The scan error, if any, belongs to the block after every parsed one,
	//so parse errors take precedence over it.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if scanErr != nil {
		return nil, scanErr
	}
	return confs, nil
}

//ReadOffsets scans at most limit configuration boundaries from the
//trajectory in filename, starting at the byte offset given, and returns
//their end offsets in file order. No configuration content is retained or
//parsed, so memory use does not depend on configuration size. This is the
//cheap way to build a random-access index on a large trajectory.
func ReadOffsets(filename string, offset int64, limit int) ([]int64, error) {
	scanner, err := newConfScanner(filename, offset, false)
	if err != nil {
		return nil, errDecorate(err, "ReadOffsets")
	}
	defer scanner.close()
	offsets := make([]int64, 0, limit)
	for i := 0; i < limit; i++ {
		raw, err := scanner.next()
		if err != nil {
			if _, ok := err.(LastFrameError); ok {
				break
			}
			return nil, errDecorate(err, "ReadOffsets")
		}
		offsets = append(offsets, raw.end)
	}
	return offsets, nil
}
