/*
 * topology_test.go, part of goxdna.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopologyFile(t *testing.T) {
	topo, err := NewTopology("test/topology.top")
	require.NoError(t, err)
	assert.Equal(t, 4, topo.NMonomers)
	assert.Equal(t, 2, topo.Len())

	first := topo.Strand(1)
	require.NotNil(t, first)
	assert.Equal(t, 0, first.Start)
	assert.Equal(t, 1, first.End)
	assert.Equal(t, "AT", first.Sequence)
	assert.Equal(t, 2, first.Len())

	second := topo.Strand(2)
	require.NotNil(t, second)
	assert.Equal(t, 2, second.Start)
	assert.Equal(t, 3, second.End)
	assert.Equal(t, "GC", second.Sequence)

	assert.Nil(t, topo.Strand(3))
	strands := topo.Strands()
	require.Len(t, strands, 2)
	assert.Same(t, first, strands[0])
	assert.Same(t, second, strands[1])
}

func TestStrandSlice(t *testing.T) {
	topo, err := NewTopology("test/topology.top")
	require.NoError(t, err)
	confs, err := ReadConfs("test/traj.oxdna", 0, 1)
	require.NoError(t, err)
	conf := confs[0].Conf
	//the test trajectory only has one nucleotide, so the strands of the
	//4-monomer topology do not fit in it
	_, err = topo.Strand(1).Slice(conf)
	require.Error(t, err)

	conf = &Configuration{Nucleotides: [][]float64{
		make([]float64, NNucCols), make([]float64, NNucCols),
		make([]float64, NNucCols), make([]float64, NNucCols),
	}}
	conf.Nucleotides[2][0] = 42
	rows, err := topo.Strand(2).Slice(conf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 42.0, rows[0][0])
}

func writeTopo(t *testing.T, content string) string {
	name := filepath.Join(t.TempDir(), "topology.top")
	require.NoError(t, os.WriteFile(name, []byte(content), 0644))
	return name
}

func TestTopologyErrors(t *testing.T) {
	cases := map[string]string{
		"short header":       "4\n",
		"bad header":         "four 2\n1 A -1 -1\n",
		"short line":         "1 1\n1 A -1\n",
		"bad strand id":      "1 1\nuno A -1 -1\n",
		"duplicate start":    "2 1\n1 A -1 -1\n1 T -1 -1\n",
		"broken contiguity":  "3 2\n1 A -1 1\n2 G -1 -1\n1 T 0 -1\n",
		"unterminated":       "1 1\n1 A -1 7\n",
		"wrong strand count": "2 3\n1 A -1 1\n1 T 0 -1\n",
		"wrong monomers":     "5 2\n1 A -1 1\n1 T 0 -1\n2 G -1 3\n2 C 2 -1\n",
	}
	for what, content := range cases {
		_, err := NewTopology(writeTopo(t, content))
		require.Error(t, err, what)
		_, format := err.(FormatError)
		assert.True(t, format, "%s should be a FormatError, got %T: %v", what, err, err)
	}
	_, err := NewTopology(filepath.Join(t.TempDir(), "missing.top"))
	require.Error(t, err)
	_, io := err.(IOError)
	assert.True(t, io, "a missing file should be an IOError, got %T", err)
}
