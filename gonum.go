/*
 * gonum.go, part of goxdna.
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

//gonum.go holds everything for handling configurations as gonum/mat types:
//the conversions between nucleotide rows and mat.Dense, the geometric sites
//of each nucleotide (which the trajectory does not store explicitly) and
//rigid rotations.

package oxdna

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Nucleotide row column groups.
const (
	colPos    = 0  //centre of mass
	colA1     = 3  //base versor
	colA3     = 6  //base normal versor
	colVel    = 9  //velocity
	colAngVel = 12 //angular velocity
)

//Matrix returns the nucleotides of the configuration as a new
//len(C.Nucleotides)xNNucCols dense matrix. The data is copied, not shared.
func (C *Configuration) Matrix() *mat.Dense {
	n := len(C.Nucleotides)
	if n == 0 {
		return nil
	}
	data := make([]float64, 0, n*NNucCols)
	for _, nuc := range C.Nucleotides {
		data = append(data, nuc...)
	}
	return mat.NewDense(n, NNucCols, data)
}

//ConfFromMatrix builds a Configuration from a time, box and energy plus an
//NxNNucCols matrix of nucleotide rows, as returned by Matrix. A nil matrix
//gives a configuration with no nucleotides.
func ConfFromMatrix(time uint64, box, energy []float64, m *mat.Dense) (*Configuration, error) {
	if len(box) != 3 {
		return nil, ParseError{message: fmt.Sprintf("box must have 3 values, not %d", len(box)), deco: []string{"ConfFromMatrix"}}
	}
	if len(energy) != 3 {
		return nil, ParseError{message: fmt.Sprintf("energy must have 3 values, not %d", len(energy)), deco: []string{"ConfFromMatrix"}}
	}
	C := &Configuration{Time: time, Box: box, Energy: energy}
	if m == nil {
		return C, nil
	}
	r, c := m.Dims()
	if c != NNucCols {
		return nil, ParseError{message: fmt.Sprintf("nucleotide matrix must have %d columns, not %d", NNucCols, c), deco: []string{"ConfFromMatrix"}}
	}
	C.Nucleotides = make([][]float64, r)
	for i := range C.Nucleotides {
		C.Nucleotides[i] = mat.Row(nil, i, m)
	}
	return C, nil
}

//group returns a new Nx3 matrix with the 3 columns starting at col.
func (C *Configuration) group(col int) *mat.Dense {
	n := len(C.Nucleotides)
	if n == 0 {
		return nil
	}
	data := make([]float64, 0, n*3)
	for _, nuc := range C.Nucleotides {
		data = append(data, nuc[col:col+3]...)
	}
	return mat.NewDense(n, 3, data)
}

//Positions returns the centres of mass of the nucleotides as an Nx3 matrix.
//The data is copied, not shared.
func (C *Configuration) Positions() *mat.Dense {
	return C.group(colPos)
}

//A1s returns the base versors of the nucleotides as an Nx3 matrix.
func (C *Configuration) A1s() *mat.Dense {
	return C.group(colA1)
}

//A3s returns the base normal versors of the nucleotides as an Nx3 matrix.
func (C *Configuration) A3s() *mat.Dense {
	return C.group(colA3)
}

//Velocities returns the velocities of the nucleotides as an Nx3 matrix.
func (C *Configuration) Velocities() *mat.Dense {
	return C.group(colVel)
}

//AngularVelocities returns the angular velocities of the nucleotides as an
//Nx3 matrix.
func (C *Configuration) AngularVelocities() *mat.Dense {
	return C.group(colAngVel)
}

//A2s returns the a2 versors of the nucleotides, i.e. a3 x a1, as an Nx3
//matrix. They complete the right-handed frame of each nucleotide but are
//not stored in the trajectory.
func (C *Configuration) A2s() *mat.Dense {
	n := len(C.Nucleotides)
	if n == 0 {
		return nil
	}
	data := make([]float64, 0, n*3)
	for _, nuc := range C.Nucleotides {
		a1 := nuc[colA1 : colA1+3]
		a3 := nuc[colA3 : colA3+3]
		data = append(data,
			a3[1]*a1[2]-a3[2]*a1[1],
			a3[2]*a1[0]-a3[0]*a1[2],
			a3[0]*a1[1]-a3[1]*a1[0])
	}
	return mat.NewDense(n, 3, data)
}

//sites returns pos + f1*a1 + f2*a2 + f3*a3 for every nucleotide.
func (C *Configuration) sites(f1, f2, f3 float64) *mat.Dense {
	n := len(C.Nucleotides)
	if n == 0 {
		return nil
	}
	ret := C.Positions()
	if f1 != 0 {
		var s mat.Dense
		s.Scale(f1, C.A1s())
		ret.Add(ret, &s)
	}
	if f2 != 0 {
		var s mat.Dense
		s.Scale(f2, C.A2s())
		ret.Add(ret, &s)
	}
	if f3 != 0 {
		var s mat.Dense
		s.Scale(f3, C.A3s())
		ret.Add(ret, &s)
	}
	return ret
}

//BaseEnds returns the base-end site of each nucleotide, the end of the
//nucleotide in the base direction: pos + 0.6 a1.
func (C *Configuration) BaseEnds() *mat.Dense {
	return C.sites(0.6, 0, 0)
}

//BaseCenters returns the base centroid of each nucleotide, the
//hydrogen-bonding/repulsion site: pos + 0.4 a1.
func (C *Configuration) BaseCenters() *mat.Dense {
	return C.sites(0.4, 0, 0)
}

//BackboneCenters returns the backbone centroid (backbone repulsion site) of
//each nucleotide, which depends on the model geometry: "oxDNA1", "oxDNA2" or
//"RNA". An empty model means oxDNA2.
func (C *Configuration) BackboneCenters(model string) (*mat.Dense, error) {
	switch model {
	case "oxDNA2", "":
		return C.sites(-0.34, 0.3408, 0), nil
	case "RNA":
		return C.sites(-0.4, 0, 0.2), nil
	case "oxDNA1":
		return C.sites(-0.4, 0, 0), nil
	}
	return nil, ParseError{message: fmt.Sprintf("Unknown model geometry \"%s\"", model), deco: []string{"BackboneCenters"}}
}

//RotTol is the tolerance used to decide whether a matrix is a rotation.
const RotTol = 1e-4

//CheckRotationMatrix returns an error unless rot is a 3x3 rotation matrix,
//i.e. orthogonal with determinant 1, within RotTol.
func CheckRotationMatrix(rot *mat.Dense) error {
	r, c := rot.Dims()
	if r != 3 || c != 3 {
		return ParseError{message: fmt.Sprintf("rotation matrix must be 3x3, not %dx%d", r, c), deco: []string{"CheckRotationMatrix"}}
	}
	if det := mat.Det(rot); math.Abs(det-1.0) > RotTol {
		return ParseError{message: fmt.Sprintf("rotation matrix must have determinant 1, not %g", det), deco: []string{"CheckRotationMatrix"}}
	}
	var prod mat.Dense
	prod.Mul(rot, rot.T())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(prod.At(i, j)-want) > RotTol {
				return ParseError{message: "rotation matrix must be orthogonal, i.e. R times its transpose must be the identity", deco: []string{"CheckRotationMatrix"}}
			}
		}
	}
	return nil
}

//rotateVec applies R in place to the 3 values of v, first translating by
//-center if center is not nil, and translating back afterwards.
func rotateVec(R *mat.Dense, v, center []float64) {
	x, y, z := v[0], v[1], v[2]
	if center != nil {
		x, y, z = x-center[0], y-center[1], z-center[2]
	}
	v[0] = R.At(0, 0)*x + R.At(0, 1)*y + R.At(0, 2)*z
	v[1] = R.At(1, 0)*x + R.At(1, 1)*y + R.At(1, 2)*z
	v[2] = R.At(2, 0)*x + R.At(2, 1)*y + R.At(2, 2)*z
	if center != nil {
		v[0], v[1], v[2] = v[0]+center[0], v[1]+center[1], v[2]+center[2]
	}
}

//Rotate applies the given rotation matrix to the configuration, in place.
//Positions are rotated around center (around the origin if center is nil);
//the a1 and a3 versors, velocities and angular velocities are plain
//directions, so they rotate without the translation.
func (C *Configuration) Rotate(rot *mat.Dense, center []float64) error {
	if err := CheckRotationMatrix(rot); err != nil {
		return errDecorate(err, "Rotate")
	}
	if center != nil && len(center) != 3 {
		return ParseError{message: fmt.Sprintf("rotation center must have 3 values, not %d", len(center)), deco: []string{"Rotate"}}
	}
	for _, nuc := range C.Nucleotides {
		if len(nuc) != NNucCols {
			return ParseError{message: fmt.Sprintf("nucleotide row with %d values, not %d", len(nuc), NNucCols), deco: []string{"Rotate"}}
		}
		rotateVec(rot, nuc[colPos:colPos+3], center)
		rotateVec(rot, nuc[colA1:colA1+3], nil)
		rotateVec(rot, nuc[colA3:colA3+3], nil)
		rotateVec(rot, nuc[colVel:colVel+3], nil)
		rotateVec(rot, nuc[colAngVel:colAngVel+3], nil)
	}
	return nil
}
