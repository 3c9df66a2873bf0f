package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/quat"

	"github.com/viam-labs/planararm/utils"
)

// defaultOrthonormalityEpsilon is the tolerance used when checking that matrix
// data describes a pure rotation.
const defaultOrthonormalityEpsilon = 1e-8

// RotationMatrix is an orthonormal 3x3 matrix with determinant 1, stored in
// row-major order. It represents a pure orientation with no translation and is
// immutable once constructed.
type RotationMatrix struct {
	mat [9]float64
}

// NewZeroRotationMatrix returns the identity, signifying no rotation.
func NewZeroRotationMatrix() *RotationMatrix {
	return &RotationMatrix{[9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// NewRotationMatrixFromAxisAngle returns the right-hand-rule rotation by the
// given angle, in degrees, about one of the three principal axes. Axis
// dispatch is exhaustive; an unrecognized axis is an error, never a silent
// identity.
func NewRotationMatrixFromAxisAngle(angleDeg float64, axis Axis) (*RotationMatrix, error) {
	if math.IsNaN(angleDeg) || math.IsInf(angleDeg, 0) {
		return nil, NewNonFiniteValueError("rotation angle", angleDeg)
	}
	c := math.Cos(utils.DegToRad(angleDeg))
	s := math.Sin(utils.DegToRad(angleDeg))
	switch axis {
	case AxisX:
		return &RotationMatrix{[9]float64{
			1, 0, 0,
			0, c, -s,
			0, s, c,
		}}, nil
	case AxisY:
		return &RotationMatrix{[9]float64{
			c, 0, s,
			0, 1, 0,
			-s, 0, c,
		}}, nil
	case AxisZ:
		return &RotationMatrix{[9]float64{
			c, -s, 0,
			s, c, 0,
			0, 0, 1,
		}}, nil
	default:
		return nil, NewInvalidAxisError(axis)
	}
}

// NewRotationMatrix creates a rotation matrix from row-major data, verifying
// that the data has the right shape and describes a pure rotation.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, NewDimensionError("rotation matrix data", 9, len(m))
	}
	var mat [9]float64
	for i, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, NewNonFiniteValueError("rotation matrix element", v)
		}
		mat[i] = v
	}
	rm := &RotationMatrix{mat}
	if !rm.orthonormal(defaultOrthonormalityEpsilon) {
		return nil, NewInvalidRotationError(rm.Det())
	}
	return rm, nil
}

// At returns the value stored at the given row and column.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[3*row+col]
}

// Row returns the a vector representing a particular row of the matrix.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.mat[3*row], Y: rm.mat[3*row+1], Z: rm.mat[3*row+2]}
}

// Col returns the a vector representing a particular column of the matrix.
func (rm *RotationMatrix) Col(col int) r3.Vector {
	return r3.Vector{X: rm.mat[col], Y: rm.mat[3+col], Z: rm.mat[6+col]}
}

// Mul returns the matrix product rm * other. Order matters; rotation
// composition is not commutative.
func (rm *RotationMatrix) Mul(other *RotationMatrix) *RotationMatrix {
	var out [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[3*i+j] = rm.mat[3*i]*other.mat[j] +
				rm.mat[3*i+1]*other.mat[3+j] +
				rm.mat[3*i+2]*other.mat[6+j]
		}
	}
	return &RotationMatrix{out}
}

// MulVec rotates the given vector.
func (rm *RotationMatrix) MulVec(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: rm.Row(0).Dot(v),
		Y: rm.Row(1).Dot(v),
		Z: rm.Row(2).Dot(v),
	}
}

// Transpose returns the transpose, which for a rotation is also its inverse.
func (rm *RotationMatrix) Transpose() *RotationMatrix {
	m := rm.mat
	return &RotationMatrix{[9]float64{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}}
}

// Det returns the determinant, which is 1 for any valid rotation.
func (rm *RotationMatrix) Det() float64 {
	m := rm.mat
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Quaternion returns the unit quaternion representing the same orientation.
func (rm *RotationMatrix) Quaternion() quat.Number {
	var q quat.Number
	m := rm.mat
	tr := m[0] + m[4] + m[8]
	switch {
	case tr > 0:
		s := 0.5 / math.Sqrt(tr+1.0)
		q = quat.Number{
			Real: 0.25 / s,
			Imag: (m[7] - m[5]) * s,
			Jmag: (m[2] - m[6]) * s,
			Kmag: (m[3] - m[1]) * s,
		}
	case m[0] > m[4] && m[0] > m[8]:
		s := 2.0 * math.Sqrt(1.0+m[0]-m[4]-m[8])
		q = quat.Number{
			Real: (m[7] - m[5]) / s,
			Imag: 0.25 * s,
			Jmag: (m[1] + m[3]) / s,
			Kmag: (m[2] + m[6]) / s,
		}
	case m[4] > m[8]:
		s := 2.0 * math.Sqrt(1.0+m[4]-m[0]-m[8])
		q = quat.Number{
			Real: (m[2] - m[6]) / s,
			Imag: (m[1] + m[3]) / s,
			Jmag: 0.25 * s,
			Kmag: (m[5] + m[7]) / s,
		}
	default:
		s := 2.0 * math.Sqrt(1.0+m[8]-m[0]-m[4])
		q = quat.Number{
			Real: (m[3] - m[1]) / s,
			Imag: (m[2] + m[6]) / s,
			Jmag: (m[5] + m[7]) / s,
			Kmag: 0.25 * s,
		}
	}
	return q
}

// AlmostEqual compares two rotations elementwise within the given tolerance.
func (rm *RotationMatrix) AlmostEqual(other *RotationMatrix, epsilon float64) bool {
	for i := range rm.mat {
		if !utils.Float64AlmostEqual(rm.mat[i], other.mat[i], epsilon) {
			return false
		}
	}
	return true
}

func (rm *RotationMatrix) orthonormal(epsilon float64) bool {
	prod := rm.Mul(rm.Transpose())
	if !floats.EqualApprox(prod.mat[:], NewZeroRotationMatrix().mat[:], epsilon) {
		return false
	}
	return utils.Float64AlmostEqual(rm.Det(), 1, epsilon)
}
