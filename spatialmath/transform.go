package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/viam-labs/planararm/utils"
)

// RigidTransform is a rigid-body transform: a rotation fused with a
// translation. Viewed as a 4x4 homogeneous matrix it is [[R, t], [0 0 0, 1]],
// with the bottom row fixed. This is the only place rotation and translation
// meet; both parts are validated at construction and the value is immutable
// afterwards.
type RigidTransform struct {
	rot   *RotationMatrix
	trans r3.Vector
}

// NewZeroRigidTransform returns the identity transform.
func NewZeroRigidTransform() *RigidTransform {
	return &RigidTransform{rot: NewZeroRotationMatrix()}
}

// NewRigidTransform fuses a rotation and a translation into a rigid transform.
func NewRigidTransform(r *RotationMatrix, t r3.Vector) (*RigidTransform, error) {
	if r == nil {
		return nil, NewDimensionError("rotation matrix data", 9, 0)
	}
	for _, v := range []float64{t.X, t.Y, t.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, NewNonFiniteValueError("translation component", v)
		}
	}
	return &RigidTransform{rot: r, trans: t}, nil
}

// NewRigidTransformFromMat converts a 4x4 homogeneous matrix into a rigid
// transform, rejecting anything whose bottom row is not [0 0 0 1] or whose
// upper-left block is not a pure rotation.
func NewRigidTransformFromMat(m *mat.Dense) (*RigidTransform, error) {
	rows, cols := m.Dims()
	if rows != 4 || cols != 4 {
		return nil, NewDimensionError("homogeneous transform data", 16, rows*cols)
	}
	bottom := []float64{m.At(3, 0), m.At(3, 1), m.At(3, 2), m.At(3, 3)}
	for i, want := range []float64{0, 0, 0, 1} {
		if !utils.Float64AlmostEqual(bottom[i], want, defaultOrthonormalityEpsilon) {
			return nil, NewInvalidBottomRowError(bottom)
		}
	}
	rot, err := NewRotationMatrix([]float64{
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
		m.At(2, 0), m.At(2, 1), m.At(2, 2),
	})
	if err != nil {
		return nil, err
	}
	return NewRigidTransform(rot, r3.Vector{X: m.At(0, 3), Y: m.At(1, 3), Z: m.At(2, 3)})
}

// Compose returns the transform equivalent to applying a then b, i.e. the
// matrix product a * b. Rigid transforms form a group under this operation,
// which is associative but not commutative.
func Compose(a, b *RigidTransform) *RigidTransform {
	return &RigidTransform{
		rot:   a.rot.Mul(b.rot),
		trans: a.trans.Add(a.rot.MulVec(b.trans)),
	}
}

// Rotation returns the rotation component.
func (t *RigidTransform) Rotation() *RotationMatrix {
	return t.rot
}

// Translation returns the translation component.
func (t *RigidTransform) Translation() r3.Vector {
	return t.trans
}

// TransformPoint applies the transform to the given point.
func (t *RigidTransform) TransformPoint(p r3.Vector) r3.Vector {
	return t.rot.MulVec(p).Add(t.trans)
}

// Invert returns the inverse transform. Composing a transform with its
// inverse yields the identity.
func (t *RigidTransform) Invert() *RigidTransform {
	rt := t.rot.Transpose()
	return &RigidTransform{
		rot:   rt,
		trans: rt.MulVec(t.trans).Mul(-1),
	}
}

// Mat returns the 4x4 homogeneous matrix view of the transform.
func (t *RigidTransform) Mat() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		t.rot.At(0, 0), t.rot.At(0, 1), t.rot.At(0, 2), t.trans.X,
		t.rot.At(1, 0), t.rot.At(1, 1), t.rot.At(1, 2), t.trans.Y,
		t.rot.At(2, 0), t.rot.At(2, 1), t.rot.At(2, 2), t.trans.Z,
		0, 0, 0, 1,
	})
}

// AlmostEqual compares two transforms elementwise within the given tolerance.
func (t *RigidTransform) AlmostEqual(other *RigidTransform, epsilon float64) bool {
	if !t.rot.AlmostEqual(other.rot, epsilon) {
		return false
	}
	return utils.Float64AlmostEqual(t.trans.X, other.trans.X, epsilon) &&
		utils.Float64AlmostEqual(t.trans.Y, other.trans.Y, epsilon) &&
		utils.Float64AlmostEqual(t.trans.Z, other.trans.Z, epsilon)
}
