package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
)

func makeTransform(t *testing.T, angleDeg float64, axis Axis, trans r3.Vector) *RigidTransform {
	t.Helper()
	rm, err := NewRotationMatrixFromAxisAngle(angleDeg, axis)
	test.That(t, err, test.ShouldBeNil)
	tf, err := NewRigidTransform(rm, trans)
	test.That(t, err, test.ShouldBeNil)
	return tf
}

func TestTransformOrigin(t *testing.T) {
	trans := r3.Vector{X: 3, Y: 2, Z: 0}
	tf := makeTransform(t, 30, AxisZ, trans)
	test.That(t, tf.TransformPoint(r3.Vector{}), test.ShouldResemble, trans)
}

func TestTransformValidation(t *testing.T) {
	_, err := NewRigidTransform(nil, r3.Vector{})
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewRigidTransform(NewZeroRotationMatrix(), r3.Vector{X: math.NaN()})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "must be finite")
}

func TestComposeOrder(t *testing.T) {
	a := makeTransform(t, 30, AxisZ, r3.Vector{X: 3, Y: 2})
	b := makeTransform(t, -10, AxisZ, r3.Vector{X: 5.8})
	c := makeTransform(t, 45, AxisY, r3.Vector{Y: 1})

	// composition is associative
	left := Compose(Compose(a, b), c)
	right := Compose(a, Compose(b, c))
	test.That(t, left.AlmostEqual(right, 1e-9), test.ShouldBeTrue)

	// but not commutative
	ab := Compose(a, b)
	ba := Compose(b, a)
	test.That(t, ab.AlmostEqual(ba, 1e-9), test.ShouldBeFalse)
}

func TestComposeAgainstMatrixProduct(t *testing.T) {
	a := makeTransform(t, 30, AxisZ, r3.Vector{X: 3, Y: 2})
	b := makeTransform(t, -10, AxisZ, r3.Vector{X: 5.8})

	var prod mat.Dense
	prod.Mul(a.Mat(), b.Mat())
	fromMat, err := NewRigidTransformFromMat(&prod)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, Compose(a, b).AlmostEqual(fromMat, 1e-9), test.ShouldBeTrue)
}

func TestTransformMatRoundTrip(t *testing.T) {
	tf := makeTransform(t, 123.4, AxisY, r3.Vector{X: 1, Y: -2, Z: 3})
	m := tf.Mat()
	test.That(t, m.At(3, 0), test.ShouldEqual, 0)
	test.That(t, m.At(3, 1), test.ShouldEqual, 0)
	test.That(t, m.At(3, 2), test.ShouldEqual, 0)
	test.That(t, m.At(3, 3), test.ShouldEqual, 1)

	back, err := NewRigidTransformFromMat(m)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, back.AlmostEqual(tf, 1e-9), test.ShouldBeTrue)
}

func TestTransformFromMatValidation(t *testing.T) {
	_, err := NewRigidTransformFromMat(mat.NewDense(3, 3, nil))
	test.That(t, err, test.ShouldNotBeNil)

	bad := NewZeroRigidTransform().Mat()
	bad.Set(3, 0, 0.5)
	_, err = NewRigidTransformFromMat(bad)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "bottom row")

	// scaling in the rotation block is rejected
	scaled := NewZeroRigidTransform().Mat()
	scaled.Set(0, 0, 2)
	_, err = NewRigidTransformFromMat(scaled)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "not a valid rotation")
}

func TestTransformInvert(t *testing.T) {
	tf := makeTransform(t, 75, AxisX, r3.Vector{X: 4, Y: 5, Z: 6})
	test.That(t, Compose(tf, tf.Invert()).AlmostEqual(NewZeroRigidTransform(), 1e-9), test.ShouldBeTrue)
	test.That(t, Compose(tf.Invert(), tf).AlmostEqual(NewZeroRigidTransform(), 1e-9), test.ShouldBeTrue)
}
