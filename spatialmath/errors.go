package spatialmath

import "github.com/pkg/errors"

// NewInvalidAxisError returns an error for a rotation axis identifier outside of x, y and z.
func NewInvalidAxisError(axis Axis) error {
	return errors.Errorf("invalid rotation axis %q, must be one of x, y, z", string(axis))
}

// NewDimensionError returns an error for matrix or vector data of the wrong size.
func NewDimensionError(name string, expected, actual int) error {
	return errors.Errorf("%s must have %d elements, got %d", name, expected, actual)
}

// NewNonFiniteValueError returns an error for an input that is NaN or infinite.
func NewNonFiniteValueError(name string, value float64) error {
	return errors.Errorf("%s must be finite, got %f", name, value)
}

// NewInvalidRotationError returns an error for matrix data that is not a pure rotation.
func NewInvalidRotationError(det float64) error {
	return errors.Errorf("matrix is not orthonormal with determinant 1 (det %f), not a valid rotation", det)
}

// NewInvalidBottomRowError returns an error for a homogeneous matrix whose bottom row is not [0 0 0 1].
func NewInvalidBottomRowError(row []float64) error {
	return errors.Errorf("homogeneous transform bottom row must be [0 0 0 1], got %v", row)
}
