package chain

import "github.com/pkg/errors"

// NewIncorrectDoFError returns an error for when the number of joint angles
// supplied does not match the chain's degrees of freedom.
func NewIncorrectDoFError(actual, expected int) error {
	return errors.Errorf("number of joint angles (%d) does not match chain degrees of freedom (%d)", actual, expected)
}

// NewNonFiniteInputError returns an error for a NaN or infinite input at the given index.
func NewNonFiniteInputError(name string, index int, value float64) error {
	return errors.Errorf("%s %d must be finite, got %f", name, index, value)
}

// NewBadGeometryError returns an error for a geometry field that is negative or not finite.
func NewBadGeometryError(field string, value float64) error {
	return errors.Errorf("%s must be a finite nonnegative number, got %f", field, value)
}
