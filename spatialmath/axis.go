// Package spatialmath defines the rotation and rigid-transform primitives used
// to pose the links of a kinematic chain.
package spatialmath

import "strings"

// Axis identifies one of the three principal rotation axes.
type Axis string

// The three recognized rotation axes. Anything else is rejected; there is no
// fallback axis.
const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// ParseAxis normalizes an axis identifier, accepting only x, y or z.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return "", NewInvalidAxisError(Axis(s))
	}
}
