// Package chain computes the forward kinematics of a planar serial-link
// manipulator: the world pose of every link frame, and the end effector
// position, for a given set of joint angles.
package chain

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/viam-labs/planararm/spatialmath"
)

// joint is the parsed, validated form of a JointConfig.
type joint struct {
	length float64
	axis   spatialmath.Axis
}

// Chain is a serial kinematic chain with fixed geometry. Joint angles are
// supplied per Solve call; the chain itself never mutates, so a single Chain
// may be solved concurrently from multiple goroutines.
type Chain struct {
	name        string
	base        r3.Vector
	jointRadius float64
	joints      []joint
}

// New builds a chain from the given config, validating all geometry up front.
func New(cfg Config) (*Chain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid chain config")
	}
	joints := make([]joint, 0, len(cfg.Joints))
	for _, jc := range cfg.Joints {
		axis := spatialmath.AxisZ
		if jc.Axis != "" {
			var err error
			axis, err = spatialmath.ParseAxis(jc.Axis)
			if err != nil {
				return nil, err
			}
		}
		joints = append(joints, joint{length: jc.Length, axis: axis})
	}
	return &Chain{
		name:        cfg.Name,
		base:        cfg.Base.ParseConfig(),
		jointRadius: cfg.JointRadius,
		joints:      joints,
	}, nil
}

// Name returns the name of the chain.
func (c *Chain) Name() string {
	return c.name
}

// DoF returns the chain's degrees of freedom, one per joint.
func (c *Chain) DoF() int {
	return len(c.joints)
}

// Base returns the world-frame translation of the first joint.
func (c *Chain) Base() r3.Vector {
	return c.base
}

// JointRadius returns the hub radius added to each link's effective length.
func (c *Chain) JointRadius() float64 {
	return c.jointRadius
}

// LinkLengths returns the configured link lengths in chain order.
func (c *Chain) LinkLengths() []float64 {
	lengths := make([]float64, 0, len(c.joints))
	for _, j := range c.joints {
		lengths = append(lengths, j.length)
	}
	return lengths
}

// Solution holds the result of one forward-kinematics evaluation.
type Solution struct {
	// Frames holds the world pose of every frame in chain order. Frames[0] is
	// the world frame itself (identity) and Frames[i] is the cumulative
	// transform from the world frame to joint i's frame.
	Frames []*spatialmath.RigidTransform
	// EndEffector is the world position of the final frame's origin, i.e. the
	// translation block of Frames[len(Frames)-1].
	EndEffector r3.Vector
}

// Solve computes the world pose of every frame for the given joint angles, in
// degrees. The number of angles must equal the chain's degrees of freedom.
//
// Joint 1 sits at the chain's base offset; joint i is offset from joint i-1 by
// the previous link's length plus two hub radii along the previous frame's x
// axis. The final joint is therefore typically a zero-length tool stub whose
// frame origin is the end effector. Either a full solution is returned or an
// error; there are no partial results.
func (c *Chain) Solve(anglesDeg []float64) (*Solution, error) {
	if len(anglesDeg) != len(c.joints) {
		return nil, NewIncorrectDoFError(len(anglesDeg), len(c.joints))
	}
	for i, a := range anglesDeg {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return nil, NewNonFiniteInputError("joint angle", i, a)
		}
	}

	frames := make([]*spatialmath.RigidTransform, 0, len(c.joints)+1)
	world := spatialmath.NewZeroRigidTransform()
	frames = append(frames, world)
	for i := range c.joints {
		rot, err := spatialmath.NewRotationMatrixFromAxisAngle(anglesDeg[i], c.joints[i].axis)
		if err != nil {
			return nil, err
		}
		local, err := spatialmath.NewRigidTransform(rot, c.localOffset(i))
		if err != nil {
			return nil, err
		}
		// Left-associative composition so each intermediate world pose is the
		// product of every local transform before it, in chain order.
		world = spatialmath.Compose(world, local)
		frames = append(frames, world)
	}
	return &Solution{Frames: frames, EndEffector: world.Translation()}, nil
}

// localOffset returns the origin of joint i's frame expressed in the previous
// frame: the base offset for the first joint, otherwise the previous link's
// length plus two hub radii along the local x axis.
func (c *Chain) localOffset(i int) r3.Vector {
	if i == 0 {
		return c.base
	}
	return r3.Vector{X: c.joints[i-1].length + 2*c.jointRadius}
}
