// Package animation derives avatar pose from kinematic state
// Nothing here feeds back into simulation
package animation

import (
	"math"

	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/vmath"
)

// Limb indices into Pose.Limbs
const (
	LimbLeftArm = iota
	LimbRightArm
	LimbLeftLeg
	LimbRightLeg
	LimbCount
)

// Pose is the presentation state emitted each tick
type Pose struct {
	Facing      int     // -1, 0, +1 derived from horizontal velocity
	Orientation float64 // yaw in (-π, π]
	Lean        float64
	Limbs       [LimbCount]float64
	Moving      bool
}

// Driver eases orientation, lean and limb phase toward velocity-derived targets
type Driver struct {
	pose Pose
}

// NewDriver starts facing right with neutral limbs
func NewDriver() *Driver {
	d := &Driver{}
	d.pose.Orientation = parameter.FacingRight
	for i := range d.pose.Limbs {
		d.pose.Limbs[i] = parameter.LimbNeutral
	}
	return d
}

// FacingOrientation maps a facing sign to its yaw, ok is false for 0
func FacingOrientation(facing int) (yaw float64, ok bool) {
	switch {
	case facing < 0:
		return parameter.FacingLeft, true
	case facing > 0:
		return parameter.FacingRight, true
	}
	return 0, false
}

// Update advances one tick from horizontal velocity and elapsed simulated seconds
func (d *Driver) Update(velX, t float64) Pose {
	p := &d.pose
	p.Moving = math.Abs(velX) > 0
	p.Facing = vmath.Sign(velX)

	if yaw, ok := FacingOrientation(p.Facing); ok {
		p.Orientation = vmath.LerpAngle(p.Orientation, yaw, parameter.OrientationEase)
	}

	if p.Moving {
		p.Lean = math.Sin(t*parameter.LeanFrequency) * parameter.LeanAmplitude
		for i := range p.Limbs {
			p.Limbs[i] = math.Sin(t*parameter.LimbFrequency+parameter.LimbPhaseOffsets[i]) * parameter.LimbAmplitude
		}
	} else {
		p.Lean = vmath.Lerp(p.Lean, 0, parameter.LeanDecay)
		for i := range p.Limbs {
			p.Limbs[i] = vmath.Lerp(p.Limbs[i], parameter.LimbNeutral, parameter.LimbRelax)
		}
	}

	return *p
}

// Pose returns the last computed pose
func (d *Driver) Pose() Pose {
	return d.pose
}

// Reset returns to the initial pose
func (d *Driver) Reset() {
	*d = *NewDriver()
}
