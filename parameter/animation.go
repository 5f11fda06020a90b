package parameter

import "math"

// Facing orientations (yaw, radians)
const (
	FacingLeft  = -math.Pi / 2
	FacingRight = math.Pi / 2
)

// Interpolation factors applied once per tick
const (
	// OrientationEase is the fraction of remaining yaw covered each tick
	OrientationEase = 0.1

	// LeanDecay is the fraction of lean removed each idle tick
	LeanDecay = 0.1

	// LimbRelax is the fraction of limb phase removed each idle tick
	LimbRelax = 0.2
)

// Walk cycle oscillators, t is elapsed simulated time in seconds
const (
	LeanFrequency = 10.0
	LeanAmplitude = 0.05

	LimbFrequency = 10.0
	LimbAmplitude = 0.5

	// LimbNeutral is the rest phase limbs relax toward
	LimbNeutral = 0.0
)

// LimbPhaseOffsets are per-limb oscillator offsets: left arm, right arm, left leg, right leg
// Arms swing opposite to the leg on the same side
var LimbPhaseOffsets = [4]float64{0, math.Pi, math.Pi, 0}
