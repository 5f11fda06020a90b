package parameter

// Kinematic body tuning, all values are per tick
const (
	// Gravity is added to vertical velocity each airborne tick
	Gravity = -0.02

	// MoveSpeed is the horizontal velocity while a direction is held
	MoveSpeed = 0.15

	// Friction scales horizontal velocity each tick without direction input
	Friction = 0.8

	// JumpForce is the vertical velocity set by a grounded jump
	JumpForce = 0.4

	// GroundLevel is the y coordinate of the ground plane
	GroundLevel = 0.0
)

// Play area horizontal bounds (inclusive)
const (
	BoundMinX = -8.0
	BoundMaxX = 8.0
)

// ActivationRadius is the distance below which a target is entered
const ActivationRadius = 2.5
