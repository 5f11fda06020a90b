package physics

import (
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/vmath"
)

// Body is the avatar's kinematic state, owned and mutated only by the tick loop
// After every tick: BoundMinX <= X <= BoundMaxX, Y >= GroundLevel, Grounded iff Y and VelY are both zero
type Body struct {
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Grounded bool
}

// NewBody returns a body resting on the ground at horizontal position x (clamped to bounds)
func NewBody(x float64) Body {
	return Body{
		Position: vmath.Vec3F{X: vmath.Clamp(x, parameter.BoundMinX, parameter.BoundMaxX), Y: parameter.GroundLevel},
		Grounded: true,
	}
}

// Control is the read-only input view consumed once per tick
type Control interface {
	ActiveDirection() int
	IsJumpRequested() bool
}

// Integrator advances a body by one fixed step
type Integrator struct {
	body  *Body
	input Control
}

// NewIntegrator binds an integrator to the body it owns and its input source
func NewIntegrator(body *Body, input Control) *Integrator {
	return &Integrator{body: body, input: input}
}

// Tick performs one step: gravity, horizontal control, jump, integrate, clamp, ground resolution
// Order matters, clamp and ground checks must see integrated position
func (in *Integrator) Tick() {
	Step(in.body, in.input.ActiveDirection(), in.input.IsJumpRequested())
}

// Step applies one integration step for a direction in {-1, 0, +1} and a jump request
func Step(b *Body, direction int, jump bool) {
	if !b.Grounded {
		b.Velocity.Y += parameter.Gravity
	}

	if direction != 0 {
		b.Velocity.X = float64(vmath.Sign(float64(direction))) * parameter.MoveSpeed
	} else {
		b.Velocity.X *= parameter.Friction
	}

	if jump && b.Grounded {
		b.Velocity.Y = parameter.JumpForce
		b.Grounded = false
	}

	b.Position = vmath.V3FAdd(b.Position, b.Velocity)

	b.Position.X = vmath.Clamp(b.Position.X, parameter.BoundMinX, parameter.BoundMaxX)

	if b.Position.Y <= parameter.GroundLevel {
		b.Position.Y = parameter.GroundLevel
		b.Velocity.Y = 0
		b.Grounded = true
	}
}
