package engine

import (
	"github.com/lixenwraith/folio/animation"
	"github.com/lixenwraith/folio/vmath"
)

// Snapshot is the read-only per-tick output handed to renderers
type Snapshot struct {
	Tick      uint64
	Elapsed   float64 // simulated seconds
	Position  vmath.Vec3F
	Velocity  vmath.Vec3F
	Grounded  bool
	Pose      animation.Pose
	Selection string // empty when nothing is selected
}

// Moving mirrors the pose flag
func (s Snapshot) Moving() bool {
	return s.Pose.Moving
}
