package physics

import (
	"math"

	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/vmath"
)

// Target is a static point the avatar can enter
type Target struct {
	ID       string
	Position vmath.Vec3F
}

// Detector reports targets within the activation radius of a position
// Targets are copied at construction and never mutated
type Detector struct {
	targets []Target
	radius  float64
}

// NewDetector creates a detector over a fixed, ordered target list
func NewDetector(targets []Target) *Detector {
	return &Detector{
		targets: append([]Target(nil), targets...),
		radius:  parameter.ActivationRadius,
	}
}

// Tick emits the id of every target strictly inside the radius, in list order
// Overlapping targets all fire in the same tick; a last-write-wins consumer ends on the last one
// Returns the number of emitted selections
func (d *Detector) Tick(pos vmath.Vec3F, emit func(id string)) int {
	fired := 0
	for i := range d.targets {
		if vmath.V3FDist(pos, d.targets[i].Position) < d.radius {
			if emit != nil {
				emit(d.targets[i].ID)
			}
			fired++
		}
	}
	return fired
}

// Nearest returns the closest target and its distance, ok is false for an empty list
// Diagnostic only, selection never uses it
func (d *Detector) Nearest(pos vmath.Vec3F) (t Target, dist float64, ok bool) {
	dist = math.Inf(1)
	for i := range d.targets {
		dd := vmath.V3FDist(pos, d.targets[i].Position)
		if dd < dist {
			t, dist, ok = d.targets[i], dd, true
		}
	}
	return t, dist, ok
}

// Targets returns a copy of the target list in iteration order
func (d *Detector) Targets() []Target {
	return append([]Target(nil), d.targets...)
}

// Lookup finds a target by id
func (d *Detector) Lookup(id string) (Target, bool) {
	for i := range d.targets {
		if d.targets[i].ID == id {
			return d.targets[i], true
		}
	}
	return Target{}, false
}
