package physics

import (
	"testing"

	"github.com/lixenwraith/folio/vmath"
	"github.com/pixil98/go-testutil"
)

func collect(d *Detector, pos vmath.Vec3F) []string {
	var ids []string
	d.Tick(pos, func(id string) { ids = append(ids, id) })
	return ids
}

// TestActivationThreshold fires at distance 2.4 and not at 2.6
func TestActivationThreshold(t *testing.T) {
	target := Target{ID: "atlas", Position: vmath.Vec3F{X: 3, Y: 0, Z: -1}}
	d := NewDetector([]Target{target})

	tests := map[string]struct {
		pos  vmath.Vec3F
		fire bool
	}{
		"distance 2.4 along x":  {pos: vmath.Vec3F{X: 0.6, Z: -1}, fire: true},
		"distance 2.6 along x":  {pos: vmath.Vec3F{X: 0.4, Z: -1}, fire: false},
		"distance 2.4 along z":  {pos: vmath.Vec3F{X: 3, Z: 1.4}, fire: true},
		"exactly on the radius": {pos: vmath.Vec3F{X: 5.5, Z: -1}, fire: false},
		"on top":                {pos: target.Position, fire: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ids := collect(d, tt.pos)
			testutil.AssertEqual(t, "fired", len(ids) == 1, tt.fire)
			if tt.fire {
				testutil.AssertEqual(t, "id", ids[0], "atlas")
			}
		})
	}
}

// TestOverlappingTargetsLastInOrderWins documents the overlap policy: every in-range target
// fires in list order, so a last-write-wins selection holds the last one
func TestOverlappingTargetsLastInOrderWins(t *testing.T) {
	d := NewDetector([]Target{
		{ID: "first", Position: vmath.Vec3F{X: -1}},
		{ID: "far", Position: vmath.Vec3F{X: 7}},
		{ID: "second", Position: vmath.Vec3F{X: 1}},
	})

	ids := collect(d, vmath.Vec3F{X: 0.2})
	testutil.AssertEqual(t, "count", len(ids), 2)
	testutil.AssertEqual(t, "order[0]", ids[0], "first")
	testutil.AssertEqual(t, "order[1]", ids[1], "second")

	selection := ""
	d.Tick(vmath.Vec3F{X: 0.2}, func(id string) { selection = id })
	testutil.AssertEqual(t, "selection", selection, "second")

	// Nearer target earlier in the list still loses to later in-range target
	selection = ""
	d.Tick(vmath.Vec3F{X: -0.9}, func(id string) { selection = id })
	testutil.AssertEqual(t, "selection near first", selection, "second")
}

func TestEmptyTargetsNeverFire(t *testing.T) {
	d := NewDetector(nil)
	fired := d.Tick(vmath.Vec3F{}, func(string) { t.Error("unexpected selection") })
	testutil.AssertEqual(t, "fired", fired, 0)

	_, _, ok := d.Nearest(vmath.Vec3F{})
	testutil.AssertEqual(t, "nearest ok", ok, false)
}

func TestDetectorCopiesTargets(t *testing.T) {
	src := []Target{{ID: "a", Position: vmath.Vec3F{X: 0}}}
	d := NewDetector(src)
	src[0].ID = "mutated"

	got := d.Targets()
	testutil.AssertEqual(t, "id", got[0].ID, "a")

	got[0].ID = "mutated again"
	_, ok := d.Lookup("a")
	testutil.AssertEqual(t, "lookup", ok, true)
}

func TestNearest(t *testing.T) {
	d := NewDetector([]Target{
		{ID: "left", Position: vmath.Vec3F{X: -5}},
		{ID: "right", Position: vmath.Vec3F{X: 5}},
	})
	tgt, dist, ok := d.Nearest(vmath.Vec3F{X: 2})
	testutil.AssertEqual(t, "ok", ok, true)
	testutil.AssertEqual(t, "id", tgt.ID, "right")
	testutil.AssertEqual(t, "dist", dist, 3.0)
}
