package renderers

import (
	"math"

	"github.com/lixenwraith/folio/animation"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/render"
)

// AvatarRenderer draws a three-row figure driven by the animation pose
//
//	 o>    head, facing marker
//	-|-    arms, torso
//	/ \    legs
type AvatarRenderer struct{}

func NewAvatarRenderer() *AvatarRenderer {
	return &AvatarRenderer{}
}

// Render implements render.Renderer
func (a *AvatarRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	if ctx.TooSmall() {
		return
	}
	snap := ctx.Snapshot
	pose := snap.Pose

	x := ctx.Column(snap.Position.X)
	feet := ctx.Row(snap.Position.Y)
	// Keep the head below the panel on tall jumps
	feet = max(feet, ctx.FieldTop()+2)

	fg := render.RgbAvatar
	if !snap.Grounded {
		fg = render.RgbAvatarAirborne
	}

	headX := x + leanShift(pose.Lean)
	buf.SetFgOnly(headX, feet-2, 'o', fg, 0)
	if FacesRight(pose) {
		buf.SetFgOnly(headX+1, feet-2, '>', render.RgbAvatarFacing, 0)
	} else {
		buf.SetFgOnly(headX-1, feet-2, '<', render.RgbAvatarFacing, 0)
	}

	buf.SetFgOnly(x-1, feet-1, LimbGlyph(pose.Limbs[animation.LimbLeftArm], '-'), fg, 0)
	buf.SetFgOnly(x, feet-1, '|', fg, 0)
	buf.SetFgOnly(x+1, feet-1, LimbGlyph(pose.Limbs[animation.LimbRightArm], '-'), fg, 0)

	buf.SetFgOnly(x-1, feet, LimbGlyph(pose.Limbs[animation.LimbLeftLeg], '/'), fg, 0)
	buf.SetFgOnly(x+1, feet, LimbGlyph(pose.Limbs[animation.LimbRightLeg], '\\'), fg, 0)
}

// FacesRight reports the screen-side the orientation points to
func FacesRight(p animation.Pose) bool {
	return math.Sin(p.Orientation) >= 0
}

// LimbGlyph tilts a limb forward or back with its phase, neutral inside the threshold
func LimbGlyph(phase float64, neutral rune) rune {
	switch {
	case phase > parameter.LimbGlyphThreshold:
		return '/'
	case phase < -parameter.LimbGlyphThreshold:
		return '\\'
	default:
		return neutral
	}
}

func leanShift(lean float64) int {
	switch {
	case lean > parameter.LeanGlyphThreshold:
		return 1
	case lean < -parameter.LeanGlyphThreshold:
		return -1
	default:
		return 0
	}
}
