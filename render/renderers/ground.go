package renderers

import (
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/render"
)

// GroundRenderer draws the floor line with unit ticks and the walk bounds
type GroundRenderer struct{}

func NewGroundRenderer() *GroundRenderer {
	return &GroundRenderer{}
}

// Render implements render.Renderer
func (g *GroundRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	if ctx.TooSmall() {
		return
	}
	y := ctx.GroundRow()
	left := ctx.Column(parameter.BoundMinX)
	right := ctx.Column(parameter.BoundMaxX)

	for x := left; x <= right; x++ {
		buf.SetWithBg(x, y, '═', render.RgbGround, render.RgbSurface)
	}
	for u := parameter.BoundMinX + 1; u < parameter.BoundMaxX; u++ {
		buf.SetFgOnly(ctx.Column(u), y, '╤', render.RgbGroundTick, 0)
	}

	// Walls mark the clamp range
	for row := ctx.FieldTop(); row < y; row++ {
		buf.SetFgOnly(left-1, row, '│', render.RgbBound, 0)
		buf.SetFgOnly(right+1, row, '│', render.RgbBound, 0)
	}
	buf.SetFgOnly(left-1, y, '╘', render.RgbBound, 0)
	buf.SetFgOnly(right+1, y, '╛', render.RgbBound, 0)
}
