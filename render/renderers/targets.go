package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/folio/render"
)

const (
	targetGlyph       = '◇'
	targetGlyphActive = '◆'
)

// TargetRenderer draws project markers with their pick number on the ground line
type TargetRenderer struct{}

func NewTargetRenderer() *TargetRenderer {
	return &TargetRenderer{}
}

// Render implements render.Renderer
func (t *TargetRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	if ctx.TooSmall() || ctx.Catalog == nil {
		return
	}

	for i, p := range ctx.Catalog.Projects() {
		x := ctx.Column(p.Position.X)
		y := ctx.Row(p.Position.Y)

		glyph, fg := targetGlyph, render.RgbTarget
		attrs := tcell.AttrNone
		if p.ID == ctx.Snapshot.Selection {
			glyph, fg = targetGlyphActive, render.RgbTargetActive
			attrs = tcell.AttrBold
		}
		buf.SetFgOnly(x, y, glyph, fg, attrs)

		if i < 9 {
			buf.SetFgOnly(x, ctx.GroundRow(), rune('1'+i), render.RgbTargetLabel, attrs)
		}
	}
}
