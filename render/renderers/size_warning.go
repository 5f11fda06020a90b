package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/render"
)

// SizeWarningRenderer replaces the field with a notice when the terminal is too small
type SizeWarningRenderer struct{}

func NewSizeWarningRenderer() *SizeWarningRenderer {
	return &SizeWarningRenderer{}
}

// Render implements render.Renderer
func (w *SizeWarningRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	if !ctx.TooSmall() {
		return
	}
	msg := fmt.Sprintf("need %dx%d", parameter.MinFieldWidth, parameter.MinFieldHeight)
	x := max((ctx.Width-len(msg))/2, 0)
	buf.SetString(x, ctx.Height/2, msg, render.RgbWarning, tcell.AttrBold)
}
