package renderers

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/render"
)

// PanelRenderer draws the selected project's details in a box at the top
type PanelRenderer struct{}

func NewPanelRenderer() *PanelRenderer {
	return &PanelRenderer{}
}

// Render implements render.Renderer
func (p *PanelRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	if ctx.TooSmall() {
		return
	}
	right := ctx.Width - 1
	bottom := parameter.PanelHeight - 1

	for x := 0; x <= right; x++ {
		for y := 0; y <= bottom; y++ {
			buf.SetBgOnly(x, y, render.RgbSurface)
		}
		buf.SetFgOnly(x, 0, '─', render.RgbPanelBorder, 0)
		buf.SetFgOnly(x, bottom, '─', render.RgbPanelBorder, 0)
	}
	for y := 1; y < bottom; y++ {
		buf.SetFgOnly(0, y, '│', render.RgbPanelBorder, 0)
		buf.SetFgOnly(right, y, '│', render.RgbPanelBorder, 0)
	}
	buf.SetFgOnly(0, 0, '┌', render.RgbPanelBorder, 0)
	buf.SetFgOnly(right, 0, '┐', render.RgbPanelBorder, 0)
	buf.SetFgOnly(0, bottom, '└', render.RgbPanelBorder, 0)
	buf.SetFgOnly(right, bottom, '┘', render.RgbPanelBorder, 0)

	inner := right - 3
	id := ctx.Snapshot.Selection
	if id == "" || ctx.Catalog == nil {
		buf.SetString(2, 2, clip(parameter.PanelIdleText, inner), render.RgbPanelIdle, tcell.AttrItalic)
		return
	}

	project, ok := ctx.Catalog.Lookup(id)
	if !ok {
		buf.SetString(2, 2, clip(id, inner), render.RgbPanelText, 0)
		return
	}

	title := project.Title
	if title == "" {
		title = project.ID
	}
	buf.SetString(2, 1, clip(title, inner), render.RgbPanelTitle, tcell.AttrBold)
	buf.SetString(2, 2, clip(project.Summary, inner), render.RgbPanelText, 0)
	if len(project.Tags) > 0 {
		buf.SetString(2, 3, clip("#"+strings.Join(project.Tags, " #"), inner), render.RgbPanelTag, 0)
	}
}

// clip truncates s to n runes, marking the cut with an ellipsis
func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
