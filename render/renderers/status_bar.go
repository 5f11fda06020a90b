package renderers

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/render"
)

// StatusBarRenderer draws the status bar at the bottom
type StatusBarRenderer struct {
	// FPS Tracking
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{
		lastFpsUpdate: time.Now(),
	}
}

// Render implements render.Renderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.Buffer) {
	s.frameCount++
	now := time.Now()
	if now.Sub(s.lastFpsUpdate) >= time.Second {
		s.currentFps = s.frameCount
		s.frameCount = 0
		s.lastFpsUpdate = now
	}

	y := ctx.Height - 1
	for x := 0; x < ctx.Width; x++ {
		buf.SetWithBg(x, y, ' ', render.RgbStatusBar, render.RgbSurface)
	}

	x := 0

	// Audio indicator, only when a device is open
	if ctx.AudioEnabled {
		bg := render.RgbAudioUnmuted
		if ctx.Muted {
			bg = render.RgbAudioMuted
		}
		for _, ch := range parameter.AudioStr {
			buf.SetWithBg(x, y, ch, render.RGBBlack, bg)
			x++
		}
		x++
	}

	if ctx.Paused {
		for _, ch := range parameter.PausedStr {
			buf.SetWithBg(x, y, ch, render.RGBBlack, render.RgbWarning)
			x++
		}
		x++
	}

	snap := ctx.Snapshot
	state := "ground"
	if !snap.Grounded {
		state = "air"
	}
	info := fmt.Sprintf("t=%d x=%+.2f y=%.2f %s", snap.Tick, snap.Position.X, snap.Position.Y, state)
	if ctx.Dropped > 0 {
		info += fmt.Sprintf(" drop=%d", ctx.Dropped)
	}
	if ctx.Late > 0 {
		info += fmt.Sprintf(" late=%d", ctx.Late)
	}
	x = buf.SetString(x, y, info, render.RgbStatusBar, 0)

	// Right-aligned: hint when it fits, fps otherwise
	right := fmt.Sprintf("%dfps", s.currentFps)
	if len([]rune(parameter.StatusHint))+len(right)+x+4 <= ctx.Width {
		right = parameter.StatusHint + "  " + right
	}
	start := ctx.Width - len([]rune(right)) - 1
	if start > x {
		buf.SetString(start, y, right, render.RgbPanelText, tcell.AttrDim)
	}
}
