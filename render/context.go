package render

import (
	"math"

	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/parameter"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Simulation output for this frame
	Snapshot engine.Snapshot

	// Project content, indexed in target order
	Catalog *content.Catalog

	// Audio indicator state
	AudioEnabled bool
	Muted        bool

	// Scheduled ticks suspended
	Paused bool

	// Input events dropped on a full queue since start
	Dropped uint64

	// Ticks that started more than a period behind schedule
	Late uint64

	// Screen dimensions (terminal size)
	Width  int
	Height int
}

// TooSmall reports whether the terminal cannot fit the field
func (c RenderContext) TooSmall() bool {
	return c.Width < parameter.MinFieldWidth || c.Height < parameter.MinFieldHeight
}

// GroundRow is the terminal row drawn for y == 0
func (c RenderContext) GroundRow() int {
	return c.Height - parameter.StatusBarHeight - 1
}

// FieldTop is the first row below the project panel
func (c RenderContext) FieldTop() int {
	return parameter.PanelHeight
}

// Column maps a world x coordinate to a terminal column, bounds land on the field margins
func (c RenderContext) Column(x float64) int {
	span := float64(c.Width - 2*parameter.SideMargin - 1)
	frac := (x - parameter.BoundMinX) / (parameter.BoundMaxX - parameter.BoundMinX)
	return parameter.SideMargin + int(math.Round(frac*span))
}

// Row maps a world y coordinate to the terminal row a body standing at that height occupies
func (c RenderContext) Row(y float64) int {
	return c.GroundRow() - 1 - int(math.Round(y*parameter.RowsPerUnit))
}
