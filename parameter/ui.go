package parameter

// Layout & Margins
const (
	// PanelHeight is the project panel at the top (border + title + summary + tags + border)
	PanelHeight = 5

	// StatusBarHeight reserves the bottom line for the status bar
	StatusBarHeight = 1

	// SideMargin pads the walkable field horizontally
	SideMargin = 2

	// RowsPerUnit scales world height to terminal rows (cells are roughly twice as tall as wide)
	RowsPerUnit = 2.0

	// MinFieldWidth and MinFieldHeight below which only the size warning is drawn
	MinFieldWidth  = 24
	MinFieldHeight = PanelHeight + StatusBarHeight + 6
)

// Avatar glyph thresholds
const (
	// LeanGlyphThreshold is the lean magnitude that shifts the head one column
	LeanGlyphThreshold = 0.03

	// LimbGlyphThreshold is the phase magnitude that tilts a limb glyph
	LimbGlyphThreshold = 0.15
)

// Status Bar
const (
	// UI Symbols
	AudioStr  = "♫ "
	PausedStr = " PAUSED "

	StatusHint = "←/→ move  ↑ jump  1-9 pick  0 clear  p pause  m mute  q quit"

	PanelIdleText = "walk up to a project, or press its number"
)
