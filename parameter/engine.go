package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickInterval is the fixed physics step period (~60 Hz)
	TickInterval = 16 * time.Millisecond

	// MinTickInterval is the lowest accepted configured tick period
	MinTickInterval = time.Millisecond

	// MaxTickInterval is the highest accepted configured tick period
	MaxTickInterval = time.Second
)

// Input Limits
const (
	// InputQueueSize is the capacity of the key event queue drained at tick boundaries
	InputQueueSize = 256

	// KeyHoldWindow is how long a terminal key stays held without an auto-repeat
	// Terminals report presses only, release is synthesized after this window
	KeyHoldWindow = 250 * time.Millisecond
)
