package parameter

import "time"

// Audio cue tuning
const (
	AudioSampleRate    = 44100
	AudioBufferSize    = 100 * time.Millisecond
	AudioDefaultVolume = 0.5
	// Longest wait for in-flight cues at exit
	AudioDrainTimeout = 300 * time.Millisecond

	// Jump cue is a short rising chirp
	JumpCueStartHz   = 440.0
	JumpCueEndHz     = 880.0
	JumpCueDuration  = 90 * time.Millisecond
	SelectCueHz      = 660.0
	SelectCueSecond  = 990.0
	SelectCueNoteLen = 60 * time.Millisecond
)
