package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/folio/parameter"
)

// Config controls audio cue playback
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
}

// DefaultConfig returns enabled audio at the default volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: parameter.AudioDefaultVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
}

// ApplyEnv overlays environment variables on cfg
// FOLIO_AUDIO_ENABLED (bool), FOLIO_MASTER_VOLUME (0-100), FOLIO_SAMPLE_RATE (Hz); malformed values are ignored
func ApplyEnv(cfg *Config) *Config {
	if enabled := os.Getenv("FOLIO_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("FOLIO_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	if sampleRate := os.Getenv("FOLIO_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
