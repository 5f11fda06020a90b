package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/folio/parameter"
)

// sweep is a sine oscillator gliding linearly between two frequencies
type sweep struct {
	fromHz, toHz float64
	phase        float64
	position     int
	duration     int
	rate         beep.SampleRate
}

// NewSweep creates a finite frequency glide
func NewSweep(fromHz, toHz float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		fromHz:   fromHz,
		toHz:     toHz,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		progress := float64(s.position) / float64(s.duration)
		freq := s.fromHz + (s.toHz-s.fromHz)*progress
		val := math.Sin(2 * math.Pi * s.phase)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies linear attack and release to a finite stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over duration with the given attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: beep.Take(rate.N(duration), s),
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero volume is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateJumpSound generates a short rising chirp
func CreateJumpSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	chirp := NewSweep(parameter.JumpCueStartHz, parameter.JumpCueEndHz, parameter.JumpCueDuration, rate)
	shaped := NewEnvelope(chirp, parameter.JumpCueDuration, 5*time.Millisecond, 40*time.Millisecond, rate)

	return newVolume(shaped, 0.6*cfg.MasterVolume)
}

// CreateSelectSound generates a two-note chime, nil if the tone generator rejects the rate
func CreateSelectSound(cfg *Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	noteLen := parameter.SelectCueNoteLen

	first, err := generators.SineTone(rate, parameter.SelectCueHz)
	if err != nil {
		return nil, err
	}
	second, err := generators.SineTone(rate, parameter.SelectCueSecond)
	if err != nil {
		return nil, err
	}

	chime := beep.Seq(
		NewEnvelope(first, noteLen, 3*time.Millisecond, 20*time.Millisecond, rate),
		NewEnvelope(second, 2*noteLen, 3*time.Millisecond, 60*time.Millisecond, rate),
	)
	return newVolume(chime, 0.5*cfg.MasterVolume), nil
}
