package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/blocksgame/parameter"
)

// Cue identifies a synthesized sound
type Cue uint8

const (
	CueClick Cue = iota
	CueLock
	CueClear
)

func (c Cue) String() string {
	switch c {
	case CueClick:
		return "Click"
	case CueLock:
		return "Lock"
	case CueClear:
		return "Clear"
	}
	return "Unknown"
}

// envelope applies a linear release over the last fraction of a finite stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol := float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// tone is a sine burst of the given length with a short release tail
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist; fall back to silence of the same length
		return generators.Silence(rate.N(d))
	}
	burst := beep.Take(rate.N(d), sine)
	shaped := newEnvelope(burst, d, d/3, rate)
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: parameter.CueVolume}
}

// cueStreamer builds the finite streamer for one cue; repeat applies to CueClear
func cueStreamer(c Cue, rate beep.SampleRate, repeat int) beep.Streamer {
	switch c {
	case CueClick:
		return tone(rate, parameter.ClickSoundFreq, parameter.ClickSoundDuration)
	case CueLock:
		return tone(rate, parameter.LockSoundFreq, parameter.LockSoundDuration)
	case CueClear:
		if repeat < 1 {
			repeat = 1
		}
		notes := make([]beep.Streamer, repeat)
		for i := range notes {
			// Each cleared line climbs a fifth
			freq := parameter.ClearSoundFreq * math.Pow(1.5, float64(i))
			notes[i] = tone(rate, freq, parameter.ClearSoundDuration)
		}
		return beep.Seq(notes...)
	}
	return nil
}
