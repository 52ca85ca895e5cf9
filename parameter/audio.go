package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue tones
const (
	ClickSoundDuration = 30 * time.Millisecond
	ClickSoundFreq     = 1760.0

	LockSoundDuration = 60 * time.Millisecond
	LockSoundFreq     = 220.0

	ClearSoundDuration = 90 * time.Millisecond
	ClearSoundFreq     = 660.0

	// CueVolume is the exponent applied to cue amplitude (base 2)
	CueVolume = -2.0
)
