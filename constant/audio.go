package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// MinSoundGap between consecutive detent clicks
const MinSoundGap = 30 * time.Millisecond

// Detent Click
const (
	ClickDuration  = 25 * time.Millisecond
	ClickAttack    = 1 * time.Millisecond
	ClickRelease   = 20 * time.Millisecond
	ClickFrequency = 2200.0
)

// Intro Sweep
const (
	SweepDuration = 1200 * time.Millisecond
	SweepAttack   = 300 * time.Millisecond
	SweepRelease  = 800 * time.Millisecond
	SweepLowFreq  = 90.0
	SweepHighFreq = 240.0
)

// Activation Chime
const (
	ChimeNote1Duration = 80 * time.Millisecond
	ChimeNote2Duration = 260 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 40 * time.Millisecond
	ChimeNote2Release  = 200 * time.Millisecond
	ChimeNote1Freq     = 987.77  // B5
	ChimeNote2Freq     = 1318.51 // E6
)
