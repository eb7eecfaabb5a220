package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundDetent SoundType = iota // Sector change
	SoundSweep                   // Intro tick reveal
	SoundChime                   // Item activation
	soundTypeCount
)

var soundNames = [...]string{
	SoundDetent: "detent",
	SoundSweep:  "sweep",
	SoundChime:  "chime",
}

// String returns the config key of the sound
func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// ParseSoundType resolves a config key
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// ErrDisabled is returned by Initialize when audio is turned off by configuration
var ErrDisabled = errors.New("audio disabled")
