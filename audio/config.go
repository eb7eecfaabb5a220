package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/ringdial/constant"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns quiet defaults suited to a UI
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundDetent: 0.35,
			SoundSweep:  0.25,
			SoundChime:  0.4,
		},
		SampleRate: constant.AudioSampleRate,
	}
}

// LoadAudioConfig loads audio configuration from environment variables over defaults
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	ApplyEnv(cfg)
	return cfg
}

// ApplyEnv overrides cfg from RINGDIAL_AUDIO_* variables. Malformed values are ignored
func ApplyEnv(cfg *AudioConfig) {
	if enabled := os.Getenv("RINGDIAL_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("RINGDIAL_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	// Effect volumes as a JSON object keyed by sound name
	if effectVols := os.Getenv("RINGDIAL_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := ParseSoundType(name); ok {
					cfg.EffectVolumes[st] = clampVolume(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("RINGDIAL_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
