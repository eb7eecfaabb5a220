package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/ringdial/constant"
)

// sweep is a sine whose frequency glides linearly across its duration
type sweep struct {
	from, to float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

// NewSweep creates a gliding sine from one frequency to another
func NewSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, duration: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		t := float64(s.position) / float64(max(s.duration, 1))
		freq := s.from + (s.to-s.from)*t
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope bounds s to duration with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

// gain returns the envelope level at a sample position
func (e *envelope) gain(pos int) float64 {
	if pos >= e.totalSamples {
		return 0
	}
	vol := 1.0
	if pos < e.attackSamples && e.attackSamples > 0 {
		vol = float64(pos) / float64(e.attackSamples)
	}
	releaseStart := max(e.totalSamples-e.releaseSamples, e.attackSamples)
	if pos >= releaseStart && e.releaseSamples > 0 {
		vol = min(vol, float64(e.totalSamples-pos)/float64(e.releaseSamples))
	}
	return max(vol, 0)
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	remaining := e.totalSamples - e.position
	if len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := e.gain(e.position)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok || n > 0
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear volume; zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone returns a bounded sine, silence when the generator rejects the frequency
func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), s)
}

// CreateDetentSound generates the short click played on sector change
func CreateDetentSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	click := tone(constant.ClickFrequency, constant.ClickDuration, rate)
	shaped := NewEnvelope(click, constant.ClickDuration, constant.ClickAttack, constant.ClickRelease, rate)
	return newVolume(shaped, cfg.EffectVolumes[SoundDetent]*cfg.MasterVolume)
}

// CreateSweepSound generates the low rising swell under the intro tick reveal
func CreateSweepSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	glide := NewSweep(constant.SweepLowFreq, constant.SweepHighFreq, constant.SweepDuration, rate)
	shaped := NewEnvelope(glide, constant.SweepDuration, constant.SweepAttack, constant.SweepRelease, rate)
	return newVolume(shaped, cfg.EffectVolumes[SoundSweep]*cfg.MasterVolume)
}

// CreateChimeSound generates the two-note chime played on activation
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5
	n1 := tone(constant.ChimeNote1Freq, constant.ChimeNote1Duration, rate)
	n1Shaped := NewEnvelope(n1, constant.ChimeNote1Duration, constant.ChimeAttack, constant.ChimeNote1Release, rate)

	// E6
	n2 := tone(constant.ChimeNote2Freq, constant.ChimeNote2Duration, rate)
	n2Shaped := NewEnvelope(n2, constant.ChimeNote2Duration, constant.ChimeAttack, constant.ChimeNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.EffectVolumes[SoundChime]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for a sound type, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundDetent:
		return CreateDetentSound(cfg)
	case SoundSweep:
		return CreateSweepSound(cfg)
	case SoundChime:
		return CreateChimeSound(cfg)
	default:
		return nil
	}
}
