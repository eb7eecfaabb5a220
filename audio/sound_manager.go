package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/logging"
)

// SoundManager plays dial feedback sounds through one mixer.
// Every operation is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	sweepCtrl   *beep.Ctrl
	initialized bool
	muted       bool

	lastPlayed map[SoundType]time.Time
	now        func() time.Time
}

// NewSoundManager creates a sound manager for the configuration
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:        cfg,
		mixer:      &beep.Mixer{},
		lastPlayed: make(map[SoundType]time.Time),
		now:        time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	logging.For("audio").Debug("speaker initialized", "rate", sm.cfg.SampleRate)
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.sweepCtrl != nil {
		sm.sweepCtrl.Paused = true
		sm.sweepCtrl = nil
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close that allows re-init; clearing the mixer silences everything
	sm.initialized = false
}

// SetMuted silences new sounds
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayDetent plays the sector-change click, rate limited to MinSoundGap
func (sm *SoundManager) PlayDetent() { sm.play(SoundDetent) }

// PlayChime plays the activation chime
func (sm *SoundManager) PlayChime() { sm.play(SoundChime) }

// PlaySweep starts the intro swell unless one is already running
func (sm *SoundManager) PlaySweep() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.ready(SoundSweep) {
		return
	}
	ctrl := &beep.Ctrl{Streamer: CreateSweepSound(sm.cfg), Paused: false}
	sm.sweepCtrl = ctrl
	sm.add(ctrl)
}

// StopSweep cuts the intro swell short (intro skipped)
func (sm *SoundManager) StopSweep() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.sweepCtrl != nil {
		speaker.Lock()
		sm.sweepCtrl.Paused = true
		speaker.Unlock()
		sm.sweepCtrl = nil
	}
}

func (sm *SoundManager) play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.ready(st) {
		return
	}
	if s := GetSoundEffect(st, sm.cfg); s != nil {
		sm.add(s)
	}
}

// ready applies the init, mute and rate-limit gates, recording the play time on success. Caller holds mu
func (sm *SoundManager) ready(st SoundType) bool {
	if !sm.initialized || sm.muted {
		return false
	}
	now := sm.now()
	if last, ok := sm.lastPlayed[st]; ok && now.Sub(last) < constant.MinSoundGap {
		return false
	}
	sm.lastPlayed[st] = now
	return true
}

func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
