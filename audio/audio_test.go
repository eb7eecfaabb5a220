package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/ringdial/constant"
)

func TestUninitializedIsNoOp(t *testing.T) {
	sm := NewSoundManager(nil)
	sm.PlayDetent()
	sm.PlayChime()
	sm.PlaySweep()
	sm.StopSweep()
	sm.Cleanup()
	if sm.mixer.Len() != 0 {
		t.Errorf("mixer holds %d streamers before Initialize", sm.mixer.Len())
	}
}

func TestInitializeDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != ErrDisabled {
		t.Fatalf("Initialize = %v, want ErrDisabled", err)
	}
	sm.PlayDetent()
	if sm.mixer.Len() != 0 {
		t.Error("disabled manager queued a sound")
	}
}

func TestReadyGates(t *testing.T) {
	sm := NewSoundManager(nil)
	now := time.Unix(0, 0)
	sm.now = func() time.Time { return now }

	if sm.ready(SoundDetent) {
		t.Fatal("ready before initialization")
	}
	sm.initialized = true

	if !sm.ready(SoundDetent) {
		t.Fatal("first detent blocked")
	}
	if sm.ready(SoundDetent) {
		t.Error("detent inside MinSoundGap allowed")
	}
	if !sm.ready(SoundChime) {
		t.Error("gap leaked across sound types")
	}
	now = now.Add(constant.MinSoundGap)
	if !sm.ready(SoundDetent) {
		t.Error("detent after MinSoundGap blocked")
	}

	sm.SetMuted(true)
	now = now.Add(time.Second)
	if sm.ready(SoundDetent) {
		t.Error("muted manager allowed a sound")
	}
	if sm.ToggleMute() || sm.Muted() {
		t.Error("ToggleMute did not unmute")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("RINGDIAL_AUDIO_ENABLED", "false")
	t.Setenv("RINGDIAL_MASTER_VOLUME", "150")
	t.Setenv("RINGDIAL_SFX_VOLUMES", `{"detent":0.9,"chime":-1,"bogus":0.5}`)
	t.Setenv("RINGDIAL_SAMPLE_RATE", "44100")

	cfg := LoadAudioConfig()
	if cfg.Enabled {
		t.Error("enabled not overridden")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("master volume %v, want clamped 1", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundDetent] != 0.9 || cfg.EffectVolumes[SoundChime] != 0 {
		t.Errorf("effect volumes %v", cfg.EffectVolumes)
	}
	if cfg.EffectVolumes[SoundSweep] != 0.25 {
		t.Errorf("untouched sweep volume changed to %v", cfg.EffectVolumes[SoundSweep])
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("sample rate %d", cfg.SampleRate)
	}
}

func TestApplyEnvMalformedIgnored(t *testing.T) {
	t.Setenv("RINGDIAL_AUDIO_ENABLED", "maybe")
	t.Setenv("RINGDIAL_MASTER_VOLUME", "loud")
	t.Setenv("RINGDIAL_SFX_VOLUMES", "{")
	t.Setenv("RINGDIAL_SAMPLE_RATE", "-1")

	got := LoadAudioConfig()
	want := DefaultAudioConfig()
	if got.Enabled != want.Enabled || got.MasterVolume != want.MasterVolume || got.SampleRate != want.SampleRate {
		t.Errorf("malformed env changed config: %+v", got)
	}
}

func TestEnvelopeGain(t *testing.T) {
	e := &envelope{attackSamples: 10, releaseSamples: 20, totalSamples: 100}
	tests := []struct {
		pos  int
		want float64
	}{
		{0, 0},
		{5, 0.5},
		{10, 1},
		{50, 1},
		{90, 0.5},
		{100, 0},
		{200, 0},
	}
	for _, tt := range tests {
		if got := e.gain(tt.pos); got != tt.want {
			t.Errorf("gain(%d) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestSweepLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewSweep(100, 200, 250*time.Millisecond, rate)
	if got, want := drain(s), rate.N(250*time.Millisecond); got != want {
		t.Errorf("sweep produced %d samples, want %d", got, want)
	}
}

func TestEffectsBounded(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000
	rate := beep.SampleRate(cfg.SampleRate)

	if got, want := drain(CreateDetentSound(cfg)), rate.N(constant.ClickDuration); got != want {
		t.Errorf("detent %d samples, want %d", got, want)
	}
	want := rate.N(constant.ChimeNote1Duration) + rate.N(constant.ChimeNote2Duration)
	if got := drain(CreateChimeSound(cfg)); got != want {
		t.Errorf("chime %d samples, want %d", got, want)
	}
	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("unknown sound type produced a streamer")
	}
}

func TestParseSoundType(t *testing.T) {
	for st := SoundDetent; st < soundTypeCount; st++ {
		got, ok := ParseSoundType(st.String())
		if !ok || got != st {
			t.Errorf("ParseSoundType(%q) = %v, %v", st.String(), got, ok)
		}
	}
	if _, ok := ParseSoundType("unknown"); ok {
		t.Error("unknown name parsed")
	}
}
