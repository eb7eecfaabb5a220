package media

import (
	"errors"
	"image"
	"sync"
	"time"
)

// ErrNotReady is returned by Play before the source has decoded
var ErrNotReady = errors.New("media: source not ready")

// Slot is one media element: a poster shown until a looping, muted, autoplaying source is ready.
// Setters are called from the loop goroutine; decode results land from loader workers under mu
type Slot struct {
	Name string

	loader *Loader

	mu        sync.Mutex
	poster    string
	source    string
	posterGen uint64
	sourceGen uint64
	posterClp *Clip
	sourceClp *Clip
	ready     chan struct{}
	readyOnce *sync.Once
	err       error

	// loop goroutine only
	playing bool
	pos     time.Duration

	Muted    bool
	Loop     bool
	Autoplay bool
}

// NewSlot creates an empty muted, looping, autoplaying slot
func NewSlot(name string, loader *Loader) *Slot {
	return &Slot{
		Name:      name,
		loader:    loader,
		ready:     make(chan struct{}),
		readyOnce: new(sync.Once),
		Muted:     true,
		Loop:      true,
		Autoplay:  true,
	}
}

// Source returns the current source path
func (s *Slot) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Poster returns the current poster path
func (s *Slot) Poster() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poster
}

// SetPoster swaps the still shown while the source loads
func (s *Slot) SetPoster(p string) {
	s.mu.Lock()
	if p == s.poster {
		s.mu.Unlock()
		return
	}
	s.poster = p
	s.posterGen++
	gen := s.posterGen
	s.posterClp = nil
	s.mu.Unlock()

	if p == "" || s.loader == nil {
		return
	}
	s.loader.Load(p, func(c *Clip, err error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.posterGen || err != nil {
			return
		}
		s.posterClp = c
	})
}

// SetSource swaps the source, resetting readiness and playback
func (s *Slot) SetSource(src string) {
	s.mu.Lock()
	if src == s.source {
		s.mu.Unlock()
		return
	}
	s.source = src
	s.sourceGen++
	gen := s.sourceGen
	s.sourceClp = nil
	s.err = nil
	s.ready = make(chan struct{})
	s.readyOnce = new(sync.Once)
	ready, once := s.ready, s.readyOnce
	s.mu.Unlock()

	s.pos = 0
	s.playing = false

	if src == "" || s.loader == nil {
		return
	}
	queued := s.loader.Load(src, func(c *Clip, err error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.sourceGen {
			return
		}
		if err != nil {
			s.err = err
			return
		}
		s.sourceClp = c
		once.Do(func() { close(ready) })
	})
	if !queued {
		s.mu.Lock()
		if gen == s.sourceGen {
			s.err = ErrNotQueued
		}
		s.mu.Unlock()
	}
}

// Ready returns a channel closed once the current source decodes
func (s *Slot) Ready() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// IsReady reports whether the current source has decoded
func (s *Slot) IsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sourceClp != nil
}

// Err returns the last load error of the current source
func (s *Slot) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Play starts playback. Fails with ErrNotReady before the source decodes
func (s *Slot) Play() error {
	if !s.IsReady() {
		return ErrNotReady
	}
	s.playing = true
	return nil
}

// Pause stops playback at the current position
func (s *Slot) Pause() { s.playing = false }

// Playing reports playback state
func (s *Slot) Playing() bool { return s.playing }

// Position returns the playback position
func (s *Slot) Position() time.Duration { return s.pos }

// Seek moves the playback position
func (s *Slot) Seek(pos time.Duration) { s.pos = max(pos, 0) }

// Advance moves playback forward, autoplaying once ready
func (s *Slot) Advance(dt time.Duration) {
	if !s.playing {
		if !s.Autoplay || s.Play() != nil {
			return
		}
	}
	s.mu.Lock()
	clip := s.sourceClp
	s.mu.Unlock()
	if clip == nil {
		return
	}

	s.pos += dt
	if !s.Loop && clip.Duration > 0 && s.pos >= clip.Duration {
		s.pos = clip.Duration - 1
		s.playing = false
	}
}

// Frame returns the picture to present: the source when ready, else the poster, else nil
func (s *Slot) Frame() image.Image {
	s.mu.Lock()
	src, poster := s.sourceClp, s.posterClp
	s.mu.Unlock()

	if src != nil {
		return src.At(s.pos)
	}
	if poster != nil {
		return poster.At(0)
	}
	return nil
}
