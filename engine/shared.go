package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ringdial/intro"
)

// Handoff is the dial state carried into the next page
type Handoff struct {
	Index    int
	Position time.Duration
}

// Shared is the cross-component context for one process: dependency readiness,
// the intro clock and the dial handoff
type Shared struct {
	depsReady atomic.Bool

	// Clock is the intro progress read by the dial. Loop goroutine only
	Clock *intro.Clock

	handoff    Handoff
	hasHandoff bool
}

// NewShared creates a context with a fresh intro clock
func NewShared() *Shared {
	return &Shared{Clock: intro.NewClock()}
}

// MarkDepsReady records that external dependencies finished loading. Safe from any goroutine
func (s *Shared) MarkDepsReady() { s.depsReady.Store(true) }

// DepsReady reports the dependencies-ready flag
func (s *Shared) DepsReady() bool { return s.depsReady.Load() }

// SetHandoff stores the dial state for the next page
func (s *Shared) SetHandoff(h Handoff) {
	s.handoff = h
	s.hasHandoff = true
}

// TakeHandoff returns and clears the stored dial state
func (s *Shared) TakeHandoff() (Handoff, bool) {
	h, ok := s.handoff, s.hasHandoff
	s.handoff, s.hasHandoff = Handoff{}, false
	return h, ok
}
