package constant

import "time"

// Sector Switch
const (
	// HighlightFade is the cross-fade between previous and current highlight
	HighlightFade = 100 * time.Millisecond
)

// Cursor Transition
const (
	CursorTransition = 250 * time.Millisecond
)

// Intro Tick Reveal (seconds on the shared intro clock)
const (
	IntroTickDuration = 0.7
	IntroTotal        = 8.0

	// IntroTickStagger spreads the start of each tick so the last one finishes at IntroTotal
	IntroTickStagger = (IntroTotal - IntroTickDuration) / (TickCount - 1)
)

// Intro Heading & Navigation
const (
	IntroWordDuration   = 400 * time.Millisecond
	IntroWordStagger    = 150 * time.Millisecond
	IntroNavDuration    = 700 * time.Millisecond
	IntroDialUIDuration = 300 * time.Millisecond
	IntroMediaFade      = 200 * time.Millisecond
)
