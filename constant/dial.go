package constant

// Ring Layout
const (
	// ReferenceRadius is the viewport radius all tick ratios were tuned against
	ReferenceRadius = 253.0

	// TickCount is the number of fixed tick marks around the ring
	TickCount = 96

	// TickStep is the angular spacing between adjacent ticks in degrees
	TickStep = 360.0 / TickCount

	// IntroStartTick is the tick sitting at 12 o'clock, where the intro sweep begins
	IntroStartTick = 72

	// MaxItems caps the number of sectors
	MaxItems = 8
)

// Tick Dimensions (ratios of the viewport radius)
const (
	GapRatio        = 24.0 / ReferenceRadius
	BaseLenRatio    = 22.51 / ReferenceRadius
	MaxLenRatio     = 56.27 / ReferenceRadius
	TickWidthRatio  = 1.686 / ReferenceRadius
	NearRatio       = 56.27 / ReferenceRadius
	RadFalloffRatio = 225.0 / ReferenceRadius
	SwitchPadRatio  = 63.3 / ReferenceRadius

	// StaticExpand is the ring extent of a static renderer relative to its viewport radius
	StaticExpand = 1 + GapRatio + BaseLenRatio

	// MinTickWidth is the thinnest tick drawn, in css pixels
	MinTickWidth = 1.0
)

// Zone Hysteresis (ratios of the viewport radius)
const (
	InnerEnterRatio  = 6.0 / ReferenceRadius
	InnerExitRatio   = 10.0 / ReferenceRadius
	SwitchEnterRatio = 10.0 / ReferenceRadius
	SwitchExitRatio  = 20.0 / ReferenceRadius
)

// Attraction
const (
	// AttractionAngularFalloff is the angular distance in degrees at which influence reaches zero
	AttractionAngularFalloff = 18.0

	// AttractionRiseRate and AttractionDecayRate are ease approach rates per second
	AttractionRiseRate  = 6.0
	AttractionDecayRate = 12.0

	// AttractionEpsilon snaps the ease to its target when this close
	AttractionEpsilon = 0.001
)

// Sector Highlight
const (
	// HighlightFlatTicks is the number of fully lit ticks centred on the active sector
	HighlightFlatTicks = 5

	// HighlightFlatHalf is the half-width of the fully lit zone in degrees
	HighlightFlatHalf = HighlightFlatTicks / 2.0 * TickStep
)

// Touch & Wheel Input
const (
	// RotatePerPx is ring rotation in degrees per pixel of vertical drag
	RotatePerPx = 0.22

	// WheelFactor is ring rotation in degrees per wheel delta unit
	WheelFactor = 0.08

	// WheelLinePx converts line-based wheel steps (terminal, window hosts) into pixel deltas
	WheelLinePx = 100.0

	// TapSlopPx is the vertical travel under which a touch on the viewport counts as a tap
	TapSlopPx = 8.0
)

// Item Links
const (
	// CaseStudyPrefix is prepended to bare item slugs on activation
	CaseStudyPrefix = "/case-studies/"
)
