package constant

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the simulated step after a stall so eases never jump
	MaxFrameDelta = 100 * time.Millisecond

	// EventQueueSize is the capacity of the host to loop event channel
	EventQueueSize = 256
)

// InitRetryDelays are the waits between dial initialisation attempts when the mount is incomplete
var InitRetryDelays = []time.Duration{
	50 * time.Millisecond,
	150 * time.Millisecond,
	350 * time.Millisecond,
}

// Cursor refresh after page replacement
var CursorRefreshDelays = []time.Duration{
	0,
	100 * time.Millisecond,
}

// Logging
const (
	LogDir      = "logs"
	LogFileName = "ringdial.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// Page Defaults (css pixels)
const (
	DefaultPageWidth  = 1280.0
	DefaultPageHeight = 800.0
	MinPageSize       = 64.0

	// MaxDPR bounds the backing store multiplier
	MaxDPR = 4.0

	// DefaultSnapshotFrames is the frame count written by the png host
	DefaultSnapshotFrames = 120
)

// Terminal Host
const (
	// TermCellWidth and TermCellHeight are the css pixels covered by one terminal cell; each cell
	// shows two stacked half-block pixels
	TermCellWidth  = 8.0
	TermCellHeight = 16.0

	// TermLabelAlpha is the label opacity at which text is drawn into cells
	TermLabelAlpha = 0.5
)
