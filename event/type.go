package event

// EventType represents the type of host or lifecycle event
type EventType int

const (
	// === Pointer Event ===

	// EventPointerMove reports pointer position in page space
	// Trigger: Host mouse motion, touch drag | Consumer: Dial, Cursor
	EventPointerMove EventType = iota

	// EventPointerDown begins a press or touch
	// Trigger: Host button/touch press | Consumer: Dial, Media
	EventPointerDown

	// EventPointerUp ends a press or touch
	// Trigger: Host button/touch release (window-wide) | Consumer: Dial
	EventPointerUp

	// EventPointerLeave reports the pointer left the page surface
	// Trigger: Host focus loss, cursor exit | Consumer: Dial
	EventPointerLeave

	// EventWheel reports a scroll delta in pixels
	// Trigger: Host wheel | Consumer: Dial (coarse only)
	EventWheel

	// EventTouchMove is the page-wide touch move used to suppress scrolling
	// Trigger: Host touch drag | Consumer: Dial
	EventTouchMove

	// === Page Event ===

	// EventResize reports new page size and device pixel ratio
	// Trigger: Host resize | Consumer: App, Dial
	EventResize

	// EventVisibility reports page shown or hidden
	// Trigger: Host focus / minimise | Consumer: Loop
	EventVisibility

	// EventKey reports a key press
	// Trigger: Host keyboard | Consumer: App
	EventKey

	// === Lifecycle Event ===

	// EventDepsReady marks external dependencies as loaded
	// Trigger: Bootstrap | Consumer: Intro
	EventDepsReady

	// EventMediaReady marks background media as decodable
	// Trigger: Media loader | Consumer: Intro
	EventMediaReady

	// EventQuit requests shutdown
	// Trigger: Key binding, window close | Consumer: Loop
	EventQuit
)

var typeNames = [...]string{
	EventPointerMove:  "pointer_move",
	EventPointerDown:  "pointer_down",
	EventPointerUp:    "pointer_up",
	EventPointerLeave: "pointer_leave",
	EventWheel:        "wheel",
	EventTouchMove:    "touch_move",
	EventResize:       "resize",
	EventVisibility:   "visibility",
	EventKey:          "key",
	EventDepsReady:    "deps_ready",
	EventMediaReady:   "media_ready",
	EventQuit:         "quit",
}

// String returns the event type name
func (t EventType) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// PointerKind distinguishes fine (mouse) and coarse (touch) pointers
type PointerKind uint8

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

// Event is a single host event. Fields not relevant to Type are zero
type Event struct {
	Type EventType

	// Pointer
	X, Y    float64
	Pointer PointerKind
	ID      int

	// Wheel
	DX, DY float64

	// Resize
	Width, Height float64
	DPR           float64

	// Visibility
	Visible bool

	// Key
	Key string

	prevented bool
}

// PreventDefault records that a handler claimed the gesture. Advisory: the terminal and
// window hosts have no scrolling surface, so the loop drops the dispatched copy unread
func (e *Event) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a handler called PreventDefault
func (e *Event) DefaultPrevented() bool { return e.prevented }
