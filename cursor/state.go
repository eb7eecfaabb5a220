package cursor

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ringdial/constant"
)

// Kind is the closed set of cursor visual states
type Kind uint8

const (
	// KindDot is the neutral small white dot
	KindDot Kind = iota
	// KindSolidOrange is the large filled highlight carrying a label
	KindSolidOrange
	// KindArrowOrangeOutline is the large orange ring with arrows
	KindArrowOrangeOutline
	// KindArrowWhiteOutline is the large white ring with arrows
	KindArrowWhiteOutline
)

var kindNames = [...]string{
	KindDot:                "dot",
	KindSolidOrange:        "solid-orange",
	KindArrowOrangeOutline: "arrow-orange-outline",
	KindArrowWhiteOutline:  "arrow-white-outline",
}

// String returns the attribute name of the kind
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind resolves an attribute name. Unknown names fall back to the dot
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return KindDot, false
}

// State is one entry of the cursor state machine
type State struct {
	Kind     Kind
	Label    string
	ShowIcon bool
}

// Base is the neutral state at the bottom of every stack
var Base = State{Kind: KindDot}

// Target is the visual a state animates toward
type Target struct {
	Size        float64
	Fill        colorful.Color
	FillAlpha   float64
	Border      colorful.Color
	BorderAlpha float64
	LabelAlpha  float64
	IconAlpha   float64
}

var (
	white  = colorful.Color{R: 1, G: 1, B: 1}
	orange = mustHex(constant.WarmHex)
)

// TargetFor returns the explicit visual properties of a state
func TargetFor(s State) Target {
	switch s.Kind {
	case KindSolidOrange:
		t := Target{
			Size:        constant.CursorLargeSize,
			Fill:        orange,
			FillAlpha:   1,
			Border:      orange,
			BorderAlpha: 1,
		}
		if s.Label != "" {
			t.LabelAlpha = 1
		}
		if s.ShowIcon {
			t.IconAlpha = 1
		}
		return t
	case KindArrowOrangeOutline:
		return Target{
			Size:        constant.CursorLargeSize,
			Fill:        orange,
			Border:      orange,
			BorderAlpha: 1,
			IconAlpha:   1,
		}
	case KindArrowWhiteOutline:
		return Target{
			Size:        constant.CursorLargeSize,
			Fill:        white,
			Border:      white,
			BorderAlpha: 1,
			IconAlpha:   1,
		}
	default:
		return Target{
			Size:        constant.CursorDotSize,
			Fill:        white,
			FillAlpha:   1,
			Border:      white,
			BorderAlpha: 1,
		}
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
