package constant

// Tick Colors
const (
	CoolHex   = "#00F0C8"
	WarmHex   = "#FF8200"
	StaticHex = "#05EFBF"
)

// Page Colors
const (
	BackgroundHex = "#0B0B0C"
	DiscHex       = "#16171A"
	LabelHex      = "#0B0B0C"
	WhiteHex      = "#FFFFFF"
)

// Cursor Sizes (css pixels)
const (
	CursorDotSize   = 16.0
	CursorLargeSize = 96.0

	// CursorBorderWidth is the outline stroke of the arrow variants
	CursorBorderWidth = 1.5

	// CursorLabelSize is the font size of the labeled highlight
	CursorLabelSize = 13.0
)

// CursorPlayLabel is shown while hovering the viewport
const CursorPlayLabel = "PLAY"

// Page Text (css pixels)
const (
	TitleSize = 18.0
	MetaSize  = 12.0
	NavSize   = 13.0
)
