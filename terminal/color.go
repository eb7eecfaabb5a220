package terminal

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// ParseColorMode resolves the -color flag; "auto" detects from the environment
func ParseColorMode(s string) ColorMode {
	switch s {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	// COLORTERM is set by modern terminals
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	for _, env := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"ALACRITTY_LOG",
		"WEZTERM_PANE",
	} {
		if os.Getenv(env) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Color cube values for 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube level 0-5
var cubeIndex [256]uint8

func init() {
	for i := range 256 {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			if d := abs(i - int(cubeValues[j])); d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 finds the nearest xterm 256-palette index, preferring the grayscale ramp for near-neutral colors
func RGBTo256(c RGB) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)
	gray := (r + g + b) / 3
	cube := 16 + 36*cubeIndex[c.R] + 6*cubeIndex[c.G] + cubeIndex[c.B]

	if max(abs(r-gray), abs(g-gray), abs(b-gray)) >= 10 {
		return cube
	}
	switch {
	case gray < 4:
		return 16
	case gray > 243:
		return 231
	}

	// Grayscale ramp 232-255 covers levels 8, 18, ..., 238
	grayIdx := min(232+(gray-8)/10, 255)
	level := 8 + (grayIdx-232)*10
	grayDist := abs(r-level) + abs(g-level) + abs(b-level)
	cubeDist := abs(r-int(cubeValues[cubeIndex[c.R]])) +
		abs(g-int(cubeValues[cubeIndex[c.G]])) +
		abs(b-int(cubeValues[cubeIndex[c.B]]))
	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return cube
}

// cellColor converts a pixel for the screen's color mode
func cellColor(mode ColorMode, c RGB) tcell.Color {
	if mode == ColorMode256 {
		return tcell.PaletteColor(int(RGBTo256(c)))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
