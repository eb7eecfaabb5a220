package window

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// specialKeys maps ebiten keys to the names used in [keys] bindings
var specialKeys = map[ebiten.Key]string{
	ebiten.KeyEscape:      "esc",
	ebiten.KeyEnter:       "enter",
	ebiten.KeyNumpadEnter: "enter",
	ebiten.KeyTab:         "tab",
	ebiten.KeySpace:       "space",
	ebiten.KeyBackspace:   "backspace",
	ebiten.KeyArrowLeft:   "left",
	ebiten.KeyArrowRight:  "right",
	ebiten.KeyArrowUp:     "up",
	ebiten.KeyArrowDown:   "down",
	ebiten.KeyHome:        "home",
	ebiten.KeyEnd:         "end",
	ebiten.KeyPageUp:      "pgup",
	ebiten.KeyPageDown:    "pgdn",
}

// KeyName returns the binding name of an ebiten key, empty for keys without one
func KeyName(k ebiten.Key) string {
	if name, ok := specialKeys[k]; ok {
		return name
	}
	s := k.String()
	if d, ok := strings.CutPrefix(s, "Digit"); ok {
		return d
	}
	if len(s) == 1 {
		return strings.ToLower(s)
	}
	return ""
}

// pollEbiten samples the global ebiten input state in css pixels
func pollEbiten(g *Game) State {
	scale := g.scale
	if scale <= 0 {
		scale = 1
	}
	s := State{
		Width:     g.width,
		Height:    g.height,
		DPR:       scale,
		Focused:   ebiten.IsFocused(),
		Minimized: ebiten.IsWindowMinimized(),
		Left:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}

	cx, cy := ebiten.CursorPosition()
	s.CursorX, s.CursorY = float64(cx)/scale, float64(cy)/scale
	s.InWindow = s.Focused && s.CursorX >= 0 && s.CursorY >= 0 && s.CursorX < g.width && s.CursorY < g.height
	_, s.WheelY = ebiten.Wheel()

	for _, id := range ebiten.AppendTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, Touch{ID: int(id), X: float64(tx) / scale, Y: float64(ty) / scale})
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if name := KeyName(k); name != "" {
			s.Keys = append(s.Keys, name)
		}
	}
	return s
}
