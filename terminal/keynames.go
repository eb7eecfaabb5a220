package terminal

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// keyToName maps tcell special keys to the names used in [keys] bindings
var keyToName = map[tcell.Key]string{
	tcell.KeyEscape:     "esc",
	tcell.KeyEnter:      "enter",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "backtab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
}

// KeyName returns the binding name of a key event, empty for keys without one
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return "space"
		}
		if !unicode.IsPrint(r) {
			return ""
		}
		return strings.ToLower(string(r))
	}
	return keyToName[ev.Key()]
}
