package app

import (
	"github.com/lixenwraith/ringdial/event"
	"github.com/lixenwraith/ringdial/input"
	"github.com/lixenwraith/ringdial/scene"
)

func (a *App) onMove(ev *event.Event) {
	if a.coarse || ev.Pointer == event.PointerTouch {
		return
	}
	a.cursor.HandleMove(ev.X, ev.Y)
}

func (a *App) onDown(ev *event.Event) {
	a.downLink, _ = a.page.LinkAt(ev.X, ev.Y)
}

// onUp follows a page link when press and release land on the same one
func (a *App) onUp(ev *event.Event) {
	pressed := a.downLink
	a.downLink = ""
	if pressed == "" {
		return
	}
	if link, ok := a.page.LinkAt(ev.X, ev.Y); ok && link == pressed {
		a.Navigate(link)
	}
}

func (a *App) onResize(ev *event.Event) {
	if ev.Width > 0 {
		a.width = ev.Width
	}
	if ev.Height > 0 {
		a.height = ev.Height
	}
	if ev.DPR > 0 {
		a.dpr = ev.DPR
	}
	a.canvas.Resize(a.width, a.height, a.dpr)
	a.page.Resize(a.width, a.height)
	if !a.ring.Hidden {
		a.mountStatic()
	}
}

func (a *App) onDepsReady(*event.Event) {
	a.shared.MarkDepsReady()
	a.log.Debug("dependencies ready")
}

func (a *App) onMediaReady(*event.Event) { a.mediaReady = true }

func (a *App) onKey(ev *event.Event) {
	switch a.keys.Lookup(ev.Key) {
	case input.IntentQuit:
		if a.loop != nil {
			a.loop.Quit()
		}

	case input.IntentActivate:
		switch {
		case a.dial.Alive():
			a.dial.Activate()
		case a.page.Name == scene.Case:
			a.Navigate(scene.PathHome)
		}

	case input.IntentSwitchPage:
		if a.page.Name == scene.Home {
			a.Navigate(scene.PathAbout)
		} else {
			a.Navigate(scene.PathHome)
		}

	case input.IntentToggleCoarse:
		a.setCoarse(!a.coarse)

	case input.IntentToggleMute:
		if a.opts.Sound != nil {
			muted := a.opts.Sound.ToggleMute()
			a.log.Debug("mute", "on", muted)
		}

	case input.IntentSkipIntro:
		a.skipIntro()

	case input.IntentNext:
		a.dial.Select(a.dial.ActiveIndex() + 1)

	case input.IntentPrev:
		a.dial.Select(a.dial.ActiveIndex() - 1)
	}
}
