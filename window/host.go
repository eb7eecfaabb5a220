package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/ringdial/app"
	"github.com/lixenwraith/ringdial/audio"
	"github.com/lixenwraith/ringdial/config"
	"github.com/lixenwraith/ringdial/engine"
	"github.com/lixenwraith/ringdial/logging"
)

// Title is the window caption
const Title = "ringdial"

// Run opens a window at the configured css size and blocks until it is closed or quit
func Run(cfg *config.Config, sound *audio.SoundManager) error {
	g := &Game{poll: pollEbiten, scale: 1}

	a, err := app.New(cfg, app.Options{Sound: sound, Presenter: g})
	if err != nil {
		return err
	}
	defer a.Close()

	g.status, g.setTitle = a.Status(), ebiten.SetWindowTitle
	g.loop = engine.NewLoop(a, nil, 0)
	a.Boot(g.loop)

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.DefaultTPS)
	if !cfg.Coarse {
		// The page draws its own cursor
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	logging.For("window").Debug("running", "width", cfg.Width, "height", cfg.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	g.loop.Stop()
	logging.For("window").Debug("closed", g.status.Attrs()...)
	return nil
}
