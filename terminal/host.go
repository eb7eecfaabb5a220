package terminal

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ringdial/app"
	"github.com/lixenwraith/ringdial/audio"
	"github.com/lixenwraith/ringdial/config"
	"github.com/lixenwraith/ringdial/engine"
	"github.com/lixenwraith/ringdial/logging"
)

// Run shows the page in the terminal until quit. The screen is always finalized on return
func Run(cfg *config.Config, sound *audio.SoundManager) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: create screen: %w", err)
	}
	return RunOn(screen, cfg, sound)
}

// RunOn drives an uninitialized screen; tests pass a simulation screen
func RunOn(screen tcell.Screen, cfg *config.Config, sound *audio.SoundManager) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: init screen: %w", err)
	}
	engine.SetCrashCleanup(func() {
		screen.Fini()
		EmergencyReset(os.Stdout)
	})
	defer engine.SetCrashCleanup(nil)
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	cols, rows := screen.Size()
	cfg.Width, cfg.Height = PageSize(cols, rows)

	a, err := app.New(cfg, app.Options{
		Sound:       sound,
		Presenter:   NewPresenter(screen, ParseColorMode(cfg.Color)),
		TextInCells: true,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	loop := engine.NewLoop(a, nil, 0)
	a.Boot(loop)

	tr := NewTranslator(cfg.DPR)
	engine.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			for _, pe := range tr.Translate(ev) {
				if !loop.Post(pe) {
					return
				}
			}
		}
	})

	logging.For("terminal").Debug("running", "cols", cols, "rows", rows)
	loop.Run()
	loop.Stop()
	logging.For("terminal").Debug("closed", a.Status().Attrs()...)
	if ext := a.External(); ext != "" {
		logging.For("terminal").Debug("last external link", "url", ext)
	}
	return nil
}
