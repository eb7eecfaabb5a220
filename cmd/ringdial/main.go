package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/ringdial/audio"
	"github.com/lixenwraith/ringdial/config"
	"github.com/lixenwraith/ringdial/engine"
	"github.com/lixenwraith/ringdial/logging"
	"github.com/lixenwraith/ringdial/snapshot"
	"github.com/lixenwraith/ringdial/terminal"
	"github.com/lixenwraith/ringdial/window"
)

func main() {
	// Panic Recovery: registered host cleanup runs before the stack trace is printed
	defer func() {
		if r := recover(); r != nil {
			engine.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "ringdial: %v\n", err)
		os.Exit(2)
	}

	if f := logging.Setup(cfg.Debug); f != nil {
		defer f.Close()
	}
	log := logging.For("main")

	if err := run(cfg); err != nil {
		log.Error("exit", "err", err)
		fmt.Fprintf(os.Stderr, "ringdial: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if cfg.Host == config.HostPNG {
		rep, err := snapshot.Run(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d frames and %s\n", len(rep.Frames), rep.Static)
		return nil
	}

	// Audio failure never blocks the page
	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		logging.For("main").Debug("audio unavailable", "err", err)
	}
	defer sound.Cleanup()

	switch cfg.Host {
	case config.HostWindow:
		return window.Run(cfg, sound)
	default:
		return terminal.Run(cfg, sound)
	}
}
