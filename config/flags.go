package config

import (
	"flag"
	"fmt"
	"io"
)

// Load resolves configuration in order: defaults, -config file, environment, then explicitly set flags
func Load(args []string, stderr io.Writer) (*Config, error) {
	fl := Default()
	fs := flag.NewFlagSet("ringdial", flag.ContinueOnError)
	fs.SetOutput(stderr)

	path := fs.String("config", "", "TOML config file")
	fs.StringVar(&fl.Host, "host", fl.Host, "Host: term, window, png")
	fs.StringVar(&fl.Page, "page", fl.Page, "Start page: home, about")
	fs.BoolVar(&fl.Coarse, "coarse", fl.Coarse, "Coarse pointer input (drag/wheel rotation)")
	fs.BoolVar(&fl.ReducedMotion, "reduced-motion", fl.ReducedMotion, "Disable eases and the intro")
	fs.BoolVar(&fl.SkipIntro, "skip-intro", fl.SkipIntro, "Jump straight to the completed intro")
	fs.Float64Var(&fl.DPR, "dpr", fl.DPR, "Device pixel ratio")
	fs.Float64Var(&fl.Width, "width", fl.Width, "Page width in css pixels (window, png)")
	fs.Float64Var(&fl.Height, "height", fl.Height, "Page height in css pixels (window, png)")
	fs.StringVar(&fl.OutDir, "out", fl.OutDir, "Output directory (png)")
	fs.IntVar(&fl.Frames, "frames", fl.Frames, "Frames to write (png)")
	fs.BoolVar(&fl.Debug, "debug", fl.Debug, "Write debug log to logs/")
	fs.StringVar(&fl.Color, "color", fl.Color, "Color mode: auto, truecolor, 256")
	fs.StringVar(&fl.MediaRoot, "media", fl.MediaRoot, "Media directory (default: bundled demo)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("config: unexpected argument %q", fs.Arg(0))
	}

	cfg := Default()
	if *path != "" {
		if err := cfg.LoadFile(*path); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()

	// Only flags given on the command line win over file and environment
	fs.Visit(func(f *flag.Flag) {
		if apply, ok := flagFields[f.Name]; ok {
			apply(cfg, fl)
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var flagFields = map[string]func(dst, src *Config){
	"host":           func(d, s *Config) { d.Host = s.Host },
	"page":           func(d, s *Config) { d.Page = s.Page },
	"coarse":         func(d, s *Config) { d.Coarse = s.Coarse },
	"reduced-motion": func(d, s *Config) { d.ReducedMotion = s.ReducedMotion },
	"skip-intro":     func(d, s *Config) { d.SkipIntro = s.SkipIntro },
	"dpr":            func(d, s *Config) { d.DPR = s.DPR },
	"width":          func(d, s *Config) { d.Width = s.Width },
	"height":         func(d, s *Config) { d.Height = s.Height },
	"out":            func(d, s *Config) { d.OutDir = s.OutDir },
	"frames":         func(d, s *Config) { d.Frames = s.Frames },
	"debug":          func(d, s *Config) { d.Debug = s.Debug },
	"color":          func(d, s *Config) { d.Color = s.Color },
	"media":          func(d, s *Config) { d.MediaRoot = s.MediaRoot },
}
