package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/ringdial/asset"
	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/input"
	"github.com/lixenwraith/ringdial/sector"
)

var (
	ErrNoItems     = errors.New("config: home page needs at least one item")
	ErrUnknownHost = errors.New("config: unknown host")
	ErrUnknownPage = errors.New("config: unknown page")
	ErrBadColor    = errors.New("config: unknown color mode")
)

// Hosts
const (
	HostTerminal = "term"
	HostWindow   = "window"
	HostPNG      = "png"
)

// Pages
const (
	PageHome  = "home"
	PageAbout = "about"
)

// Item is one [[item]] entry
type Item struct {
	Title  string `toml:"title"`
	Meta   string `toml:"meta"`
	Media  string `toml:"media"`
	Poster string `toml:"poster"`
	Link   string `toml:"link"`
}

// Palette holds hex colours for the ring
type Palette struct {
	Cool   string `toml:"cool"`
	Warm   string `toml:"warm"`
	Static string `toml:"static"`
}

// Config is the resolved process configuration
type Config struct {
	Host          string  `toml:"host"`
	Page          string  `toml:"page"`
	Heading       string  `toml:"heading"`
	Coarse        bool    `toml:"coarse"`
	ReducedMotion bool    `toml:"reduced_motion"`
	SkipIntro     bool    `toml:"skip_intro"`
	DPR           float64 `toml:"dpr"`
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	OutDir        string  `toml:"out_dir"`
	Frames        int     `toml:"frames"`
	Debug         bool    `toml:"debug"`
	Color         string  `toml:"color"`

	// MediaRoot is a directory media paths resolve against; empty uses the bundled demo media
	MediaRoot string `toml:"media_root"`

	Palette Palette           `toml:"palette"`
	Keys    map[string]string `toml:"keys"`
	Items   []Item            `toml:"item"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{
		Host:   HostTerminal,
		Page:   PageHome,
		DPR:    1,
		Width:  constant.DefaultPageWidth,
		Height: constant.DefaultPageHeight,
		OutDir: "frames",
		Frames: constant.DefaultSnapshotFrames,
		Color:  "auto",
		Keys:   make(map[string]string),
	}
	if err := cfg.overlay([]byte(asset.DefaultConfig)); err != nil {
		panic(fmt.Errorf("built-in config: %w", err))
	}
	return cfg
}

// LoadFile overlays a TOML file. Keys absent from the file keep their current values;
// a file with any [[item]] replaces the whole item list
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.overlay(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

func (c *Config) overlay(data []byte) error {
	var f Config
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return err
	}

	set := func(key string, apply func()) {
		if md.IsDefined(strings.Split(key, ".")...) {
			apply()
		}
	}
	set("host", func() { c.Host = f.Host })
	set("page", func() { c.Page = f.Page })
	set("heading", func() { c.Heading = f.Heading })
	set("coarse", func() { c.Coarse = f.Coarse })
	set("reduced_motion", func() { c.ReducedMotion = f.ReducedMotion })
	set("skip_intro", func() { c.SkipIntro = f.SkipIntro })
	set("dpr", func() { c.DPR = f.DPR })
	set("width", func() { c.Width = f.Width })
	set("height", func() { c.Height = f.Height })
	set("out_dir", func() { c.OutDir = f.OutDir })
	set("frames", func() { c.Frames = f.Frames })
	set("debug", func() { c.Debug = f.Debug })
	set("color", func() { c.Color = f.Color })
	set("media_root", func() { c.MediaRoot = f.MediaRoot })
	set("palette.cool", func() { c.Palette.Cool = f.Palette.Cool })
	set("palette.warm", func() { c.Palette.Warm = f.Palette.Warm })
	set("palette.static", func() { c.Palette.Static = f.Palette.Static })
	set("item", func() { c.Items = f.Items })

	if c.Keys == nil {
		c.Keys = make(map[string]string)
	}
	for k, v := range f.Keys {
		c.Keys[k] = v
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

// Validate normalises ranges and rejects unusable combinations
func (c *Config) Validate() error {
	switch c.Host {
	case HostTerminal, HostWindow, HostPNG:
	default:
		return fmt.Errorf("%w %q", ErrUnknownHost, c.Host)
	}
	switch c.Page {
	case PageHome, PageAbout:
	default:
		return fmt.Errorf("%w %q", ErrUnknownPage, c.Page)
	}
	switch c.Color {
	case "auto", "truecolor", "256":
	default:
		return fmt.Errorf("%w %q", ErrBadColor, c.Color)
	}
	if c.Page == PageHome && len(c.Items) == 0 {
		return ErrNoItems
	}
	if _, err := input.ResolveKeys(c.Keys); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.DPR = min(max(c.DPR, 1), constant.MaxDPR)
	c.Width = max(c.Width, constant.MinPageSize)
	c.Height = max(c.Height, constant.MinPageSize)
	c.Frames = max(c.Frames, 1)
	return nil
}

// SectorItems returns the items in dial form, truncated to MaxItems
func (c *Config) SectorItems() []sector.Item {
	n := min(len(c.Items), constant.MaxItems)
	out := make([]sector.Item, n)
	for i := range n {
		it := c.Items[i]
		out[i] = sector.Item{
			Index:  i,
			Title:  it.Title,
			Meta:   it.Meta,
			Media:  it.Media,
			Poster: it.Poster,
			Link:   it.Link,
		}
	}
	return out
}

// KeyTable returns the default bindings with [keys] overrides applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	kt := input.DefaultKeyTable()
	over, err := input.ResolveKeys(c.Keys)
	if err != nil {
		return nil, err
	}
	kt.Merge(over)
	return kt, nil
}

// MediaFS returns the filesystem item media paths resolve against
func (c *Config) MediaFS() fs.FS {
	if c.MediaRoot == "" {
		return asset.Demo()
	}
	return os.DirFS(c.MediaRoot)
}
