package media

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrEmptyPath is returned when a slot is asked to load nothing
var ErrEmptyPath = errors.New("media: empty path")

// defaultFrameDelay applies to animation frames that declare no delay
const defaultFrameDelay = 100 * time.Millisecond

// Frame is one decoded picture and how long it stays up
type Frame struct {
	Image image.Image
	Delay time.Duration
}

// Clip is a decoded media file: a single still or a looping animation
type Clip struct {
	Path     string
	Frames   []Frame
	Duration time.Duration
}

// At returns the frame shown at position pos, looping
func (c *Clip) At(pos time.Duration) image.Image {
	if c == nil || len(c.Frames) == 0 {
		return nil
	}
	if len(c.Frames) == 1 || c.Duration <= 0 {
		return c.Frames[0].Image
	}
	pos %= c.Duration
	for _, f := range c.Frames {
		if pos < f.Delay {
			return f.Image
		}
		pos -= f.Delay
	}
	return c.Frames[len(c.Frames)-1].Image
}

// Decode reads a clip from fsys. GIFs decode as composited animations, everything else as a still
func Decode(fsys fs.FS, name string) (*Clip, error) {
	if name == "" {
		return nil, ErrEmptyPath
	}
	name = strings.TrimPrefix(name, "/")
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	if strings.EqualFold(path.Ext(name), ".gif") {
		g, err := gif.DecodeAll(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return composeGIF(name, g), nil
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return &Clip{Path: name, Frames: []Frame{{Image: img}}}, nil
}

// composeGIF flattens frame deltas into full pictures
func composeGIF(name string, g *gif.GIF) *Clip {
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() && len(g.Image) > 0 {
		bounds = g.Image[0].Bounds()
	}
	canvas := image.NewRGBA(bounds)
	clip := &Clip{Path: name, Frames: make([]Frame, 0, len(g.Image))}

	for i, pm := range g.Image {
		var restore *image.RGBA
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			restore = image.NewRGBA(bounds)
			draw.Draw(restore, bounds, canvas, bounds.Min, draw.Src)
		}

		draw.Draw(canvas, pm.Bounds(), pm, pm.Bounds().Min, draw.Over)

		snap := image.NewRGBA(bounds)
		draw.Draw(snap, bounds, canvas, bounds.Min, draw.Src)

		delay := defaultFrameDelay
		if i < len(g.Delay) && g.Delay[i] > 0 {
			delay = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		clip.Frames = append(clip.Frames, Frame{Image: snap, Delay: delay})
		clip.Duration += delay

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, pm.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = restore
		}
	}
	return clip
}
