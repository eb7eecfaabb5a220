package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"testing"
	"testing/fstest"
	"time"

	"github.com/lixenwraith/ringdial/logging"
)

func solid(c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			img.Set(x, y, c)
		}
	}
	return img
}

func pngBytes(t *testing.T, c color.Color) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(c)); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func gifBytes(t *testing.T) []byte {
	t.Helper()
	frame := func(idx uint8) *image.Paletted {
		p := image.NewPaletted(image.Rect(0, 0, 4, 4), palette.Plan9)
		for i := range p.Pix {
			p.Pix[i] = idx
		}
		return p
	}
	g := &gif.GIF{
		Image: []*image.Paletted{frame(1), frame(200)},
		Delay: []int{10, 20},
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"poster.png": {Data: pngBytes(t, red)},
		"clip.png":   {Data: pngBytes(t, blue)},
		"anim.gif":   {Data: gifBytes(t)},
		"broken.png": {Data: []byte("not an image")},
	}
}

func sameColor(img image.Image, want color.RGBA) bool {
	r, g, b, a := img.At(1, 1).RGBA()
	return uint8(r>>8) == want.R && uint8(g>>8) == want.G && uint8(b>>8) == want.B && uint8(a>>8) == want.A
}

func TestDecodeStill(t *testing.T) {
	c, err := Decode(testFS(t), "/poster.png")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(c.Frames) != 1 || !sameColor(c.At(time.Hour), red) {
		t.Errorf("still clip %+v", c)
	}
}

func TestDecodeAnimationLoops(t *testing.T) {
	c, err := Decode(testFS(t), "anim.gif")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(c.Frames) != 2 || c.Duration != 300*time.Millisecond {
		t.Fatalf("frames=%d duration=%v", len(c.Frames), c.Duration)
	}
	if c.At(50*time.Millisecond) != c.Frames[0].Image {
		t.Error("50ms not on first frame")
	}
	if c.At(150*time.Millisecond) != c.Frames[1].Image {
		t.Error("150ms not on second frame")
	}
	if c.At(350*time.Millisecond) != c.Frames[0].Image {
		t.Error("350ms did not loop to first frame")
	}
}

func TestDecodeErrors(t *testing.T) {
	fsys := testFS(t)
	if _, err := Decode(fsys, ""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("empty path err = %v", err)
	}
	if _, err := Decode(fsys, "missing.png"); err == nil {
		t.Error("missing file decoded")
	}
	if _, err := Decode(fsys, "broken.png"); err == nil {
		t.Error("broken file decoded")
	}
}

func newTestSlot(t *testing.T) *Slot {
	t.Helper()
	l := NewLoader(testFS(t), 2)
	t.Cleanup(l.Close)
	return NewSlot("fg", l)
}

func waitReady(t *testing.T, s *Slot) {
	t.Helper()
	select {
	case <-s.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("source never became ready")
	}
}

func eventually(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestSlotPosterThenSource(t *testing.T) {
	s := newTestSlot(t)
	if s.Frame() != nil {
		t.Fatal("empty slot has a frame")
	}
	if err := s.Play(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Play before load = %v", err)
	}

	s.SetPoster("poster.png")
	eventually(t, func() bool { return s.Frame() != nil })
	if !sameColor(s.Frame(), red) {
		t.Error("poster not shown before source")
	}

	s.SetSource("clip.png")
	waitReady(t, s)
	if !sameColor(s.Frame(), blue) {
		t.Error("source not shown once ready")
	}
	if err := s.Play(); err != nil {
		t.Errorf("Play after ready = %v", err)
	}
	s.Advance(40 * time.Millisecond)
	if s.Position() != 40*time.Millisecond {
		t.Errorf("position %v", s.Position())
	}
}

func TestSlotStaleLoadIgnored(t *testing.T) {
	s := newTestSlot(t)
	s.SetSource("poster.png")
	s.SetSource("clip.png")
	waitReady(t, s)

	// give the superseded decode time to land
	time.Sleep(50 * time.Millisecond)
	if s.Source() != "clip.png" || !sameColor(s.Frame(), blue) {
		t.Errorf("stale source won: %q", s.Source())
	}
}

func TestSlotSameSourceKeepsPlayback(t *testing.T) {
	s := newTestSlot(t)
	s.SetSource("anim.gif")
	waitReady(t, s)
	s.Advance(120 * time.Millisecond)
	if !s.Playing() {
		t.Fatal("autoplay did not start")
	}
	s.SetSource("anim.gif")
	if s.Position() != 120*time.Millisecond || !s.IsReady() {
		t.Errorf("identical source reset playback: pos=%v ready=%v", s.Position(), s.IsReady())
	}
}

func TestSlotLoadError(t *testing.T) {
	s := newTestSlot(t)
	s.SetSource("broken.png")
	eventually(t, func() bool { return s.Err() != nil })
	if s.IsReady() {
		t.Error("broken source reported ready")
	}
	select {
	case <-s.Ready():
		t.Error("ready closed for a failed source")
	default:
	}
}

func TestLoadDropsWhenQueueFull(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// no workers: the first job fills the queue
	l := &Loader{
		fsys:   testFS(t),
		jobs:   make(chan job, 1),
		ctx:    ctx,
		cancel: cancel,
		cache:  make(map[string]*Clip),
		log:    logging.For("media"),
	}
	if !l.Load("a.png", func(*Clip, error) {}) {
		t.Fatal("first load refused")
	}

	returned := make(chan bool, 1)
	go func() { returned <- l.Load("b.png", func(*Clip, error) {}) }()
	select {
	case ok := <-returned:
		if ok {
			t.Error("load accepted past a full queue")
		}
	case <-time.After(time.Second):
		t.Fatal("Load blocked on a full queue")
	}

	s := NewSlot("fg", l)
	s.SetSource("c.png")
	if !errors.Is(s.Err(), ErrNotQueued) {
		t.Errorf("slot err %v, want ErrNotQueued", s.Err())
	}

	cancel()
	if l.Load("d.png", func(*Clip, error) {}) {
		t.Error("closed loader accepted a job")
	}
}
