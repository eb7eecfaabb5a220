package dial

import "github.com/lixenwraith/ringdial/render"

// Options select input model and motion
type Options struct {
	// Coarse selects drag and wheel rotation instead of hover switching
	Coarse        bool
	ReducedMotion bool
	Palette       render.Palette
}
