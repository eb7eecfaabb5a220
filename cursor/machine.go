package cursor

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/logging"
)

// frame is one entered region and the state that was current before entering it
type frame struct {
	id    string
	state State
	saved State
}

// Options configure a machine for one page lifecycle
type Options struct {
	// ExternalControl hands state ownership over dial regions to the dial
	ExternalControl bool
	ReducedMotion   bool
}

// Machine tracks the cursor visual state across nested hover regions.
// Every operation is a no-op while inactive or without a surface
type Machine struct {
	opts    Options
	active  bool
	doc     Document
	surface Surface

	current  State
	stack    []frame
	locked   bool
	overDial bool

	hasPos bool
	x, y   float64

	label string
	tw    tween

	// Resync is invoked on unlock when the pointer rests over the dial
	Resync func(x, y float64)

	log *slog.Logger
}

// NewMachine creates an inactive machine
func NewMachine(opts Options) *Machine {
	base := TargetFor(Base)
	m := &Machine{
		opts:    opts,
		current: Base,
		log:     logging.For("cursor"),
	}
	m.tw.start(base, base, 0)
	return m
}

// Init binds the machine to a document. Returns false when the cursor surface is absent
func (m *Machine) Init(doc Document) bool {
	if m.active {
		return true
	}
	if doc == nil {
		return false
	}
	s := doc.Surface()
	if s == nil {
		return false
	}

	m.doc, m.surface = doc, s
	m.active = true
	m.stack = m.stack[:0]
	m.overDial = false
	m.current = Base
	m.label = ""
	base := TargetFor(Base)
	m.tw.start(base, base, 0)
	m.present()
	m.log.Debug("cursor init", "external", m.opts.ExternalControl)
	return true
}

// Destroy releases the document and surface. Position and lock survive for the next Init
func (m *Machine) Destroy() {
	if !m.active {
		return
	}
	m.active = false
	m.doc = nil
	m.surface = nil
	m.stack = m.stack[:0]
	m.overDial = false
}

// Active reports whether the machine is bound
func (m *Machine) Active() bool { return m.active }

// SetOptions replaces options, typically between Destroy and Init
func (m *Machine) SetOptions(opts Options) { m.opts = opts }

// Refresh re-binds to a replacement document, re-presenting the current state at the last position
func (m *Machine) Refresh(doc Document) {
	if !m.active {
		return
	}
	if doc != nil {
		m.doc = doc
	}
	s := m.doc.Surface()
	if s == nil {
		return
	}
	m.surface = s
	m.present()
}

// HandleMove follows the pointer and resolves the region under it
func (m *Machine) HandleMove(x, y float64) {
	if !m.active {
		return
	}
	if m.hasPos && x == m.x && y == m.y {
		return
	}
	m.x, m.y, m.hasPos = x, y, true
	if !m.surfaceOK() {
		return
	}
	m.present()
	m.resolve()
}

// SetPosition moves the cursor without resolving regions
func (m *Machine) SetPosition(x, y float64) {
	if !m.active || !m.surfaceOK() {
		return
	}
	m.x, m.y, m.hasPos = x, y, true
	m.present()
}

// SetState requests a state directly. Ignored for non-dot states while locked
func (m *Machine) SetState(kind Kind, label string, showIcon bool) {
	if !m.active {
		return
	}
	m.apply(State{Kind: kind, Label: label, ShowIcon: showIcon})
}

// SetLockedToDot forces the neutral dot while locked. Unlocking re-syncs from the last position
func (m *Machine) SetLockedToDot(locked bool) {
	was := m.locked
	m.locked = locked
	if locked && m.current.Kind != KindDot {
		m.apply(Base)
		return
	}
	if was && !locked && m.hasPos {
		m.sync()
	}
}

// Locked reports the lock flag
func (m *Machine) Locked() bool { return m.locked }

// CurrentState returns the active state
func (m *Machine) CurrentState() State { return m.current }

// Depth returns the number of entered regions above the base
func (m *Machine) Depth() int { return len(m.stack) }

// Advance steps the state transition
func (m *Machine) Advance(dt time.Duration) {
	if !m.active || m.tw.done() {
		return
	}
	m.tw.advance(dt)
	m.present()
}

// Visual returns the presented visual
func (m *Machine) Visual() Visual {
	var v Visual
	v.setTarget(m.tw.current())
	v.X, v.Y = m.x, m.y
	v.BorderWidth = constant.CursorBorderWidth
	v.Label = m.label
	return v
}

func (m *Machine) surfaceOK() bool {
	if m.surface == nil || !m.surface.Attached() {
		if m.doc == nil {
			return false
		}
		m.surface = m.doc.Surface()
	}
	return m.surface != nil && m.surface.Attached()
}

func (m *Machine) present() {
	if !m.surfaceOK() || !m.hasPos {
		return
	}
	m.surface.Apply(m.Visual())
}

// resolve reconciles the stack with the region chain under the pointer
func (m *Machine) resolve() {
	chain := m.doc.HitTest(m.x, m.y)

	if m.opts.ExternalControl && inDial(chain) {
		m.overDial = true
		return
	}
	leftDial := m.overDial
	m.overDial = false

	keep := 0
	for keep < len(m.stack) && keep < len(chain) && m.stack[keep].id == chain[keep].ID {
		keep++
	}

	target := m.current
	changed := false
	for len(m.stack) > keep {
		top := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		target = top.saved
		changed = true
	}
	for _, r := range chain[keep:] {
		m.stack = append(m.stack, frame{id: r.ID, state: r.State, saved: target})
		target = r.State
		changed = true
	}

	if !changed && leftDial {
		target = Base
		if n := len(m.stack); n > 0 {
			target = m.stack[n-1].state
		}
	}
	m.apply(target)
}

// sync rebuilds the stack from scratch at the last position
func (m *Machine) sync() {
	if !m.active || !m.surfaceOK() {
		return
	}
	m.stack = m.stack[:0]
	m.apply(Base)

	chain := m.doc.HitTest(m.x, m.y)
	if m.opts.ExternalControl && inDial(chain) {
		m.overDial = true
		if m.Resync != nil {
			m.Resync(m.x, m.y)
		}
		return
	}
	m.overDial = false
	m.resolve()
}

func (m *Machine) apply(s State) {
	if !m.active {
		return
	}
	if m.locked && s.Kind != KindDot {
		return
	}
	if s == m.current {
		return
	}

	from := m.tw.current()
	m.tw.start(from, TargetFor(s), transitionFor(m.opts.ReducedMotion))
	m.current = s
	if s.Label != "" {
		m.label = s.Label
	}
	m.present()
}

func inDial(chain []Region) bool {
	for _, r := range chain {
		if r.Dial {
			return true
		}
	}
	return false
}
