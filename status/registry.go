// Package status publishes runtime metrics written on the loop goroutine and read by hosts
// from any goroutine. Writers cache metric pointers once; every access after that is lock-free
package status

import (
	"slices"
	"sync"
)

// Metric names written by the app
const (
	Frames       = "loop.frames"
	Page         = "page.path"
	ActiveSector = "dial.active"
	ActiveTitle  = "dial.title"
	IntroStage   = "intro.stage"
	CursorKind   = "cursor.kind"
	Attraction   = "dial.attraction"
	Rotation     = "dial.rotation"
	Navigations  = "page.navigations"
)

type table[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// get returns the metric for key, creating it on first use
func (t *table[T]) get(key string) *T {
	t.mu.RLock()
	ptr, ok := t.items[key]
	t.mu.RUnlock()
	if ok {
		return ptr
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if ptr, ok := t.items[key]; ok {
		return ptr
	}
	if t.items == nil {
		t.items = make(map[string]*T)
	}
	ptr = new(T)
	t.items[key] = ptr
	return ptr
}

func (t *table[T]) keys() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	keys := make([]string, 0, len(t.items))
	for k := range t.items {
		keys = append(keys, k)
	}
	return keys
}

// Registry holds every metric by name. Zero value is ready to use
type Registry struct {
	counters table[Counter]
	gauges   table[Gauge]
	labels   table[Label]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry { return &Registry{} }

// Counter returns the named counter
func (r *Registry) Counter(name string) *Counter { return r.counters.get(name) }

// Gauge returns the named gauge
func (r *Registry) Gauge(name string) *Gauge { return r.gauges.get(name) }

// Label returns the named label
func (r *Registry) Label(name string) *Label { return r.labels.get(name) }

// Count returns the number of registered metrics
func (r *Registry) Count() int {
	return len(r.counters.keys()) + len(r.gauges.keys()) + len(r.labels.keys())
}

// Attrs returns name/value pairs in name order, ready for slog
func (r *Registry) Attrs() []any {
	values := make(map[string]any)
	for _, k := range r.counters.keys() {
		values[k] = r.Counter(k).Get()
	}
	for _, k := range r.gauges.keys() {
		values[k] = r.Gauge(k).Get()
	}
	for _, k := range r.labels.keys() {
		values[k] = r.Label(k).Get()
	}

	names := make([]string, 0, len(values))
	for k := range values {
		names = append(names, k)
	}
	slices.Sort(names)

	out := make([]any, 0, 2*len(names))
	for _, k := range names {
		out = append(out, k, values[k])
	}
	return out
}
