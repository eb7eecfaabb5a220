package status

import (
	"math"
	"sync/atomic"
)

// Counter is a monotonic or settable integer metric. Zero value is ready to use
type Counter struct {
	v atomic.Int64
}

// Add increments the counter and returns the new value
func (c *Counter) Add(delta int64) int64 { return c.v.Add(delta) }

// Set stores an absolute value
func (c *Counter) Set(val int64) { c.v.Store(val) }

// Get loads the value
func (c *Counter) Get() int64 { return c.v.Load() }

// Gauge holds a float64 through its bit pattern. Zero value is 0.0
type Gauge struct {
	bits atomic.Uint64
}

// Set stores a value
func (g *Gauge) Set(val float64) { g.bits.Store(math.Float64bits(val)) }

// Get loads the value
func (g *Gauge) Get() float64 { return math.Float64frombits(g.bits.Load()) }

// MaxLabelLen bounds label values; longer values are truncated on store
const MaxLabelLen = 64

// Label holds a short string. Zero value is the empty string
type Label struct {
	ptr atomic.Pointer[string]
}

// Set stores the value, truncated to MaxLabelLen bytes
func (l *Label) Set(val string) {
	if len(val) > MaxLabelLen {
		val = val[:MaxLabelLen]
	}
	l.ptr.Store(&val)
}

// Get loads the value
func (l *Label) Get() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
