package engine

import (
	"time"

	"github.com/lixenwraith/ringdial/logging"
)

// Retry calls attempt now and, while it fails, again after each delay in turn.
// The returned cancel stops pending attempts. Loop goroutine only
func Retry(l *Loop, delays []time.Duration, attempt func() bool) (cancel func()) {
	var (
		stopped bool
		pending func()
	)
	cancel = func() {
		stopped = true
		if pending != nil {
			pending()
			pending = nil
		}
	}

	var try func(n int)
	try = func(n int) {
		pending = nil
		if stopped || attempt() {
			return
		}
		if n >= len(delays) {
			logging.For("loop").Debug("retry exhausted", "attempts", n+1)
			return
		}
		pending = l.After(delays[n], func() { try(n + 1) })
	}
	try(0)
	return cancel
}
