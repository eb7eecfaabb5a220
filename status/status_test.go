package status

import (
	"strings"
	"sync"
	"testing"
)

func TestRegistryReturnsCachedPointers(t *testing.T) {
	r := NewRegistry()
	c := r.Counter(Frames)
	c.Add(3)
	if r.Counter(Frames) != c || r.Counter(Frames).Get() != 3 {
		t.Error("counter not cached")
	}
	r.Gauge(Attraction).Set(0.5)
	if r.Gauge(Attraction).Get() != 0.5 {
		t.Error("gauge lost value")
	}
	if r.Count() != 2 {
		t.Errorf("count %d, want 2", r.Count())
	}
}

func TestLabelTruncates(t *testing.T) {
	var l Label
	if l.Get() != "" {
		t.Error("zero label not empty")
	}
	l.Set(strings.Repeat("x", MaxLabelLen+10))
	if len(l.Get()) != MaxLabelLen {
		t.Errorf("label length %d", len(l.Get()))
	}
}

func TestAttrsSortedByName(t *testing.T) {
	var r Registry
	r.Label(Page).Set("/")
	r.Counter(ActiveSector).Set(2)
	r.Gauge(Rotation).Set(45)

	got := r.Attrs()
	want := []any{ActiveSector, int64(2), Rotation, 45.0, Page, "/"}
	if len(got) != len(want) {
		t.Fatalf("attrs %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("attrs[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Counter(Frames).Add(1)
				_ = r.Attrs()
			}
		}()
	}
	wg.Wait()
	if got := r.Counter(Frames).Get(); got != 800 {
		t.Errorf("frames %d, want 800", got)
	}
}
