package event

import "testing"

func TestBus_DispatchInRegistrationOrder(t *testing.T) {
	b := NewBus()
	var order []int
	b.Subscribe(EventPointerMove, func(*Event) { order = append(order, 1) })
	b.Subscribe(EventPointerMove, func(*Event) { order = append(order, 2) })
	b.Subscribe(EventWheel, func(*Event) { order = append(order, 99) })

	b.Dispatch(&Event{Type: EventPointerMove})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
}

func TestBus_RemoveIsIdempotentAndLeakFree(t *testing.T) {
	b := NewBus()
	calls := 0
	h := b.Subscribe(EventResize, func(*Event) { calls++ })

	h.Remove()
	h.Remove()
	b.Dispatch(&Event{Type: EventResize})

	if calls != 0 {
		t.Errorf("removed handler called %d times", calls)
	}
	if b.Total() != 0 {
		t.Errorf("Total = %d after removal, want 0", b.Total())
	}
}

func TestBus_RemoveDuringDispatch(t *testing.T) {
	b := NewBus()
	var second *Handle
	secondCalls := 0

	b.Subscribe(EventPointerDown, func(*Event) { second.Remove() })
	second = b.Subscribe(EventPointerDown, func(*Event) { secondCalls++ })

	b.Dispatch(&Event{Type: EventPointerDown})
	if secondCalls != 0 {
		t.Errorf("handler removed mid-dispatch was called %d times", secondCalls)
	}
	if b.HandlerCount(EventPointerDown) != 1 {
		t.Errorf("HandlerCount = %d, want 1", b.HandlerCount(EventPointerDown))
	}
}

func TestBus_PreventDefault(t *testing.T) {
	b := NewBus()
	b.Subscribe(EventTouchMove, func(ev *Event) { ev.PreventDefault() })

	ev := &Event{Type: EventTouchMove}
	if ev.DefaultPrevented() {
		t.Fatal("fresh event reports prevented")
	}
	b.Dispatch(ev)
	if !ev.DefaultPrevented() {
		t.Error("PreventDefault not recorded")
	}
}

func TestGroup_RemoveAll(t *testing.T) {
	b := NewBus()
	var g Group
	g.Add(
		b.Subscribe(EventPointerMove, func(*Event) {}),
		b.Subscribe(EventWheel, func(*Event) {}),
		b.Subscribe(EventResize, func(*Event) {}),
	)
	if b.Total() != 3 {
		t.Fatalf("Total = %d, want 3", b.Total())
	}
	g.RemoveAll()
	g.RemoveAll()
	if b.Total() != 0 {
		t.Errorf("Total = %d after RemoveAll, want 0", b.Total())
	}
}

func TestEventType_String(t *testing.T) {
	if got := EventWheel.String(); got != "wheel" {
		t.Errorf("EventWheel.String() = %q", got)
	}
	if got := EventType(999).String(); got != "unknown" {
		t.Errorf("unknown type String() = %q", got)
	}
	for typ := EventPointerMove; typ <= EventQuit; typ++ {
		if typ.String() == "" || typ.String() == "unknown" {
			t.Errorf("event type %d has no name", typ)
		}
	}
}
