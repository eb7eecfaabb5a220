package event

// Handler receives a dispatched event
type Handler func(ev *Event)

type subscription struct {
	handler Handler
	removed bool
}

// Handle removes one subscription. Remove is idempotent
type Handle struct {
	bus *Bus
	typ EventType
	sub *subscription
}

// Remove unsubscribes the handler; it is never called again, including later in an in-flight dispatch
func (h *Handle) Remove() {
	if h == nil || h.sub == nil || h.sub.removed {
		return
	}
	h.sub.removed = true
	h.bus.drop(h.typ, h.sub)
}

// Bus dispatches events to handlers by type
//
// Architecture:
//   - Single-threaded dispatch; owned by the loop goroutine
//   - Handlers are invoked in registration order
//   - Handlers may subscribe or remove during dispatch
type Bus struct {
	handlers map[EventType][]*subscription
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{handlers: make(map[EventType][]*subscription)}
}

// Subscribe registers h for events of type t
func (b *Bus) Subscribe(t EventType, h Handler) *Handle {
	sub := &subscription{handler: h}
	b.handlers[t] = append(b.handlers[t], sub)
	return &Handle{bus: b, typ: t, sub: sub}
}

// Dispatch delivers ev to every current handler of its type
func (b *Bus) Dispatch(ev *Event) {
	subs := b.handlers[ev.Type]
	if len(subs) == 0 {
		return
	}
	// Snapshot so subscriptions added mid-dispatch wait for the next event
	snapshot := make([]*subscription, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		if s.removed {
			continue
		}
		s.handler(ev)
	}
}

// HandlerCount returns the number of live handlers for t
func (b *Bus) HandlerCount(t EventType) int {
	return len(b.handlers[t])
}

// Total returns the number of live handlers across all types
func (b *Bus) Total() int {
	n := 0
	for _, subs := range b.handlers {
		n += len(subs)
	}
	return n
}

func (b *Bus) drop(t EventType, sub *subscription) {
	subs := b.handlers[t]
	for i, s := range subs {
		if s == sub {
			b.handlers[t] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.handlers[t]) == 0 {
		delete(b.handlers, t)
	}
}

// Group collects handles for removal in one call
type Group struct {
	handles []*Handle
}

// Add records handles
func (g *Group) Add(h ...*Handle) { g.handles = append(g.handles, h...) }

// RemoveAll removes every recorded handle and empties the group
func (g *Group) RemoveAll() {
	for _, h := range g.handles {
		h.Remove()
	}
	g.handles = nil
}
