package events

// HandlerFunc processes one event
type HandlerFunc func(ev Event)

type subscription struct {
	id uint64
	fn HandlerFunc
}

// Bus is the single input abstraction channel every component subscribes to
//
// Architecture:
//   - Single-threaded: Publish and Dispatch run on the loop goroutine
//   - Handlers for one type run in subscription order
//   - Events published from a handler are delivered in the same Dispatch, after the current one
//   - Subscribe returns the release func so teardown scopes can drop listeners
type Bus struct {
	handlers map[EventType][]subscription
	pending  queue
	nextID   uint64
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{handlers: make(map[EventType][]subscription)}
}

// Subscribe registers fn for t and returns a func that removes it
func (b *Bus) Subscribe(t EventType, fn HandlerFunc) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.handlers[t] = append(b.handlers[t], subscription{id: id, fn: fn})

	return func() {
		subs := b.handlers[t]
		for i, s := range subs {
			if s.id == id {
				// Copy-on-remove keeps any in-flight iteration valid
				next := make([]subscription, 0, len(subs)-1)
				next = append(next, subs[:i]...)
				next = append(next, subs[i+1:]...)
				b.handlers[t] = next
				return
			}
		}
	}
}

// Publish enqueues an event for the next Dispatch
func (b *Bus) Publish(t EventType, payload any) {
	b.pending.push(Event{Type: t, Payload: payload})
}

// Dispatch delivers every pending event in FIFO order
// Returns the number of events delivered
func (b *Bus) Dispatch() int {
	n := 0
	for {
		ev, ok := b.pending.pop()
		if !ok {
			return n
		}
		for _, s := range b.handlers[ev.Type] {
			s.fn(ev)
		}
		n++
	}
}

// Pending returns the number of undelivered events
func (b *Bus) Pending() int {
	return b.pending.len()
}

// HandlerCount returns the number of handlers subscribed to t
func (b *Bus) HandlerCount(t EventType) int {
	return len(b.handlers[t])
}
