package events

// queue is a FIFO of pending events
// Owned by the loop goroutine, no synchronization
type queue struct {
	items []Event
	head  int
}

func (q *queue) push(ev Event) {
	q.items = append(q.items, ev)
}

func (q *queue) pop() (Event, bool) {
	if q.head >= len(q.items) {
		// Drained, reuse backing array
		q.items = q.items[:0]
		q.head = 0
		return Event{}, false
	}
	ev := q.items[q.head]
	q.items[q.head] = Event{}
	q.head++
	return ev, true
}

func (q *queue) len() int {
	return len(q.items) - q.head
}
