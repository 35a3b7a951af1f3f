package input

import "sync"

// DefaultQueueSize bounds how many undelivered events a Queue holds.
const DefaultQueueSize = 256

// Queue serializes events pushed from listener goroutines into the single
// consumer that calls Poll. When full, new events are dropped.
type Queue struct {
	mu      sync.Mutex
	events  []Event
	size    int
	dropped int
	err     error
	closed  bool
	closeFn func() error
}

// NewQueue returns a queue holding at most size events. closeFn, if not nil,
// is called once by Close to release the listener's device.
func NewQueue(size int, closeFn func() error) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{size: size, closeFn: closeFn}
}

// Push enqueues an event. It reports false when the event was dropped.
func (q *Queue) Push(ev Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed || len(q.events) >= q.size {
		q.dropped++
		return false
	}
	q.events = append(q.events, ev)
	return true
}

// Fail records a fatal listener error. Only the first error is kept; it is
// returned by Poll after the events queued before it were delivered.
func (q *Queue) Fail(err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err == nil {
		q.err = err
	}
}

// Dropped returns the number of events discarded so far.
func (q *Queue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// Poll implements Source by draining everything queued since the last call.
func (q *Queue) Poll() ([]Event, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) > 0 {
		out := q.events
		q.events = nil
		return out, nil
	}
	return nil, q.err
}

// Close implements Source.
func (q *Queue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	fn := q.closeFn
	q.mu.Unlock()
	if fn != nil {
		return fn()
	}
	return nil
}
