package progress

import (
	"errors"
	"sync"
)

var ErrClosed = errors.New("progress channel closed")

// RecvStatus is the outcome of a non-blocking receive.
type RecvStatus int

const (
	Received RecvStatus = iota
	Empty
	Disconnected
)

// Sink receives progress events from the update worker.
type Sink interface {
	Send(Event) error
}

/**
 * Unbounded ordered queue of progress events
 * @description
 * - Send never blocks, so the worker is never held up by a slow consumer
 * - TryRecv never blocks, so the consumer can poll from its own loop
 * - After Close, queued events are still delivered; Disconnected is reported once drained
 */
type Channel struct {
	mu     sync.Mutex
	queue  []Event
	closed bool
}

func NewChannel() *Channel {
	return &Channel{}
}

// Send appends an event. It fails once the channel is closed.
func (c *Channel) Send(e Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.queue = append(c.queue, e)
	return nil
}

// Close marks the end of the stream. Closing twice is harmless.
func (c *Channel) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

// TryRecv takes the oldest queued event if there is one.
func (c *Channel) TryRecv() (Event, RecvStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.queue) == 0 {
		if c.closed {
			return Event{}, Disconnected
		}
		return Event{}, Empty
	}
	e := c.queue[0]
	c.queue[0] = Event{}
	c.queue = c.queue[1:]
	if len(c.queue) == 0 {
		c.queue = nil
	}
	return e, Received
}

// Len returns the number of queued events.
func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}
