package worker

import (
	"context"
	"sync"

	"github.com/fwojciec/hellodict"
)

// DefaultMaxInFlight keeps a single outstanding request per channel.
const DefaultMaxInFlight = 1

// Channel multiplexes concurrent callers over one Port. Each call gets a
// fresh request ID; at most MaxInFlight requests are outstanding and the
// rest wait in arrival order.
type Channel struct {
	port        *Port
	maxInFlight int

	mu       sync.Mutex
	nextID   uint64
	active   int
	inflight map[uint64]chan Reply
	queue    []*slotWaiter
	closed   bool
}

// slotWaiter is a caller queued for an in-flight slot.
type slotWaiter struct {
	ready   chan struct{}
	granted bool
}

// NewChannel creates a Channel over port and starts reading its replies.
// A maxInFlight below one is treated as one.
func NewChannel(port *Port, maxInFlight int) *Channel {
	if maxInFlight < 1 {
		maxInFlight = DefaultMaxInFlight
	}
	c := &Channel{
		port:        port,
		maxInFlight: maxInFlight,
		inflight:    make(map[uint64]chan Reply),
	}
	go c.read()
	return c
}

// Call sends req and waits for its reply. A canceled context abandons the
// wait; the request's slot is freed only when its reply arrives.
func (c *Channel) Call(ctx context.Context, req Request) (Reply, error) {
	if err := c.acquire(ctx); err != nil {
		return Reply{}, err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Reply{}, hellodict.ErrUnavailable
	}
	c.nextID++
	req.ID = c.nextID
	ch := make(chan Reply, 1)
	c.inflight[req.ID] = ch
	c.mu.Unlock()

	if err := c.port.Send(ctx, req); err != nil {
		c.mu.Lock()
		if _, ok := c.inflight[req.ID]; ok {
			delete(c.inflight, req.ID)
			c.releaseLocked()
		}
		c.mu.Unlock()
		return Reply{}, err
	}

	select {
	case reply := <-ch:
		if reply.Err != nil {
			return reply, reply.Err
		}
		return reply, nil
	case <-ctx.Done():
		return Reply{}, ctx.Err()
	}
}

// Close closes the underlying port and releases every waiting caller.
func (c *Channel) Close() error {
	err := c.port.Close()
	c.shutdown()
	return err
}

// InFlight returns the number of outstanding requests.
func (c *Channel) InFlight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Channel) acquire(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return hellodict.ErrUnavailable
	}
	if c.active < c.maxInFlight && len(c.queue) == 0 {
		c.active++
		c.mu.Unlock()
		return nil
	}
	w := &slotWaiter{ready: make(chan struct{})}
	c.queue = append(c.queue, w)
	c.mu.Unlock()

	select {
	case <-w.ready:
		c.mu.Lock()
		defer c.mu.Unlock()
		if !w.granted {
			return hellodict.ErrUnavailable
		}
		return nil
	case <-ctx.Done():
		c.mu.Lock()
		defer c.mu.Unlock()
		if w.granted {
			// The slot was handed over as the context ended.
			c.releaseLocked()
		} else {
			c.removeLocked(w)
		}
		return ctx.Err()
	}
}

// releaseLocked hands the caller's slot to the next queued caller, or frees
// it when nobody is waiting.
func (c *Channel) releaseLocked() {
	if len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		next.granted = true
		close(next.ready)
		return
	}
	c.active--
}

func (c *Channel) removeLocked(w *slotWaiter) {
	for i, q := range c.queue {
		if q == w {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return
		}
	}
}

func (c *Channel) read() {
	for {
		select {
		case reply := <-c.port.replies:
			c.dispatch(reply)
		case <-c.port.closed:
			c.shutdown()
			return
		case <-c.port.w.done:
			c.drain()
			c.shutdown()
			return
		}
	}
}

// dispatch routes a reply to its caller. Replies for unknown IDs are dropped.
func (c *Channel) dispatch(reply Reply) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch, ok := c.inflight[reply.ID]
	if !ok {
		return
	}
	delete(c.inflight, reply.ID)
	ch <- reply
	c.releaseLocked()
}

// drain dispatches replies the worker queued before it stopped.
func (c *Channel) drain() {
	for {
		select {
		case reply := <-c.port.replies:
			c.dispatch(reply)
		default:
			return
		}
	}
}

// shutdown fails every in-flight and queued caller with EUNAVAILABLE.
func (c *Channel) shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for id, ch := range c.inflight {
		ch <- Reply{ID: id, Err: hellodict.ErrUnavailable}
		delete(c.inflight, id)
	}
	for _, w := range c.queue {
		close(w.ready)
	}
	c.queue = nil
	c.active = 0
}
