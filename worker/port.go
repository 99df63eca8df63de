package worker

import (
	"context"
	"sync"

	"github.com/fwojciec/hellodict"
	"github.com/google/uuid"
)

// replyBuffer is the number of replies a port holds before the worker
// waits for the reader.
const replyBuffer = 64

// Port is one caller context's connection to a Worker. Replies must be
// drained from Replies until the port closes; Channel does this.
type Port struct {
	// ID identifies the port in logs.
	ID string

	w         *Worker
	replies   chan Reply
	closed    chan struct{}
	closeOnce sync.Once
}

func newPort(w *Worker) *Port {
	return &Port{
		ID:      uuid.NewString(),
		w:       w,
		replies: make(chan Reply, replyBuffer),
		closed:  make(chan struct{}),
	}
}

// Send delivers req to the worker. It fails with EUNAVAILABLE once the port
// or the worker has closed.
func (p *Port) Send(ctx context.Context, req Request) error {
	select {
	case p.w.requests <- envelope{port: p, req: req}:
		return nil
	case <-p.closed:
		return hellodict.Errorf(hellodict.EUNAVAILABLE, "port %s closed", p.ID)
	case <-p.w.done:
		return hellodict.Errorf(hellodict.EUNAVAILABLE, "worker stopped")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Replies returns the channel replies arrive on.
func (p *Port) Replies() <-chan Reply {
	return p.replies
}

// Close disconnects the port. Replies still in flight are discarded.
func (p *Port) Close() error {
	p.closeOnce.Do(func() { close(p.closed) })
	return nil
}

func (p *Port) deliver(r Reply) {
	select {
	case p.replies <- r:
	case <-p.closed:
	}
}
