// Package engine provides the client facade over the worker: it owns the
// load state machine, parks queries while the corpus loads and decides when
// a failed load may be retried.
package engine

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/fwojciec/hellodict"
	"github.com/fwojciec/hellodict/worker"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// DefaultRetryInterval is the minimum spacing between reload attempts.
const DefaultRetryInterval = time.Second

// DefaultTimeout bounds a single load attempt.
const DefaultTimeout = 2 * time.Minute

// Ensure Dictionary implements hellodict.Dictionary at compile time.
var _ hellodict.Dictionary = (*Dictionary)(nil)

// Dictionary answers queries for one corpus source through a worker
// channel. It is safe for concurrent use.
//
// State moves uninitialized → loading → loaded on success and
// loading → retry on failure; the next query from retry loads again.
// MarkUnavailable moves to permaError, which is final.
type Dictionary struct {
	src     hellodict.Source
	ch      *worker.Channel
	limiter *rate.Limiter
	timeout time.Duration
	group   singleflight.Group

	mu        sync.Mutex
	state     hellodict.State
	listeners []chan error
}

// Option configures a Dictionary.
type Option func(*config)

type config struct {
	lazy          bool
	retryInterval time.Duration
	timeout       time.Duration
	maxInFlight   int
}

// WithLazyLoad defers the first load until the first query.
func WithLazyLoad() Option {
	return func(c *config) {
		c.lazy = true
	}
}

// WithRetryInterval sets the minimum spacing between reload attempts after
// a failure. Zero allows a reload on every query.
func WithRetryInterval(d time.Duration) Option {
	return func(c *config) {
		c.retryInterval = d
	}
}

// WithTimeout bounds each load attempt and each query sent to the worker.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithMaxInFlight sets how many requests may be outstanding on the worker
// channel at once. Defaults to worker.DefaultMaxInFlight.
func WithMaxInFlight(n int) Option {
	return func(c *config) {
		c.maxInFlight = n
	}
}

// New creates a Dictionary for src served by w. Unless WithLazyLoad is
// given, the load starts immediately.
func New(w *worker.Worker, src hellodict.Source, opts ...Option) *Dictionary {
	cfg := config{
		retryInterval: DefaultRetryInterval,
		timeout:       DefaultTimeout,
		maxInFlight:   worker.DefaultMaxInFlight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Dictionary{
		src:     src,
		ch:      worker.NewChannel(w.Connect(), cfg.maxInFlight),
		timeout: cfg.timeout,
		state:   hellodict.StateUninitialized,
	}
	if cfg.retryInterval > 0 {
		d.limiter = rate.NewLimiter(rate.Every(cfg.retryInterval), 1)
	}

	if !cfg.lazy {
		d.mu.Lock()
		d.startLoadLocked()
		d.mu.Unlock()
	}
	return d
}

// Source returns the corpus source the dictionary serves.
func (d *Dictionary) Source() hellodict.Source {
	return d.src
}

// State returns the current load state.
func (d *Dictionary) State() hellodict.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// FindWord returns the transformed entries for word.
func (d *Dictionary) FindWord(ctx context.Context, word string) ([]string, error) {
	reply, err := d.query(ctx, "find\x00"+word, worker.Request{
		Action: worker.ActionFind,
		Word:   word,
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(reply.Entries), nil
}

// PatternMatch returns the headwords matching pattern.
func (d *Dictionary) PatternMatch(ctx context.Context, pattern string) ([]string, error) {
	reply, err := d.query(ctx, "match\x00"+pattern, worker.Request{
		Action:  worker.ActionMatch,
		Pattern: pattern,
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(reply.Headwords), nil
}

// Stats returns counters of the loaded corpus.
func (d *Dictionary) Stats(ctx context.Context) (worker.Stats, error) {
	reply, err := d.query(ctx, "stats", worker.Request{Action: worker.ActionStats})
	if err != nil {
		return worker.Stats{}, err
	}
	return reply.Stats, nil
}

// Wait blocks until the corpus is loaded or the attempt in progress fails.
func (d *Dictionary) Wait(ctx context.Context) error {
	return d.ready(ctx)
}

// MarkUnavailable moves the dictionary to permaError. Waiting queries fail
// and every later query fails immediately.
func (d *Dictionary) MarkUnavailable() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = hellodict.StatePermaError
	d.releaseLocked(hellodict.ErrUnavailable)
}

// Close disconnects from the worker. Waiting queries fail.
func (d *Dictionary) Close() error {
	return d.ch.Close()
}

// query waits for the corpus and then runs req, sharing the worker round
// trip between identical concurrent queries.
func (d *Dictionary) query(ctx context.Context, key string, req worker.Request) (worker.Reply, error) {
	if err := d.ready(ctx); err != nil {
		return worker.Reply{}, err
	}

	req.Source = d.src
	ch := d.group.DoChan(key, func() (any, error) {
		// The shared call outlives any single caller's cancellation.
		qctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()
		return d.ch.Call(qctx, req)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return worker.Reply{}, res.Err
		}
		return res.Val.(worker.Reply), nil
	case <-ctx.Done():
		return worker.Reply{}, ctx.Err()
	}
}

// ready returns nil once the corpus is loaded. From uninitialized or retry
// it starts a load, subject to the retry limiter, and waits for it.
func (d *Dictionary) ready(ctx context.Context) error {
	d.mu.Lock()
	switch d.state {
	case hellodict.StateLoaded:
		d.mu.Unlock()
		return nil
	case hellodict.StatePermaError:
		d.mu.Unlock()
		return hellodict.ErrUnavailable
	case hellodict.StateRetry:
		if d.limiter != nil && !d.limiter.Allow() {
			d.mu.Unlock()
			return hellodict.ErrUnavailable
		}
		d.startLoadLocked()
	case hellodict.StateUninitialized:
		d.startLoadLocked()
	}

	l := make(chan error, 1)
	d.listeners = append(d.listeners, l)
	d.mu.Unlock()

	select {
	case err := <-l:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// startLoadLocked moves to loading and sends a single init request.
func (d *Dictionary) startLoadLocked() {
	d.state = hellodict.StateLoading
	go d.load()
}

func (d *Dictionary) load() {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	_, err := d.ch.Call(ctx, worker.Request{
		Action: worker.ActionInit,
		Source: d.src,
	})

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != hellodict.StateLoading {
		// MarkUnavailable won the race; its state is final.
		return
	}
	if err != nil {
		d.state = hellodict.StateRetry
		d.releaseLocked(hellodict.ErrUnavailable)
		return
	}
	d.state = hellodict.StateLoaded
	d.releaseLocked(nil)
}

// releaseLocked settles every listener, in registration order, with err.
func (d *Dictionary) releaseLocked(err error) {
	for _, l := range d.listeners {
		l <- err
	}
	d.listeners = nil
}
