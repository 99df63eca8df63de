package worker

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/fwojciec/hellodict"
	"github.com/fwojciec/hellodict/index"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the default number of FindWord results kept per corpus.
const DefaultCacheSize = 512

// Worker owns every loaded corpus and its index. All state is confined to
// the goroutine running Run; callers reach it through ports.
type Worker struct {
	loader      hellodict.Loader
	transformer hellodict.Transformer
	cacheSize   int
	logger      *slog.Logger

	requests chan envelope
	loaded   chan loadResult
	done     chan struct{}

	// Owned by the Run goroutine.
	sets map[string]*dataset
}

// envelope carries a request together with the port to reply on.
type envelope struct {
	port *Port
	req  Request
}

type loadResult struct {
	url      string
	idx      *index.Index
	err      error
	duration time.Duration
}

// waiter is an init request waiting for a load to finish.
type waiter struct {
	port *Port
	id   uint64
}

// dataset is the per-source state held by the worker goroutine.
type dataset struct {
	loading bool
	idx     *index.Index
	cache   *lru.Cache[string, []string]
	waiters []waiter
}

// Option configures a Worker.
type Option func(*Worker)

// WithCacheSize sets how many FindWord results are cached per corpus.
// Zero disables the cache.
func WithCacheSize(n int) Option {
	return func(w *Worker) {
		w.cacheSize = n
	}
}

// WithLogger sets the logger used for load timings.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Worker) {
		w.logger = logger
	}
}

// New creates a Worker. Call Run to start serving requests.
func New(loader hellodict.Loader, transformer hellodict.Transformer, opts ...Option) *Worker {
	w := &Worker{
		loader:      loader,
		transformer: transformer,
		cacheSize:   DefaultCacheSize,
		logger:      slog.New(slog.DiscardHandler),
		requests:    make(chan envelope),
		loaded:      make(chan loadResult),
		done:        make(chan struct{}),
		sets:        make(map[string]*dataset),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Connect returns a new port to the worker.
func (w *Worker) Connect() *Port {
	return newPort(w)
}

// Run serves requests until ctx is canceled. Loads started by Run are
// canceled with it. After Run returns every port reports closed.
func (w *Worker) Run(ctx context.Context) error {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			w.failWaiters(hellodict.ErrUnavailable)
			return ctx.Err()
		case env := <-w.requests:
			w.handle(ctx, env)
		case res := <-w.loaded:
			w.finishLoad(res)
		}
	}
}

func (w *Worker) handle(ctx context.Context, env envelope) {
	req := env.req
	switch req.Action {
	case ActionInit:
		w.init(ctx, env)
	case ActionFind:
		ds, err := w.ready(req.Source)
		if err != nil {
			env.port.deliver(Reply{ID: req.ID, Err: err})
			return
		}
		env.port.deliver(Reply{ID: req.ID, Entries: w.find(ds, req.Word)})
	case ActionMatch:
		ds, err := w.ready(req.Source)
		if err != nil {
			env.port.deliver(Reply{ID: req.ID, Err: err})
			return
		}
		headwords := ds.idx.Match(req.Pattern)
		if headwords == nil {
			headwords = []string{}
		}
		env.port.deliver(Reply{ID: req.ID, Headwords: headwords})
	case ActionStats:
		ds, err := w.ready(req.Source)
		if err != nil {
			env.port.deliver(Reply{ID: req.ID, Err: err})
			return
		}
		env.port.deliver(Reply{ID: req.ID, Stats: Stats{
			Headwords:   ds.idx.Len(),
			Keys:        ds.idx.KeyCount(),
			Fingerprint: ds.idx.Fingerprint(),
		}})
	default:
		env.port.deliver(Reply{ID: req.ID, Err: hellodict.Errorf(hellodict.EINVALID, "unknown action %d", req.Action)})
	}
}

// init acknowledges immediately when the corpus is loaded, queues the ack
// while a load is running, and otherwise starts a new load.
func (w *Worker) init(ctx context.Context, env envelope) {
	src := env.req.Source
	ds, ok := w.sets[src.URL]
	if !ok {
		ds = &dataset{}
		w.sets[src.URL] = ds
	}

	if ds.idx != nil {
		env.port.deliver(Reply{ID: env.req.ID})
		return
	}

	ds.waiters = append(ds.waiters, waiter{port: env.port, id: env.req.ID})
	if ds.loading {
		return
	}
	ds.loading = true

	go func() {
		begin := time.Now()
		res := loadResult{url: src.URL}
		c, err := w.loader.Load(ctx, src)
		if err != nil {
			res.err = err
		} else {
			res.idx = index.Build(c)
		}
		res.duration = time.Since(begin)

		select {
		case w.loaded <- res:
		case <-w.done:
		}
	}()
}

// finishLoad publishes a built index and releases queued init requests in
// the order they arrived.
func (w *Worker) finishLoad(res loadResult) {
	ds := w.sets[res.url]
	ds.loading = false

	if res.err != nil {
		w.logger.Debug("corpus load failed",
			"url", res.url,
			"duration", res.duration,
			"error", res.err,
		)
	} else {
		ds.idx = res.idx
		if w.cacheSize > 0 {
			// Only fails for non-positive sizes.
			ds.cache, _ = lru.New[string, []string](w.cacheSize)
		}
		w.logger.Debug("corpus loaded",
			"url", res.url,
			"headwords", res.idx.Len(),
			"keys", res.idx.KeyCount(),
			"duration", res.duration,
		)
	}

	waiters := ds.waiters
	ds.waiters = nil
	for _, wt := range waiters {
		wt.port.deliver(Reply{ID: wt.id, Err: res.err})
	}
}

func (w *Worker) failWaiters(err error) {
	for _, ds := range w.sets {
		for _, wt := range ds.waiters {
			wt.port.deliver(Reply{ID: wt.id, Err: err})
		}
		ds.waiters = nil
	}
}

func (w *Worker) ready(src hellodict.Source) (*dataset, error) {
	ds, ok := w.sets[src.URL]
	if !ok || ds.idx == nil {
		return nil, hellodict.Errorf(hellodict.EUNAVAILABLE, "corpus %s not loaded", src.URL)
	}
	return ds, nil
}

// find returns the transformed entries of every headword sharing the key of
// word, in index order.
func (w *Worker) find(ds *dataset, word string) []string {
	key := index.Key(word)
	if ds.cache != nil {
		if entries, ok := ds.cache.Get(key); ok {
			return slices.Clone(entries)
		}
	}

	entries := []string{}
	for _, headword := range ds.idx.Lookup(word) {
		for _, entry := range ds.idx.Entries(headword) {
			entries = append(entries, w.transformer.Transform(entry))
		}
	}

	if ds.cache != nil {
		ds.cache.Add(key, entries)
	}
	return slices.Clone(entries)
}
