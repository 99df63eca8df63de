package engine

import (
	"sync"

	"github.com/fwojciec/hellodict"
	"github.com/fwojciec/hellodict/worker"
)

// Registry hands out one Dictionary per corpus URL. All dictionaries share
// the registry's worker, so each corpus is loaded once per process.
type Registry struct {
	worker *worker.Worker
	opts   []Option

	mu    sync.Mutex
	dicts map[string]*Dictionary
}

// NewRegistry creates a Registry whose dictionaries are created with opts.
func NewRegistry(w *worker.Worker, opts ...Option) *Registry {
	return &Registry{
		worker: w,
		opts:   opts,
		dicts:  make(map[string]*Dictionary),
	}
}

// Get returns the Dictionary for src, creating it on first use. Later calls
// with the same URL return the same Dictionary regardless of integrity.
func (r *Registry) Get(src hellodict.Source) *Dictionary {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.dicts[src.URL]; ok {
		return d
	}
	d := New(r.worker, src, r.opts...)
	r.dicts[src.URL] = d
	return d
}

// Default returns the Dictionary for hellodict.DefaultSource.
func (r *Registry) Default() *Dictionary {
	return r.Get(hellodict.DefaultSource)
}

// Close closes every dictionary handed out and returns the first error.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var first error
	for url, d := range r.dicts {
		if err := d.Close(); err != nil && first == nil {
			first = err
		}
		delete(r.dicts, url)
	}
	return first
}
