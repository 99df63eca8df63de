package hellodict

// State is the lifecycle phase of a dictionary's corpus load.
type State int

// State constants. Uninitialized moves to Loading either eagerly at
// construction or on the first query. Loading ends in Loaded or Retry.
// Retry moves back to Loading on the next query. Loaded and PermaError are
// absorbing.
const (
	StateUninitialized State = iota
	StateLoading
	StateLoaded
	StateRetry
	StatePermaError
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateRetry:
		return "retry"
	case StatePermaError:
		return "permaError"
	default:
		return "unknown"
	}
}

// Settled returns true if no load is in flight and none can be started
// without a query.
func (s State) Settled() bool {
	return s == StateLoaded || s == StatePermaError
}
