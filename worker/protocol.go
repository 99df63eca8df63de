// Package worker runs the dictionary on a dedicated goroutine. Callers talk
// to it only through messages: a Port carries requests in and replies out,
// and a Channel multiplexes concurrent callers over one Port.
package worker

import "github.com/fwojciec/hellodict"

// Action selects what a Request asks the worker to do.
type Action int

const (
	// ActionInit loads the corpus named by the request's source. The reply
	// is sent once the corpus is loaded or the load failed.
	ActionInit Action = iota + 1

	// ActionFind returns the transformed entries for a word.
	ActionFind

	// ActionMatch returns the headwords matching a wildcard pattern.
	ActionMatch

	// ActionStats returns counters describing the loaded corpus.
	ActionStats
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionInit:
		return "init"
	case ActionFind:
		return "find"
	case ActionMatch:
		return "match"
	case ActionStats:
		return "stats"
	default:
		return "unknown"
	}
}

// Request is a message from a caller to the worker.
type Request struct {
	// ID correlates the reply with the request. Assigned by Channel.
	ID uint64

	Action  Action
	Source  hellodict.Source
	Word    string
	Pattern string
}

// Reply is a message from the worker to a caller.
type Reply struct {
	ID uint64

	// Entries holds transformed entry HTML for ActionFind.
	Entries []string

	// Headwords holds matching lowercase headwords for ActionMatch.
	Headwords []string

	// Stats is set for ActionStats.
	Stats Stats

	// Err is non-nil when the request failed.
	Err error
}

// Stats describes a loaded corpus.
type Stats struct {
	Headwords   int
	Keys        int
	Fingerprint uint64
}
