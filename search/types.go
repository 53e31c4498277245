package search

import (
	"github.com/partizangames/cgt/dyadic"
)

// Record is one tabulated position's persisted output (spec.md §6): the
// position itself (ruleset-specific, so generic over P), its canonical
// form's text rendering, and the derived thermographic summary.
type Record[P any] struct {
	Position      P             `json:"position"`
	CanonicalForm string        `json:"canonical_form"`
	Temperature   dyadic.Dyadic `json:"temperature"`
	LeftStop      dyadic.Dyadic `json:"left_stop"`
	RightStop     dyadic.Dyadic `json:"right_stop"`
	Mean          dyadic.Dyadic `json:"mean"`
	Thermograph   []ThermoBreak `json:"thermograph,omitempty"`
}

// ThermoBreak is one breakpoint of a rendered thermograph (spec.md §6).
// Run does not fill Record.Thermograph, so the field is omitted from
// encoded records; the thermographic summary Run produces is carried by
// Record's stop, temperature and mean fields.
type ThermoBreak struct {
	Temperature dyadic.Dyadic `json:"temperature"`
	Left        dyadic.Dyadic `json:"left"`
	Right       dyadic.Dyadic `json:"right"`
}

// Options configures a Run (functional-options, the same convention
// used by core.GraphOption).
type Options struct {
	Parallel      bool
	Workers       int
	ProgressEvery int
	OnProgress    func(Progress)
	Cancel        func() bool
	Store         *Store
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns sequential execution with no progress callback,
// no cancellation, and no checkpoint store.
func DefaultOptions() Options {
	return Options{
		Parallel:      false,
		Workers:       1,
		ProgressEvery: 1000,
	}
}

// WithParallel enables sharding the outer position enumeration across
// workers worth of goroutines via errgroup. workers <= 0 means
// runtime.GOMAXPROCS(0).
func WithParallel(workers int) Option {
	return func(o *Options) {
		o.Parallel = true
		o.Workers = workers
	}
}

// WithProgress registers a callback invoked every n emitted records
// (n <= 0 panics: a zero-or-negative cadence is a programmer error).
func WithProgress(n int, cb func(Progress)) Option {
	if n <= 0 {
		panic("search: WithProgress requires n > 0")
	}
	return func(o *Options) {
		o.ProgressEvery = n
		o.OnProgress = cb
	}
}

// WithCancel registers a cancellation flag checked between position
// records (spec.md §5).
func WithCancel(cancel func() bool) Option {
	return func(o *Options) {
		o.Cancel = cancel
	}
}

// WithStore attaches an optional checkpoint Store so a cancelled or
// crashed run can resume without recomputing already-tabulated
// positions.
func WithStore(s *Store) Option {
	return func(o *Options) {
		o.Store = s
	}
}

// Progress is passed to an Options.OnProgress callback.
type Progress struct {
	RunID     string
	Completed int
	Total     int
	Elapsed   string // humanize.RelTime-rendered
}
