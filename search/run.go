package search

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/partizangames/cgt/ruleset"
	"github.com/partizangames/cgt/thermo"
)

// Run tabulates rs over positions (spec.md §4.7): for each position it
// computes the canonical value via ruleset.ValueOf, the thermographic
// summary via package thermo, and emits a Record on the returned
// channel. The channel is closed when the run completes, is cancelled,
// or a ruleset contract violation is detected.
//
// When opts.Parallel is set, the outer enumeration is sharded across
// opts.Workers goroutines (GOMAXPROCS(0) if <= 0) via
// golang.org/x/sync/errgroup; the shared ruleset.Cache (a mutex-guarded
// map) and the global cgt value interner (a sharded concurrent map) are
// both safe for this (spec.md §5).
func Run[P any](rs ruleset.Ruleset[P], positions []P, opts ...Option) (<-chan Record[P], error) {
	if rs == nil {
		return nil, ErrNilRuleset
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	runID := uuid.NewString()
	cache := ruleset.NewCache()
	out := make(chan Record[P], o.ProgressEvery)
	start := time.Now()

	glog.Infof("search[%s]: starting run of %s positions", runID, humanize.Comma(int64(len(positions))))

	go func() {
		defer close(out)
		if o.Parallel {
			runParallel(runID, rs, cache, positions, o, out, start)
		} else {
			runSequential(runID, rs, cache, positions, o, out, start)
		}
		glog.Infof("search[%s]: finished, %s positions cached", runID, humanize.Comma(int64(cache.Len())))
	}()

	return out, nil
}

func runSequential[P any](runID string, rs ruleset.Ruleset[P], cache *ruleset.Cache, positions []P, o Options, out chan<- Record[P], start time.Time) {
	for i, pos := range positions {
		if o.Cancel != nil && o.Cancel() {
			glog.Warningf("search[%s]: cancelled after %d/%d positions", runID, i, len(positions))
			return
		}
		rec, err := buildRecord(rs, cache, pos)
		if err != nil {
			glog.Warningf("search[%s]: %v", runID, err)
			return
		}
		if o.Store != nil {
			if err := Put(o.Store, runID, rs.Fingerprint(rs.CanonicalPosition(pos)), rec); err != nil {
				glog.Warningf("search[%s]: checkpoint write failed: %v", runID, err)
			}
		}
		out <- rec
		reportProgress(runID, o, i+1, len(positions), start)
	}
}

func runParallel[P any](runID string, rs ruleset.Ruleset[P], cache *ruleset.Cache, positions []P, o Options, out chan<- Record[P], start time.Time) {
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var grp errgroup.Group
	grp.SetLimit(workers)

	var completed int
	var mu sync.Mutex
	var cancelled bool

	for i, pos := range positions {
		i, pos := i, pos
		grp.Go(func() error {
			mu.Lock()
			stop := cancelled || (o.Cancel != nil && o.Cancel())
			mu.Unlock()
			if stop {
				return nil
			}

			rec, err := buildRecord(rs, cache, pos)
			if err != nil {
				glog.Warningf("search[%s]: position %d: %v", runID, i, err)
				mu.Lock()
				cancelled = true
				mu.Unlock()
				return nil
			}
			if o.Store != nil {
				if err := Put(o.Store, runID, rs.Fingerprint(rs.CanonicalPosition(pos)), rec); err != nil {
					glog.Warningf("search[%s]: checkpoint write failed: %v", runID, err)
				}
			}
			out <- rec

			mu.Lock()
			completed++
			n := completed
			mu.Unlock()
			reportProgress(runID, o, n, len(positions), start)
			return nil
		})
	}
	_ = grp.Wait()
}

func buildRecord[P any](rs ruleset.Ruleset[P], cache *ruleset.Cache, pos P) (Record[P], error) {
	canon := rs.CanonicalPosition(pos)
	fp1 := rs.Fingerprint(canon)
	fp2 := rs.Fingerprint(rs.CanonicalPosition(canon))
	if string(fp1) != string(fp2) {
		return Record[P]{}, fmt.Errorf("%w: position %v", ErrRulesetContractViolation, pos)
	}

	v := ruleset.ValueOf(rs, cache, canon)
	th := thermo.Build(v)

	return Record[P]{
		Position:      canon,
		CanonicalForm: v.String(),
		Temperature:   th.Temperature,
		LeftStop:      th.LeftStop,
		RightStop:     th.RightStop,
		Mean:          th.Mean,
	}, nil
}

func reportProgress(runID string, o Options, completed, total int, start time.Time) {
	if o.OnProgress == nil || o.ProgressEvery <= 0 || completed%o.ProgressEvery != 0 {
		return
	}
	o.OnProgress(Progress{
		RunID:     runID,
		Completed: completed,
		Total:     total,
		Elapsed:   humanize.RelTime(start, time.Now(), "ago", "from now"),
	})
	glog.V(1).Infof("search[%s]: %s/%s positions", runID, humanize.Comma(int64(completed)), humanize.Comma(int64(total)))
}
