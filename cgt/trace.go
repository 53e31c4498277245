package cgt

import (
	"sync/atomic"

	"github.com/golang/glog"
)

// traceReductions gates the per-reduction glog lines FromOptions emits.
// Off by default: canonicalization runs in the search driver's hot path
// and the formatting cost of a trace line is only worth paying while
// diagnosing a misbehaving ruleset (spec.md §7, RulesetContractViolation).
var traceReductions atomic.Bool

// SetTraceReductions toggles reduction tracing process-wide. Intended for
// interactive debugging of a ruleset that produces a surprising canonical
// form, not for use in a steady-state search run.
func SetTraceReductions(on bool) {
	traceReductions.Store(on)
}

func traceDominatedLeft(before, after int) {
	if traceReductions.Load() && after < before {
		glog.V(2).Infof("cgt: removed %d dominated left option(s) (%d -> %d)", before-after, before, after)
	}
}

func traceDominatedRight(before, after int) {
	if traceReductions.Load() && after < before {
		glog.V(2).Infof("cgt: removed %d dominated right option(s) (%d -> %d)", before-after, before, after)
	}
}

func traceReversibleLeft(idx int) {
	if traceReductions.Load() {
		glog.V(2).Infof("cgt: left option %d bypassed a reversible move", idx)
	}
}

func traceReversibleRight(idx int) {
	if traceReductions.Load() {
		glog.V(2).Infof("cgt: right option %d bypassed a reversible move", idx)
	}
}
