// Package search drives exhaustive tabulation of a ruleset.Ruleset over
// a caller-supplied enumeration of starting positions (spec.md §4.7): for
// each position it computes the canonical value, temperature, and
// thermograph, and emits a Record. Work is sharded across a worker pool
// sized to GOMAXPROCS using golang.org/x/sync/errgroup, mirroring the
// work-stealing model of spec.md §5 without hand-rolling a pool.
//
// Progress and contract-violation diagnostics go through
// github.com/golang/glog; human-readable position/throughput counters use
// github.com/dustin/go-humanize; each Run is tagged with a
// github.com/google/uuid correlation ID so interleaved log lines from
// concurrent runs can be told apart. Run delivers Records on a channel
// without encoding them; the checkpoint Store encodes them with
// github.com/goccy/go-json, a drop-in encoding/json replacement.
package search
