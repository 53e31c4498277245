package search

import "errors"

// Sentinel errors for the search package.
var (
	// ErrNilRuleset indicates Run was called with a nil ruleset.
	ErrNilRuleset = errors.New("search: ruleset is nil")

	// ErrCancelled indicates the caller's cancellation flag fired;
	// Run returns the partial record stream already emitted, terminated
	// cleanly (spec.md §7's Cancelled taxonomy).
	ErrCancelled = errors.New("search: run was cancelled")

	// ErrRulesetContractViolation indicates a position's fingerprint
	// changed after re-canonicalization (spec.md §7). Fatal: it
	// indicates a bug in the concrete ruleset, not a recoverable input.
	ErrRulesetContractViolation = errors.New("search: ruleset contract violation: fingerprint unstable")
)
