package ruleset

import "errors"

// ErrFingerprintUnstable indicates a ruleset's CanonicalPosition is not
// idempotent under its own Fingerprint: re-canonicalizing a canonical
// position produced a different fingerprint. This is the
// RulesetContractViolation class of spec.md §7 — fatal, since it
// indicates a bug in the concrete ruleset, not a recoverable input
// error.
var ErrFingerprintUnstable = errors.New("ruleset: fingerprint unstable under canonicalization")
