package ruleset

import "github.com/partizangames/cgt/cgt"

// Player re-exports cgt.Player so rulesets never need to import package
// cgt directly just to name the mover.
type Player = cgt.Player

// Left and Right re-export cgt's player constants.
const (
	Left  = cgt.Left
	Right = cgt.Right
)

// Ruleset is the contract a concrete combinatorial game implements
// (spec.md §4.6). P is the position representation; it must support
// structural equality (used only by callers, not required by this
// interface itself, since comparison is mediated through Fingerprint).
type Ruleset[P any] interface {
	// Moves returns the finite list of positions reachable by player
	// moving once from pos.
	Moves(pos P, player Player) []P

	// CanonicalPosition applies board symmetries to pick a single
	// representative among equivalent positions. Implementations with no
	// symmetry to exploit may return pos unchanged.
	CanonicalPosition(pos P) P

	// Fingerprint returns a total, canonical serialization of pos, used
	// as the memoization key in Cache.
	Fingerprint(pos P) []byte

	// Decompose splits pos into independent components whose game values
	// sum to value_of(pos) (spec.md §9, "the single biggest
	// optimization"). Implementations with nothing to decompose return
	// []P{pos}.
	Decompose(pos P) []P
}

// Base provides the default CanonicalPosition (identity) and Decompose
// (singleton) implementations, embeddable by concrete rulesets that have
// no symmetry or decomposition to exploit (spec.md §4.6, "optional").
type Base[P any] struct{}

// CanonicalPosition is the identity default.
func (Base[P]) CanonicalPosition(pos P) P { return pos }

// Decompose is the singleton default.
func (Base[P]) Decompose(pos P) []P { return []P{pos} }
