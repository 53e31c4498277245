package cgt

import (
	"github.com/partizangames/cgt/dyadic"
	"github.com/partizangames/cgt/interner"
)

// store is the process-wide value interner, created when the package is
// loaded (interner.NewStore allocates its shards eagerly, so there
// is no first-use race to guard against — see spec.md §6, "no global
// process initialization is required beyond lazy first-use").
var store = interner.NewStore()

// Player identifies a mover in a partizan game. Left prefers larger
// values, Right prefers smaller — spec.md's GLOSSARY entry for Left/Right.
type Player int

const (
	// Left is the maximizing player.
	Left Player = iota
	// Right is the minimizing player.
	Right
)

func (p Player) String() string {
	if p == Left {
		return "Left"
	}
	return "Right"
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Left {
		return Right
	}
	return Left
}

// Value is a canonical short-game value: an immutable handle into the
// package's interner.Store. The zero Value is invalid; always obtain a
// Value from a constructor (Zero, Number, Star, Switch, FromOptions) or
// from an operation (Add, Neg, ...).
type Value struct {
	h interner.Handle
}

func wrap(h interner.Handle) Value { return Value{h: h} }

// Handle exposes the underlying interner handle, for callers (e.g.
// package search) that need a cheap, comparable, hashable identity for a
// Value without re-deriving its canonical key.
func (v Value) Handle() interner.Handle { return v.h }

func (v Value) record() interner.Record { return store.Lookup(v.h) }

// Kind reports which of the four closed tags v carries.
func (v Value) Kind() interner.Kind { return v.record().Kind }

// IsNumber reports whether v is a pure number (possibly an integer).
func (v Value) IsNumber() bool { return v.Kind() == interner.KindNumber }

// AsDyadic returns v's dyadic value and true if v is number-kind;
// otherwise (dyadic.Zero, false).
func (v Value) AsDyadic() (dyadic.Dyadic, bool) {
	rec := v.record()
	if rec.Kind != interner.KindNumber {
		return dyadic.Zero, false
	}
	return rec.Num, true
}

// Eq reports whether a and b are the same canonical value. Because every
// Value is interned, this is handle equality: O(1), per spec.md §8's
// "Interning uniqueness" property.
func Eq(a, b Value) bool { return a.h == b.h }
