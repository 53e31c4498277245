package interner

import (
	"github.com/partizangames/cgt/dyadic"
	"github.com/partizangames/cgt/nimber"
)

// Kind tags the closed variant of short-game value a Record represents,
// per spec.md §9 ("Polymorphism by capability set, not inheritance").
type Kind uint8

const (
	// KindNumber is a pure dyadic-rational number.
	KindNumber Kind = iota
	// KindNumberPlusNimber is d + *n with n nonzero; d may be zero.
	KindNumberPlusNimber
	// KindSwitch is {a | b} with a, b numbers and a > b (the collapse
	// case that stops short of a full general form).
	KindSwitch
	// KindGeneral is {L | R} with arbitrary option sets.
	KindGeneral
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindNumberPlusNimber:
		return "NumberPlusNimber"
	case KindSwitch:
		return "Switch"
	case KindGeneral:
		return "General"
	default:
		return "Unknown"
	}
}

// Handle is a stable, process-wide identity for an interned Record.
// Equality of handles is equality of values: the Store guarantees a
// single Handle per distinct canonical key.
type Handle uint64

// Nil is the zero Handle, never returned by Intern; useful as a sentinel
// "no value yet" in callers that build up Records incrementally.
const Nil Handle = 0

func handleOf(shard, idx uint32) Handle {
	// Reserve handle 0 for Nil by biasing every real index up by one.
	return Handle(shard)<<32 | Handle(idx+1)
}

func (h Handle) shard() uint32 { return uint32(h >> 32) }
func (h Handle) index() uint32 { return uint32(h) - 1 }

// Record is the immutable, interned representation of a short-game value.
// Left and Right hold option handles for KindGeneral (arbitrary size) and
// KindSwitch (exactly one each, Left[0]=a, Right[0]=b); both are empty for
// numeric kinds.
type Record struct {
	Kind  Kind
	Num   dyadic.Dyadic
	Nim   nimber.Nimber
	Left  []Handle
	Right []Handle
}
