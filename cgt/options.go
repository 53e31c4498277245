package cgt

import (
	"github.com/partizangames/cgt/dyadic"
	"github.com/partizangames/cgt/interner"
	"github.com/partizangames/cgt/nimber"
)

// LeftOptions returns v's left options under the full recursive game
// definition. For General and Switch kinds these are the stored options;
// for Number and NumberPlusNimber kinds they are synthesized on demand
// from the standard surreal-number / nimber-spread construction, so that
// Leq and the canonicalization algorithm — both defined in terms of
// LeftOptions/RightOptions — work uniformly across all four kinds.
func (v Value) LeftOptions() []Value {
	rec := v.record()
	switch rec.Kind {
	case interner.KindNumber:
		l, _ := numberOptions(rec.Num)
		return l
	case interner.KindNumberPlusNimber:
		return numberPlusNimberOptions(rec.Num, rec.Nim)
	case interner.KindSwitch, interner.KindGeneral:
		return wrapAll(rec.Left)
	default:
		return nil
	}
}

// RightOptions is the right-side counterpart of LeftOptions.
func (v Value) RightOptions() []Value {
	rec := v.record()
	switch rec.Kind {
	case interner.KindNumber:
		_, r := numberOptions(rec.Num)
		return r
	case interner.KindNumberPlusNimber:
		return numberPlusNimberOptions(rec.Num, rec.Nim)
	case interner.KindSwitch, interner.KindGeneral:
		return wrapAll(rec.Right)
	default:
		return nil
	}
}

func wrapAll(hs []interner.Handle) []Value {
	if len(hs) == 0 {
		return nil
	}
	out := make([]Value, len(hs))
	for i, h := range hs {
		out[i] = wrap(h)
	}
	return out
}

// numberOptions synthesizes the canonical surreal-number option pair for
// a dyadic value d:
//
//	integer 0:            ( | )
//	integer n>0:           (n-1 | )
//	integer n<0:           ( | n+1)
//	non-integer m/2^k:      ((m-1)/2^k | (m+1)/2^k)
//
// Each recursive call strictly reduces the denominator-exponent (m is
// odd, so m-1 and m+1 are even and reduce(), termination in <= k steps.
func numberOptions(d dyadic.Dyadic) (left, right []Value) {
	if n, ok := d.Int64(); ok {
		switch {
		case n == 0:
			return nil, nil
		case n > 0:
			return []Value{Number(dyadic.FromInt(n - 1))}, nil
		default:
			return nil, []Value{Number(dyadic.FromInt(n + 1))}
		}
	}
	m, k := d.Num(), d.Exp()
	lo := Number(dyadic.New(m-1, k))
	hi := Number(dyadic.New(m+1, k))
	return []Value{lo}, []Value{hi}
}

// numberPlusNimberOptions returns the shared left=right option set of
// d+*n: {d+*0, d+*1, ..., d+*(n-1)}, the nimber spread shifted by d.
func numberPlusNimberOptions(d dyadic.Dyadic, n nimber.Nimber) []Value {
	count := n.Int()
	out := make([]Value, count)
	for i := 0; i < count; i++ {
		out[i] = numberPlusNimber(d, nimber.New(i))
	}
	return out
}
