package cgt

import (
	"github.com/partizangames/cgt/dyadic"
	"github.com/partizangames/cgt/interner"
	"github.com/partizangames/cgt/nimber"
)

// Zero is the empty game {|}, the additive identity.
func Zero() Value { return Number(dyadic.Zero) }

// Number returns the number value d.
func Number(d dyadic.Dyadic) Value {
	return wrap(store.Intern(interner.Record{Kind: interner.KindNumber, Num: d}))
}

// Integer returns the integer value k.
func Integer(k int64) Value { return Number(dyadic.FromInt(k)) }

// Star returns the nimber value *n.
func Star(n nimber.Nimber) Value { return numberPlusNimber(dyadic.Zero, n) }

// numberPlusNimber returns d+*n, collapsing to a pure Number when n==0.
func numberPlusNimber(d dyadic.Dyadic, n nimber.Nimber) Value {
	if n == nimber.Zero {
		return Number(d)
	}
	return wrap(store.Intern(interner.Record{Kind: interner.KindNumberPlusNimber, Num: d, Nim: n}))
}

// Switch returns the hot game {a | b}. Requires a and b to be numbers
// with a strictly greater than b (otherwise the pair collapses to a
// number or a nimber, per the Simplicity Rule); this is equivalent to,
// and implemented via, FromOptions([]Value{a}, []Value{b}).
func Switch(a, b Value) Value {
	return FromOptions([]Value{a}, []Value{b})
}

// dedupeValues removes value-equal duplicates, preserving first-seen
// order (irrelevant to the result since interning is set-based, but
// keeps iteration deterministic for tracing/debugging).
func dedupeValues(vs []Value) []Value {
	if len(vs) == 0 {
		return nil
	}
	seen := make(map[interner.Handle]struct{}, len(vs))
	out := make([]Value, 0, len(vs))
	for _, v := range vs {
		if _, ok := seen[v.h]; ok {
			continue
		}
		seen[v.h] = struct{}{}
		out = append(out, v)
	}
	return out
}

func allNumbers(vs []Value) bool {
	for _, v := range vs {
		if !v.IsNumber() {
			return false
		}
	}
	return true
}

func maxDyadic(vs []Value) dyadic.Dyadic {
	m, _ := vs[0].AsDyadic()
	for _, v := range vs[1:] {
		d, _ := v.AsDyadic()
		if dyadic.Gt(d, m) {
			m = d
		}
	}
	return m
}

func minDyadic(vs []Value) dyadic.Dyadic {
	m, _ := vs[0].AsDyadic()
	for _, v := range vs[1:] {
		d, _ := v.AsDyadic()
		if dyadic.Lt(d, m) {
			m = d
		}
	}
	return m
}
