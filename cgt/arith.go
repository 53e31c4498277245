package cgt

import (
	"github.com/partizangames/cgt/dyadic"
	"github.com/partizangames/cgt/interner"
	"github.com/partizangames/cgt/nimber"
)

// Add returns the disjunctive sum v+w: G+H = {G_L+H, G+H_L | G_R+H, G+H_R},
// with numeric operands short-circuited to plain dyadic addition and
// results memoized in the interner's add cache (spec.md §4.3).
func Add(v, w Value) Value {
	if v.IsNumber() && w.IsNumber() {
		vd, _ := v.AsDyadic()
		wd, _ := w.AsDyadic()
		return Number(dyadic.Add(vd, wd))
	}
	if cached, ok := store.AddCache().Get(v.h, w.h); ok {
		return wrap(cached)
	}
	result := addUncached(v, w)
	store.AddCache().Put(v.h, w.h, result.h)
	return result
}

func addUncached(v, w Value) Value {
	if dOfV, nOfV, ok := asNumberPlusNimber(v); ok && w.IsNumber() {
		wd, _ := w.AsDyadic()
		return numberPlusNimber(dyadic.Add(dOfV, wd), nOfV)
	}
	if dOfW, nOfW, ok := asNumberPlusNimber(w); ok && v.IsNumber() {
		vd, _ := v.AsDyadic()
		return numberPlusNimber(dyadic.Add(vd, dOfW), nOfW)
	}

	vL, vR := v.LeftOptions(), v.RightOptions()
	wL, wR := w.LeftOptions(), w.RightOptions()

	left := make([]Value, 0, len(vL)+len(wL))
	for _, l := range vL {
		left = append(left, Add(l, w))
	}
	for _, l := range wL {
		left = append(left, Add(v, l))
	}

	right := make([]Value, 0, len(vR)+len(wR))
	for _, r := range vR {
		right = append(right, Add(r, w))
	}
	for _, r := range wR {
		right = append(right, Add(v, r))
	}

	return FromOptions(left, right)
}

// asNumberPlusNimber reports whether v is a Number or NumberPlusNimber,
// returning its dyadic and nimber parts (nimber.Zero for a pure Number).
func asNumberPlusNimber(v Value) (dyadic.Dyadic, nimber.Nimber, bool) {
	rec := v.record()
	switch rec.Kind {
	case interner.KindNumber:
		return rec.Num, nimber.Zero, true
	case interner.KindNumberPlusNimber:
		return rec.Num, rec.Nim, true
	default:
		return dyadic.Zero, nimber.Zero, false
	}
}

// Neg returns -v: -{L|R} = {-R | -L}, with numeric and number-plus-nimber
// operands short-circuited (negating a dyadic directly, and a nimber
// being its own negation: *n + *n = *0).
func Neg(v Value) Value {
	if d, n, ok := asNumberPlusNimber(v); ok {
		return numberPlusNimber(dyadic.Neg(d), n)
	}
	if cached, ok := store.NegCache().Get(v.h); ok {
		return wrap(cached)
	}
	vL, vR := v.LeftOptions(), v.RightOptions()
	negL := make([]Value, len(vR))
	for i, r := range vR {
		negL[i] = Neg(r)
	}
	negR := make([]Value, len(vL))
	for i, l := range vL {
		negR[i] = Neg(l)
	}
	result := FromOptions(negL, negR)
	store.NegCache().Put(v.h, result.h)
	return result
}

// Sub returns v-w = v + (-w).
func Sub(v, w Value) Value {
	return Add(v, Neg(w))
}

// MulInt returns the k-fold disjunctive sum of v with itself (k times),
// defined only for Number values (multiplication of general short games
// is not a total operation and is out of scope per spec.md §1's
// Non-goals); k may be negative or zero.
func MulInt(k int64, v Value) (Value, error) {
	d, ok := v.AsDyadic()
	if !ok {
		return Value{}, ErrNotNumber
	}
	return Number(dyadic.MulInt(k, d)), nil
}

// Incentives returns the left and right incentive sets of v (spec.md
// §4.3): LI(v) = {l - v : l in v.L}, RI(v) = {v - r : r in v.R}, each
// option canonicalized individually (not as a single combined game).
func Incentives(v Value) (left, right []Value) {
	for _, l := range v.LeftOptions() {
		left = append(left, Sub(l, v))
	}
	for _, r := range v.RightOptions() {
		right = append(right, Sub(v, r))
	}
	return left, right
}
