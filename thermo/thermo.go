package thermo

import (
	"fmt"

	"github.com/partizangames/cgt/cgt"
	"github.com/partizangames/cgt/dyadic"
	"github.com/partizangames/cgt/interner"
)

// numberSentinel is the fixed temperature of every Number value
// (spec.md §9 Open Question, resolved at -1 rather than -infinity so
// thermograph arithmetic stays dyadic and finite).
var numberSentinel = dyadic.FromInt(-1)

// LeftStop returns L̂(0): the number reached with Left to move first and
// no cooling applied, computed via the standard mutual recursion with
// RightStop (spec.md §4.4).
func LeftStop(v cgt.Value) dyadic.Dyadic {
	ls, _ := stops(v, map[cgt.Value]stopPair{})
	return ls
}

// RightStop returns R̂(0), the mirror of LeftStop.
func RightStop(v cgt.Value) dyadic.Dyadic {
	_, rs := stops(v, map[cgt.Value]stopPair{})
	return rs
}

type stopPair struct{ left, right dyadic.Dyadic }

// stops computes (left stop, right stop) together so each shared
// sub-value is only recursed into once per top-level call, memoized by
// Value identity (Value wraps a single comparable Handle).
func stops(v cgt.Value, memo map[cgt.Value]stopPair) (dyadic.Dyadic, dyadic.Dyadic) {
	if p, ok := memo[v]; ok {
		return p.left, p.right
	}
	if d, ok := v.AsDyadic(); ok {
		memo[v] = stopPair{d, d}
		return d, d
	}

	L, R := v.LeftOptions(), v.RightOptions()

	var left, right dyadic.Dyadic
	haveLeft, haveRight := len(L) > 0, len(R) > 0

	if haveLeft {
		for i, l := range L {
			_, rs := stops(l, memo)
			if i == 0 || dyadic.Gt(rs, left) {
				left = rs
			}
		}
	}
	if haveRight {
		for i, r := range R {
			ls, _ := stops(r, memo)
			if i == 0 || dyadic.Lt(ls, right) {
				right = ls
			}
		}
	}
	switch {
	case !haveLeft && !haveRight:
		// A non-number Value always has at least one option (only Zero
		// has neither, and Zero is a Number handled above).
		left, right = dyadic.Zero, dyadic.Zero
	case !haveLeft:
		left = right
	case !haveRight:
		right = left
	}

	memo[v] = stopPair{left, right}
	return left, right
}

// Temperature returns the mast temperature τ(v): -1 for any Number
// (spec.md §9), otherwise (LeftStop(v)-RightStop(v))/2 clamped to a
// minimum of 0 — the standard "how hot is the hottest remaining
// incentive" reading, which reproduces spec.md §8's worked examples
// exactly: τ({0|0})=0, τ({1|-1})=1.
func Temperature(v cgt.Value) dyadic.Dyadic {
	if v.IsNumber() {
		return numberSentinel
	}
	ls, rs := LeftStop(v), RightStop(v)
	diff := dyadic.Sub(ls, rs)
	half := dyadic.Half(diff)
	if dyadic.Lt(half, dyadic.Zero) {
		return dyadic.Zero
	}
	return half
}

// Mean returns the mast value m(v) = L̂(τ(v)) = R̂(τ(v)) (spec.md §4.4):
// the average of the left and right stops.
func Mean(v cgt.Value) dyadic.Dyadic {
	ls, rs := LeftStop(v), RightStop(v)
	return dyadic.Half(dyadic.Add(ls, rs))
}

// Cool returns v cooled by coolant t: a Number is unaffected (cooling a
// number is the identity); a nimber-bearing value collapses to its
// number part as soon as t > 0 (a nimber's own temperature is 0); a
// General/Switch value recurses as {G^L_t - t | G^R_t + t}, per the
// standard cooling operator (spec.md §9, "Cooling is a numeric
// fixpoint"). Requires t >= -1.
func Cool(v cgt.Value, t dyadic.Dyadic) (cgt.Value, error) {
	if dyadic.Lt(t, numberSentinel) {
		return cgt.Value{}, fmt.Errorf("%w: %s", ErrNegativeCoolant, t)
	}
	return cool(v, t), nil
}

func cool(v cgt.Value, t dyadic.Dyadic) cgt.Value {
	if v.IsNumber() {
		return v
	}
	if v.Kind() == interner.KindNumberPlusNimber {
		if dyadic.Gt(t, dyadic.Zero) {
			d, _ := numberPart(v)
			return cgt.Number(d)
		}
		return v
	}

	tVal := cgt.Number(t)
	L, R := v.LeftOptions(), v.RightOptions()
	coolL := make([]cgt.Value, len(L))
	for i, l := range L {
		coolL[i] = cgt.Sub(cool(l, t), tVal)
	}
	coolR := make([]cgt.Value, len(R))
	for i, r := range R {
		coolR[i] = cgt.Add(cool(r, t), tVal)
	}
	return cgt.FromOptions(coolL, coolR)
}

// numberPart returns the dyadic part d of a NumberPlusNimber value d+*n.
// v.AsDyadic only succeeds for pure Number kind, so this reads the value
// off Mean instead: left and right stops of d+*n both equal d (every
// d+*i in its synthesized option set has the same number part), so the
// mean recovers it exactly.
func numberPart(v cgt.Value) (dyadic.Dyadic, bool) {
	return Mean(v), true
}

// Heat returns v heated by t: for t > 0 it expands a Number d into the
// switch-like game {d+t | d-t}; any other value, and any value when t is
// 0, is returned unchanged. Cooling the expanded game by t gives
// {d | d} = d+*, not d. Requires t >= 0.
func Heat(v cgt.Value, t dyadic.Dyadic) (cgt.Value, error) {
	if dyadic.Lt(t, dyadic.Zero) {
		return cgt.Value{}, fmt.Errorf("%w: %s", ErrNegativeCoolant, t)
	}
	if !v.IsNumber() {
		return v, nil
	}
	d, _ := v.AsDyadic()
	if t.IsZero() {
		return v, nil
	}
	return cgt.FromOptions(
		[]cgt.Value{cgt.Number(dyadic.Add(d, t))},
		[]cgt.Value{cgt.Number(dyadic.Sub(d, t))},
	), nil
}

// Build assembles the full Thermograph summary for v.
func Build(v cgt.Value) Thermograph {
	return Thermograph{
		LeftStop:    LeftStop(v),
		RightStop:   RightStop(v),
		Temperature: Temperature(v),
		Mean:        Mean(v),
	}
}
