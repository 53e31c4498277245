package cgt

import (
	"github.com/partizangames/cgt/dyadic"
	"github.com/partizangames/cgt/interner"
	"github.com/partizangames/cgt/nimber"
)

// maxCanonicalizeIterations bounds the dominated/reversible reduction
// loop. A ruleset that feeds FromOptions a position whose option graph
// never reaches a fixpoint within this many rounds has violated its
// contract (spec.md §7, RulesetContractViolation) — finite short games
// always converge in at most a few rounds per option.
const maxCanonicalizeIterations = 10000

// FromOptions canonicalizes a position's raw option lists into a Value:
// the Simplicity Rule, dominated-option removal, and reversible-option
// bypassing, iterated to a fixpoint (spec.md §4.3). FromOptions(nil, nil)
// returns Zero().
func FromOptions(left, right []Value) Value {
	L := dedupeValues(left)
	R := dedupeValues(right)

	for iter := 0; ; iter++ {
		if iter > maxCanonicalizeIterations {
			panic("cgt: canonicalization did not converge (ruleset contract violation)")
		}
		beforeL, beforeR := len(L), len(R)
		L = removeDominatedLeft(L)
		R = removeDominatedRight(R)
		traceDominatedLeft(beforeL, len(L))
		traceDominatedRight(beforeR, len(R))

		if i, rstar, ok := findReversibleLeft(L, R); ok {
			traceReversibleLeft(i)
			L = spliceReplace(L, i, rstar.LeftOptions())
			continue
		}
		if i, lstar, ok := findReversibleRight(L, R); ok {
			traceReversibleRight(i)
			R = spliceReplace(R, i, lstar.RightOptions())
			continue
		}
		break
	}

	return tag(L, R)
}

// tag classifies a fully reduced (dominated/reversible-free) option pair
// into its canonical Kind and interns it.
func tag(L, R []Value) Value {
	if len(L) == 0 && len(R) == 0 {
		return Zero()
	}
	if d, ok := bypassNumbers(L, R); ok {
		return Number(d)
	}
	if d, n, ok := detectNumberPlusNimber(L, R); ok {
		return numberPlusNimber(d, n)
	}
	if len(L) == 1 && len(R) == 1 && L[0].IsNumber() && R[0].IsNumber() {
		ld, _ := L[0].AsDyadic()
		rd, _ := R[0].AsDyadic()
		if dyadic.Gt(ld, rd) {
			return internSwitch(L[0], R[0])
		}
	}
	return internGeneral(L, R)
}

func internSwitch(a, b Value) Value {
	return wrap(store.Intern(interner.Record{
		Kind:  interner.KindSwitch,
		Left:  []interner.Handle{a.h},
		Right: []interner.Handle{b.h},
	}))
}

func internGeneral(L, R []Value) Value {
	return wrap(store.Intern(interner.Record{
		Kind:  interner.KindGeneral,
		Left:  handlesOf(L),
		Right: handlesOf(R),
	}))
}

func handlesOf(vs []Value) []interner.Handle {
	if len(vs) == 0 {
		return nil
	}
	out := make([]interner.Handle, len(vs))
	for i, v := range vs {
		out[i] = v.h
	}
	return out
}

// bypassNumbers implements the Simplicity Rule: if every option on both
// sides is a number, and every left option is strictly less than every
// right option, the position equals the simplest number between them.
// Equality at the boundary (maxL == minR) does NOT bypass — that shape
// (e.g. {0|0}) is a nimber, not a number, and falls through to
// detectNumberPlusNimber.
func bypassNumbers(L, R []Value) (dyadic.Dyadic, bool) {
	if !allNumbers(L) || !allNumbers(R) {
		return dyadic.Zero, false
	}
	switch {
	case len(L) == 0 && len(R) == 0:
		return dyadic.Zero, true
	case len(L) == 0:
		return dyadic.SimplestBelow(minDyadic(R)), true
	case len(R) == 0:
		return dyadic.SimplestAbove(maxDyadic(L)), true
	default:
		maxL, minR := maxDyadic(L), minDyadic(R)
		if dyadic.Lt(maxL, minR) {
			x, _ := dyadic.Midpoint(maxL, minR)
			return x, true
		}
		return dyadic.Zero, false
	}
}

// detectNumberPlusNimber recognizes the canonical shape of d+*n
// (n>0): identical left and right option sets {d+*0, ..., d+*(n-1)}.
func detectNumberPlusNimber(L, R []Value) (dyadic.Dyadic, nimber.Nimber, bool) {
	if len(L) == 0 || len(L) != len(R) || !sameValueSet(L, R) {
		return dyadic.Zero, 0, false
	}
	var d dyadic.Dyadic
	nims := make([]int, len(L))
	for i, v := range L {
		rec := v.record()
		var vd dyadic.Dyadic
		var vn nimber.Nimber
		switch rec.Kind {
		case interner.KindNumber:
			vd, vn = rec.Num, nimber.Zero
		case interner.KindNumberPlusNimber:
			vd, vn = rec.Num, rec.Nim
		default:
			return dyadic.Zero, 0, false
		}
		if i == 0 {
			d = vd
		} else if !dyadic.Eq(d, vd) {
			return dyadic.Zero, 0, false
		}
		nims[i] = vn.Int()
	}
	if !isPermutationOfRange(nims) {
		return dyadic.Zero, 0, false
	}
	return d, nimber.New(len(L)), true
}

func isPermutationOfRange(nims []int) bool {
	seen := make([]bool, len(nims))
	for _, n := range nims {
		if n < 0 || n >= len(nims) || seen[n] {
			return false
		}
		seen[n] = true
	}
	return true
}

func sameValueSet(a, b []Value) bool {
	set := make(map[interner.Handle]struct{}, len(a))
	for _, v := range a {
		set[v.h] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v.h]; !ok {
			return false
		}
	}
	return true
}

// removeDominatedLeft deletes any left option dominated by (<=) another
// distinct left option.
func removeDominatedLeft(L []Value) []Value {
	keep := make([]bool, len(L))
	for i := range keep {
		keep[i] = true
	}
	for i, li := range L {
		for j, lj := range L {
			if i == j {
				continue
			}
			if Leq(li, lj) {
				keep[i] = false
				break
			}
		}
	}
	return filterKept(L, keep)
}

// removeDominatedRight deletes any right option dominated by (>=) another
// distinct right option.
func removeDominatedRight(R []Value) []Value {
	keep := make([]bool, len(R))
	for i := range keep {
		keep[i] = true
	}
	for i, ri := range R {
		for j, rj := range R {
			if i == j {
				continue
			}
			if Leq(rj, ri) {
				keep[i] = false
				break
			}
		}
	}
	return filterKept(R, keep)
}

func filterKept(vs []Value, keep []bool) []Value {
	out := make([]Value, 0, len(vs))
	for i, v := range vs {
		if keep[i] {
			out = append(out, v)
		}
	}
	return out
}

// findReversibleLeft locates a left option l and a right option r* of l
// with r* <= G (G being the in-progress game described by L|R), the
// condition under which l is reversible through r* (spec.md GLOSSARY).
func findReversibleLeft(L, R []Value) (idx int, rstar Value, found bool) {
	for i, l := range L {
		for _, cand := range l.RightOptions() {
			if leqValueVsRaw(cand, L, R) {
				return i, cand, true
			}
		}
	}
	return 0, Value{}, false
}

// findReversibleRight is the mirror of findReversibleLeft for right
// options: r is reversible through l* in left_options(r) when G <= l*.
func findReversibleRight(L, R []Value) (idx int, lstar Value, found bool) {
	for i, r := range R {
		for _, cand := range r.LeftOptions() {
			if leqRawVsValue(L, R, cand) {
				return i, cand, true
			}
		}
	}
	return 0, Value{}, false
}

// spliceReplace removes L[i] and splices in repl in its place, deduping
// the result (repl may overlap existing entries).
func spliceReplace(L []Value, i int, repl []Value) []Value {
	out := make([]Value, 0, len(L)-1+len(repl))
	out = append(out, L[:i]...)
	out = append(out, repl...)
	out = append(out, L[i+1:]...)
	return dedupeValues(out)
}

// leqValueVsRaw reports v <= G, where G is the in-progress game described
// by rawL|rawR (not yet interned). Mutually recursive with
// leqRawVsValue; terminates because both always recurse into v's or w's
// options, which are already-canonical values of strictly smaller
// birthday, while rawL/rawR stay fixed.
func leqValueVsRaw(v Value, rawL, rawR []Value) bool {
	for _, l := range v.LeftOptions() {
		if leqRawVsValue(rawL, rawR, l) {
			return false
		}
	}
	for _, r := range rawR {
		if Leq(r, v) {
			return false
		}
	}
	return true
}

// leqRawVsValue reports G <= w, the mirror of leqValueVsRaw.
func leqRawVsValue(rawL, rawR []Value, w Value) bool {
	for _, l := range rawL {
		if Leq(w, l) {
			return false
		}
	}
	for _, r := range w.RightOptions() {
		if leqValueVsRaw(r, rawL, rawR) {
			return false
		}
	}
	return true
}
