package cgt

import "github.com/partizangames/cgt/dyadic"

// Leq is the CGT game order: v <= w iff no left option of v dominates w
// and no right option of w is dominated by v (spec.md §4.3). Results are
// memoized in the interner's leq cache, keyed by the operand handles;
// termination follows because LeftOptions/RightOptions always return
// strictly smaller (lower-birthday) values than v/w.
func Leq(v, w Value) bool {
	if v.IsNumber() && w.IsNumber() {
		vd, _ := v.AsDyadic()
		wd, _ := w.AsDyadic()
		return dyadic.Leq(vd, wd)
	}
	if cached, ok := store.LeqCache().Get(v.h, w.h); ok {
		return cached
	}
	result := leqUncached(v, w)
	store.LeqCache().Put(v.h, w.h, result)
	return result
}

func leqUncached(v, w Value) bool {
	for _, l := range v.LeftOptions() {
		if Leq(w, l) {
			return false
		}
	}
	for _, r := range w.RightOptions() {
		if Leq(r, v) {
			return false
		}
	}
	return true
}

// Geq reports w <= v.
func Geq(v, w Value) bool { return Leq(w, v) }

// Lt reports v <= w and not w <= v (strictly less, in the partial order
// sense — two values can be simultaneously "not Lt either way", i.e.
// confused/incomparable).
func Lt(v, w Value) bool { return Leq(v, w) && !Leq(w, v) }

// Confused reports that neither v <= w nor w <= v holds.
func Confused(v, w Value) bool { return !Leq(v, w) && !Leq(w, v) }
