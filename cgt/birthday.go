package cgt

import "github.com/partizangames/cgt/interner"

// Birthday returns the size measure from spec.md §4.3's termination
// argument: 0 for the empty game, and otherwise 1 plus the sum of the
// birthdays of all (deduplicated) options. Number and NumberPlusNimber
// kinds use their synthesized option sets, so a non-integer dyadic's
// birthday grows with its denominator-exponent depth. Because option
// birthdays are summed rather than maximized, the measure agrees with the
// standard birthday only on small values (integers, *1, *2, 1/2): *3
// measures 4 and 3/4 measures 4.
func Birthday(v Value) int {
	rec := v.record()
	if rec.Kind == interner.KindNumber && rec.Num.IsZero() {
		return 0
	}
	l, r := v.LeftOptions(), v.RightOptions()
	if len(l) == 0 && len(r) == 0 {
		return 0
	}
	total := 0
	seen := make(map[interner.Handle]struct{}, len(l)+len(r))
	for _, opt := range append(append([]Value{}, l...), r...) {
		if _, ok := seen[opt.h]; ok {
			continue
		}
		seen[opt.h] = struct{}{}
		total += Birthday(opt)
	}
	return total + 1
}
