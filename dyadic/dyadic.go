package dyadic

import (
	"fmt"
	"math"
)

// Dyadic is an exact rational of the form num/2^exp, always stored in
// lowest terms: num is odd, or num == 0 and exp == 0.
//
// The zero value is the dyadic zero (0/1), ready to use.
type Dyadic struct {
	num int64
	exp uint
}

// Zero is the dyadic rational 0.
var Zero = Dyadic{}

// One is the dyadic rational 1.
var One = Dyadic{num: 1}

// FromInt returns the dyadic rational n/1.
func FromInt(n int64) Dyadic {
	return Dyadic{num: n}
}

// New returns the dyadic rational num/2^exp, reduced to lowest terms.
// Panics with ErrNegativeExponent's message if exp would need to be
// negative — impossible by the uint type, kept only for symmetry with the
// spec's stated failure taxonomy.
func New(num int64, exp uint) Dyadic {
	return reduce(num, exp)
}

// reduce divides out common factors of two from num and exp until num is
// odd (or zero, in which case exp collapses to zero).
func reduce(num int64, exp uint) Dyadic {
	if num == 0 {
		return Dyadic{}
	}
	for exp > 0 && num%2 == 0 {
		num /= 2
		exp--
	}
	return Dyadic{num: num, exp: exp}
}

// Num returns the reduced numerator.
func (d Dyadic) Num() int64 { return d.num }

// Exp returns the denominator exponent (denominator is 1<<Exp).
func (d Dyadic) Exp() uint { return d.exp }

// IsZero reports whether d is the dyadic zero.
func (d Dyadic) IsZero() bool { return d.num == 0 }

// IsInteger reports whether d has denominator 1.
func (d Dyadic) IsInteger() bool { return d.exp == 0 }

// Int64 returns d as an int64 and true if d is an integer; otherwise
// (0, false).
func (d Dyadic) Int64() (int64, bool) {
	if !d.IsInteger() {
		return 0, false
	}
	return d.num, true
}

// shiftLeftChecked returns x<<n, panicking with ErrOverflow if the result
// would not fit in an int64.
func shiftLeftChecked(x int64, n uint) int64 {
	for ; n > 0; n-- {
		if x > math.MaxInt64/2 || x < math.MinInt64/2 {
			panic(ErrOverflow)
		}
		x *= 2
	}
	return x
}

// addChecked returns a+b, panicking with ErrOverflow on signed overflow.
func addChecked(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		panic(ErrOverflow)
	}
	if b < 0 && a < math.MinInt64-b {
		panic(ErrOverflow)
	}
	return a + b
}

// align returns a's numerator scaled to denominator exponent E >= a.exp.
func (d Dyadic) align(E uint) int64 {
	return shiftLeftChecked(d.num, E-d.exp)
}

func maxExp(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}

// Add returns a+b, exact.
func Add(a, b Dyadic) Dyadic {
	E := maxExp(a.exp, b.exp)
	return reduce(addChecked(a.align(E), b.align(E)), E)
}

// Neg returns -a, exact. Panics with ErrOverflow if a.Num() is
// math.MinInt64 (its negation does not fit in int64).
func Neg(a Dyadic) Dyadic {
	if a.num == math.MinInt64 {
		panic(ErrOverflow)
	}
	return Dyadic{num: -a.num, exp: a.exp}
}

// Sub returns a-b, exact.
func Sub(a, b Dyadic) Dyadic {
	return Add(a, Neg(b))
}

// Half returns a/2, exact.
func Half(a Dyadic) Dyadic {
	if a.num == 0 {
		return Zero
	}
	return Dyadic{num: a.num, exp: a.exp + 1}
}

// Double returns 2*a, exact.
func Double(a Dyadic) Dyadic {
	if a.exp == 0 {
		return Dyadic{num: shiftLeftChecked(a.num, 1), exp: 0}
	}
	return Dyadic{num: a.num, exp: a.exp - 1}
}

// MulInt returns k*a, exact.
func MulInt(k int64, a Dyadic) Dyadic {
	if k == 0 || a.num == 0 {
		return Zero
	}
	// Multiply via repeated doubling-and-add would overflow checks poorly;
	// do it directly with an overflow check on the product.
	if a.num != 0 && (k > math.MaxInt64/absInt64(a.num) || k < math.MinInt64/absInt64(a.num)) {
		panic(ErrOverflow)
	}
	return reduce(k*a.num, a.exp)
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Cmp returns -1, 0, or +1 as a<b, a==b, or a>b.
func Cmp(a, b Dyadic) int {
	E := maxExp(a.exp, b.exp)
	an, bn := a.align(E), b.align(E)
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	default:
		return 0
	}
}

// Eq reports a == b.
func Eq(a, b Dyadic) bool { return Cmp(a, b) == 0 }

// Lt reports a < b.
func Lt(a, b Dyadic) bool { return Cmp(a, b) < 0 }

// Leq reports a <= b.
func Leq(a, b Dyadic) bool { return Cmp(a, b) <= 0 }

// Gt reports a > b.
func Gt(a, b Dyadic) bool { return Cmp(a, b) > 0 }

// Geq reports a >= b.
func Geq(a, b Dyadic) bool { return Cmp(a, b) >= 0 }

// floorDivPow2 returns floor(num / 2^exp).
func floorDivPow2(num int64, exp uint) int64 {
	if exp == 0 {
		return num
	}
	denom := int64(1) << exp
	q := num / denom
	r := num % denom
	if r < 0 {
		q--
	}
	return q
}

// Floor returns the greatest integer <= d.
func Floor(d Dyadic) int64 {
	return floorDivPow2(d.num, d.exp)
}

// SimplestAbove returns the simplest dyadic rational strictly greater
// than a: 0 if a < 0, otherwise the integer Floor(a)+1. Used by the
// Simplicity Rule (package cgt) when a game has left options but no
// right options (an unbounded-above numeric interval).
func SimplestAbove(a Dyadic) Dyadic {
	if Lt(a, Zero) {
		return Zero
	}
	return FromInt(Floor(a) + 1)
}

// SimplestBelow returns the simplest dyadic rational strictly less than
// b: the mirror image of SimplestAbove, via b's negation.
func SimplestBelow(b Dyadic) Dyadic {
	return Neg(SimplestAbove(Neg(b)))
}

// Midpoint returns the simplest dyadic rational strictly between a and b
// (a < b is required): the basis of the Simplicity Rule used during
// canonical-form reduction (package cgt). "Simplest" means: the integer
// of least absolute value in the open interval if one exists; otherwise the dyadic of
// least denominator-exponent in the interval.
//
// Implements the standard binary-descent simplicity algorithm: peel off
// the shared integer part, then recurse on the doubled fractional
// remainder until an integer falls strictly between the bounds.
func Midpoint(a, b Dyadic) (Dyadic, error) {
	if !Lt(a, b) {
		return Zero, ErrEmptyInterval
	}
	if Lt(a, Zero) && Lt(Zero, b) {
		return Zero, nil
	}
	if Geq(a, Zero) {
		return simplestNonneg(a, b), nil
	}
	// b <= 0 <= ... ; both non-positive (since the a<0<b case is handled
	// above, and a>=0 is handled above): negate and recurse.
	neg, err := Midpoint(Neg(b), Neg(a))
	if err != nil {
		return Zero, err
	}
	return Neg(neg), nil
}

// simplestNonneg implements Midpoint under the precondition 0 <= a < b.
func simplestNonneg(a, b Dyadic) Dyadic {
	m := Floor(a)
	loInt := m + 1
	if Lt(FromInt(loInt), b) {
		return FromInt(loInt)
	}
	// No integer strictly between a and b; both lie in [m, m+1).
	a2 := Double(Sub(a, FromInt(m)))
	b2 := Double(Sub(b, FromInt(m)))
	sub := simplestNonneg(a2, b2)

	return Add(FromInt(m), Half(sub))
}

// String renders d as "p" when integral, otherwise "p/q".
func (d Dyadic) String() string {
	if d.IsInteger() {
		return fmt.Sprintf("%d", d.num)
	}
	return fmt.Sprintf("%d/%d", d.num, int64(1)<<d.exp)
}

// jsonDyadic is the wire shape for Dyadic, per spec.md §6's
// {"num": ..., "den_exp": ...} record field.
type jsonDyadic struct {
	Num    int64 `json:"num"`
	DenExp uint  `json:"den_exp"`
}

// MarshalJSON encodes d as {"num": p, "den_exp": k}.
func (d Dyadic) MarshalJSON() ([]byte, error) {
	return jsonMarshal(jsonDyadic{Num: d.num, DenExp: d.exp})
}

// UnmarshalJSON decodes d from {"num": p, "den_exp": k}, reducing the
// result to lowest terms.
func (d *Dyadic) UnmarshalJSON(b []byte) error {
	var j jsonDyadic
	if err := jsonUnmarshal(b, &j); err != nil {
		return err
	}
	*d = reduce(j.Num, j.DenExp)
	return nil
}
