// Package dyadic implements exact dyadic-rational arithmetic: numbers of
// the form p/2^k with k >= 0, always stored in lowest terms (p odd, or
// p == 0 and k == 0).
//
// Dyadic rationals close under addition, subtraction, negation, halving,
// and doubling, and carry a total order. They underlie number-valued
// combinatorial games and thermograph breakpoints (package thermo), where
// exactness under repeated halving is required.
//
// Construction panics on overflow of the numerator or on a negative
// denominator-exponent: both indicate a programmer error (a game tree far
// beyond practical depth, or a malformed literal), not a recoverable input
// condition — see ErrOverflow and ErrNegativeExponent.
package dyadic
