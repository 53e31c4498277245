// Package nimber implements nimbers: non-negative integers under XOR,
// representing the Sprague-Grundy value *n of an impartial combinatorial
// game. *0 = 0; *n + *m = *(n XOR m).
//
// Mex (minimum excludant) is the construction used to compute the
// Sprague-Grundy value of a position from the Grundy values of its
// options, once a short-game value (package cgt) has collapsed to pure
// impartial form (dyadic part zero).
package nimber
