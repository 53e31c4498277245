// Package ruleset defines the contract a concrete combinatorial game
// (Domineering, Snort, Ski-Jumps, ...) implements so the search driver
// (package search) can enumerate its positions and tabulate cgt.Value
// results generically (spec.md §4.6).
//
// A Ruleset is parameterized over its own position representation P;
// Go's generics replace the open-inheritance "Game" base class a
// dynamically typed engine would reach for — new games are free
// functions and a struct satisfying the interface, nothing more.
package ruleset
