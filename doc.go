// Package cgt (module github.com/partizangames/cgt) is a short-game
// value engine for Combinatorial Game Theory: it represents positions
// in two-player, perfect-information, alternating-move, no-chance
// partizan games and computes their value-theoretic invariants —
// canonical form, temperature, thermograph, mean, and related numeric
// summaries — then runs exhaustive searches over families of concrete
// games (Domineering, Snort, Ski-Jumps) to tabulate those invariants.
//
// Everything lives in subpackages:
//
//	dyadic/     — exact dyadic-rational arithmetic (the numbers CGT values are built from)
//	nimber/     — Sprague-Grundy nimber arithmetic
//	interner/   — sharded concurrent value interning and operation caches
//	cgt/        — the Value type itself: canonicalization, ordering, arithmetic, rendering
//	thermo/     — thermographs, temperature, cooling, heating, mean
//	ruleset/    — the Ruleset[P] contract concrete games implement
//	search/     — parallel tabulation driver with progress, checkpointing, and JSON output
//	boardutil/  — board-symmetry canonicalization and connected-component splitting
//	games/      — concrete rulesets: domineering, snort, skijumps
//
// This module carries over the thread-safety and structural-sharing
// conventions of its lineage (core.Graph's independent locks, Dijkstra's
// functional-options runner shape) generalized from graph algorithms to
// game-value computation.
package cgt
