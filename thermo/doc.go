// Package thermo computes thermographic quantities over cgt.Value:
// left/right stops, temperature, mean, cooling, and heating (spec.md
// §4.4). It is a pure consumer of package cgt (Cool and Heat build their
// results through cgt's interning constructors) — every
// function here is a free function over an already-canonical Value,
// dispatching recursively on LeftOptions/RightOptions the same way
// cgt.Leq does, and terminating for the same reason (birthday strictly
// decreases into options).
//
// Stops are computed by the standard mutual recursion: a position's left
// stop is the greatest right stop among its left options (or, lacking
// left options, its own right stop); its right stop is symmetric. This
// bottoms out at Number values, whose stop is the number itself — no
// thermograph has to be built eagerly to answer a single stop or
// temperature query, matching the "numeric fixpoint, not an open
// recursion" design note (spec.md §9).
package thermo
