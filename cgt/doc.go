// Package cgt is the short-game value engine: the representation of
// partizan combinatorial game values as recursively defined objects
// {L1,L2,...|R1,R2,...}, their canonicalization (dominated-option
// elimination plus reversibility), arithmetic (disjunctive sum, negation,
// comparison, integer multiplication), and the derived incentives used by
// thermograph construction (package thermo).
//
// A Value is one of four closed kinds — Number, NumberPlusNimber, Switch,
// General — dispatched on internally rather than exposed through an open
// type hierarchy (spec.md §9, "Polymorphism by capability set"). Values
// are immutable and structurally shared: every constructor funnels
// through the package-level interner.Store (package interner), so two
// values with the same canonical form are always the same Value.
//
// Construction from raw option lists (FromOptions) runs the
// canonicalization algorithm: the Simplicity Rule (bypass to a number
// when possible), dominated-option removal, and reversible-option
// bypassing, iterated to a fixpoint. The literal constructors Zero,
// Number and Star intern their result directly and skip the general
// algorithm; Switch builds its value through FromOptions.
package cgt
