// Package skijumps implements Ski-Jumps (spec.md §4.9): a position is a
// row of stacks ("moguls"), each stack a sequence of Left, Right, and
// neutral tokens. A player may remove the top token of any stack if it
// is their own colour or neutral; a stack with no legal top for either
// player is simply inert. spec.md names Ski-Jumps as a tabulated family
// without giving further rules, so this package follows the standard
// ruleset (a single row of stacks, move = pop your own colour or a
// blank from the top of any stack).
//
// Distinct stacks never interact, so Decompose splits a position into
// one single-stack component per non-empty stack — the same
// disjoint-component optimization Domineering and Snort use.
package skijumps
