package thermo

import "github.com/partizangames/cgt/dyadic"

// Thermograph is the pair of piecewise-linear trajectories (spec.md §4.4):
// the left and right scaffolds as functions of coolant temperature t,
// simplified here to their defining breakpoint — the mast. Below the
// mast temperature the scaffolds run at slope ∓1 from the left/right
// stop; at and above it, both trajectories coincide at Mean.
type Thermograph struct {
	// LeftStop is the scaffold's value at t=0: the stop reachable with
	// Left moving first, before any cooling.
	LeftStop dyadic.Dyadic
	// RightStop is the scaffold's value at t=0 for Right moving first.
	RightStop dyadic.Dyadic
	// Temperature is the mast temperature: the coolant level at which the
	// scaffolds meet. -1 marks a Number (spec.md §9 Open Question).
	Temperature dyadic.Dyadic
	// Mean is the mast value: the scaffolds' common value at and above
	// Temperature.
	Mean dyadic.Dyadic
}
