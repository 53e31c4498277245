package thermo

import "errors"

// ErrNegativeCoolant indicates Cool was called with a coolant
// temperature below -1, the lowest temperature any short game can have,
// or Heat with a coolant below 0.
var ErrNegativeCoolant = errors.New("thermo: coolant below the allowed minimum")
