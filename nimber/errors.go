package nimber

import "errors"

// ErrNegative indicates a Nimber was constructed from a negative integer.
// Nimbers represent Sprague-Grundy values and are never negative.
var ErrNegative = errors.New("nimber: negative value")
