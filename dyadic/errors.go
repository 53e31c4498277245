package dyadic

import "errors"

// Sentinel errors for the dyadic package.
var (
	// ErrOverflow indicates a numerator computation exceeded the
	// representable range of int64. Fatal: callers should not retry.
	ErrOverflow = errors.New("dyadic: numerator overflow")

	// ErrNegativeExponent indicates a negative denominator-exponent was
	// supplied to a constructor; denominators are always 2^k for k >= 0.
	ErrNegativeExponent = errors.New("dyadic: negative denominator exponent")

	// ErrEmptyInterval indicates Midpoint was called with a >= b, where a
	// strictly-increasing interval (a, b) is required.
	ErrEmptyInterval = errors.New("dyadic: empty or inverted interval")
)
