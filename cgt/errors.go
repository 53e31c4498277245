package cgt

import "errors"

// Sentinel errors for the cgt package.
var (
	// ErrEmptyOptions indicates FromOptions was called with both option
	// sets empty; callers should use Zero() instead — FromOptions(nil,
	// nil) still returns Zero() rather than erroring, this sentinel is
	// reserved for internal invariant checks.
	ErrEmptyOptions = errors.New("cgt: empty option set where one was required")

	// ErrNotNumber indicates a value expected to be number-kind (e.g. the
	// operand of MulInt) is not.
	ErrNotNumber = errors.New("cgt: value is not a number")

	// ErrInvalidSwitch indicates Switch(a,b) was called with a<=b: the
	// pair collapses to a number and is not a valid switch construction.
	ErrInvalidSwitch = errors.New("cgt: switch requires a > b")

	// ErrParse indicates Parse could not interpret a canonical-form
	// string, per spec.md §6.
	ErrParse = errors.New("cgt: parse error")
)
