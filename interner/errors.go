package interner

import "errors"

// ErrUnknownHandle indicates Lookup was called with a Handle not produced
// by this Store (wrong Store instance, or a zero Handle).
var ErrUnknownHandle = errors.New("interner: unknown handle")
