package system

import "errors"

// ErrInvariant reports a broken lifecycle contract, e.g. a gated system
// running without its singleton cube or camera. It is not recoverable.
var ErrInvariant = errors.New("scene invariant violated")
