package profile

import "errors"

// ErrInvalidFormat is returned by Import when the payload is not a JSON
// object or lacks a non-empty userId field. It is the only error the
// store surfaces for untrusted input; all other read paths degrade to
// empty defaults.
var ErrInvalidFormat = errors.New("invalid bundle format")
