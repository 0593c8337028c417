package errs

import "errors"

// ErrForbidden is returned by use cases when the caller lacks a capability.
var ErrForbidden = errors.New("operation not permitted")
