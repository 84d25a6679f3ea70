package service

import "errors"

// ErrForbidden is returned when an authenticated association tries to read or
// mutate a resource owned by another association. Wrapped with context, e.g.
// "not authorized to delete this balance".
var ErrForbidden = errors.New("not authorized")
