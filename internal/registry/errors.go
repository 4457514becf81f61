package registry

import "errors"

// ErrNotFound is returned when a parameter path has never been written and
// the caller supplied no default.
var ErrNotFound = errors.New("parameter not found")

// ErrImmutable is returned when a write would replace an ESTABLISHED entry
// from a source that is not itself an established reference.
var ErrImmutable = errors.New("established parameter is immutable")
