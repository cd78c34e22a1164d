package lattice

import "errors"

// ErrUnsupported is returned, possibly wrapped, by operations that have no
// answer for a particular combination of shapes.
var ErrUnsupported = errors.New("unsupported shape combination")
