package lattice

import "fmt"

const (
	// DefaultFlatness is the default maximum distance between a curve's
	// control points and the chord that replaces it.
	DefaultFlatness = 0.5
	// DefaultFlatteningLimit is the default maximum number of times a single
	// curve is bisected.
	DefaultFlatteningLimit = 10
)

// FlattenOption configures curve flattening.
type FlattenOption func(*flattenOptions)

type flattenOptions struct {
	flatness float64
	limit    int
}

func defaultFlattenOptions() flattenOptions {
	return flattenOptions{
		flatness: DefaultFlatness,
		limit:    DefaultFlatteningLimit,
	}
}

// WithFlatness sets the flattening tolerance. It panics if flatness is
// negative.
func WithFlatness(flatness float64) FlattenOption {
	if flatness < 0 {
		panic(fmt.Sprintf("lattice: negative flatness %g", flatness))
	}
	return func(o *flattenOptions) {
		o.flatness = flatness
	}
}

// WithLimit sets the maximum recursion depth of curve subdivision. It panics
// if limit is negative.
func WithLimit(limit int) FlattenOption {
	if limit < 0 {
		panic(fmt.Sprintf("lattice: negative flattening limit %d", limit))
	}
	return func(o *flattenOptions) {
		o.limit = limit
	}
}

func newFlattenOptions(opts []FlattenOption) flattenOptions {
	o := defaultFlattenOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
