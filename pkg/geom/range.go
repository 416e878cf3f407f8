package geom

import "golang.org/x/exp/constraints"

// Range is a closed interval [Min, Max]. Min <= Max is expected but not
// enforced.
type Range[T constraints.Ordered] struct {
	Min T
	Max T
}

// NewRange returns the interval [min, max].
func NewRange[T constraints.Ordered](min, max T) Range[T] {
	return Range[T]{Min: min, Max: max}
}

// Contains reports whether x lies in the closed interval.
func (r Range[T]) Contains(x T) bool {
	return r.Min <= x && x <= r.Max
}

// Clamp returns x limited to the interval.
func (r Range[T]) Clamp(x T) T {
	if x < r.Min {
		return r.Min
	}
	if x > r.Max {
		return r.Max
	}
	return x
}
