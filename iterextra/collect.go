package iterextra

import (
	"errors"
	"iter"
	"slices"
)

// ErrEmpty is returned by CollectOrEmpty when the sequence yields no value.
var ErrEmpty = errors.New("empty sequence")

// CollectNonEmpty collects the values of seq into a new slice. The second
// return value is false, and the slice nil, if seq yields no value.
func CollectNonEmpty[T any](seq iter.Seq[T]) ([]T, bool) {
	s := slices.Collect(seq)
	if len(s) == 0 {
		return nil, false
	}
	return s, true
}

// CollectOr collects the values of seq into a new slice, returning err if
// seq yields no value.
func CollectOr[T any](seq iter.Seq[T], err error) ([]T, error) {
	s, ok := CollectNonEmpty(seq)
	if !ok {
		return nil, err
	}
	return s, nil
}

// CollectOrEmpty is like CollectOr using ErrEmpty as the error.
func CollectOrEmpty[T any](seq iter.Seq[T]) ([]T, error) {
	return CollectOr(seq, ErrEmpty)
}
