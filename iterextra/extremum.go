package iterextra

import (
	"cmp"
	"iter"
)

// PartialCompare compares a and b, and returns
//   - -1 if a < b
//   - 0 if a == b
//   - 1 if a > b
//
// The second return value is false if a and b are unordered, which only
// happens when one of them is a floating-point NaN.
func PartialCompare[K cmp.Ordered](a, b K) (int, bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	case a == b:
		return 0, true
	}
	return 0, false
}

// MinByPartialKey returns the value of seq for which key returns the
// smallest key. Keys that cannot be ordered, such as NaN, are treated as
// equal to any other key. On ties the earliest value wins. The second
// return value is false if seq is empty.
func MinByPartialKey[T any, K cmp.Ordered](seq iter.Seq[T], key func(T) K) (T, bool) {
	return MinByPartial(seq, byPartialKey(key))
}

// MaxByPartialKey returns the value of seq for which key returns the
// largest key. Keys that cannot be ordered are treated as equal to any
// other key. On ties the latest value wins. The second return value is
// false if seq is empty.
func MaxByPartialKey[T any, K cmp.Ordered](seq iter.Seq[T], key func(T) K) (T, bool) {
	return MaxByPartial(seq, byPartialKey(key))
}

// MinByPartial returns the smallest value of seq according to the partial
// comparison function compare. Pairs reported as unordered are treated as
// equal and the earliest value wins on ties.
func MinByPartial[T any](seq iter.Seq[T], compare func(a, b T) (int, bool)) (T, bool) {
	return reduce(seq, func(acc, v T) T {
		if partialOrEqual(compare(acc, v)) > 0 {
			return v
		}
		return acc
	})
}

// MaxByPartial returns the largest value of seq according to the partial
// comparison function compare. Pairs reported as unordered are treated as
// equal and the latest value wins on ties.
func MaxByPartial[T any](seq iter.Seq[T], compare func(a, b T) (int, bool)) (T, bool) {
	return reduce(seq, func(acc, v T) T {
		if partialOrEqual(compare(acc, v)) > 0 {
			return acc
		}
		return v
	})
}

// byPartialKey returns a partial comparison function of the keys extracted
// by key. key is called for both operands on every comparison.
func byPartialKey[T any, K cmp.Ordered](key func(T) K) func(a, b T) (int, bool) {
	return func(a, b T) (int, bool) {
		return PartialCompare(key(a), key(b))
	}
}

func partialOrEqual(c int, ok bool) int {
	if !ok {
		return 0
	}
	return c
}

// reduce folds the values of seq from left to right using the first value
// as the initial accumulator.
func reduce[T any](seq iter.Seq[T], fn func(acc, v T) T) (T, bool) {
	var (
		acc T
		ok  bool
	)
	for v := range seq {
		if !ok {
			acc, ok = v, true
			continue
		}
		acc = fn(acc, v)
	}
	return acc, ok
}
