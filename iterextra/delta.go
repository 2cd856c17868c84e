package iterextra

import "iter"

// entry is a value recorded in a history buffer along with the position
// at which it was consumed.
type entry[T any] struct {
	item  T
	index int
}

// history is the ordered record of every value consumed by a DeltasBy
// traversal. It grows by one entry per value and is never deduplicated.
type history[T any] struct {
	items []entry[T]
	cmp   func(a, b T) int
}

// observe records v and returns its delta. The buffer is scanned from the
// most recent entry backwards before v is appended, so v is never compared
// against itself.
func (h *history[T]) observe(v T) int {
	next := len(h.items)
	last := -1
	for i := next - 1; i >= 0; i-- {
		if h.cmp(h.items[i].item, v) == 0 {
			last = h.items[i].index
			break
		}
	}
	h.items = append(h.items, entry[T]{item: v, index: next})
	return delta(next, last)
}

// index maps each distinct value to the position of its most recent
// occurrence. It yields the same deltas as a history buffer scanned
// backwards, as long as equality is an equivalence relation.
type index[K comparable] struct {
	last map[K]int
	next int
}

func newIndex[K comparable]() *index[K] {
	return &index[K]{last: make(map[K]int)}
}

// observe records k and returns its delta.
func (x *index[K]) observe(k K) int {
	last, ok := x.last[k]
	if !ok {
		last = -1
	}
	next := x.next
	x.last[k] = next
	x.next++
	return delta(next, last)
}

// delta returns the number of values strictly between positions last and
// next, or next itself when last is negative.
func delta(next, last int) int {
	if last < 0 {
		return next
	}
	return next - last - 1
}

// Deltas returns a sequence yielding, for each value of seq, the number of
// values between it and its previous occurrence. A value seen for the first
// time yields its own zero-based position.
//
// Each iteration over the returned sequence keeps its own state, which grows
// with the number of distinct values consumed.
func Deltas[T comparable](seq iter.Seq[T]) iter.Seq[int] {
	return func(yield func(int) bool) {
		x := newIndex[T]()
		for v := range seq {
			if !yield(x.observe(v)) {
				return
			}
		}
	}
}

// DeltasBy is like Deltas but two values are considered equal when cmp
// returns 0. cmp is called with the older value first and must be
// consistent for the result to be well defined.
//
// Every value consumed is kept and the history is scanned linearly, so a
// full iteration costs O(n²) comparisons in the worst case.
func DeltasBy[T any](seq iter.Seq[T], cmp func(a, b T) int) iter.Seq[int] {
	return func(yield func(int) bool) {
		h := history[T]{cmp: cmp}
		for v := range seq {
			if !yield(h.observe(v)) {
				return
			}
		}
	}
}

// DeltasByKey is like Deltas but two values are considered equal when the
// keys extracted by key are equal. key must be a pure function.
func DeltasByKey[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[int] {
	return func(yield func(int) bool) {
		x := newIndex[K]()
		for v := range seq {
			if !yield(x.observe(key(v))) {
				return
			}
		}
	}
}

// A DeltaIterator pulls deltas one at a time from an underlying sequence.
// It must not be used from multiple goroutines.
type DeltaIterator struct {
	next  func() (int, bool)
	stop  func()
	cur   int
	index int
	done  bool
}

// NewDeltaIterator creates a DeltaIterator over the values of seq compared
// using ==. The caller must call Close unless Next has returned false.
func NewDeltaIterator[T comparable](seq iter.Seq[T]) *DeltaIterator {
	return newDeltaIterator(Deltas(seq))
}

// NewDeltaIteratorBy creates a DeltaIterator over the values of seq
// compared using cmp.
func NewDeltaIteratorBy[T any](seq iter.Seq[T], cmp func(a, b T) int) *DeltaIterator {
	return newDeltaIterator(DeltasBy(seq, cmp))
}

// NewDeltaIteratorByKey creates a DeltaIterator over the values of seq
// compared by the keys extracted by key.
func NewDeltaIteratorByKey[T any, K comparable](seq iter.Seq[T], key func(T) K) *DeltaIterator {
	return newDeltaIterator(DeltasByKey(seq, key))
}

func newDeltaIterator(deltas iter.Seq[int]) *DeltaIterator {
	next, stop := iter.Pull(deltas)
	return &DeltaIterator{next: next, stop: stop, index: -1}
}

// Next advances the underlying sequence by one value and returns true if a
// delta is available.
func (it *DeltaIterator) Next() bool {
	if it.done {
		return false
	}
	v, ok := it.next()
	if !ok {
		it.done = true
		it.stop()
		return false
	}
	it.cur = v
	it.index++
	return true
}

// Current returns the delta of the current value.
func (it *DeltaIterator) Current() int {
	return it.cur
}

// Index returns the zero-based position of the current value, or -1 if
// Next has not been called yet.
func (it *DeltaIterator) Index() int {
	return it.index
}

// Close releases the underlying sequence. Subsequent calls to Next return
// false.
func (it *DeltaIterator) Close() {
	it.done = true
	it.stop()
}
