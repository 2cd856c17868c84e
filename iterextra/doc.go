/*
Package iterextra implements a handful of convenience operations over
sequences of type iter.Seq.

The Deltas family returns, for each value of a sequence, the number of values
between it and its most recent previous occurrence. A value seen for the first
time yields its own zero-based position:

	values: 'a' 'b' 'c' 'a' 'c'
	deltas:  0   1   2   2   1

Three equality policies are available: Deltas compares values using ==,
DeltasBy uses a comparison function and DeltasByKey compares keys derived from
the values. Deltas and DeltasByKey index values by their most recent position,
DeltasBy keeps every value consumed and scans them from the most recent one.
In both cases memory grows with the input and is released with the traversal.
DeltaIterator offers the same results through a Next / Current interface.

MinByPartialKey and MaxByPartialKey select an extremum by a key that may not
be totally ordered, such as float64. Pairs that cannot be ordered (NaN) are
treated as equal: the minimum keeps the earliest candidate and the maximum the
latest one. Both report whether the sequence was empty instead of failing.

Functions passed as comparison or key functions must be pure. Violations, such
as a comparison function that is not transitive, are not detected and lead to
undefined results.
*/
package iterextra
