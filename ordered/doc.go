// Package ordered implements small generic algorithms over caller-owned
// slices: key-projected binary search, stable in-place insertion sort,
// predicate-partitioned insertion and predicate-based removal.
//
// What:
//
//   - BinarySearchByKey: halving search over a slice sorted ascending by a
//     key projection. With duplicate keys it returns whichever match the
//     search path meets first, which is not necessarily the first in slice
//     order.
//   - InsertionSort: stable, in-place; no writes at all on sorted input.
//   - InsertWhere: inserts an item at the partition boundary, i.e. before the
//     first element that fails the predicate, or at the end if none fails.
//   - RemoveAllMatching: compacts the slice, dropping every element the
//     predicate holds for, preserving the order of the survivors.
//
// Nil handling:
//
//	A nil slice (for []T parameters), a nil slice pointer (for *[]T
//	parameters) and a nil function are all rejected with ErrInvalidArgument
//	before anything is read or written. *items == nil is an ordinary empty
//	slice for InsertWhere and RemoveAllMatching.
//
// Concurrency:
//
//	None of the functions synchronise. The caller must own the slice for the
//	duration of the call.
//
// Complexity:
//
//   - BinarySearchByKey: Time O(log n), key called O(log n) times
//   - InsertionSort:     Time O(n²) worst, O(n) on sorted input; Memory O(1)
//   - InsertWhere:       Time O(n); may reallocate once
//   - RemoveAllMatching: Time O(n); Memory O(1)
//
// Errors:
//
//   - ErrInvalidArgument  nil slice, slice pointer or function
//   - ErrEmptyCollection  search over a zero-length slice
//   - ErrNotFound         no element has the target key
package ordered
