package ordered

import "slices"

// InsertWhere inserts item into *items at the partition boundary defined by
// pred: immediately before the first element for which pred is false, or at
// the end when pred holds for every element. item itself is never passed to
// pred.
//
// Used on a slice kept partitioned into a "pred holds" prefix and a
// "pred fails" suffix, this keeps the partition intact.
//
// Errors: ErrInvalidArgument if items or pred is nil.
func InsertWhere[T any](items *[]T, item T, pred func(T) bool) error {
	if items == nil {
		return nilArg("items")
	}
	if pred == nil {
		return nilArg("pred")
	}

	s := *items
	at := len(s)
	for i, v := range s {
		if !pred(v) {
			at = i
			break
		}
	}
	*items = slices.Insert(s, at, item)

	return nil
}

// RemoveAllMatching deletes every element of *items for which pred holds.
// Survivors keep their relative order and the slice is compacted in place;
// the vacated tail of the backing array is zeroed so removed values are not
// retained.
//
// Errors: ErrInvalidArgument if items or pred is nil.
func RemoveAllMatching[T any](items *[]T, pred func(T) bool) error {
	if items == nil {
		return nilArg("items")
	}
	if pred == nil {
		return nilArg("pred")
	}

	*items = slices.DeleteFunc(*items, pred)

	return nil
}
