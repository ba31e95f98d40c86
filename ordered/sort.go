package ordered

// InsertionSort sorts items in place, ascending according to compare.
//
// Each element from index 1 onward is lifted out and the preceding elements
// that compare strictly after it are shifted one slot right; the element is
// then dropped into the gap. Elements that compare equal never pass each
// other, so the sort is stable. A sorted slice is left untouched: no element
// is written.
//
// Errors: ErrInvalidArgument if items or compare is nil. items is not
// modified on error.
func InsertionSort[T any](items []T, compare func(a, b T) int) error {
	if items == nil {
		return nilArg("items")
	}
	if compare == nil {
		return nilArg("compare")
	}

	for i := 1; i < len(items); i++ {
		// fast path: already in place
		if compare(items[i-1], items[i]) <= 0 {
			continue
		}
		cur := items[i]
		j := i - 1
		for j >= 0 && compare(items[j], cur) > 0 {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = cur
	}

	return nil
}
