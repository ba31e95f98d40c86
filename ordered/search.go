package ordered

import (
	"cmp"
	"fmt"
)

// BinarySearchByKey returns the element of items whose key equals target.
//
// items must already be sorted ascending by key; this is not verified and a
// violated precondition yields an arbitrary ErrNotFound or wrong match rather
// than a panic. key is called once per halving step and must not modify items.
//
// When several elements share target, the one returned is the first the
// search path lands on, not necessarily the first in slice order.
//
// Errors: ErrInvalidArgument if items or key is nil, ErrEmptyCollection if
// items has no elements, ErrNotFound if no element matches.
func BinarySearchByKey[T any, K cmp.Ordered](items []T, key func(T) K, target K) (T, error) {
	var zero T
	// 1. Validate inputs
	if items == nil {
		return zero, nilArg("items")
	}
	if key == nil {
		return zero, nilArg("key")
	}
	if len(items) == 0 {
		return zero, ErrEmptyCollection
	}

	// 2. Halve [lo, hi) until the target is hit or the range is empty
	lo, hi := 0, len(items)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := cmp.Compare(key(items[mid]), target); {
		case c == 0:
			return items[mid], nil
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return zero, fmt.Errorf("%w: %v", ErrNotFound, target)
}
