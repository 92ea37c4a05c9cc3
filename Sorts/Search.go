package Sorts

// BinarySearch returns the index of an element of the sorted s comparing
// equal to target, or -1 if there is none. Among equal elements any one may
// be found.
// Time: O(log n)
func BinarySearch[T any](s []T, target T, cmp func(a, b T) int) int {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		if c := cmp(target, s[mid]); c == 0 {
			return mid
		} else if c > 0 {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return -1
}

// BinarySearchFind is BinarySearch returning the element itself.
func BinarySearchFind[T any](s []T, target T, cmp func(a, b T) int) (v T, ok bool) {
	if i := BinarySearch(s, target, cmp); i >= 0 {
		return s[i], true
	}
	return
}

// LinearSearch returns the index of the first element of s equal to v, or -1.
// s needs no order.
// Time: O(n)
func LinearSearch[T comparable](s []T, v T) int {
	for i := range s {
		if s[i] == v {
			return i
		}
	}
	return -1
}
