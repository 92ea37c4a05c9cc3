// Package Sorts holds comparison sorts and searches over slices. Every
// function takes a comparator returning a negative, zero or positive number;
// a comparator ranking a before b sorts a to the lower index.
package Sorts

// BubbleSort returns a sorted copy of s. Equal elements keep their order.
// Time: O(n^2)
func BubbleSort[T any](s []T, cmp func(a, b T) int) []T {
	r := append([]T(nil), s...)
	for x := len(r) - 1; x > 0; x-- {
		swapped := false
		for y := 0; y < x; y++ {
			if cmp(r[y], r[y+1]) > 0 {
				r[y], r[y+1] = r[y+1], r[y]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return r
}

// SelectionSort returns a sorted copy of s. Not stable.
// Time: O(n^2)
func SelectionSort[T any](s []T, cmp func(a, b T) int) []T {
	r := append([]T(nil), s...)
	for x := 0; x+1 < len(r); x++ {
		m := x
		for y := x + 1; y < len(r); y++ {
			if cmp(r[m], r[y]) > 0 {
				m = y
			}
		}
		r[m], r[x] = r[x], r[m]
	}
	return r
}

// MergeSort returns a sorted copy of s. Equal elements keep their order.
// Time: O(n log n); Space: O(n)
func MergeSort[T any](s []T, cmp func(a, b T) int) []T {
	r := append([]T(nil), s...)
	if len(r) > 1 {
		mergeSort(r, make([]T, len(r)), cmp)
	}
	return r
}

// mergeSort sorts s using buf, which has the same length, as scratch space.
func mergeSort[T any](s, buf []T, cmp func(a, b T) int) {
	if len(s) < 2 {
		return
	}
	mid := len(s) >> 1
	mergeSort(s[:mid], buf[:mid], cmp)
	mergeSort(s[mid:], buf[mid:], cmp)
	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		// on ties the left run goes first.
		if cmp(s[j], s[i]) < 0 {
			buf[k] = s[j]
			j++
		} else {
			buf[k] = s[i]
			i++
		}
		k++
	}
	k += copy(buf[k:], s[i:mid])
	copy(buf[k:], s[j:])
	copy(s, buf)
}

// QuickSort sorts s in place around middle pivots. Not stable.
// Time: O(n log n) expected, O(n^2) worst; Space: O(log n)
func QuickSort[T any](s []T, cmp func(a, b T) int) {
	for len(s) > 1 {
		p := partition(s, cmp)
		// recurse into the smaller side so the stack stays logarithmic.
		if p < len(s)-p-1 {
			QuickSort(s[:p], cmp)
			s = s[p+1:]
		} else {
			QuickSort(s[p+1:], cmp)
			s = s[:p]
		}
	}
}

// partition moves the middle element to its final index p: everything
// before p compares <= to it and everything after compares >=.
func partition[T any](s []T, cmp func(a, b T) int) int {
	last := len(s) - 1
	s[len(s)>>1], s[last] = s[last], s[len(s)>>1]
	p := 0
	for i := range last {
		if cmp(s[i], s[last]) < 0 {
			s[i], s[p] = s[p], s[i]
			p++
		}
	}
	s[p], s[last] = s[last], s[p]
	return p
}
