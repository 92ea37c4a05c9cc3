package Heaps

// BinaryHeap is a heap stored in a slice. The root is the element that cmp
// ranks lowest: cmp(a, b) < 0 moves a towards the root, so passing a
// comparator that orders descending gives a max heap. Elements comparing
// equal keep no particular order relative to each other.
type BinaryHeap[T any] struct {
	heap []T
	lim  int
	cmp  func(a, b T) int
}

// New returns an empty BinaryHeap holding at most capacity elements.
// capacity <= 0 means the heap grows without limit.
func New[T any](capacity int, cmp func(a, b T) int) *BinaryHeap[T] {
	if cmp == nil {
		panic("Heaps: nil comparator")
	}
	u := &BinaryHeap[T]{lim: capacity, cmp: cmp}
	if capacity > 0 {
		u.heap = make([]T, 0, capacity)
	}
	return u
}

func parent(i int) int {
	return (i - 1) >> 1
}

func left(i int) int {
	return i<<1 + 1
}

// Add an element, restoring the heap property by sifting it up.
// Returns the new size, or FullHeapError if the heap is at capacity.
// Time: O(log n)
func (u *BinaryHeap[T]) Add(v T) (int, error) {
	if u.IsFull() {
		return len(u.heap), &FullHeapError{u.lim}
	}
	u.heap = append(u.heap, v)
	for c := len(u.heap) - 1; c > 0; {
		p := parent(c)
		if u.cmp(u.heap[c], u.heap[p]) >= 0 {
			break
		}
		u.heap[c], u.heap[p] = u.heap[p], u.heap[c]
		c = p
	}
	return len(u.heap), nil
}

// Remove the root, restoring the heap property by sifting the last element
// down from the root.
// Time: O(log n)
func (u *BinaryHeap[T]) Remove() (T, error) {
	if len(u.heap) == 0 {
		return *new(T), &EmptyHeapError{}
	}
	last := len(u.heap) - 1
	root := u.heap[0]
	u.heap[0] = u.heap[last]
	u.heap[last] = *new(T)
	u.heap = u.heap[:last]
	for p := 0; ; {
		c := left(p)
		if c >= last {
			break
		}
		if r := c + 1; r < last && u.cmp(u.heap[r], u.heap[c]) < 0 {
			c = r
		}
		if u.cmp(u.heap[c], u.heap[p]) >= 0 {
			break
		}
		u.heap[c], u.heap[p] = u.heap[p], u.heap[c]
		p = c
	}
	return root, nil
}

// Peek at the root without removing it.
func (u *BinaryHeap[T]) Peek() (T, error) {
	if len(u.heap) == 0 {
		return *new(T), &EmptyHeapError{}
	}
	return u.heap[0], nil
}

func (u *BinaryHeap[T]) Size() int {
	return len(u.heap)
}

func (u *BinaryHeap[T]) IsEmpty() bool {
	return len(u.heap) == 0
}

// IsFull is always false for an unbounded heap.
func (u *BinaryHeap[T]) IsFull() bool {
	return u.lim > 0 && len(u.heap) >= u.lim
}

// Clear the heap, keeping the allocated array.
func (u *BinaryHeap[T]) Clear() {
	clear(u.heap)
	u.heap = u.heap[:0]
}
