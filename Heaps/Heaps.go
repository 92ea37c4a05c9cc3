package Heaps

import "fmt"

// Heap is a priority queue giving back the lowest ranked element first.
type Heap[T any] interface {
	Add(v T) (int, error)
	Remove() (T, error)
	Peek() (T, error)
	Size() int
	IsEmpty() bool
}

var _ Heap[int] = (*BinaryHeap[int])(nil)

type EmptyHeapError struct {
}

func (e *EmptyHeapError) Error() string {
	return "Heap is Empty: cannot Remove."
}

type FullHeapError struct {
	capacity int
}

func (e *FullHeapError) Error() string {
	return fmt.Sprintf("Heap is Full: capacity %d reached.", e.capacity)
}
