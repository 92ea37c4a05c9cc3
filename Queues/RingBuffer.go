package Queues

// RingBuffer is a circular buffer of fixed capacity. When it is full, Write
// either fails or, if overwrite is set, discards the oldest element.
type RingBuffer[T any] struct {
	q         circArrQ[T]
	overwrite bool
}

// MakeRingBuffer holding at most capacity elements, at least 1.
func MakeRingBuffer[T any](capacity uint, overwrite bool) *RingBuffer[T] {
	return &RingBuffer[T]{circArrQ[T]{content: make([]T, max(capacity, 1))}, overwrite}
}

// Write v as the newest element and return the new size. Returns
// *FullBufferError when full and not overwriting.
func (this *RingBuffer[T]) Write(v T) (uint, error) {
	if this.IsFull() {
		if !this.overwrite {
			return this.q.sz, &FullBufferError{this.Capacity()}
		}
		this.q.Pop()
	}
	this.q.Push(v)
	return this.q.sz, nil
}

// Read removes and returns the oldest element.
func (this *RingBuffer[T]) Read() (T, error) {
	return this.q.Pop()
}

// PeekOldest is the element Read returns next.
func (this *RingBuffer[T]) PeekOldest() (T, error) {
	return this.q.Peek()
}

// PeekNewest is the element last written.
func (this *RingBuffer[T]) PeekNewest() (T, error) {
	return this.q.PeekBack()
}

// Values from oldest to newest.
func (this *RingBuffer[T]) Values() []T {
	vs := make([]T, 0, this.q.sz)
	for i := range this.q.sz {
		vs = append(vs, this.q.content[(this.q.head+i)%uint(len(this.q.content))])
	}
	return vs
}

func (this *RingBuffer[T]) Size() uint {
	return this.q.sz
}

func (this *RingBuffer[T]) Capacity() uint {
	return uint(len(this.q.content))
}

func (this *RingBuffer[T]) IsEmpty() bool {
	return this.q.sz == 0
}

func (this *RingBuffer[T]) IsFull() bool {
	return this.q.sz == uint(len(this.q.content))
}
