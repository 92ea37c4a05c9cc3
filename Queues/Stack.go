package Queues

// arrStack is the back end of a circArrQ.
type arrStack[T any] struct {
	q circArrQ[T]
}

// MakeStack with room for initCap elements before the first resize.
func MakeStack[T any](initCap uint) Stack[T] {
	return &arrStack[T]{circArrQ[T]{content: make([]T, max(initCap, 1))}}
}

func (this *arrStack[T]) Push(item T) {
	this.q.Push(item)
}

func (this *arrStack[T]) Pop() (T, error) {
	if this.q.Empty() {
		return *new(T), &EmptyStackError{}
	}
	return this.q.PopBack()
}

func (this *arrStack[T]) Peek() (T, error) {
	if this.q.Empty() {
		return *new(T), &EmptyStackError{}
	}
	return this.q.PeekBack()
}

func (this *arrStack[T]) Empty() bool {
	return this.q.Empty()
}

func (this *arrStack[T]) Size() uint {
	return this.q.sz
}
