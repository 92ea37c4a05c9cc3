package Queues

// circArrQ is a circular buffer. content[head] is the oldest element and
// content[tail] the next free slot; head==tail means empty when sz==0 and
// full otherwise.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeDeque with room for initCap elements before the first resize.
func MakeDeque[T any](initCap uint) Deque[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, max(initCap, 1))}
}

// MakeArrayQueue with room for initCap elements before the first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, max(initCap, 1))}
}

func (this circArrQ[T]) Empty() bool {
	return this.sz == 0
}

// resize copies the elements in order to a new array of newLen>=sz.
func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.sz > 0 {
		if this.head < this.tail {
			copy(nc, this.content[this.head:this.tail])
		} else {
			n := copy(nc, this.content[this.head:])
			copy(nc[n:], this.content[:this.tail])
		}
	}
	this.content = nc
	this.head, this.tail = 0, this.sz%newLen
}

func (this *circArrQ[T]) Shrink() {
	this.resize(max(this.sz, 1))
}

func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this circArrQ[T]) Size() uint {
	return this.sz
}

func (this *circArrQ[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz + this.sz>>1 + 1)
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

// PushFront places item before the oldest element, so Pop returns it next.
func (this *circArrQ[T]) PushFront(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz + this.sz>>1 + 1)
	}
	this.head = this.prev(this.head)
	this.content[this.head] = item
	this.sz++
}

// prev index in the ring.
func (this circArrQ[T]) prev(i uint) uint {
	if i == 0 {
		return uint(len(this.content)) - 1
	}
	return i - 1
}

func (this *circArrQ[T]) PopBack() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	this.tail = this.prev(this.tail)
	t := this.content[this.tail]
	this.content[this.tail] = *new(T)
	this.sz--
	return t, nil
}

func (this circArrQ[T]) PeekBack() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	return this.content[this.prev(this.tail)], nil
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % uint(len(this.content))
	this.sz--
	return t, nil
}

func (this circArrQ[T]) Peek() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	return this.content[this.head], nil
}
