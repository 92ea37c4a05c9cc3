package Lists

type snode[T any] struct {
	v    T
	next *snode[T]
}

// LinkedList is a singly linked list with O(1) access to both ends and
// removal from the front. The zero value is an empty list.
type LinkedList[T any] struct {
	first, last *snode[T]
	size        int
}

// PushFront v and return the new size.
func (u *LinkedList[T]) PushFront(v T) int {
	u.first = &snode[T]{v, u.first}
	if u.last == nil {
		u.last = u.first
	}
	u.size++
	return u.size
}

// PushBack v and return the new size.
func (u *LinkedList[T]) PushBack(v T) int {
	n := &snode[T]{v: v}
	if u.last == nil {
		u.first = n
	} else {
		u.last.next = n
	}
	u.last = n
	u.size++
	return u.size
}

// PopFront removes and returns the first value.
func (u *LinkedList[T]) PopFront() (T, error) {
	if u.first == nil {
		return *new(T), &EmptyListError{}
	}
	n := u.first
	u.first, n.next = n.next, nil
	if u.first == nil {
		u.last = nil
	}
	u.size--
	return n.v, nil
}

func (u *LinkedList[T]) PeekFirst() (T, error) {
	if u.first == nil {
		return *new(T), &EmptyListError{}
	}
	return u.first.v, nil
}

func (u *LinkedList[T]) PeekLast() (T, error) {
	if u.last == nil {
		return *new(T), &EmptyListError{}
	}
	return u.last.v, nil
}

func (u *LinkedList[T]) Size() int {
	return u.size
}

func (u *LinkedList[T]) IsEmpty() bool {
	return u.size == 0
}

// Values from first to last.
func (u *LinkedList[T]) Values() []T {
	vs := make([]T, 0, u.size)
	for n := u.first; n != nil; n = n.next {
		vs = append(vs, n.v)
	}
	return vs
}
