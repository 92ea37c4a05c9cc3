package Lists

type dnode[T any] struct {
	v          T
	prev, next *dnode[T]
}

// DoubleLinkedList is a doubly linked list. Both ends are O(1); positions are
// reached by walking from the nearer end. The zero value is an empty list.
type DoubleLinkedList[T any] struct {
	first, last *dnode[T]
	size        int
}

func (u *DoubleLinkedList[T]) PushFront(v T) int {
	n := &dnode[T]{v: v, next: u.first}
	if u.first == nil {
		u.last = n
	} else {
		u.first.prev = n
	}
	u.first = n
	u.size++
	return u.size
}

func (u *DoubleLinkedList[T]) PushBack(v T) int {
	n := &dnode[T]{v: v, prev: u.last}
	if u.last == nil {
		u.first = n
	} else {
		u.last.next = n
	}
	u.last = n
	u.size++
	return u.size
}

// at returns the node at i, which must be in range.
// Time: O(min(i, Size-i))
func (u *DoubleLinkedList[T]) at(i int) *dnode[T] {
	if i < u.size>>1 {
		n := u.first
		for range i {
			n = n.next
		}
		return n
	}
	n := u.last
	for range u.size - 1 - i {
		n = n.prev
	}
	return n
}

// check that i addresses an existing value.
func (u *DoubleLinkedList[T]) check(i int) error {
	if u.size == 0 {
		return &EmptyListError{}
	} else if i < 0 || i >= u.size {
		return &IndexError{i, u.size}
	}
	return nil
}

// Insert v so that it ends up at index i, 0<=i<=Size. Returns the new size.
func (u *DoubleLinkedList[T]) Insert(i int, v T) (int, error) {
	if i < 0 || i > u.size {
		return u.size, &IndexError{i, u.size}
	} else if i == 0 {
		return u.PushFront(v), nil
	} else if i == u.size {
		return u.PushBack(v), nil
	}
	old := u.at(i)
	n := &dnode[T]{v, old.prev, old}
	old.prev.next, old.prev = n, n
	u.size++
	return u.size, nil
}

// Get the value at index i.
func (u *DoubleLinkedList[T]) Get(i int) (T, error) {
	if err := u.check(i); err != nil {
		return *new(T), err
	}
	return u.at(i).v, nil
}

// unlink n from the list.
func (u *DoubleLinkedList[T]) unlink(n *dnode[T]) T {
	if n.prev == nil {
		u.first = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		u.last = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	u.size--
	return n.v
}

// Remove and return the value at index i.
func (u *DoubleLinkedList[T]) Remove(i int) (T, error) {
	if err := u.check(i); err != nil {
		return *new(T), err
	}
	return u.unlink(u.at(i)), nil
}

func (u *DoubleLinkedList[T]) PopFront() (T, error) {
	if u.first == nil {
		return *new(T), &EmptyListError{}
	}
	return u.unlink(u.first), nil
}

func (u *DoubleLinkedList[T]) PopBack() (T, error) {
	if u.last == nil {
		return *new(T), &EmptyListError{}
	}
	return u.unlink(u.last), nil
}

func (u *DoubleLinkedList[T]) PeekFirst() (T, error) {
	if u.first == nil {
		return *new(T), &EmptyListError{}
	}
	return u.first.v, nil
}

func (u *DoubleLinkedList[T]) PeekLast() (T, error) {
	if u.last == nil {
		return *new(T), &EmptyListError{}
	}
	return u.last.v, nil
}

func (u *DoubleLinkedList[T]) Size() int {
	return u.size
}

func (u *DoubleLinkedList[T]) IsEmpty() bool {
	return u.size == 0
}

// Values from first to last.
func (u *DoubleLinkedList[T]) Values() []T {
	vs := make([]T, 0, u.size)
	for n := u.first; n != nil; n = n.next {
		vs = append(vs, n.v)
	}
	return vs
}

// Reversed values, from last to first.
func (u *DoubleLinkedList[T]) Reversed() []T {
	vs := make([]T, 0, u.size)
	for n := u.last; n != nil; n = n.prev {
		vs = append(vs, n.v)
	}
	return vs
}
