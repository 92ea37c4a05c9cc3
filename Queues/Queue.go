package Queues

import "fmt"

// Queue gives back elements in the order they were pushed.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, error)
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

// Deque is a Queue that can also be pushed to and popped from the back.
type Deque[T any] interface {
	ArrayQueue[T]
	PushFront(item T)
	PopBack() (T, error)
	PeekBack() (T, error)
}

// Stack gives back the last pushed element first.
type Stack[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, error)
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}

// FullBufferError is returned by RingBuffer.Write when the buffer holds
// Capacity elements and may not overwrite.
type FullBufferError struct {
	Capacity uint
}

func (e *FullBufferError) Error() string {
	return fmt.Sprintf("RingBuffer is Full: cannot Write beyond %d elements.", e.Capacity)
}
