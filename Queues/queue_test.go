package Queues

import (
	"errors"
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestArrayQueue_FIFO(t *testing.T) {
	q := MakeArrayQueue[int](2)
	var ref []int
	next := 0
	for range 10000 {
		if rg.Intn(3) == 0 {
			v, err := q.Pop()
			if len(ref) == 0 {
				var eqe *EmptyQueueError
				if !errors.As(err, &eqe) {
					t.Fatalf("pop on empty queue gave %v", err)
				}
				continue
			}
			if err != nil || v != ref[0] {
				t.Fatalf("popped %d, %v; want %d", v, err, ref[0])
			}
			ref = ref[1:]
		} else {
			q.Push(next)
			ref = append(ref, next)
			next++
		}
		if q.Size() != uint(len(ref)) {
			t.Fatalf("size is %d, want %d", q.Size(), len(ref))
		}
		if rg.Intn(500) == 0 {
			q.Shrink()
		}
	}
	if len(ref) > 0 {
		if v, _ := q.Peek(); v != ref[0] {
			t.Errorf("peek gave %d, want %d", v, ref[0])
		}
	}
	q.Clear()
	if !q.Empty() {
		t.Error("clear left values behind")
	}
	if _, err := q.Peek(); err == nil {
		t.Error("peek on empty queue should fail")
	}
}

func TestArrayQueue_ZeroCap(t *testing.T) {
	q := MakeArrayQueue[string](0)
	q.Push("a")
	q.Push("b")
	if v, _ := q.Pop(); v != "a" {
		t.Fatalf("got %q", v)
	}
	q.Shrink()
	if v, _ := q.Pop(); v != "b" || !q.Empty() {
		t.Fatalf("got %q", v)
	}
}

func TestDeque_AgainstSlice(t *testing.T) {
	d := MakeDeque[int](1)
	var ref []int
	for i := range 20000 {
		switch rg.Intn(5) {
		case 0:
			d.Push(i)
			ref = append(ref, i)
		case 1:
			d.PushFront(i)
			ref = append([]int{i}, ref...)
		case 2:
			v, err := d.Pop()
			if len(ref) == 0 {
				if err == nil {
					t.Fatal("pop on empty deque should fail")
				}
				continue
			}
			if err != nil || v != ref[0] {
				t.Fatalf("pop gave %d, %v; want %d", v, err, ref[0])
			}
			ref = ref[1:]
		case 3:
			v, err := d.PopBack()
			if len(ref) == 0 {
				var eqe *EmptyQueueError
				if !errors.As(err, &eqe) {
					t.Fatalf("pop back on empty deque gave %v", err)
				}
				continue
			}
			if err != nil || v != ref[len(ref)-1] {
				t.Fatalf("pop back gave %d, %v; want %d", v, err, ref[len(ref)-1])
			}
			ref = ref[:len(ref)-1]
		case 4:
			if rg.Intn(50) == 0 {
				d.Shrink()
			}
		}
		if d.Size() != uint(len(ref)) {
			t.Fatalf("size is %d, want %d", d.Size(), len(ref))
		}
		if len(ref) > 0 {
			f, _ := d.Peek()
			b, _ := d.PeekBack()
			if f != ref[0] || b != ref[len(ref)-1] {
				t.Fatalf("peeks gave %d %d, want %d %d", f, b, ref[0], ref[len(ref)-1])
			}
		}
	}
}

func TestStack(t *testing.T) {
	s := MakeStack[int](0)
	var ese *EmptyStackError
	if _, err := s.Pop(); !errors.As(err, &ese) {
		t.Fatalf("pop on empty stack gave %v", err)
	}
	if _, err := s.Peek(); !errors.As(err, &ese) {
		t.Fatalf("peek on empty stack gave %v", err)
	}
	for i := range 100 {
		s.Push(i)
	}
	for i := 99; i >= 0; i-- {
		if v, _ := s.Peek(); v != i {
			t.Fatalf("peek gave %d, want %d", v, i)
		}
		if v, err := s.Pop(); err != nil || v != i {
			t.Fatalf("pop gave %d, %v; want %d", v, err, i)
		}
		if s.Size() != uint(i) {
			t.Fatalf("size is %d, want %d", s.Size(), i)
		}
	}
	if !s.Empty() {
		t.Error("stack should be empty")
	}
}

func TestRingBuffer(t *testing.T) {
	const n = 20
	b := MakeRingBuffer[int](n, false)
	if !b.IsEmpty() || b.IsFull() || b.Capacity() != n {
		t.Fatal("wrong initial state")
	}
	for i := range n {
		if sz, err := b.Write(i); err != nil || sz != uint(i+1) {
			t.Fatalf("write %d gave %d, %v", i, sz, err)
		}
		if v, _ := b.PeekNewest(); v != i {
			t.Fatalf("newest is %d, want %d", v, i)
		}
		if v, _ := b.PeekOldest(); v != 0 {
			t.Fatalf("oldest is %d, want 0", v)
		}
	}
	var fbe *FullBufferError
	if _, err := b.Write(n); !errors.As(err, &fbe) || fbe.Capacity != n {
		t.Fatalf("write to full buffer gave %v", err)
	}
	for i, v := range b.Values() {
		if v != i {
			t.Fatalf("values[%d] is %d", i, v)
		}
	}
	for i := range n {
		if v, err := b.Read(); err != nil || v != i {
			t.Fatalf("read gave %d, %v; want %d", v, err, i)
		}
	}
	if _, err := b.Read(); err == nil {
		t.Error("read on empty buffer should fail")
	}
}

func TestRingBuffer_Overwrite(t *testing.T) {
	const n = 20
	b := MakeRingBuffer[int](n, true)
	for i := range 2*n + 7 {
		if sz, err := b.Write(i); err != nil || sz != uint(min(i+1, n)) {
			t.Fatalf("write %d gave %d, %v", i, sz, err)
		}
	}
	for i := n + 7; i < 2*n+7; i++ {
		if v, err := b.Read(); err != nil || v != i {
			t.Fatalf("read gave %d, %v; want %d", v, err, i)
		}
	}
	if !b.IsEmpty() {
		t.Error("buffer should be empty")
	}
}
