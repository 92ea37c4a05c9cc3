package Trees

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
	"golang.org/x/exp/constraints"
)

var _ containers.Container = (*AVLTree[int])(nil)
var _ Tree[int] = (*AVLTree[int])(nil)

// AVLTree is a binary search tree that may hold repeated values. It maintains
// balance through rotations by checking the heights of subtrees: after every
// mutation the two subtree heights of each node differ by at most 1.
// Values are ordered by cmp, which must be a total order returning a negative,
// zero or positive number. Values comparing equal to an existing value are
// routed to its left, so among equal values neither insertion order nor which
// one Pop removes is defined.
// The worst case height of the tree is less than 1.44*log2(n+2)-0.33, D below.
// AVLTree is not safe for concurrent use.
type AVLTree[T any] struct {
	root *node[T]
	size int
	cmp  func(a, b T) int
}

// New returns an empty AVLTree ordered by cmp.
func New[T any](cmp func(a, b T) int) *AVLTree[T] {
	if cmp == nil {
		panic("Trees: nil comparator")
	}
	return &AVLTree[T]{cmp: cmp}
}

// NewOrdered returns an empty AVLTree ordered by cmp.Compare.
func NewOrdered[T constraints.Ordered]() *AVLTree[T] {
	return New[T](cmp.Compare[T])
}

// From builds an AVLTree using the given sorted slice recursively. This is faster than
// repeatedly calling Push. The slice must be non-decreasing under cmp, otherwise
// InvalidSliceError is returned. The slice is only read.
// Time: O(n).
func From[T any](sli []T, cmp func(a, b T) int) (*AVLTree[T], error) {
	u := New(cmp)
	for i := 1; i < len(sli); i++ {
		if cmp(sli[i-1], sli[i]) > 0 {
			return nil, InvalidSliceError{i}
		}
	}
	var build func([]T) *node[T]
	build = func(s []T) *node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := &node[T]{v: s[mid]}
		n.setL(build(s[:mid]))
		n.setR(build(s[mid+1:]))
		return n
	}
	u.root, u.size = build(sli), len(sli)
	return u, nil
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Size() int {
	return u.size
}

func (u *AVLTree[T]) IsEmpty() bool {
	return u.size == 0
}

// Empty is IsEmpty, for containers.Container.
func (u *AVLTree[T]) Empty() bool {
	return u.size == 0
}

// Height is the length of the longest path from the root to a leaf. 0 for
// both an empty tree and a single node.
func (u *AVLTree[T]) Height() int {
	if u.root == nil {
		return 0
	}
	return int(max(u.root.lh, u.root.rh))
}

// Clear removes every value. The comparator is kept.
func (u *AVLTree[T]) Clear() {
	u.root, u.size = nil, 0
}

// push places n into the subtree rooting at cur recursively, then rebalances
// cur on the way back. curPtr is passed by reference.
func (u *AVLTree[T]) push(curPtr **node[T], n *node[T]) {
	cur := *curPtr
	if cur == nil {
		*curPtr = n
		return
	}
	if u.cmp(n.v, cur.v) <= 0 {
		c := cur.takeL()
		u.push(&c, n)
		cur.setL(c)
	} else {
		c := cur.takeR()
		u.push(&c, n)
		cur.setR(c)
	}
	rebalance(curPtr)
}

// Push [Tree.Push]. Recursive.
// Duplicates are kept, so the size always grows by 1.
// Time: O(D)
func (u *AVLTree[T]) Push(v T) int {
	u.push(&u.root, &node[T]{v: v})
	u.size++
	return u.size
}

// popBiggest detaches the rightmost node of the non-empty subtree rooting at
// curPtr, splicing its left child into its place and rebalancing every node
// on the path to it. Recursive.
func popBiggest[T any](curPtr **node[T]) *node[T] {
	cur := *curPtr
	if cur.r == nil {
		*curPtr = cur.takeL()
		return cur
	}
	c := cur.takeR()
	m := popBiggest(&c)
	cur.setR(c)
	rebalance(curPtr)
	return m
}

// popSmallest mirrors popBiggest.
func popSmallest[T any](curPtr **node[T]) *node[T] {
	cur := *curPtr
	if cur.l == nil {
		*curPtr = cur.takeR()
		return cur
	}
	c := cur.takeL()
	m := popSmallest(&c)
	cur.setL(c)
	rebalance(curPtr)
	return m
}

// pop removes a node whose value equals v from the subtree rooting at curPtr
// recursively. Returns the removed node, or nil if there is none, in which
// case the subtree is unchanged.
// A matched inner node is replaced by the maximum of its left subtree if the
// left side is at least as tall, otherwise by the minimum of its right subtree.
func (u *AVLTree[T]) pop(curPtr **node[T], v T) *node[T] {
	cur := *curPtr
	if cur == nil {
		return nil
	}
	var removed *node[T]
	if c := u.cmp(v, cur.v); c == 0 {
		removed = cur
		if cur.l != nil && cur.lh >= cur.rh {
			l := cur.takeL()
			m := popBiggest(&l)
			m.setL(l)
			m.setR(cur.takeR())
			*curPtr = m
		} else if cur.r != nil {
			r := cur.takeR()
			m := popSmallest(&r)
			m.setL(cur.takeL())
			m.setR(r)
			*curPtr = m
		} else {
			*curPtr = nil
			return removed
		}
	} else if c < 0 {
		if cur.l == nil {
			return nil
		}
		l := cur.takeL()
		removed = u.pop(&l, v)
		cur.setL(l)
	} else {
		if cur.r == nil {
			return nil
		}
		r := cur.takeR()
		removed = u.pop(&r, v)
		cur.setR(r)
	}
	if removed != nil {
		rebalance(curPtr)
	}
	return removed
}

// Pop [Tree.Pop]. Recursive.
// Time: O(D)
func (u *AVLTree[T]) Pop(v T) (T, Result) {
	if u.root == nil {
		return *new(T), EmptyTree
	}
	if n := u.pop(&u.root, v); n != nil {
		u.size--
		return n.v, Ok
	}
	return *new(T), NotFound
}

// PopSmallest [Tree.PopSmallest]. Recursive.
// Time: O(D)
func (u *AVLTree[T]) PopSmallest() (T, Result) {
	if u.root == nil {
		return *new(T), EmptyTree
	}
	u.size--
	return popSmallest(&u.root).v, Ok
}

// PopBiggest [Tree.PopBiggest]. Recursive.
// Time: O(D)
func (u *AVLTree[T]) PopBiggest() (T, Result) {
	if u.root == nil {
		return *new(T), EmptyTree
	}
	u.size--
	return popBiggest(&u.root).v, Ok
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Find(v T) (T, Result) {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c == 0 {
			return cur.v, Ok
		} else {
			cur = cur.r
		}
	}
	return *new(T), NotFound
}

// Has v in the tree.
func (u *AVLTree[T]) Has(v T) bool {
	_, r := u.Find(v)
	return r == Ok
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Minimum() (T, Result) {
	cur := u.root
	if cur == nil {
		return *new(T), EmptyTree
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, Ok
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Maximum() (T, Result) {
	cur := u.root
	if cur == nil {
		return *new(T), EmptyTree
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, Ok
}

// heightOf recomputes the height of the subtree rooting at n, counting its
// nodes into c. ok is false if some cached height is stale or unbalanced.
func heightOf[T any](n *node[T], c *int) (h uint8, ok bool) {
	if n == nil {
		return 0, true
	}
	*c++
	lh, lok := heightOf(n.l, c)
	rh, rok := heightOf(n.r, c)
	return max(lh, rh) + 1, lok && rok && n.lh == lh && n.rh == rh && lh <= rh+1 && rh <= lh+1
}

// Corrupt [Tree.Corrupt]
// Time: O(n)
func (u *AVLTree[T]) Corrupt() bool {
	c := 0
	if _, ok := heightOf(u.root, &c); !ok || c != u.size {
		return true
	}
	it := u.Ascending()
	prev, _ := it.Next()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if u.cmp(prev, v) > 0 {
			return true
		}
		prev = v
	}
	return false
}

// Values in ascending order, for containers.Container.
// Time: O(n)
func (u *AVLTree[T]) Values() []interface{} {
	vs := make([]interface{}, 0, u.size)
	for it := u.Ascending(); ; {
		v, ok := it.Next()
		if !ok {
			return vs
		}
		vs = append(vs, v)
	}
}

func (u *AVLTree[T]) String() string {
	var sb strings.Builder
	sb.WriteString("AVLTree\n")
	u.print(&sb, u.root, 0)
	return sb.String()
}

// print writes the subtree sideways: right side up, one level per indent.
func (u *AVLTree[T]) print(sb *strings.Builder, n *node[T], d int) {
	if n == nil {
		return
	}
	u.print(sb, n.r, d+1)
	sb.WriteString(strings.Repeat("    ", d))
	fmt.Fprintln(sb, n.v)
	u.print(sb, n.l, d+1)
}
