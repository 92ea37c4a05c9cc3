package Trees

// A node in the AVLTree.
// lh and rh cache the heights of the left and right subtrees: 0 when the
// child is absent, otherwise 1+max(child.lh, child.rh). Only setL, setR,
// takeL and takeR write them, so they never go stale.
// AVL height is bounded by 1.44*log2(n+2), so a byte is enough.
type node[T any] struct {
	v      T
	l, r   *node[T]
	lh, rh uint8
}

// height of the subtree rooting at n, counted in nodes. 0 if n is nil.
func (n *node[T]) height() uint8 {
	if n == nil {
		return 0
	} else if n.lh > n.rh {
		return n.lh + 1
	}
	return n.rh + 1
}

// setL attaches c as the left child and returns the new left height.
func (n *node[T]) setL(c *node[T]) uint8 {
	n.l, n.lh = c, c.height()
	return n.lh
}

// setR attaches c as the right child and returns the new right height.
func (n *node[T]) setR(c *node[T]) uint8 {
	n.r, n.rh = c, c.height()
	return n.rh
}

// takeL detaches and returns the left child. The caller owns it.
func (n *node[T]) takeL() *node[T] {
	c := n.l
	n.l, n.lh = nil, 0
	return c
}

// takeR detaches and returns the right child. The caller owns it.
func (n *node[T]) takeR() *node[T] {
	c := n.r
	n.r, n.rh = nil, 0
	return c
}

// rotateLeft performs a left rotation on n. n is passed by reference in order
// to modify its content.
//
//	  n            rc
//	 / \          /  \
//	a   rc  ->   n    c
//	   /  \     / \
//	  b    c   a   b
//
// Time: O(1); Space: O(1)
func rotateLeft[T any](n **node[T]) {
	r := *n
	rc := r.takeR()
	r.setR(rc.takeL())
	rc.setL(r)
	*n = rc
}

// rotateRight performs a right rotation on n. n is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func rotateRight[T any](n **node[T]) {
	r := *n
	lc := r.takeL()
	r.setL(lc.takeR())
	lc.setR(r)
	*n = lc
}

// rotateLeftRight rotates the left child of n left, then n right. Used when
// the left subtree is heavy on its inner side.
func rotateLeftRight[T any](n **node[T]) {
	r := *n
	lc := r.takeL()
	rotateLeft(&lc)
	r.setL(lc)
	rotateRight(n)
}

// rotateRightLeft mirrors rotateLeftRight.
func rotateRightLeft[T any](n **node[T]) {
	r := *n
	rc := r.takeR()
	rotateRight(&rc)
	r.setR(rc)
	rotateLeft(n)
}

// rebalance the subtree rooting at n when its cached heights differ by more
// than 1. Both children must already be balanced.
// A heavy child whose two sides are equal only happens after a removal; a
// single rotation is the one that keeps the result balanced.
// Time: O(1)
func rebalance[T any](n **node[T]) {
	cur := *n
	if cur.lh > cur.rh+1 {
		if lc := cur.l; lc.lh >= lc.rh {
			rotateRight(n)
		} else {
			rotateLeftRight(n)
		}
	} else if cur.rh > cur.lh+1 {
		if rc := cur.r; rc.rh >= rc.lh {
			rotateLeft(n)
		} else {
			rotateRightLeft(n)
		}
	}
}
