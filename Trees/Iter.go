package Trees

// Iter walks a tree in order using its own stack of pending ancestors.
// Calling Next is like calling "Next()" of iterators: val, valid=Next().
// val is meaningful only if valid is true. valid can't turn true after it
// first became false. Iterators are independent of each other; the tree
// must not be modified while one is in use, otherwise the values it gives
// are undefined. There will be no panic if such cases happens.
type Iter[T any] struct {
	st   []*node[T]
	desc bool
}

func newIter[T any](root *node[T], desc bool) *Iter[T] {
	it := &Iter[T]{desc: desc}
	it.descend(root)
	return it
}

// descend pushes n and its whole chain of left (or right if desc) children.
func (it *Iter[T]) descend(n *node[T]) {
	for n != nil {
		it.st = append(it.st, n)
		if it.desc {
			n = n.r
		} else {
			n = n.l
		}
	}
}

// Next value in the traversal.
// Time: amortized O(1). Space: O(D) for the whole iteration.
func (it *Iter[T]) Next() (v T, ok bool) {
	if len(it.st) == 0 {
		return
	}
	n := it.st[len(it.st)-1]
	it.st[len(it.st)-1] = nil
	it.st = it.st[:len(it.st)-1]
	if it.desc {
		it.descend(n.l)
	} else {
		it.descend(n.r)
	}
	return n.v, true
}

// Ascending [Tree.Ascending]
func (u *AVLTree[T]) Ascending() *Iter[T] {
	return newIter(u.root, false)
}

// Descending [Tree.Descending]
func (u *AVLTree[T]) Descending() *Iter[T] {
	return newIter(u.root, true)
}
