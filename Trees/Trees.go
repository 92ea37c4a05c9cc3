package Trees

import "fmt"

// Tree represents an ordered multiset implemented using nodes. Values are
// placed by a comparator given at construction, so values comparing equal
// may all be held at the same time.
// Receivers returning a Result as the second value only define the first
// return value when the Result is Ok. In other cases the first value is the
// zero value of T and it's advised that it not be used.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Push v to the Tree. Returns the size after the insertion.
	Push(v T) int
	//Pop one value comparing equal to v. EmptyTree if the tree has no
	//values, NotFound if no value compares equal to v.
	Pop(v T) (T, Result)
	//PopSmallest removes and returns the minimum element of the tree.
	PopSmallest() (T, Result)
	//PopBiggest removes and returns the maximum element of the tree.
	PopBiggest() (T, Result)
	//Find the first stored value comparing equal to v.
	Find(v T) (T, Result)
	//Minimum element of the tree.
	Minimum() (T, Result)
	//Maximum element of the tree.
	Maximum() (T, Result)
	//Size of the tree.
	Size() int
	//IsEmpty is Size()==0.
	IsEmpty() bool
	//Ascending returns an iterator giving the values in the in-order
	//traversal of the tree. The tree must not be modified during the
	//iteration, otherwise the values given are undefined.
	Ascending() *Iter[T]
	//Descending is the reverse of Ascending.
	Descending() *Iter[T]
	//Corrupt returns whether the tree has corrupt structures: a cached
	//height that is stale or out of balance, values out of order, or a size
	//not matching the reachable nodes. Recursive.
	Corrupt() bool
}

// PriorityQueue is the part of Tree used by searches that only need to
// repeatedly take the smallest pending element.
type PriorityQueue[T any] interface {
	Push(v T) int
	PopSmallest() (T, Result)
	IsEmpty() bool
}

// Result tags the outcome of a lookup or a removal.
type Result uint8

const (
	Ok Result = iota
	EmptyTree
	NotFound
)

func (r Result) String() string {
	switch r {
	case Ok:
		return "Ok"
	case EmptyTree:
		return "EmptyTree"
	case NotFound:
		return "NotFound"
	}
	return fmt.Sprintf("Result(%d)", uint8(r))
}

// Err converts r to an error. Only EmptyTree is an error; a missing value
// is a normal outcome and gives nil.
func (r Result) Err() error {
	if r == EmptyTree {
		return EmptyTreeError{}
	}
	return nil
}

// EmptyTreeError is the error form of EmptyTree.
type EmptyTreeError struct {
}

func (e EmptyTreeError) Error() string {
	return "Tree is Empty: cannot Pop."
}

// InvalidSliceError is returned by From when the input slice isn't sorted.
// Index is the position of the first element smaller than its predecessor.
type InvalidSliceError struct {
	Index int
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice is not sorted at index %d", e.Index)
}
