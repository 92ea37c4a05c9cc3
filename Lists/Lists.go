// Package Lists holds linked lists addressed from their ends or by index.
package Lists

import "fmt"

type EmptyListError struct {
}

func (e *EmptyListError) Error() string {
	return "List is Empty."
}

// IndexError is returned for an index outside [0, Size), or [0, Size] when
// inserting.
type IndexError struct {
	Index, Size int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for list of size %d", e.Index, e.Size)
}
