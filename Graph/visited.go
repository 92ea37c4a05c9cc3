package Graph

import "math/bits"

// visited marks node ids with one bit each.
type visited struct {
	bits []uint
}

func newVisited(n int) visited {
	return visited{bits: make([]uint, (n+bits.UintSize-1)/bits.UintSize)}
}

func (u visited) has(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

// mark i and report whether it was unmarked before.
func (u visited) mark(i int) bool {
	w, b := &u.bits[i/bits.UintSize], uint(1)<<(i%bits.UintSize)
	if *w&b != 0 {
		return false
	}
	*w |= b
	return true
}
