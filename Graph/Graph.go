// Package Graph finds paths in graphs using the containers of this module as
// frontiers: BFS over Queues, Dijkstra over Heaps and A* over Trees.
package Graph

import (
	"fmt"
	"math"
)

// Matrix is an adjacency matrix. m[i][j] is the cost of the directed edge
// i->j; there is no such edge if the cost is negative or +Inf.
type Matrix [][]float64

// HasEdge i->j.
func (m Matrix) HasEdge(i, j int) bool {
	return m[i][j] >= 0 && !math.IsInf(m[i][j], 1)
}

func (m Matrix) inBounds(i int) bool {
	return 0 <= i && i < len(m)
}

// Edge leads to To with cost Cost.
type Edge[T comparable] struct {
	To   T
	Cost float64
}

// HeuristicGraph is a graph searched by AStar. Heuristic must not overestimate
// the cost of the cheapest path from a to b for the path found to be the
// cheapest one.
type HeuristicGraph[T comparable] interface {
	Neighbours(n T) []Edge[T]
	Heuristic(a, b T) float64
}

// OutOfBoundsError is returned when an endpoint isn't a node of the graph.
type OutOfBoundsError struct {
	From, To, Len int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("fromNode %d or toNode %d is out of bounds [0,%d)", e.From, e.To, e.Len)
}

// hop is a visit along a path: the node, the total cost of reaching it, and
// the hop it came from.
type hop[T any] struct {
	id       T
	cost     float64
	seq      uint
	cameFrom *hop[T]
}

// path from the start to h.
func (h *hop[T]) path() []T {
	var p []T
	for ; h != nil; h = h.cameFrom {
		p = append(p, h.id)
	}
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
	return p
}
