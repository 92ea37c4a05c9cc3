package Graph

import (
	"cmp"

	"github.com/g-m-twostay/go-algos/Trees"
)

// estimate is a hop in the A* open set, ordered by f = cost + heuristic.
type estimate[T any] struct {
	*hop[T]
	f float64
}

func byEstimate[T any](a, b estimate[T]) int {
	if c := cmp.Compare(a.f, b.f); c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}

// AStar finds the cheapest path from fromNode to toNode in g, using an
// AVLTree as the open set. g.Heuristic must be admissible and consistent for
// the path to be the cheapest. Returns nil if toNode can't be reached.
func AStar[T comparable](fromNode, toNode T, g HeuristicGraph[T]) []T {
	return aStar(fromNode, toNode, g, Trees.New(byEstimate[T]))
}

func aStar[T comparable](fromNode, toNode T, g HeuristicGraph[T], open Trees.PriorityQueue[estimate[T]]) []T {
	closed := make(map[T]struct{})
	var seq uint
	open.Push(estimate[T]{&hop[T]{id: fromNode}, g.Heuristic(fromNode, toNode)})
	for !open.IsEmpty() {
		cur, _ := open.PopSmallest()
		if cur.id == toNode {
			return cur.path()
		}
		if _, in := closed[cur.id]; in {
			continue
		}
		closed[cur.id] = struct{}{}
		for _, e := range g.Neighbours(cur.id) {
			if _, in := closed[e.To]; in {
				continue
			}
			seq++
			h := &hop[T]{id: e.To, cost: cur.cost + e.Cost, seq: seq, cameFrom: cur.hop}
			open.Push(estimate[T]{h, h.cost + g.Heuristic(e.To, toNode)})
		}
	}
	return nil
}
