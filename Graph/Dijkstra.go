package Graph

import (
	"cmp"

	"github.com/g-m-twostay/go-algos/Heaps"
)

// byCost orders hops by cost; equal costs are served in push order.
func byCost[T any](a, b *hop[T]) int {
	if c := cmp.Compare(a.cost, b.cost); c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}

// Dijkstra finds the cheapest path from fromNode to toNode. Costs must not be
// negative. Returns an empty path if toNode can't be reached.
// Time: O(V^2 log V)
func Dijkstra(fromNode, toNode int, m Matrix) ([]int, error) {
	if !m.inBounds(fromNode) || !m.inBounds(toNode) {
		return nil, &OutOfBoundsError{fromNode, toNode, len(m)}
	}
	pq := Heaps.New(0, byCost[int])
	seen := newVisited(len(m))
	var seq uint
	pq.Add(&hop[int]{id: fromNode})
	for !pq.IsEmpty() {
		cur, _ := pq.Remove()
		// the first visit of a node is along its cheapest path.
		if !seen.mark(cur.id) {
			continue
		}
		if cur.id == toNode {
			return cur.path(), nil
		}
		for adj := range m {
			if seen.has(adj) || !m.HasEdge(cur.id, adj) {
				continue
			}
			seq++
			pq.Add(&hop[int]{id: adj, cost: cur.cost + m[cur.id][adj], seq: seq, cameFrom: cur})
		}
	}
	return []int{}, nil
}
