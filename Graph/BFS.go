package Graph

import "github.com/g-m-twostay/go-algos/Queues"

// BFS finds the path from fromNode to toNode with the fewest edges. Edge
// costs only tell whether an edge exists. Returns an empty path if toNode
// can't be reached.
// Time: O(V^2)
func BFS(fromNode, toNode int, m Matrix) ([]int, error) {
	if !m.inBounds(fromNode) || !m.inBounds(toNode) {
		return nil, &OutOfBoundsError{fromNode, toNode, len(m)}
	}
	q := Queues.MakeArrayQueue[*hop[int]](uint(len(m)))
	seen := newVisited(len(m))
	q.Push(&hop[int]{id: fromNode})
	for !q.Empty() {
		cur, _ := q.Pop()
		// a node already visited was reached in fewer hops.
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
			q.Push(&hop[int]{id: adj, cost: cur.cost + 1, cameFrom: cur})
		}
	}
	return []int{}, nil
}
