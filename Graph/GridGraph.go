package Graph

import "math"

// Cell of a grid.
type Cell struct {
	Row, Col int
}

// dirs are N, E, S, W.
var dirs = [4]Cell{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// GridGraph is a rectangular grid of cell costs. A cell of +Inf is a wall.
// Moving between two 4-adjacent cells costs the mean of their costs.
type GridGraph struct {
	grid    [][]float64
	minCost float64
}

var _ HeuristicGraph[Cell] = (*GridGraph)(nil)

// NewGridGraph over grid. grid is used directly and mustn't be modified later.
// Rows must all have the same length and costs must not be negative.
func NewGridGraph(grid [][]float64) *GridGraph {
	m := math.Inf(1)
	for _, row := range grid {
		for _, c := range row {
			m = min(m, c)
		}
	}
	if math.IsInf(m, 1) {
		m = 0
	}
	return &GridGraph{grid, m}
}

// Open is true if c is inside the grid and not a wall.
func (u *GridGraph) Open(c Cell) bool {
	return 0 <= c.Row && c.Row < len(u.grid) && 0 <= c.Col && c.Col < len(u.grid[c.Row]) && !math.IsInf(u.grid[c.Row][c.Col], 1)
}

// Neighbours of n that are open.
func (u *GridGraph) Neighbours(n Cell) []Edge[Cell] {
	adj := make([]Edge[Cell], 0, len(dirs))
	for _, d := range dirs {
		c := Cell{n.Row + d.Row, n.Col + d.Col}
		if !u.Open(c) {
			continue
		}
		adj = append(adj, Edge[Cell]{c, u.grid[n.Row][n.Col]/2 + u.grid[c.Row][c.Col]/2})
	}
	return adj
}

// Heuristic is the Manhattan distance scaled by the cheapest cell cost, which
// never overestimates.
func (u *GridGraph) Heuristic(a, b Cell) float64 {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return float64(abs(dr)+abs(dc)) * u.minCost
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// Index of c when cells are numbered in row order, as in Matrix.
func (u *GridGraph) Index(c Cell) int {
	return c.Row*u.cols() + c.Col
}

// CellOf reverses Index.
func (u *GridGraph) CellOf(i int) Cell {
	return Cell{i / u.cols(), i % u.cols()}
}

func (u *GridGraph) cols() int {
	if len(u.grid) == 0 {
		return 0
	}
	return len(u.grid[0])
}

// Matrix is the adjacency matrix of the grid over cells numbered by Index,
// for BFS and Dijkstra.
// Time: O(V^2)
func (u *GridGraph) Matrix() Matrix {
	n := len(u.grid) * u.cols()
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = -1
		}
		if c := u.CellOf(i); u.Open(c) {
			for _, e := range u.Neighbours(c) {
				m[i][u.Index(e.To)] = e.Cost
			}
		}
	}
	return m
}
