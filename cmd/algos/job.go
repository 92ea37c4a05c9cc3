package main

import (
	"fmt"
	"os"

	"github.com/g-m-twostay/go-algos/Graph"
	"gopkg.in/yaml.v3"
)

// Job is a grid search read from YAML. Walls are written as .inf.
type Job struct {
	Grid      [][]float64 `yaml:"grid"`
	From      [2]int      `yaml:"from"`
	To        [2]int      `yaml:"to"`
	Algorithm string      `yaml:"algorithm"`
}

func loadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseJob(data)
}

func parseJob(data []byte) (*Job, error) {
	job := &Job{Algorithm: "astar"}
	if err := yaml.Unmarshal(data, job); err != nil {
		return nil, err
	}
	if len(job.Grid) == 0 {
		return nil, fmt.Errorf("job has an empty grid")
	}
	for i, row := range job.Grid {
		if len(row) != len(job.Grid[0]) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(job.Grid[0]))
		}
		for j, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("cell %d %d has negative cost %v", i, j, c)
			}
		}
	}
	return job, nil
}

func (j *Job) run() ([]Graph.Cell, error) {
	g := Graph.NewGridGraph(j.Grid)
	from, to := Graph.Cell{Row: j.From[0], Col: j.From[1]}, Graph.Cell{Row: j.To[0], Col: j.To[1]}
	if !g.Open(from) || !g.Open(to) {
		return nil, fmt.Errorf("cells %v and %v must be open cells of the grid", from, to)
	}
	var p []int
	var err error
	switch j.Algorithm {
	case "astar":
		return Graph.AStar(from, to, g), nil
	case "dijkstra":
		p, err = Graph.Dijkstra(g.Index(from), g.Index(to), g.Matrix())
	case "bfs":
		p, err = Graph.BFS(g.Index(from), g.Index(to), g.Matrix())
	default:
		return nil, fmt.Errorf("unknown algorithm %q", j.Algorithm)
	}
	if err != nil {
		return nil, err
	}
	cells := make([]Graph.Cell, len(p))
	for i, n := range p {
		cells[i] = g.CellOf(n)
	}
	return cells, nil
}
