package main

import (
	"math"
	"slices"
	"testing"

	"github.com/g-m-twostay/go-algos/Graph"
)

const jobYAML = `
grid:
  - [1, 1, 1, 2, 2]
  - [1, 1, .inf, 2, 1]
  - [.inf, .inf, .inf, 2, 5]
  - [1, 1, 2, 0, 2]
  - [1, 1, 0, 1, 0]
from: [0, 0]
to: [4, 4]
`

func TestParseJob(t *testing.T) {
	job, err := parseJob([]byte(jobYAML))
	if err != nil {
		t.Fatal(err)
	}
	if job.Algorithm != "astar" || !math.IsInf(job.Grid[1][2], 1) || job.To != [2]int{4, 4} {
		t.Fatalf("wrong job %+v", job)
	}
	want := []Graph.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 1, Col: 3},
		{Row: 2, Col: 3}, {Row: 3, Col: 3}, {Row: 4, Col: 3}, {Row: 4, Col: 4},
	}
	for _, alg := range []string{"astar", "dijkstra"} {
		job.Algorithm = alg
		p, err := job.run()
		if err != nil || !slices.Equal(p, want) {
			t.Errorf("%s gave %v, %v", alg, p, err)
		}
	}
	job.Algorithm = "bfs"
	if p, err := job.run(); err != nil || len(p) != 9 || p[0] != want[0] || p[8] != want[8] {
		t.Errorf("bfs gave %v, %v", p, err)
	}
	job.Algorithm = "dfs"
	if _, err := job.run(); err == nil {
		t.Error("unknown algorithm should fail")
	}
	job.Algorithm, job.To = "astar", [2]int{2, 0}
	if _, err := job.run(); err == nil {
		t.Error("wall as endpoint should fail")
	}
}

func TestParseJob_Invalid(t *testing.T) {
	for _, s := range []string{
		"grid: []",
		"grid: [[1, 2], [1]]",
		"grid: [[1, -2]]",
		"grid: {",
	} {
		if _, err := parseJob([]byte(s)); err == nil {
			t.Errorf("%q should fail", s)
		}
	}
}

func TestMeasure(t *testing.T) {
	rs := measure(64, 2)
	if len(rs) != 2*len(contenders) {
		t.Fatalf("got %d results", len(rs))
	}
	if rs[0].n != 32 || rs[len(rs)-1].n != 64 {
		t.Errorf("wrong sizes %d %d", rs[0].n, rs[len(rs)-1].n)
	}
}
