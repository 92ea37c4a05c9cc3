package main

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/utils"
	"github.com/g-m-twostay/go-algos/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

var _R = rand.New(rand.NewSource(0))

// contender fills a container with all, then empties it smallest first.
type contender struct {
	name string
	run  func(all []int)
}

var contenders = []contender{
	{"avl", func(all []int) {
		tree := Trees.NewOrdered[int]()
		for _, v := range all {
			tree.Push(v)
		}
		for !tree.IsEmpty() {
			tree.PopSmallest()
		}
	}},
	{"btree", func(all []int) {
		tree := btree.NewG[int](32, func(a, b int) bool { return a < b })
		for _, v := range all {
			tree.ReplaceOrInsert(v)
		}
		for tree.Len() > 0 {
			tree.DeleteMin()
		}
	}},
	{"llrb", func(all []int) {
		tree := llrb.New()
		for _, v := range all {
			tree.InsertNoReplace(llrb.Int(v))
		}
		for tree.Len() > 0 {
			tree.DeleteMin()
		}
	}},
	{"gods", func(all []int) {
		tree := avltree.NewWith(utils.IntComparator)
		for _, v := range all {
			tree.Put(v, nil)
		}
		for !tree.Empty() {
			tree.Remove(tree.Left().Key)
		}
	}},
}

type result struct {
	name string
	n    int
	br   testing.BenchmarkResult
}

func (r result) String() string {
	return fmt.Sprintf("%-6s n=%-8d %10.3fms/op", r.name, r.n, float64(r.br.NsPerOp())/1e6)
}

// measure every contender at steps sizes evenly spaced up to size.
func measure(size, steps int) []result {
	testing.Init()
	var rs []result
	for i := 1; i <= steps; i++ {
		n := size / steps * i
		all := _R.Perm(n)
		for _, c := range contenders {
			br := testing.Benchmark(func(b *testing.B) {
				for range b.N {
					c.run(all)
				}
			})
			rs = append(rs, result{c.name, n, br})
		}
	}
	return rs
}
