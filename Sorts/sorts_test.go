package Sorts

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

// item sorts by key only; id records the input position.
type item struct {
	key, id int
}

func byKey(a, b item) int {
	return cmp.Compare(a.key, b.key)
}

func randomItems(n, keys int) []item {
	s := make([]item, n)
	for i := range s {
		s[i] = item{rg.Intn(keys), i}
	}
	return s
}

func keys(s []item) []int {
	ks := make([]int, len(s))
	for i, v := range s {
		ks[i] = v.key
	}
	return ks
}

var copying = []struct {
	name   string
	sort   func([]item, func(a, b item) int) []item
	stable bool
}{
	{"bubble", BubbleSort[item], true},
	{"selection", SelectionSort[item], false},
	{"merge", MergeSort[item], true},
	{"quick", func(s []item, c func(a, b item) int) []item {
		r := slices.Clone(s)
		QuickSort(r, c)
		return r
	}, false},
}

func TestSorts_AgainstSlices(t *testing.T) {
	for _, tc := range copying {
		for _, n := range []int{0, 1, 2, 3, 17, 200, 1000} {
			s := randomItems(n, 1+n/4)
			orig := slices.Clone(s)
			got := tc.sort(s, byKey)
			want := slices.Clone(s)
			slices.SortStableFunc(want, byKey)
			if !slices.Equal(keys(got), keys(want)) {
				t.Fatalf("%s(%d) not sorted: %v", tc.name, n, keys(got))
			}
			if tc.stable && !slices.Equal(got, want) {
				t.Fatalf("%s(%d) reordered equal keys", tc.name, n)
			}
			if !slices.Equal(s, orig) {
				t.Fatalf("%s(%d) touched its input", tc.name, n)
			}
		}
	}
}

func TestSorts_Descending(t *testing.T) {
	desc := func(a, b int) int { return b - a }
	s := rg.Perm(300)
	want := slices.Clone(s)
	slices.SortFunc(want, desc)
	for _, got := range [][]int{BubbleSort(s, desc), SelectionSort(s, desc), MergeSort(s, desc)} {
		if !slices.Equal(got, want) {
			t.Fatalf("wrong descending order %v", got[:10])
		}
	}
	QuickSort(s, desc)
	if !slices.Equal(s, want) {
		t.Fatalf("quick gave %v", s[:10])
	}
}

func TestQuickSort_Presorted(t *testing.T) {
	for _, s := range [][]int{make([]int, 5000), rg.Perm(5000)} {
		slices.Sort(s)
		QuickSort(s, cmp.Compare[int])
		if !slices.IsSorted(s) {
			t.Fatal("not sorted")
		}
		slices.Reverse(s)
		QuickSort(s, cmp.Compare[int])
		if !slices.IsSorted(s) {
			t.Fatal("reversed input not sorted")
		}
	}
}

func TestBinarySearch(t *testing.T) {
	for range 100 {
		s := make([]int, rg.Intn(50))
		for i := range s {
			s[i] = rg.Intn(60)
		}
		slices.Sort(s)
		for v := -1; v <= 61; v++ {
			i := BinarySearch(s, v, cmp.Compare[int])
			_, has := slices.BinarySearch(s, v)
			if has != (i >= 0) || has && s[i] != v {
				t.Fatalf("BinarySearch(%v, %d) = %d", s, v, i)
			}
			if f, ok := BinarySearchFind(s, v, cmp.Compare[int]); ok != has || ok && f != v {
				t.Fatalf("BinarySearchFind(%v, %d) = %d, %t", s, v, f, ok)
			}
		}
	}
}

func TestLinearSearch(t *testing.T) {
	s := []string{"b", "a", "c", "a"}
	if i := LinearSearch(s, "a"); i != 1 {
		t.Errorf("found a at %d", i)
	}
	if i := LinearSearch(s, "d"); i != -1 {
		t.Errorf("found d at %d", i)
	}
	if i := LinearSearch[int](nil, 0); i != -1 {
		t.Errorf("found 0 in nil at %d", i)
	}
}

func BenchmarkQuickSort(b *testing.B) {
	all := rg.Perm(1 << 14)
	s := make([]int, len(all))
	b.ResetTimer()
	for range b.N {
		copy(s, all)
		QuickSort(s, cmp.Compare[int])
	}
}

func BenchmarkMergeSort(b *testing.B) {
	all := rg.Perm(1 << 14)
	b.ResetTimer()
	for range b.N {
		MergeSort(all, cmp.Compare[int])
	}
}
