package sort

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"
)

var benchSizes = []int{16, 256, 10000, 100000}

func BenchmarkHybridSort(b *testing.B) {
	for _, n := range benchSizes {
		r := rand.New(rand.NewSource(42))
		src := randomInts(r, n, 1000000)
		data := make([]int, n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(data, src)
				Sort(data)
			}
		})
	}
}

func BenchmarkHybridSortMedianOfThree(b *testing.B) {
	s, _ := New[int](WithPivot(PivotMedianOfThree))

	for _, n := range benchSizes {
		r := rand.New(rand.NewSource(42))
		src := randomInts(r, n, 1000000)
		data := make([]int, n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(data, src)
				s.Sort(data)
			}
		})
	}
}

func BenchmarkStdlibSort(b *testing.B) {
	for _, n := range benchSizes {
		r := rand.New(rand.NewSource(42))
		src := randomInts(r, n, 1000000)
		data := make([]int, n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(data, src)
				slices.Sort(data)
			}
		})
	}
}
