package bench

import (
	"slices"

	"github.com/pkg/errors"

	hsort "hybridsort/sort"
)

// 알고리즘 이름
const (
	AlgoHybrid        = "hybrid"
	AlgoHybridMedian3 = "hybrid_median3"
	AlgoMergeSort     = "mergesort"
	AlgoParallelMerge = "parallel_mergesort"
	AlgoStdlib        = "stdlib"
)

// ErrUnknownAlgorithm 지원하지 않는 알고리즘 이름
var ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

// Algorithms 벤치마크 가능한 알고리즘
func Algorithms() []string {
	return []string{AlgoHybrid, AlgoHybridMedian3, AlgoMergeSort, AlgoParallelMerge, AlgoStdlib}
}

// Algorithm 은 data 를 제자리 정렬하고 하이브리드 정렬 계측값을 돌려준다.
// 하이브리드가 아닌 알고리즘은 빈 Stats 를 돌려준다.
type Algorithm func(data []int) hsort.Stats

func newAlgorithm(name string, threshold int) (Algorithm, error) {
	switch name {
	case AlgoHybrid:
		return hybrid(threshold, hsort.PivotLast)
	case AlgoHybridMedian3:
		return hybrid(threshold, hsort.PivotMedianOfThree)
	case AlgoMergeSort:
		return func(data []int) hsort.Stats {
			copy(data, MergeSort(data))
			return hsort.Stats{}
		}, nil
	case AlgoParallelMerge:
		return func(data []int) hsort.Stats {
			copy(data, ParallelMergeSort(data))
			return hsort.Stats{}
		}, nil
	case AlgoStdlib:
		return func(data []int) hsort.Stats {
			slices.Sort(data)
			return hsort.Stats{}
		}, nil
	}
	return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// 반환된 Algorithm 은 계측값을 공유하므로 한 고루틴에서만 호출한다
func hybrid(threshold int, pivot hsort.Pivot) (Algorithm, error) {
	var st hsort.Stats
	s, err := hsort.New[int](hsort.WithThreshold(threshold), hsort.WithPivot(pivot), hsort.WithStats(&st))
	if err != nil {
		return nil, err
	}

	return func(data []int) hsort.Stats {
		st.Reset()
		s.Sort(data)
		return st
	}, nil
}
