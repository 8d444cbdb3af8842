package bench

import (
	"slices"

	"golang.org/x/exp/constraints"

	hsort "hybridsort/sort"
)

// 이 길이 이하의 조각은 삽입정렬
const mergeInsertionCutoff = 16

// MergeSort 안정 정렬 비교용 머지소트. 새 슬라이스를 돌려주며 len(arr) <= 1 이면 arr 자체를 돌려준다.
func MergeSort[E constraints.Ordered](arr []E) []E {
	return mergeSort(arr, insertionSorter[E]())
}

// threshold 를 cutoff+1 로 두면 파티션 없이 삽입정렬만 한다.
// 고정된 설정이라 New 가 실패하면 프로그래밍 오류다.
func insertionSorter[E constraints.Ordered]() *hsort.Sorter[E] {
	s, err := hsort.New[E](hsort.WithThreshold(mergeInsertionCutoff + 1))
	if err != nil {
		panic(err)
	}
	return s
}

func mergeSort[E constraints.Ordered](arr []E, small *hsort.Sorter[E]) []E {
	if len(arr) <= 1 {
		return arr
	}

	if len(arr) <= mergeInsertionCutoff {
		return small.Sort(slices.Clone(arr))
	}

	mid := len(arr) / 2
	left := mergeSort(arr[:mid], small)
	right := mergeSort(arr[mid:], small)

	return merge(left, right)
}

func merge[E constraints.Ordered](left, right []E) []E {
	result := make([]E, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}

	result = append(result, left[i:]...)
	return append(result, right[j:]...)
}
