package bench

import (
	"runtime"
	"sync"

	"golang.org/x/exp/constraints"
)

// 전역 워커 풀 (재사용을 위해)
// * 채널 통한 세마포 구현.
var (
	workerPool     chan struct{}
	workerPoolOnce sync.Once
)

func initWorkerPool() {
	workerPoolOnce.Do(func() {
		workerPool = make(chan struct{}, runtime.NumCPU())
	})
}

// ParallelMergeSort 병렬 머지소트. 고루틴마다 서로 다른 조각을 정렬하므로
// 같은 원소를 두 고루틴이 건드리지 않는다.
func ParallelMergeSort[E constraints.Ordered](arr []E) []E {
	initWorkerPool()
	return parallelMergeSort(arr, runtime.NumCPU())
}

func parallelMergeSort[E constraints.Ordered](arr []E, depth int) []E {
	if depth <= 1 || len(arr) < parallelCutoff(len(arr)) {
		return MergeSort(arr)
	}

	mid := len(arr) / 2
	var left, right []E

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		left = sortHalf(arr[:mid], depth/2)
	}()
	go func() {
		defer wg.Done()
		right = sortHalf(arr[mid:], depth/2)
	}()

	wg.Wait()
	return merge(left, right)
}

// sortHalf 슬롯이 있으면 더 나누고, 없으면 순차 처리
func sortHalf[E constraints.Ordered](arr []E, depth int) []E {
	select {
	case workerPool <- struct{}{}:
		defer func() { <-workerPool }()
		return parallelMergeSort(arr, depth)
	default:
		return MergeSort(arr)
	}
}

// parallelCutoff 이 길이 미만이면 병렬로 나누지 않는다.
func parallelCutoff(n int) int {
	switch {
	case n < 1000:
		return n + 1 // 작은 데이터는 병렬처리 안함
	case n < 10000:
		return 300
	case n < 100000:
		return 800
	default:
		return 1500
	}
}
