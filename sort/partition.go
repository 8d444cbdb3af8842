package sort

func (s *Sorter[E]) partition(data []E, low, high int) int {
	s.cfg.Stats.partitioned()

	if s.cfg.Pivot == PivotMedianOfThree && high-low >= 2 {
		medianOfThree(data, low, low+(high-low)/2, high, s.less)
	}
	return lomuto(data, low, high, s.less)
}

// lomuto 는 data[high] 를 피벗으로 [low, high] 를 나누고 피벗의 최종 위치를 돌려준다.
// 피벗보다 작은 원소만 왼쪽으로 옮기므로 피벗과 같은 값은 오른쪽에 남는다.
func lomuto[E any](data []E, low, high int, less func(a, b E) bool) int {
	pivot := data[high]
	i := low - 1

	for j := low; j < high; j++ {
		if less(data[j], pivot) {
			i++
			data[i], data[j] = data[j], data[i]
		}
	}
	data[i+1], data[high] = data[high], data[i+1]
	return i + 1
}

// medianOfThree a, b, c 를 정렬한 뒤 중앙값을 c(피벗 자리)로 옮긴다.
func medianOfThree[E any](data []E, a, b, c int, less func(x, y E) bool) {
	if less(data[b], data[a]) {
		data[a], data[b] = data[b], data[a]
	}
	if less(data[c], data[b]) {
		data[b], data[c] = data[c], data[b]
	}
	if less(data[b], data[a]) {
		data[a], data[b] = data[b], data[a]
	}
	data[b], data[c] = data[c], data[b]
}
