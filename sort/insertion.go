package sort

// insertionSort data[low..high] 삽입정렬. 같은 값의 순서를 유지한다.
func insertionSort[E any](data []E, low, high int, less func(a, b E) bool) {
	for i := low + 1; i <= high; i++ {
		key := data[i]
		j := i - 1

		for j >= low && less(key, data[j]) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
