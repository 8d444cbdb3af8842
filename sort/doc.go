// Package sort 는 삽입정렬과 퀵소트를 섞은 하이브리드 정렬기를 제공한다.
//
// 구간 길이가 Threshold 이상이면 Lomuto 파티션으로 나누고, 그보다 작은 구간은
// 삽입정렬로 바로 정렬한다. 파티션 후에는 항상 더 작은 쪽만 재귀하고 큰 쪽은
// 루프로 이어가므로 재귀 깊이는 최악의 분할에서도 O(log n) 이다.
//
// # 안정성
//
// 정렬은 안정적이지 않다. 삽입정렬 구간은 같은 값의 순서를 유지하지만 파티션
// 단계는 유지하지 않으므로, 전체 결과에서 같은 값의 상대 순서는 보장되지 않는다.
//
// # 피벗
//
// 기본 피벗은 구간의 마지막 원소(PivotLast)다. 이미 정렬된 큰 입력에서는 O(n²) 으로
// 떨어지는 알려진 약점이 있다. PivotMedianOfThree 를 쓰면 low, mid, high 의 중앙값을
// 피벗으로 쓴다. 중간 단계의 원소 배치는 기본값과 달라진다.
//
// # 구간
//
// 구간 [low, high] 는 양 끝을 포함한다. low > high 인 구간은 비어 있는 것으로 보고
// 아무 일도 하지 않는다. 비어 있지 않은 구간이 슬라이스 범위를 벗어나면 정렬을
// 시작하기 전에 *RangeError 를 반환한다.
//
//	s, _ := sort.New[int]()
//	data := []int{10, 7, 8, 9, 1, 5, 12, 3, 2, 4, 6, 11, 13}
//	s.Sort(data) // [1 2 3 ... 13]
package sort
