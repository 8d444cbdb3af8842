package sort

// Stats 정렬 한 번(또는 여러 번)에 대한 계측값.
// nil 포인터에도 메서드를 호출할 수 있다.
type Stats struct {
	Partitions    int // 파티션 횟수
	InsertionRuns int // 삽입정렬로 끝낸 구간 수
	MaxDepth      int // 작업이 있었던 가장 깊은 재귀 단계 (최상위 = 1)
}

// Reset 계측값 초기화
func (st *Stats) Reset() {
	if st == nil {
		return
	}
	*st = Stats{}
}

func (st *Stats) enter(depth int) {
	if st != nil && depth > st.MaxDepth {
		st.MaxDepth = depth
	}
}

func (st *Stats) partitioned() {
	if st != nil {
		st.Partitions++
	}
}

func (st *Stats) insertion() {
	if st != nil {
		st.InsertionRuns++
	}
}
