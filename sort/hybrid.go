package sort

import (
	"golang.org/x/exp/constraints"
)

// Sorter 하이브리드 정렬기 (삽입정렬 + 퀵소트).
// 설정은 생성 후 바뀌지 않는다. Stats 를 붙인 정렬기는 고루틴 사이에서 공유하면 안 된다.
type Sorter[E any] struct {
	cfg  Config
	less func(a, b E) bool
}

func cmpLess[E constraints.Ordered](a, b E) bool {
	return a < b
}

// New 는 < 연산자로 비교하는 정렬기를 만든다.
func New[E constraints.Ordered](opts ...Option) (*Sorter[E], error) {
	return NewFunc(cmpLess[E], opts...)
}

// NewFunc 는 주어진 less 로 비교하는 정렬기를 만든다.
// less 는 strict weak ordering 이어야 한다.
func NewFunc[E any](less func(a, b E) bool, opts ...Option) (*Sorter[E], error) {
	if less == nil {
		return nil, ErrNilLess
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Sorter[E]{cfg: cfg, less: less}, nil
}

// Config 정렬기 설정 사본
func (s *Sorter[E]) Config() Config {
	return s.cfg
}

// Sort 는 data 전체를 제자리 정렬하고 같은 슬라이스를 돌려준다 (체이닝용).
func (s *Sorter[E]) Sort(data []E) []E {
	s.sortRange(data, 0, len(data)-1, 1)
	return data
}

// SortRange 는 data[low..high] (양 끝 포함) 를 제자리 정렬한다.
// low > high 이면 빈 구간이므로 아무것도 하지 않는다.
// 비어 있지 않은 구간이 범위를 벗어나면 data 를 건드리지 않고 *RangeError 를 반환한다.
func (s *Sorter[E]) SortRange(data []E, low, high int) error {
	if low > high {
		return nil
	}
	if err := checkRange(len(data), low, high); err != nil {
		return err
	}

	s.sortRange(data, low, high, 1)
	return nil
}

func (s *Sorter[E]) sortRange(data []E, low, high, depth int) {
	if low < high {
		s.cfg.Stats.enter(depth)
	}

	for low < high {
		// 작은 구간은 삽입정렬
		if high-low+1 < s.cfg.Threshold {
			insertionSort(data, low, high, s.less)
			s.cfg.Stats.insertion()
			break
		}

		pi := s.partition(data, low, high)

		// 작은 쪽만 재귀, 큰 쪽은 루프로 이어감
		if pi-low < high-pi {
			s.sortRange(data, low, pi-1, depth+1)
			low = pi + 1
		} else {
			s.sortRange(data, pi+1, high, depth+1)
			high = pi - 1
		}
	}
}

// Sort 는 기본 설정으로 data 전체를 정렬한다.
func Sort[E constraints.Ordered](data []E) []E {
	s := Sorter[E]{cfg: DefaultConfig(), less: cmpLess[E]}
	return s.Sort(data)
}

// SortRange 는 기본 설정으로 data[low..high] 를 정렬한다.
func SortRange[E constraints.Ordered](data []E, low, high int) error {
	s := Sorter[E]{cfg: DefaultConfig(), less: cmpLess[E]}
	return s.SortRange(data, low, high)
}

// SortFunc 는 기본 설정과 less 로 data 전체를 정렬한다.
// less 가 nil 이면 data 를 건드리지 않고 에러를 반환한다.
func SortFunc[E any](data []E, less func(a, b E) bool) ([]E, error) {
	s, err := NewFunc(less)
	if err != nil {
		return data, err
	}
	return s.Sort(data), nil
}

// IsSorted data 가 오름차순(비감소)인지 확인
func IsSorted[E constraints.Ordered](data []E) bool {
	return IsSortedFunc(data, cmpLess[E])
}

// IsSortedFunc less 기준으로 data 가 비감소 순서인지 확인
func IsSortedFunc[E any](data []E, less func(a, b E) bool) bool {
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}
