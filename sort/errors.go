package sort

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange 는 비어 있지 않은 구간이 슬라이스 범위를 벗어났을 때의 에러다.
	ErrOutOfRange = errors.New("sort: range out of bounds")

	// ErrNilLess 비교 함수가 nil 일 때의 에러
	ErrNilLess = errors.New("sort: nil less function")

	// ErrInvalidThreshold 는 Threshold 가 1 보다 작을 때의 에러다.
	ErrInvalidThreshold = errors.New("sort: threshold must be >= 1")
)

// RangeError 는 잘못된 구간과 슬라이스 길이를 담는다.
type RangeError struct {
	Low  int
	High int
	Len  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("sort: range [%d, %d] out of bounds for length %d", e.Low, e.High, e.Len)
}

// Is 는 errors.Is(err, ErrOutOfRange) 를 만족시킨다.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func checkRange(n, low, high int) error {
	if low < 0 || high >= n {
		return errors.WithStack(&RangeError{Low: low, High: high, Len: n})
	}
	return nil
}
