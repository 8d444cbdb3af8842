package sort

import (
	"fmt"

	"github.com/pkg/errors"
)

// DefaultThreshold 이 길이 미만인 구간은 삽입정렬로 처리한다.
const DefaultThreshold = 10

// Pivot 파티션 피벗 선택 방식
type Pivot int

const (
	// PivotLast 구간의 마지막 원소를 피벗으로 쓴다 (기본값).
	PivotLast Pivot = iota
	// PivotMedianOfThree low, mid, high 의 중앙값을 피벗으로 쓴다.
	PivotMedianOfThree
)

func (p Pivot) String() string {
	switch p {
	case PivotLast:
		return "last"
	case PivotMedianOfThree:
		return "median3"
	default:
		return fmt.Sprintf("pivot(%d)", int(p))
	}
}

// ParsePivot 는 "last" 또는 "median3" 을 Pivot 으로 바꾼다.
func ParsePivot(s string) (Pivot, error) {
	switch s {
	case "last", "":
		return PivotLast, nil
	case "median3", "median-of-three":
		return PivotMedianOfThree, nil
	}
	return 0, errors.Errorf("sort: unknown pivot %q", s)
}

// Config 정렬기 설정
type Config struct {
	Threshold int
	Pivot     Pivot

	// Stats 가 nil 이 아니면 정렬 중 계측값을 누적한다.
	Stats *Stats
}

// DefaultConfig Threshold 10, 마지막 원소 피벗
func DefaultConfig() Config {
	return Config{
		Threshold: DefaultThreshold,
		Pivot:     PivotLast,
	}
}

// Validate 설정 검증
func (c Config) Validate() error {
	if c.Threshold < 1 {
		return errors.Wrapf(ErrInvalidThreshold, "threshold=%d", c.Threshold)
	}
	switch c.Pivot {
	case PivotLast, PivotMedianOfThree:
	default:
		return errors.Errorf("sort: unknown pivot %d", int(c.Pivot))
	}
	return nil
}

// Option 은 Config 를 수정한다.
type Option func(*Config)

// WithThreshold 삽입정렬로 전환하는 구간 길이 설정
func WithThreshold(n int) Option {
	return func(c *Config) { c.Threshold = n }
}

// WithPivot 피벗 선택 방식 설정
func WithPivot(p Pivot) Option {
	return func(c *Config) { c.Pivot = p }
}

// WithStats 정렬 계측값을 st 에 누적
func WithStats(st *Stats) Option {
	return func(c *Config) { c.Stats = st }
}
