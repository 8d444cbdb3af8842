package bench

import (
	"math/rand"

	"github.com/pkg/errors"
)

// 데이터 패턴 이름
const (
	PatternRandom    = "random"
	PatternSorted    = "sorted"
	PatternReversed  = "reversed"
	PatternFewUnique = "fewunique"
	PatternSawtooth  = "sawtooth"
)

// ErrUnknownPattern 지원하지 않는 패턴 이름
var ErrUnknownPattern = errors.New("bench: unknown data pattern")

// Patterns 지원하는 데이터 패턴
func Patterns() []string {
	return []string{PatternRandom, PatternSorted, PatternReversed, PatternFewUnique, PatternSawtooth}
}

// Generate 패턴별 데이터 생성. 같은 seed 면 같은 데이터가 나온다.
// sorted, reversed 는 마지막 원소 피벗의 최악 입력이다.
func Generate(pattern string, size int, seed int64) ([]int, error) {
	if size < 0 {
		return nil, errors.Errorf("bench: negative size %d", size)
	}

	r := rand.New(rand.NewSource(seed))
	data := make([]int, size)

	switch pattern {
	case PatternRandom:
		for i := range size {
			data[i] = r.Intn(1000000)
		}
	case PatternSorted:
		for i := range size {
			data[i] = i
		}
	case PatternReversed:
		for i := range size {
			data[i] = size - i
		}
	case PatternFewUnique:
		for i := range size {
			data[i] = r.Intn(8)
		}
	case PatternSawtooth:
		for i := range size {
			data[i] = i % 64
		}
	default:
		return nil, errors.Wrapf(ErrUnknownPattern, "%q", pattern)
	}
	return data, nil
}
