// Package bench 는 하이브리드 정렬과 비교 알고리즘의 벤치마크를 실행하고
// 결과를 마크다운/JSON 으로 저장한다.
package bench

import (
	"slices"
	"time"

	"github.com/pkg/errors"

	"hybridsort/kvdb"
	hsort "hybridsort/sort"
)

// StorageMemory 저장소를 거치지 않고 생성한 데이터를 그대로 쓴다.
const StorageMemory = "memory"

// Config 벤치마크 설정
type Config struct {
	Sizes      []int
	Runs       int
	Algorithms []string
	Patterns   []string

	// Storage 는 "memory" 또는 kvdb 백엔드 이름. 백엔드면 매 실행마다 저장소에서 읽는다.
	Storage  string
	StoreDir string // 비어 있으면 임시 디렉터리

	Seed      int64
	Threshold int

	// Cooldown 실행 사이 시스템 안정화 시간
	Cooldown time.Duration
}

// DefaultConfig 1천/1만/10만 개 랜덤 데이터, 알고리즘별 3회
func DefaultConfig() Config {
	return Config{
		Sizes:      []int{1000, 10000, 100000},
		Runs:       3,
		Algorithms: Algorithms(),
		Patterns:   []string{PatternRandom},
		Storage:    StorageMemory,
		Seed:       42,
		Threshold:  hsort.DefaultThreshold,
		Cooldown:   50 * time.Millisecond,
	}
}

// Validate 설정 검증
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("bench: no sizes")
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return errors.Errorf("bench: negative size %d", n)
		}
	}
	if c.Runs < 1 {
		return errors.Errorf("bench: runs must be >= 1, got %d", c.Runs)
	}
	if len(c.Algorithms) == 0 {
		return errors.New("bench: no algorithms")
	}
	for _, name := range c.Algorithms {
		if !slices.Contains(Algorithms(), name) {
			return errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
		}
	}
	if len(c.Patterns) == 0 {
		return errors.New("bench: no patterns")
	}
	for _, name := range c.Patterns {
		if !slices.Contains(Patterns(), name) {
			return errors.Wrapf(ErrUnknownPattern, "%q", name)
		}
	}
	if c.Storage != StorageMemory && !slices.Contains(kvdb.Backends(), c.Storage) {
		return errors.Wrapf(kvdb.ErrUnknownBackend, "%q", c.Storage)
	}
	if c.Threshold < 1 {
		return errors.Wrapf(hsort.ErrInvalidThreshold, "threshold=%d", c.Threshold)
	}
	return nil
}
