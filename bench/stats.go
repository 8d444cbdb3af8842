package bench

import (
	"runtime"
	"time"
)

// systemStats 측정 구간의 시간과 할당량
type systemStats struct {
	startTime time.Time
	startMem  runtime.MemStats
}

func startStats() *systemStats {
	runtime.GC() // 이전 실행의 가비지를 비운다

	s := &systemStats{}
	runtime.ReadMemStats(&s.startMem)
	s.startTime = time.Now()
	return s
}

// end 경과 시간과 구간 동안 할당된 바이트 수
func (s *systemStats) end() (time.Duration, uint64) {
	duration := time.Since(s.startTime)

	var endMem runtime.MemStats
	runtime.ReadMemStats(&endMem)

	return duration, endMem.TotalAlloc - s.startMem.TotalAlloc
}
