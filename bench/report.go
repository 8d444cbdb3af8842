package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var storageNames = map[string]string{
	StorageMemory: "인메모리",
	"file":        "파일",
	"bbolt":       "bbolt",
	"badger":      "BadgerDB",
	"pebble":      "PebbleDB",
}

// group 같은 패턴/크기/저장소의 결과 묶음
type group struct {
	pattern string
	size    int
	storage string
	results []Result
}

// groupResults 입력 순서를 유지하며 묶는다.
func groupResults(results []Result) []*group {
	var groups []*group
	index := map[string]*group{}

	for _, res := range results {
		key := fmt.Sprintf("%s/%d/%s", res.Pattern, res.DataSize, res.StorageType)
		g, ok := index[key]
		if !ok {
			g = &group{pattern: res.Pattern, size: res.DataSize, storage: res.StorageType}
			index[key] = g
			groups = append(groups, g)
		}
		g.results = append(g.results, res)
	}
	return groups
}

func storageName(s string) string {
	if name, ok := storageNames[s]; ok {
		return name
	}
	return s
}

// WriteMarkdown 결과 표와 알고리즘별 평균을 마크다운으로 쓴다.
func WriteMarkdown(w io.Writer, results []Result) error {
	var builder strings.Builder

	builder.WriteString("# 정렬 알고리즘 벤치마크 결과\n\n")
	builder.WriteString(fmt.Sprintf("실행 시간: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("CPU 코어 수: %d\n", runtime.NumCPU()))
	builder.WriteString(fmt.Sprintf("GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0)))

	groups := groupResults(results)

	for _, g := range groups {
		builder.WriteString(fmt.Sprintf("## %s - %s - %d개 데이터\n\n", g.pattern, storageName(g.storage), g.size))
		builder.WriteString("| 알고리즘 | 테스트 | 실행시간 | 메모리사용량 | 파티션 | 최대깊이 | 저장소읽기 | 정렬확인 |\n")
		builder.WriteString("|----------|--------|----------|--------------|--------|----------|------------|----------|\n")

		for _, res := range g.results {
			builder.WriteString(fmt.Sprintf("| %s | %d | %v | %d bytes | %d | %d | %v | %s |\n",
				res.Algorithm, res.TestRun, res.Duration, res.MemoryUsage,
				res.Partitions, res.MaxDepth, res.StoreRead, check(res.Sorted)))
		}
		builder.WriteString("\n")
	}

	builder.WriteString("## 요약 통계\n\n")

	for _, g := range groups {
		builder.WriteString(fmt.Sprintf("### %s - %s - %d개 데이터 평균\n\n", g.pattern, storageName(g.storage), g.size))
		if g.storage != StorageMemory {
			builder.WriteString(fmt.Sprintf("저장 시간: %v, 저장 공간: %.2f MB\n\n",
				g.results[0].StoreWrite.Round(time.Microsecond), float64(g.results[0].StoreSize)/1024/1024))
		}
		builder.WriteString("| 알고리즘 | 평균 실행시간 | 평균 메모리사용량 |\n")
		builder.WriteString("|----------|---------------|-------------------|\n")

		for _, avg := range averages(g.results) {
			builder.WriteString(fmt.Sprintf("| %s | %v | %d bytes |\n", avg.algorithm, avg.duration, avg.memory))
		}
		builder.WriteString("\n")
	}

	_, err := io.WriteString(w, builder.String())
	return errors.WithStack(err)
}

func check(ok bool) string {
	if ok {
		return "O"
	}
	return "X"
}

type average struct {
	algorithm string
	duration  time.Duration
	memory    uint64
}

type total struct {
	duration time.Duration
	memory   uint64
	count    int
}

// averages 알고리즘이 처음 나온 순서대로 평균을 낸다.
func averages(results []Result) []average {
	var order []string
	totals := map[string]*total{}

	for _, res := range results {
		t, ok := totals[res.Algorithm]
		if !ok {
			t = &total{}
			totals[res.Algorithm] = t
			order = append(order, res.Algorithm)
		}
		t.duration += res.Duration
		t.memory += res.MemoryUsage
		t.count++
	}

	avgs := make([]average, 0, len(order))
	for _, algo := range order {
		t := totals[algo]
		avgs = append(avgs, average{
			algorithm: algo,
			duration:  t.duration / time.Duration(t.count),
			memory:    t.memory / uint64(t.count),
		})
	}
	return avgs
}

// WriteJSON 결과를 들여쓴 JSON 배열로 쓴다.
func WriteJSON(w io.Writer, results []Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.WithStack(encoder.Encode(results))
}
