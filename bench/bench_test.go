package bench

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/convox/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hybridsort/kvdb"
	hsort "hybridsort/sort"
)

func TestMain(m *testing.M) {
	logger.Output = io.Discard
	os.Exit(m.Run())
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Sizes = []int{0, 9, 500}
	cfg.Runs = 2
	cfg.Cooldown = 0
	return cfg
}

func TestGeneratePatterns(t *testing.T) {
	for _, pattern := range Patterns() {
		a, err := Generate(pattern, 300, 1)
		require.NoError(t, err)
		b, err := Generate(pattern, 300, 1)
		require.NoError(t, err)

		assert.Len(t, a, 300, pattern)
		assert.Equal(t, a, b, "%s is deterministic for a seed", pattern)
	}

	sorted, _ := Generate(PatternSorted, 100, 0)
	assert.True(t, hsort.IsSorted(sorted))

	reversed, _ := Generate(PatternReversed, 100, 0)
	assert.Equal(t, 100, reversed[0])
	assert.Equal(t, 1, reversed[99])

	_, err := Generate("zigzag", 10, 0)
	assert.True(t, errors.Is(err, ErrUnknownPattern))

	_, err = Generate(PatternRandom, -1, 0)
	assert.Error(t, err)
}

func TestMergeSort(t *testing.T) {
	for _, n := range []int{0, 1, 2, 15, 16, 17, 100, 1001} {
		data, err := Generate(PatternRandom, n, int64(n))
		require.NoError(t, err)

		want := slices.Clone(data)
		slices.Sort(want)

		got := MergeSort(data)
		if n == 0 {
			assert.Empty(t, got)
			continue
		}
		assert.Equal(t, want, got, "n=%d", n)
	}
}

func TestAlgorithmsSort(t *testing.T) {
	for _, name := range Algorithms() {
		algo, err := newAlgorithm(name, hsort.DefaultThreshold)
		require.NoError(t, err)

		data, _ := Generate(PatternFewUnique, 1000, 5)
		st := algo(data)

		assert.True(t, hsort.IsSorted(data), name)
		if name == AlgoHybrid || name == AlgoHybridMedian3 {
			assert.Greater(t, st.Partitions, 0, name)
			assert.Greater(t, st.MaxDepth, 0, name)
		} else {
			assert.Equal(t, hsort.Stats{}, st, name)
		}
	}

	_, err := newAlgorithm("bogosort", 10)
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))

	_, err = newAlgorithm(AlgoHybrid, 0)
	assert.True(t, errors.Is(err, hsort.ErrInvalidThreshold))
}

func TestHybridAlgorithmReuse(t *testing.T) {
	algo, err := newAlgorithm(AlgoHybrid, hsort.DefaultThreshold)
	require.NoError(t, err)

	big, _ := Generate(PatternRandom, 2000, 3)
	first := algo(big)
	require.Greater(t, first.Partitions, 0)

	small := []int{3, 1, 2}
	second := algo(small)

	assert.Equal(t, []int{1, 2, 3}, small)
	assert.Equal(t, hsort.Stats{InsertionRuns: 1, MaxDepth: 1}, second, "stats do not carry over between calls")
}

func TestInsertionSorter(t *testing.T) {
	s := insertionSorter[int]()
	assert.Equal(t, mergeInsertionCutoff+1, s.Config().Threshold)

	data := []int{9, 3, 7, 1, 5, 8, 2, 6, 4, 0, 16, 12, 15, 11, 13, 14}
	require.Len(t, data, mergeInsertionCutoff)
	s.Sort(data)

	assert.True(t, hsort.IsSorted(data))
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		modify func(*Config)
		target error
	}{
		{"no sizes", func(c *Config) { c.Sizes = nil }, nil},
		{"negative size", func(c *Config) { c.Sizes = []int{-5} }, nil},
		{"zero runs", func(c *Config) { c.Runs = 0 }, nil},
		{"unknown algorithm", func(c *Config) { c.Algorithms = []string{"bogosort"} }, ErrUnknownAlgorithm},
		{"unknown pattern", func(c *Config) { c.Patterns = []string{"zigzag"} }, ErrUnknownPattern},
		{"unknown storage", func(c *Config) { c.Storage = "leveldb" }, kvdb.ErrUnknownBackend},
		{"bad threshold", func(c *Config) { c.Threshold = 0 }, hsort.ErrInvalidThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			if tt.target != nil {
				assert.True(t, errors.Is(err, tt.target), "err=%v", err)
			}
		})
	}
}

func TestRunnerMemory(t *testing.T) {
	cfg := testConfig()
	cfg.Patterns = []string{PatternRandom, PatternReversed}

	r, err := NewRunner(cfg)
	require.NoError(t, err)

	results, err := r.Run()
	require.NoError(t, err)

	assert.Len(t, results, len(cfg.Patterns)*len(cfg.Sizes)*len(cfg.Algorithms)*cfg.Runs)
	for _, res := range results {
		assert.True(t, res.Sorted, "%s/%s/%d", res.Algorithm, res.Pattern, res.DataSize)
		assert.Equal(t, StorageMemory, res.StorageType)
		assert.Zero(t, res.StoreRead)

		if res.Algorithm == AlgoHybrid && res.DataSize == 9 {
			assert.Zero(t, res.Partitions, "below threshold uses insertion sort only")
		}
		if res.Algorithm == AlgoHybrid && res.DataSize == 500 {
			assert.Greater(t, res.Partitions, 0)
		}
	}
}

func TestRunnerWithStore(t *testing.T) {
	for _, backend := range kvdb.Backends() {
		t.Run(backend, func(t *testing.T) {
			cfg := testConfig()
			cfg.Sizes = []int{200}
			cfg.Algorithms = []string{AlgoHybrid, AlgoStdlib}
			cfg.Storage = backend
			cfg.StoreDir = t.TempDir()

			r, err := NewRunner(cfg)
			require.NoError(t, err)

			results, err := r.Run()
			require.NoError(t, err)
			require.Len(t, results, 4)

			for _, res := range results {
				assert.True(t, res.Sorted)
				assert.Equal(t, backend, res.StorageType)
				assert.Greater(t, res.StoreSize, int64(0))
			}
		})
	}
}

func TestRunnerStoreSizePerDataset(t *testing.T) {
	cfg := testConfig()
	cfg.Patterns = []string{PatternRandom}
	cfg.Sizes = []int{5000, 10}
	cfg.Algorithms = []string{AlgoHybrid}
	cfg.Runs = 1
	cfg.Storage = kvdb.BackendFile
	cfg.StoreDir = t.TempDir()

	r, err := NewRunner(cfg)
	require.NoError(t, err)

	results, err := r.Run()
	require.NoError(t, err)
	require.Len(t, results, 2)

	large, small := results[0], results[1]
	require.Equal(t, 5000, large.DataSize)
	require.Equal(t, 10, small.DataSize)

	// 값은 1000000 미만이라 한 줄에 최대 7바이트
	assert.LessOrEqual(t, small.StoreSize, int64(10*7))
	assert.Greater(t, small.StoreSize, int64(0))
	assert.Less(t, small.StoreSize, large.StoreSize)
}

func TestWriteMarkdown(t *testing.T) {
	results := []Result{
		{Algorithm: AlgoHybrid, Pattern: PatternRandom, DataSize: 100, StorageType: StorageMemory, TestRun: 1, Duration: 10, Sorted: true, Partitions: 12},
		{Algorithm: AlgoHybrid, Pattern: PatternRandom, DataSize: 100, StorageType: StorageMemory, TestRun: 2, Duration: 30, Sorted: true},
		{Algorithm: AlgoStdlib, Pattern: PatternRandom, DataSize: 100, StorageType: StorageMemory, TestRun: 1, Duration: 5, Sorted: true},
		{Algorithm: AlgoHybrid, Pattern: PatternRandom, DataSize: 100, StorageType: "pebble", TestRun: 1, Duration: 7, Sorted: false},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, results))
	out := buf.String()

	assert.Contains(t, out, "# 정렬 알고리즘 벤치마크 결과")
	assert.Contains(t, out, "## random - 인메모리 - 100개 데이터")
	assert.Contains(t, out, "## random - PebbleDB - 100개 데이터")
	assert.Contains(t, out, "| hybrid | 1 | 10ns | 0 bytes | 12 | 0 | 0s | O |")
	assert.Contains(t, out, "| hybrid | 20ns | 0 bytes |")
	assert.Contains(t, out, "| X |")
	assert.Equal(t, 2, strings.Count(out, "### "))
}

func TestWriteJSON(t *testing.T) {
	results := []Result{
		{Algorithm: AlgoHybrid, Pattern: PatternSorted, DataSize: 10, StorageType: StorageMemory, TestRun: 1, Duration: 42, Sorted: true, MaxDepth: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, results))

	var decoded []Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, results, decoded)
	assert.Contains(t, buf.String(), `"max_depth": 2`)
	assert.NotContains(t, buf.String(), "store_read")
}

func TestParallelMergeSort(t *testing.T) {
	for _, n := range []int{0, 500, 5000, 50000} {
		data, err := Generate(PatternRandom, n, 9)
		require.NoError(t, err)

		want := slices.Clone(data)
		slices.Sort(want)

		got := ParallelMergeSort(data)
		if n == 0 {
			assert.Empty(t, got)
			continue
		}
		assert.Equal(t, want, got, "n=%d", n)
	}

	assert.Equal(t, 0, len(workerPool), "all worker slots are released")
}
