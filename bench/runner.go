package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/convox/logger"
	"github.com/pkg/errors"

	"hybridsort/kvdb"
	hsort "hybridsort/sort"
)

// Result 실행 한 번의 결과
type Result struct {
	Algorithm   string        `json:"algorithm"`
	Pattern     string        `json:"pattern"`
	DataSize    int           `json:"data_size"`
	StorageType string        `json:"storage_type"`
	TestRun     int           `json:"test_run"`
	Duration    time.Duration `json:"duration"`
	MemoryUsage uint64        `json:"memory_usage_bytes"`
	Sorted      bool          `json:"sorted"`

	Partitions    int `json:"partitions,omitempty"`
	InsertionRuns int `json:"insertion_runs,omitempty"`
	MaxDepth      int `json:"max_depth,omitempty"`

	StoreWrite time.Duration `json:"store_write,omitempty"`
	StoreRead  time.Duration `json:"store_read,omitempty"`
	StoreSize  int64         `json:"store_size_bytes,omitempty"`
}

// Runner 설정된 패턴 x 크기 x 알고리즘 x 실행 횟수를 순서대로 돌린다.
type Runner struct {
	cfg   Config
	algos map[string]Algorithm
	log   *logger.Logger
}

// NewRunner 설정을 검증하고 알고리즘을 준비한다.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	algos := make(map[string]Algorithm, len(cfg.Algorithms))
	for _, name := range cfg.Algorithms {
		a, err := newAlgorithm(name, cfg.Threshold)
		if err != nil {
			return nil, err
		}
		algos[name] = a
	}

	return &Runner{
		cfg:   cfg,
		algos: algos,
		log:   logger.New("ns=bench"),
	}, nil
}

// dataset 저장소를 거친 입력 데이터. 데이터셋마다 새 저장소를 쓰므로
// storeSize 는 이 데이터셋 하나의 크기다.
type dataset struct {
	name      string
	data      []int
	store     kvdb.Store
	write     time.Duration
	storeSize int64
}

func (ds *dataset) close() {
	if ds.store != nil {
		ds.store.Close()
	}
}

// Run 패턴 x 크기 x 알고리즘 x 실행 횟수 순서로 돌리고 결과를 모은다.
func (r *Runner) Run() ([]Result, error) {
	log := r.log.At("run").Start()

	baseDir, cleanup, err := r.storeDir()
	if err != nil {
		return nil, log.Error(err)
	}
	defer cleanup()

	var results []Result

	for _, pattern := range r.cfg.Patterns {
		for _, size := range r.cfg.Sizes {
			ds, err := r.prepare(baseDir, pattern, size)
			if err != nil {
				return nil, log.Error(err)
			}

			res, err := r.runDataset(ds, pattern)
			ds.close()
			if err != nil {
				return nil, log.Error(err)
			}
			results = append(results, res...)
		}
	}

	log.Successf("results=%d", len(results))
	return results, nil
}

func (r *Runner) runDataset(ds *dataset, pattern string) ([]Result, error) {
	var results []Result

	for _, algo := range r.cfg.Algorithms {
		for run := 1; run <= r.cfg.Runs; run++ {
			res, err := r.runOnce(ds, algo)
			if err != nil {
				return nil, err
			}
			res.Pattern = pattern
			res.TestRun = run
			results = append(results, res)

			r.log.At("run").Logf("algorithm=%s pattern=%s size=%d storage=%s run=%d duration=%s sorted=%t store_size=%d",
				algo, pattern, res.DataSize, res.StorageType, run, res.Duration, res.Sorted, res.StoreSize)

			if r.cfg.Cooldown > 0 {
				time.Sleep(r.cfg.Cooldown)
			}
		}
	}
	return results, nil
}

// storeDir 데이터셋별 저장소를 만들 상위 디렉터리. memory 면 빈 문자열.
func (r *Runner) storeDir() (string, func(), error) {
	if r.cfg.Storage == StorageMemory {
		return "", func() {}, nil
	}

	if r.cfg.StoreDir != "" {
		return r.cfg.StoreDir, func() {}, nil
	}

	tmp, err := os.MkdirTemp("", "hybridsort-bench-")
	if err != nil {
		return "", nil, errors.WithStack(err)
	}
	return tmp, func() { os.RemoveAll(tmp) }, nil
}

// prepare 데이터를 만들고, 저장소 모드면 baseDir/<name> 에 새 저장소를 열어 저장한다.
func (r *Runner) prepare(baseDir, pattern string, size int) (*dataset, error) {
	data, err := Generate(pattern, size, r.cfg.Seed)
	if err != nil {
		return nil, err
	}

	ds := &dataset{name: fmt.Sprintf("%s-%d", pattern, size), data: data}
	if r.cfg.Storage == StorageMemory {
		return ds, nil
	}

	dir := filepath.Join(baseDir, ds.name)
	if err := os.RemoveAll(dir); err != nil {
		return nil, errors.WithStack(err)
	}

	if ds.store, err = kvdb.Open(r.cfg.Storage, dir); err != nil {
		return nil, err
	}

	start := time.Now()
	if err := ds.store.Put(ds.name, ds.data); err != nil {
		ds.close()
		return nil, err
	}
	ds.write = time.Since(start)

	if ds.storeSize, err = ds.store.Size(); err != nil {
		ds.close()
		return nil, err
	}
	return ds, nil
}

func (r *Runner) runOnce(ds *dataset, algo string) (Result, error) {
	result := Result{
		Algorithm:   algo,
		DataSize:    len(ds.data),
		StorageType: r.cfg.Storage,
		StoreWrite:  ds.write,
		StoreSize:   ds.storeSize,
	}

	input := ds.data
	if ds.store != nil {
		// 매번 저장소에서 읽기
		start := time.Now()
		loaded, err := ds.store.Get(ds.name)
		if err != nil {
			return result, err
		}
		result.StoreRead = time.Since(start)
		input = loaded
	}

	testData := make([]int, len(input))
	copy(testData, input)

	stats := startStats()
	st := r.algos[algo](testData)
	result.Duration, result.MemoryUsage = stats.end()

	result.Partitions = st.Partitions
	result.InsertionRuns = st.InsertionRuns
	result.MaxDepth = st.MaxDepth
	result.Sorted = hsort.IsSorted(testData) && len(testData) == len(ds.data)

	return result, nil
}
