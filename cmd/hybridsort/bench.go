package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"hybridsort/bench"
)

func newBenchCmd() *cobra.Command {
	cfg := bench.DefaultConfig()
	var mdPath, jsonPath string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "정렬 알고리즘 벤치마크 실행 후 결과 저장",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			runner, err := bench.NewRunner(cfg)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "정렬 알고리즘 벤치마크 시작...")
			results, err := runner.Run()
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "결과 저장 중...")
			if err := writeReport(mdPath, results, bench.WriteMarkdown); err != nil {
				return log.Error(err)
			}
			fmt.Fprintf(out, "%s 파일이 생성되었습니다.\n", mdPath)

			if err := writeReport(jsonPath, results, bench.WriteJSON); err != nil {
				return log.Error(err)
			}
			fmt.Fprintf(out, "%s 파일이 생성되었습니다.\n", jsonPath)

			fmt.Fprintln(out, "벤치마크 완료!")
			return nil
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&cfg.Sizes, "sizes", cfg.Sizes, "데이터 크기 목록")
	f.IntVar(&cfg.Runs, "runs", cfg.Runs, "알고리즘별 반복 횟수")
	f.StringSliceVar(&cfg.Algorithms, "algorithms", cfg.Algorithms, "알고리즘 목록")
	f.StringSliceVar(&cfg.Patterns, "patterns", cfg.Patterns, "데이터 패턴 목록")
	f.StringVar(&cfg.Storage, "storage", cfg.Storage, "memory, file, bbolt, badger, pebble")
	f.StringVar(&cfg.StoreDir, "store-dir", "", "저장소 디렉터리 (기본: 임시 디렉터리)")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "데이터 생성 시드")
	f.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "삽입정렬 전환 임계값")
	f.DurationVar(&cfg.Cooldown, "cooldown", cfg.Cooldown, "실행 사이 대기 시간")
	f.StringVar(&mdPath, "out-md", "benchmark_results.md", "마크다운 결과 파일")
	f.StringVar(&jsonPath, "out-json", "benchmark_results.json", "JSON 결과 파일")

	return cmd
}

func writeReport(path string, results []bench.Result, write func(w io.Writer, results []bench.Result) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	if err := write(file, results); err != nil {
		return err
	}
	return errors.WithStack(file.Close())
}
