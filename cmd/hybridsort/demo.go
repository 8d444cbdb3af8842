package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"hybridsort/bench"
	hsort "hybridsort/sort"
)

var demoArray = []int{10, 7, 8, 9, 1, 5, 12, 3, 2, 4, 6, 11, 13}

func newDemoCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "예제 배열 정렬과 기본 정렬과의 성능 비교",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			data := slices.Clone(demoArray)
			fmt.Fprintln(out, "원본 배열:", data)
			hsort.Sort(data)
			fmt.Fprintln(out, "정렬된 배열:", data)

			if size <= 0 {
				return nil
			}

			large, err := bench.Generate(bench.PatternRandom, size, time.Now().UnixNano())
			if err != nil {
				return err
			}
			copy1 := slices.Clone(large)
			copy2 := slices.Clone(large)

			fmt.Fprintln(out, "\n--- 성능 비교 ---")

			var st hsort.Stats
			s, err := hsort.New[int](hsort.WithStats(&st))
			if err != nil {
				return err
			}

			start := time.Now()
			s.Sort(copy1)
			fmt.Fprintf(out, "Hybrid Sort: %v (파티션 %d, 최대깊이 %d)\n", time.Since(start), st.Partitions, st.MaxDepth)

			start = time.Now()
			slices.Sort(copy2)
			fmt.Fprintf(out, "Native Sort: %v\n", time.Since(start))

			if !slices.Equal(copy1, copy2) {
				return errors.New("hybrid and native results differ")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 10000, "성능 비교용 랜덤 배열 크기 (0 이면 생략)")
	return cmd
}
