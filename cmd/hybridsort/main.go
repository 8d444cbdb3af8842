package main

import (
	"os"

	"github.com/convox/logger"
	"github.com/spf13/cobra"
)

var log = logger.New("ns=hybridsort")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hybridsort",
		Short:        "삽입정렬 + 퀵소트 하이브리드 정렬 도구",
		SilenceUsage: true,
	}

	root.AddCommand(
		newDemoCmd(),
		newBenchCmd(),
		newGenCmd(),
		newSortCmd(),
	)
	return root
}
