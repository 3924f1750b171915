package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"vf2iso/loader"
	"vf2iso/match"
)

var (
	batchDataPath   string
	batchQueriesDir string
	batchSub        bool
	batchCount      bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Match every query file in a directory against every graph in a data file",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchDataPath, "data", "", "path to the data graph file (required)")
	batchCmd.Flags().StringVar(&batchQueriesDir, "queries", "", "directory of query graph files (required)")
	batchCmd.Flags().BoolVar(&batchSub, "sub", false, "match subgraph isomorphism instead of exact isomorphism")
	batchCmd.Flags().BoolVar(&batchCount, "count", false, "print the number of matching (query, data) graph pairs")
	batchCmd.MarkFlagRequired("data")
	batchCmd.MarkFlagRequired("queries")
}

func runBatch(cmd *cobra.Command, args []string) error {
	f, err := os.Open(batchDataPath)
	if err != nil {
		return fmt.Errorf("data graph: %w", err)
	}
	dataGraphs, err := loader.LoadGraphs(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("data graph: %w", err)
	}

	entries, err := os.ReadDir(batchQueriesDir)
	if err != nil {
		return fmt.Errorf("queries dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(batchQueriesDir, name)
		qf, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		queryGraphs, err := loader.LoadGraphs(qf)
		qf.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		start := time.Now()
		matched := 0
		for _, q := range queryGraphs {
			for _, d := range dataGraphs {
				var ok bool
				if batchSub {
					ok = match.SubIsomorphic(q, d)
				} else {
					ok = match.Isomorphic(q, d)
				}
				if ok {
					matched++
				}
			}
		}
		elapsed := time.Since(start)

		if batchCount {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d match(es) (%s)\n", name, matched, elapsed)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, elapsed)
		}
	}

	return nil
}
