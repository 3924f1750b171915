package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"vf2iso/graph"
	"vf2iso/loader"
	"vf2iso/match"
)

var (
	matchDataPath  string
	matchQueryPath string
	matchSub       bool
	matchMapping   bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a single query graph against a single data graph",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchDataPath, "data", "", "path to the data graph file (required)")
	matchCmd.Flags().StringVar(&matchQueryPath, "query", "", "path to the query graph file (required)")
	matchCmd.Flags().BoolVar(&matchSub, "sub", false, "match subgraph isomorphism instead of exact isomorphism")
	matchCmd.Flags().BoolVar(&matchMapping, "mapping", false, "print the discovered vertex mapping on a match")
	matchCmd.MarkFlagRequired("data")
	matchCmd.MarkFlagRequired("query")
}

func runMatch(cmd *cobra.Command, args []string) error {
	data, err := loadFirstGraph(matchDataPath)
	if err != nil {
		return fmt.Errorf("data graph: %w", err)
	}
	query, err := loadFirstGraph(matchQueryPath)
	if err != nil {
		return fmt.Errorf("query graph: %w", err)
	}

	start := time.Now()
	pairs, ok := match.FindMapping(query, data, matchSub)
	elapsed := time.Since(start)

	fmt.Fprintf(cmd.OutOrStdout(), "match: %t (%s)\n", ok, elapsed)
	if ok && matchMapping {
		for _, p := range pairs {
			fmt.Fprintf(cmd.OutOrStdout(), "  query %d -> data %d\n", p[0], p[1])
		}
	}

	return nil
}

// loadFirstGraph reads path and returns the first graph found in it,
// closing the file before returning.
func loadFirstGraph(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	graphs, err := loader.LoadGraphs(f)
	if err != nil {
		return nil, err
	}
	if len(graphs) == 0 {
		return nil, fmt.Errorf("%s: no graphs found", path)
	}

	return graphs[0], nil
}
