package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vf2iso",
	Short: "Exact and subgraph isomorphism matching over labeled directed multigraphs",
	Long: `vf2iso loads labeled directed multigraphs from the "t/v/e" line
format and checks a query graph against a data graph for exact or subgraph
isomorphism, using a VF2-style backtracking search.`,
}

func init() {
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(batchCmd)
}

// Execute runs the root command, parsing os.Args. It is the sole entry
// point cmd/vf2iso's main calls.
func Execute() error {
	return rootCmd.Execute()
}
