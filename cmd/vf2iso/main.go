// Command vf2iso is the CLI front end for the match engine. See package
// cli for the match and batch subcommands.
package main

import (
	"fmt"
	"os"

	"vf2iso/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
