package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fsmatch",
		Short: "Pattern matching with a tiny state-machine engine",
		Long: `fsmatch compiles a restricted pattern language (literals, '.', '*', '+')
into a state graph and matches candidate strings against it with a greedy,
single-path walk.`,
	}

	// Add subcommands
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
