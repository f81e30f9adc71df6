package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conduit-lang/fsmatch/compiler"
)

var graphJSON bool

func init() {
	graphCmd.Flags().BoolVar(&graphJSON, "json", false, "Output compile errors in JSON format")
}

var graphCmd = &cobra.Command{
	Use:   "graph PATTERN",
	Short: "Print the compiled state graph in Graphviz dot format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, cerrs := compiler.Compile(args[0])
		if len(cerrs) > 0 {
			printCompileErrors(cerrs, graphJSON)
			return fmt.Errorf("pattern %q failed to compile", args[0])
		}
		fmt.Fprint(cmd.OutOrStdout(), g.Dot())
		return nil
	},
}
