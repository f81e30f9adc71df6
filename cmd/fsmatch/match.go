package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/fsmatch/automaton"
	"github.com/conduit-lang/fsmatch/compiler"
	cerrors "github.com/conduit-lang/fsmatch/compiler/errors"
	"github.com/conduit-lang/fsmatch/internal/cli/config"
	"github.com/conduit-lang/fsmatch/internal/cli/ui"
	"github.com/conduit-lang/fsmatch/matcher"
)

var (
	matchJSON    bool
	matchTrace   bool
	matchNoColor bool
)

func init() {
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Output compile errors in JSON format")
	matchCmd.Flags().BoolVar(&matchTrace, "trace", false, "Log every state transition")
	matchCmd.Flags().BoolVar(&matchNoColor, "no-color", false, "Disable colored output")
}

var matchCmd = &cobra.Command{
	Use:   "match PATTERN [CANDIDATE...]",
	Short: "Match candidate strings against a pattern",
	Long: `Compile PATTERN once and test each CANDIDATE against it. With no
candidates, strings are read from stdin, one per line. A pattern argument
of the form @name is resolved through the patterns table in fsmatch.yml.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(".")
		if err != nil {
			return err
		}
		if matchNoColor || cfg.NoColor {
			color.NoColor = true
		}

		src, err := resolvePattern(cfg, args[0])
		if err != nil {
			return err
		}

		g, cerrs := compiler.Compile(src)
		if len(cerrs) > 0 {
			printCompileErrors(cerrs, matchJSON)
			return fmt.Errorf("pattern %q failed to compile", src)
		}

		m := newMatcher(g, matchTrace || cfg.Trace)

		candidates := args[1:]
		if len(candidates) == 0 {
			return matchStdin(cmd, m)
		}

		matched := 0
		for _, candidate := range candidates {
			ok := m.Matches(candidate)
			if ok {
				matched++
			}
			ui.PrintVerdict(cmd.OutOrStdout(), candidate, ok)
		}
		if len(candidates) > 1 {
			ui.PrintSummary(cmd.OutOrStdout(), matched, len(candidates))
		}
		return nil
	},
}

// matchStdin tests one candidate per stdin line.
func matchStdin(cmd *cobra.Command, m *matcher.Matcher) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		candidate := scanner.Text()
		ui.PrintVerdict(cmd.OutOrStdout(), candidate, m.Matches(candidate))
	}
	return scanner.Err()
}

func newMatcher(g *automaton.Graph, trace bool) *matcher.Matcher {
	if !trace {
		return matcher.New(g)
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return matcher.New(g)
	}
	return matcher.New(g, matcher.WithLogger(log))
}

// resolvePattern expands an @name alias through the config's patterns table.
func resolvePattern(cfg *config.Config, arg string) (string, error) {
	if !strings.HasPrefix(arg, "@") {
		return arg, nil
	}
	name := strings.TrimPrefix(arg, "@")
	src, ok := cfg.Patterns[name]
	if !ok {
		return "", fmt.Errorf("unknown pattern alias %q - define it under patterns in fsmatch.yml", name)
	}
	return src, nil
}

func printCompileErrors(cerrs []cerrors.CompileError, asJSON bool) {
	if asJSON {
		out, err := json.MarshalIndent(cerrs, "", "  ")
		if err == nil {
			fmt.Fprintln(os.Stderr, string(out))
		}
		return
	}
	for _, ce := range cerrs {
		fmt.Fprint(os.Stderr, ce.FormatForTerminal())
	}
}
