package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conduit-lang/fsmatch/compiler/lexer"
)

var tokensJSON bool

func init() {
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "Output tokens in JSON format")
}

var tokensCmd = &cobra.Command{
	Use:   "tokens PATTERN",
	Short: "Dump the token stream for a pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens, lexErrs := lexer.New(args[0]).ScanTokens()
		if len(lexErrs) > 0 {
			for _, le := range lexErrs {
				fmt.Fprintln(cmd.ErrOrStderr(), le.Error())
			}
			return fmt.Errorf("pattern %q failed to tokenize", args[0])
		}

		if tokensJSON {
			type tokenJSON struct {
				Type   string `json:"type"`
				Lexeme string `json:"lexeme"`
				Column int    `json:"column"`
			}
			out := make([]tokenJSON, 0, len(tokens))
			for _, tok := range tokens {
				out = append(out, tokenJSON{
					Type:   tok.Type.String(),
					Lexeme: tok.Lexeme,
					Column: tok.Column,
				})
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		for _, tok := range tokens {
			fmt.Fprintln(cmd.OutOrStdout(), tok.String())
		}
		return nil
	},
}
