package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solmint/solmint/internal/ideas"
)

func newIdeasCmd(flags *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "ideas <concept...>",
		Short: "Brainstorm a token name, symbol and description",
		Example: `  solmint ideas a token for solar-powered microgrids
  solmint ideas --json "community garden rewards"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags, false)
			if err != nil {
				return err
			}
			defer app.Close()

			return runIdeas(cmd, app.Ideas, strings.Join(args, " "), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runIdeas(cmd *cobra.Command, svc ideas.Service, prompt string, jsonOutput bool) error {
	suggestion, err := svc.Generate(cmd.Context(), prompt)
	if err != nil {
		return errors.New(ideas.Message(err))
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(suggestion)
	}

	fmt.Fprintf(out, "Name:        %s\n", suggestion.Name)
	fmt.Fprintf(out, "Symbol:      %s\n", suggestion.Symbol)
	fmt.Fprintf(out, "Description: %s\n", suggestion.Description)
	return nil
}
