package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/solmint/solmint/internal/logger"
	"github.com/solmint/solmint/internal/token"
	"github.com/solmint/solmint/internal/tui"
	"github.com/solmint/solmint/internal/tui/creator"
)

var errNotInteractive = errors.New("the token creator needs an interactive terminal; use `solmint quote` or `solmint ideas` in scripts")

var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var getwd = os.Getwd

// pickerStartDir is the directory the image picker opens in. An empty result
// leaves the picker on its own default.
func pickerStartDir(log *logger.Logger) string {
	dir, err := getwd()
	if err != nil {
		log.With("error", err.Error()).Debug("working directory unavailable; file picker uses its default")
		return ""
	}
	return dir
}

func newCreateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open the token creation form",
		Long:  `Open the interactive token creation form. This is also what runs when solmint is called without a subcommand.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, flags)
		},
	}

	return cmd
}

func runCreate(cmd *cobra.Command, flags *rootFlags) error {
	if !stdoutIsTerminal() {
		return errNotInteractive
	}

	app, err := newAppContext(cmd, flags, true)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	startDir := pickerStartDir(app.Log)

	m := tui.NewModel(tui.Options{
		Wallet:  app.Wallet,
		RPC:     app.RPC,
		Log:     app.Log,
		Context: ctx,
		Creator: creator.Options{
			Ideas:     app.Ideas,
			Submitter: token.LogSubmitter{Log: app.Log},
			StartDir:  startDir,
		},
	})

	app.Log.Info("launching token creator")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		app.Log.Error(err, "token creator failed")
		return fmt.Errorf("failed to run token creator: %w", err)
	}
	app.Log.Info("token creator closed")

	return nil
}
