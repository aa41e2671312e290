package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/solmint/solmint/internal/config"
	"github.com/solmint/solmint/pkg/diff"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the SolMint config file",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd(flags))

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				p, err := config.DefaultPath()
				if err != nil {
					return fmt.Errorf("failed to determine config path: %w", err)
				}
				path = p
			}

			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func newConfigShowCmd(flags *rootFlags) *cobra.Command {
	var showDiff bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			effective, err := marshalConfig(*cfg)
			if err != nil {
				return err
			}
			if !showDiff {
				_, err = cmd.OutOrStdout().Write(effective)
				return err
			}

			defaults, err := marshalConfig(config.Default())
			if err != nil {
				return err
			}
			out := diff.Lines(defaults, effective, "defaults", "effective")
			if out == "" {
				out = "Configuration matches the defaults.\n"
			} else {
				removed, added := diff.Changed(defaults, effective)
				out += fmt.Sprintf("%d removed, %d added\n", removed, added)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "Show only how the effective configuration differs from the defaults")

	return cmd
}

func marshalConfig(cfg config.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf.Bytes(), nil
}
