package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/boundcalc/internal/config"
	"github.com/pengelbrecht/boundcalc/internal/styles"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the calc config file",
		Long: `Manage the calc config file.

The config file sets default output and logging preferences. Flags given on
the command line always win over the file. The valid operand range is fixed
and cannot be configured.`,
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.configPath()
			if err != nil {
				return err
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return configError(fmt.Errorf("config already exists at %s (use --force to overwrite)", path))
				} else if !errors.Is(err, os.ErrNotExist) {
					return configError(fmt.Errorf("stat config: %w", err))
				}
			}
			if err := config.Save(path, config.Default().Resolved()); err != nil {
				return configError(err)
			}

			line := styles.RenderLabel("Wrote config:") + " " + path
			if a.opts.noColor {
				line = styles.Plain(line)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective config as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			data, err := json.MarshalIndent(a.cfg.Resolved(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode json: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}
