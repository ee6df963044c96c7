package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fitforge/fitforge-cli/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change CLI settings",
	}
	cmd.AddCommand(newConfigShowCmd(), newConfigSetCmd(), newConfigPathCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := requireDeps()
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(d.Config.Get())
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value and save it",
		Long:  "Set a configuration value and save it.\n\nKeys: " + strings.Join(config.Keys(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := requireDeps()
			if err != nil {
				return err
			}
			if err := d.Config.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := d.Config.Save(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("Configuration saved",
				renderKeyValueLines([]kvPair{{args[0], args[1]}})))
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := requireDeps()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), d.Config.Path())
			return nil
		},
	}
}
