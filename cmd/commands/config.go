package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flightbook/flightbook-cli/internal/cli"
	"github.com/flightbook/flightbook-cli/pkg/files"
	"github.com/flightbook/flightbook-cli/pkg/models"
)

// NewConfigCommand creates the config command and its subcommands
func NewConfigCommand(opts *cli.GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage flightbook settings",
		Long: `Manage the settings file (~/.flightbook/settings.yaml unless --settings is given).

The API key can also be supplied through FLIGHTBOOK_API_KEY, which takes
precedence over the stored value.`,
	}

	cmd.AddCommand(newConfigInitCommand(opts))
	cmd.AddCommand(newConfigShowCommand(opts))
	cmd.AddCommand(newConfigPathCommand(opts))

	return cmd
}

func newConfigInitCommand(opts *cli.GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the default values",
		Long: `Write a settings file with the default values. --provider and --api-key
are applied before saving.

Examples:
  flightbook config init
  flightbook config init --provider aviationstack --api-key XXXX`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext(opts)
			if err != nil {
				return err
			}

			if _, err := os.Stat(ctx.Path); err == nil {
				ok, err := cli.Confirm(fmt.Sprintf("Settings file %s exists. Overwrite?", ctx.Path), false)
				if err != nil {
					return err
				}
				if !ok {
					cli.PrintInfo("Keeping existing settings")
					return nil
				}
			} else if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check settings %s: %w", ctx.Path, err)
			}

			settings := models.DefaultSettings()
			if opts.Provider != "" {
				if err := cli.ValidateProvider(opts.Provider); err != nil {
					return err
				}
				settings.Lookup.Provider = cli.NormalizeProvider(opts.Provider)
			}
			settings.Lookup.APIKey = opts.APIKey

			if err := files.WriteSettings(ctx.Path, settings); err != nil {
				return err
			}
			cli.PrintSuccess("Wrote settings to %s", ctx.Path)
			return nil
		},
	}
}

func newConfigShowCommand(opts *cli.GlobalOptions) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Long:  `Print the settings after defaults, the environment and flags are applied. The API key is masked.`,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(outputFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext(opts)
			if err != nil {
				return err
			}
			settings, err := ctx.LoadSettings()
			if err != nil {
				return err
			}

			shown := *settings
			shown.Lookup.APIKey = maskKey(settings.Lookup.APIKey)

			format := strings.ToLower(outputFormat)
			if format == string(cli.FormatText) {
				format = string(cli.FormatYAML)
			}
			return cli.OutputResults(cmd.OutOrStdout(), format, shown)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "yaml", "Output format (text, json, yaml)")

	return cmd
}

func newConfigPathCommand(opts *cli.GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ctx.Path)
			return nil
		},
	}
}

// maskKey keeps the last four characters of a key
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
