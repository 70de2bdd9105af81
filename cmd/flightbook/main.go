package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/flightbook/flightbook-cli/cmd/commands"
	"github.com/flightbook/flightbook-cli/internal/cli"
	"github.com/flightbook/flightbook-cli/pkg/diag"
	"github.com/flightbook/flightbook-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	globalOpts   cli.GlobalOptions
	printSummary bool
)

var rootCmd = &cobra.Command{
	Use:   "flightbook",
	Short: "Terminal flight booking screen",
	Long: `Flightbook is a terminal flight booking screen. Pick the trip type, dates,
airports, travelers, cabin class and special fare, with live airport lookup
through API Ninjas or aviationstack.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewCommandContext(&globalOpts)
		if err != nil {
			return err
		}
		settings, err := ctx.LoadSettings()
		if err != nil {
			return err
		}
		client, err := ctx.NewClient()
		if err != nil {
			return err
		}

		reporter, closeLog, err := newReporter(globalOpts.Debug)
		if err != nil {
			return err
		}
		defer closeLog()

		if settings.Lookup.APIKey == "" {
			cli.PrintWarning("No API key configured; set %s or run 'flightbook config init --api-key ...'", "FLIGHTBOOK_API_KEY")
		}
		reporter.Debugf("lookup provider=%s endpoint=%s", client.Name(), client.Endpoint())

		app := tui.NewApp(tui.Options{
			Fetcher:    client,
			Reporter:   reporter,
			PageSize:   settings.UI.PageSize,
			ShowHeader: settings.UI.ShowHeader,
		})
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}

		if printSummary {
			fmt.Fprint(cmd.OutOrStdout(), app.Trip().Summary())
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Flightbook",
	Long:  `Display the current version of the Flightbook CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Flightbook version %s\n", version)
	},
}

// newReporter logs to flightbook-debug.log when debug is set and discards
// otherwise; the TUI owns the terminal so nothing goes to stderr.
func newReporter(debug bool) (diag.Reporter, func(), error) {
	if !debug {
		return diag.Discard, func() {}, nil
	}
	f, err := tea.LogToFile("flightbook-debug.log", "flightbook")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return diag.NewLogReporter(f), func() { f.Close() }, nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globalOpts.SettingsPath, "settings", "", "Settings file (default ~/.flightbook/settings.yaml)")
	flags.StringVar(&globalOpts.Provider, "provider", "", "Airport lookup provider (ninjas, aviationstack)")
	flags.StringVar(&globalOpts.APIKey, "api-key", "", "API key for the lookup provider")
	flags.BoolVar(&globalOpts.Debug, "debug", false, "Write diagnostics to flightbook-debug.log")
	flags.BoolVarP(&globalOpts.Quiet, "quiet", "q", false, "Suppress informational output")
	flags.BoolVar(&globalOpts.NoColor, "no-color", false, "Disable symbols in CLI messages")
	flags.BoolVarP(&globalOpts.Yes, "yes", "y", false, "Answer yes to confirmation prompts")

	rootCmd.Flags().BoolVar(&printSummary, "print-summary", false, "Print the trip summary after leaving the booking screen")

	rootCmd.AddCommand(commands.NewAirportsCommand(&globalOpts))
	rootCmd.AddCommand(commands.NewConfigCommand(&globalOpts))
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
