package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flightbook/flightbook-cli/internal/cli"
	"github.com/flightbook/flightbook-cli/pkg/airports"
	"github.com/flightbook/flightbook-cli/pkg/models"
	"github.com/flightbook/flightbook-cli/pkg/search"
)

// AirportResultOutput represents the formatted lookup results
type AirportResultOutput struct {
	Query    string           `json:"query" yaml:"query"`
	Provider string           `json:"provider" yaml:"provider"`
	Count    int              `json:"count" yaml:"count"`
	Shown    int              `json:"shown" yaml:"shown"`
	Airports []models.Airport `json:"airports" yaml:"airports"`
}

// NewAirportsCommand creates the airports command
func NewAirportsCommand(opts *cli.GlobalOptions) *cobra.Command {
	var (
		all          bool
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "airports <query>",
		Short: "Look up airports by name, city, region or country",
		Long: `Look up airports through the configured provider and filter them the
same way the booking screen does.

Only the first page of matches is shown unless --all is given.

Examples:
  # Airports matching "london"
  flightbook airports london

  # Every match, as JSON
  flightbook airports new york --all --output json

  # Use aviationstack for one lookup
  flightbook airports paris --provider aviationstack`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(outputFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext(opts)
			if err != nil {
				return err
			}
			client, err := ctx.NewClient()
			if err != nil {
				return err
			}
			return runAirports(cmd, client, ctx.Settings.UI.PageSize, strings.Join(args, " "), all, strings.ToLower(outputFormat))
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show every match instead of the first page")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runAirports(cmd *cobra.Command, fetcher airports.Fetcher, pageSize int, query string, all bool, outputFormat string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return fmt.Errorf("query must not be blank")
	}

	baseCtx := cmd.Context()
	if baseCtx == nil {
		baseCtx = context.Background()
	}

	raw, err := fetcher.Lookup(baseCtx, query)
	if err != nil {
		return err
	}

	filtered := search.FilterAirports(raw, query)
	shown := search.Window(filtered, all, pageSize)

	result := AirportResultOutput{
		Query:    query,
		Provider: fetcher.Name(),
		Count:    len(filtered),
		Shown:    len(shown),
		Airports: shown,
	}

	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		return outputAirportsText(cmd, result)
	}
}

func outputAirportsText(cmd *cobra.Command, result AirportResultOutput) error {
	out := cmd.OutOrStdout()
	if result.Count == 0 {
		fmt.Fprintf(out, "No airports found for %q\n", result.Query)
		return nil
	}

	fmt.Fprintf(out, "\nAirports matching: %s (%s)\n\n", result.Query, result.Provider)

	table := cli.NewTableFormatter(out)
	table.Header("IATA", "ICAO", "Name", "City", "Country")
	for _, a := range result.Airports {
		table.Row(
			cli.ValueOrDash(a.IATA),
			cli.ValueOrDash(a.ICAO),
			cli.TruncateString(a.Name, 48),
			cli.ValueOrDash(a.City),
			cli.ValueOrDash(a.Country),
		)
	}
	if err := table.Flush(); err != nil {
		return err
	}

	if result.Shown < result.Count {
		fmt.Fprintf(out, "\nShowing %d of %d (use --all for the rest)\n", result.Shown, result.Count)
	} else {
		fmt.Fprintf(out, "\nTotal: %d airports\n", result.Count)
	}
	return nil
}
