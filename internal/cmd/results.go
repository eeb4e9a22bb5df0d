package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vibescout/vibescout/internal/core"
	"github.com/vibescout/vibescout/internal/core/carousel"
	"github.com/vibescout/vibescout/internal/core/engine"
	"github.com/vibescout/vibescout/internal/observability"
	"github.com/vibescout/vibescout/internal/output"
	"github.com/vibescout/vibescout/internal/tui"
)

var (
	resultsProfile    string
	resultsQuery      string
	resultsGroupSize  string
	resultsLocation   string
	resultsBudget     string
	resultsTrending   bool
	resultsHiddenGems bool
	resultsOutput     string
	resultsBrowse     bool
	resultsPage       int
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show discovery results",
	Long: `Show the results of the latest discovery attempt.

The hand-off slot is consumed first. When it is empty (direct invocation,
or an attempt that failed before hand-off) discovery is re-run with the
same filters; a failed re-run falls back to locally generated suggestions.

Examples:
  vibescout results
  vibescout results --browse
  vibescout results --query "live music" --trending --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		deps, err := buildDiscovery(ctx)
		if err != nil {
			return err
		}
		defer deps.Close()

		profile, err := deps.profileFor(ctx, resultsProfile)
		if err != nil {
			return err
		}

		filters := core.SearchFilters{
			GroupSize:            resultsGroupSize,
			Location:             resultsLocation,
			Budget:               resultsBudget,
			WantsTrendingSignal:  resultsTrending,
			WantsHiddenGemSignal: resultsHiddenGems,
		}

		set, err := deps.resolver.Resolve(ctx, profile, filters, resultsQuery)
		if err != nil {
			return err
		}

		switch set.Source {
		case engine.SourceEmpty:
			fmt.Println("No suggestions available. Set up a profile first: vibescout profile set <name>")
			return nil
		case engine.SourcePending:
			fmt.Println("A discovery attempt is still in flight. Try again shortly.")
			return nil
		case engine.SourceFallback:
			observability.CLILogger.Info("Showing local suggestions",
				zap.String("reason", string(set.Reason)))
			fmt.Printf("Service unavailable (%s); showing local suggestions.\n", set.Reason)
		}

		if resultsBrowse {
			return tui.Run(set.Events)
		}

		format, err := output.ParseFormat(resultsOutput)
		if err != nil {
			return err
		}

		if format == output.FormatTable {
			c := carousel.New(set.Events)
			if resultsPage > 0 {
				c.JumpToPage(resultsPage - 1)
			}
			rendered, err := output.FormatPage(c)
			if err != nil {
				return err
			}
			fmt.Println(rendered)
			return nil
		}

		rendered, err := output.NewFormatter(format).FormatEvents(set.Events)
		if err != nil {
			return err
		}
		fmt.Println(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resultsCmd)

	resultsCmd.Flags().StringVar(&resultsProfile, "profile", "", "stored profile name (default profile when omitted)")
	resultsCmd.Flags().StringVarP(&resultsQuery, "query", "q", "", "free-text search query")
	resultsCmd.Flags().StringVar(&resultsGroupSize, "group-size", "", "group size filter")
	resultsCmd.Flags().StringVar(&resultsLocation, "location", "", "location filter")
	resultsCmd.Flags().StringVar(&resultsBudget, "budget", "", "budget filter")
	resultsCmd.Flags().BoolVar(&resultsTrending, "trending", false, "request trending predictions")
	resultsCmd.Flags().BoolVar(&resultsHiddenGems, "hidden-gems", false, "request hidden-gem notes")
	resultsCmd.Flags().StringVarP(&resultsOutput, "output", "o", "table", "output format: table, json, ics")
	resultsCmd.Flags().BoolVar(&resultsBrowse, "browse", false, "browse results interactively")
	resultsCmd.Flags().IntVar(&resultsPage, "page", 0, "jump to a results page (1-based)")
}
