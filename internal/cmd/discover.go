package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vibescout/vibescout/internal/core"
	"github.com/vibescout/vibescout/internal/core/engine"
	"github.com/vibescout/vibescout/internal/observability"
	"github.com/vibescout/vibescout/internal/output"
)

var (
	discoverProfile    string
	discoverQuery      string
	discoverGroupSize  string
	discoverLocation   string
	discoverBudget     string
	discoverTrending   bool
	discoverHiddenGems bool
	discoverOutput     string
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Run a discovery attempt",
	Long: `Run one discovery attempt for a stored profile.

The attempt issues a single generation request, paced by the minimum display
window and capped by the maximum timeout. On success the result is written to
the hand-off slot; 'vibescout results' consumes it. On failure the results
command falls back to locally generated suggestions.

Examples:
  vibescout discover --profile alex --query "live music" --trending
  vibescout discover --location "Santa Monica" --budget "$$"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		deps, err := buildDiscovery(ctx)
		if err != nil {
			return err
		}
		defer deps.Close()

		profile, err := deps.profileFor(ctx, discoverProfile)
		if err != nil {
			return err
		}

		filters := core.SearchFilters{
			GroupSize:            discoverGroupSize,
			Location:             discoverLocation,
			Budget:               discoverBudget,
			WantsTrendingSignal:  discoverTrending,
			WantsHiddenGemSignal: discoverHiddenGems,
		}

		observability.CLILogger.Info("Starting discovery attempt",
			zap.String("profile", profile.Name),
			zap.String("query", discoverQuery),
			zap.Duration("min_display", deps.cfg.Discovery.MinDisplay),
			zap.Duration("max_timeout", deps.cfg.Discovery.MaxTimeout))

		outcome, err := deps.orch.Discover(ctx, profile, filters, discoverQuery)
		if errors.Is(err, engine.ErrAttemptStarted) {
			return errors.New("this attempt is already in flight")
		}
		if err != nil {
			return err
		}

		switch outcome.State {
		case core.AttemptSucceeded:
			source := "service"
			if outcome.FromCache {
				source = "cache"
			}
			fmt.Printf("Discovery succeeded (%s): %d events.\n", source, len(outcome.Events))
			if outcome.HandedOff {
				fmt.Printf("Results handed off. Next: vibescout results%s\n", navigationSuffix(outcome.Navigation))
			} else if outcome.HandoffErr != nil {
				observability.CLILogger.Warn("Hand-off failed; results will re-run discovery",
					zap.Error(outcome.HandoffErr))
			}

			format, err := output.ParseFormat(discoverOutput)
			if err != nil {
				return err
			}
			rendered, err := output.NewFormatter(format).FormatEvents(outcome.Events)
			if err != nil {
				return err
			}
			fmt.Println(rendered)

		case core.AttemptFailed:
			fmt.Printf("Discovery failed (%s). The results command will show local suggestions.\n", outcome.Reason)
			fmt.Printf("Next: vibescout results%s\n", navigationSuffix(outcome.Navigation))
			if outcome.Err != nil {
				observability.CLILogger.Debug("Attempt failure detail", zap.Error(outcome.Err))
			}
		}

		return nil
	},
}

func navigationSuffix(navigation string) string {
	if navigation == "" || navigation == core.ResultsPath {
		return ""
	}
	return " (" + navigation + ")"
}

func init() {
	rootCmd.AddCommand(discoverCmd)

	discoverCmd.Flags().StringVar(&discoverProfile, "profile", "", "stored profile name (default profile when omitted)")
	discoverCmd.Flags().StringVarP(&discoverQuery, "query", "q", "", "free-text search query")
	discoverCmd.Flags().StringVar(&discoverGroupSize, "group-size", "", "group size filter")
	discoverCmd.Flags().StringVar(&discoverLocation, "location", "", "location filter")
	discoverCmd.Flags().StringVar(&discoverBudget, "budget", "", "budget filter")
	discoverCmd.Flags().BoolVar(&discoverTrending, "trending", false, "request trending predictions")
	discoverCmd.Flags().BoolVar(&discoverHiddenGems, "hidden-gems", false, "request hidden-gem notes")
	discoverCmd.Flags().StringVarP(&discoverOutput, "output", "o", "table", "output format: table, json, ics")
}
