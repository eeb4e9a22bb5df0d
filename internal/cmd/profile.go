package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vibescout/vibescout/internal/core"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage discovery profiles",
}

var (
	profileFile        string
	profileLocation    string
	profileAge         int
	profileSociability int
	profileInterests   []string
	profileTeams       []string
	profileFood        []string
	profileMusic       []string
	profileVibes       []string
)

var profileSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Create or update a profile",
	Long: `Create or update a discovery profile.

The profile can be provided as a YAML file with --file, or assembled from
flags. Flags override file values.

Examples:
  vibescout profile set alex --location "Los Angeles" --interest Sports --team basketball=Lakers
  vibescout profile set alex --file alex.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return errors.New("profile name is required")
		}

		profile := core.Profile{Name: name}

		if profileFile != "" {
			data, err := os.ReadFile(profileFile)
			if err != nil {
				return fmt.Errorf("read profile file: %w", err)
			}
			if err := yaml.Unmarshal(data, &profile); err != nil {
				return fmt.Errorf("parse profile file: %w", err)
			}
			profile.Name = name
		}

		if profileLocation != "" {
			profile.Location = profileLocation
		}
		if profileAge > 0 {
			profile.Age = profileAge
		}
		if profileSociability > 0 {
			profile.Sociability = profileSociability
		}
		if len(profileInterests) > 0 {
			profile.Interests = profileInterests
		}
		if len(profileFood) > 0 {
			profile.FoodPreferences = profileFood
		}
		if len(profileMusic) > 0 {
			profile.MusicGenres = profileMusic
		}
		if len(profileVibes) > 0 {
			profile.VibeTags = profileVibes
		}
		if len(profileTeams) > 0 {
			teams, err := parseTeams(profileTeams)
			if err != nil {
				return err
			}
			profile.SportsTeams = teams
		}

		ctx := cmd.Context()
		db, _, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close() // nolint:errcheck // best-effort cleanup

		if err := db.SaveProfile(ctx, name, profile); err != nil {
			return err
		}

		fmt.Printf("Profile %q saved.\n", name)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show profile details",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}

		ctx := cmd.Context()
		db, _, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close() // nolint:errcheck // best-effort cleanup

		record, err := db.GetProfile(ctx, name)
		if err != nil {
			return err
		}
		if record == nil {
			return fmt.Errorf("profile %q not found", name)
		}

		printProfile(record.Profile)
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, _, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close() // nolint:errcheck // best-effort cleanup

		if err := db.DeleteProfile(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Profile %q deleted.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileDeleteCmd)

	profileSetCmd.Flags().StringVar(&profileFile, "file", "", "YAML file with the profile definition")
	profileSetCmd.Flags().StringVar(&profileLocation, "location", "", "home location")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age")
	profileSetCmd.Flags().IntVar(&profileSociability, "sociability", 0, "sociability score (1-10)")
	profileSetCmd.Flags().StringSliceVar(&profileInterests, "interest", nil, "interest (repeatable)")
	profileSetCmd.Flags().StringSliceVar(&profileTeams, "team", nil, "sport=team pair (repeatable)")
	profileSetCmd.Flags().StringSliceVar(&profileFood, "food", nil, "food preference (repeatable)")
	profileSetCmd.Flags().StringSliceVar(&profileMusic, "music", nil, "music genre (repeatable)")
	profileSetCmd.Flags().StringSliceVar(&profileVibes, "vibe", nil, "vibe tag (repeatable)")
}

func parseTeams(pairs []string) (map[string]string, error) {
	teams := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		sport, team, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(sport) == "" || strings.TrimSpace(team) == "" {
			return nil, fmt.Errorf("invalid --team value %q (expected sport=team)", pair)
		}
		teams[strings.TrimSpace(sport)] = strings.TrimSpace(team)
	}
	return teams, nil
}

func printProfile(profile core.Profile) {
	fmt.Printf("Profile: %s\n", profile.Name)
	if profile.Age > 0 {
		fmt.Printf("Age: %d\n", profile.Age)
	}
	if profile.Location != "" {
		fmt.Printf("Location: %s\n", profile.Location)
	}
	if len(profile.Interests) > 0 {
		fmt.Printf("Interests: %s\n", strings.Join(profile.Interests, ", "))
	}
	if len(profile.SportsTeams) > 0 {
		fmt.Println("Teams:")
		for sport, team := range profile.SportsTeams {
			fmt.Printf("  %s: %s\n", sport, team)
		}
	}
	if len(profile.FoodPreferences) > 0 {
		fmt.Printf("Food: %s\n", strings.Join(profile.FoodPreferences, ", "))
	}
	if len(profile.MusicGenres) > 0 {
		fmt.Printf("Music: %s\n", strings.Join(profile.MusicGenres, ", "))
	}
	if profile.Sociability > 0 {
		fmt.Printf("Sociability: %d\n", profile.Sociability)
	}
	if len(profile.VibeTags) > 0 {
		fmt.Printf("Vibes: %s\n", strings.Join(profile.VibeTags, ", "))
	}
}
