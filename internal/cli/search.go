package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/moodlist/internal/playlist"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search classified songs",
		Long: "Case-insensitive substring search over title, artist or genre of every classified song. " +
			"With --fuzzy, rank songs by similarity instead.",
		RunE: runSearch,
	}

	cmd.Flags().String("field", "title", "Field to search: title, artist or genre")
	cmd.Flags().Bool("fuzzy", false, "Rank by similarity instead of substring match")
	cmd.Flags().Float64("threshold", playlist.DefaultSimilarThreshold, "Minimum similarity for --fuzzy (0-1)")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	fieldName, _ := cmd.Flags().GetString("field")
	fuzzy, _ := cmd.Flags().GetBool("fuzzy")
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	query := strings.Join(args, " ")

	field, err := playlist.ParseField(fieldName)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	p, err := loadPlaylists(cmd)
	if err != nil {
		return err
	}
	songs := p.All()

	if fuzzy {
		matches, err := playlist.Similar(songs, query, field, threshold)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}
		printJSON(matches)
		return nil
	}

	results, err := playlist.Search(songs, query, field)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	printJSON(results)
	return nil
}
