package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/moodlist/internal/model"
	"github.com/rcliao/moodlist/internal/playlist"
	"github.com/rcliao/moodlist/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List songs in the library",
		RunE:  runList,
	}

	cmd.Flags().StringP("genre", "g", "", "Filter by genre (substring)")
	cmd.Flags().StringP("artist", "a", "", "Filter by artist (substring)")
	cmd.Flags().IntP("limit", "l", 20, "Max results (0 for all)")
	cmd.Flags().Bool("ids-only", false, "Only output id and title")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) error {
	genre, _ := cmd.Flags().GetString("genre")
	artist, _ := cmd.Flags().GetString("artist")
	limit, _ := cmd.Flags().GetInt("limit")
	idsOnly, _ := cmd.Flags().GetBool("ids-only")

	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	songs, err := s.List(cmd.Context(), store.ListParams{
		Genre:  genre,
		Artist: artist,
		Limit:  limit,
	})
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	if idsOnly {
		for _, song := range songs {
			fmt.Printf("%s\t%s\n", song.ID, song.Title)
		}
		return nil
	}

	normalized := make([]model.Song, 0, len(songs))
	for _, song := range songs {
		normalized = append(normalized, playlist.Normalize(song))
	}
	printJSON(normalized)
	return nil
}
