package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/moodlist/internal/model"
	"github.com/rcliao/moodlist/internal/playlist"
	"github.com/rcliao/moodlist/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "put [title]",
		Short: "Add a single song",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runPut,
	}

	cmd.Flags().StringP("artist", "a", "", "Artist")
	cmd.Flags().StringP("genre", "g", "", "Genre")
	cmd.Flags().StringP("energy", "e", "", "Energy, usually 0-10")
	cmd.Flags().StringP("tags", "t", "", "Comma-separated tags")

	RootCmd.AddCommand(cmd)
}

func runPut(cmd *cobra.Command, args []string) error {
	artist, _ := cmd.Flags().GetString("artist")
	genre, _ := cmd.Flags().GetString("genre")
	energy, _ := cmd.Flags().GetString("energy")
	tagsStr, _ := cmd.Flags().GetString("tags")

	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("put: title is required")
	}

	song := model.RawSong{Title: title, Artist: artist, Genre: genre}
	if energy != "" {
		song.Energy = energy
	}
	if tagsStr != "" {
		var tags []string
		for _, t := range strings.Split(tagsStr, ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				tags = append(tags, t)
			}
		}
		song.Tags = model.TagList(tags...)
	}

	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	stored, err := s.Put(cmd.Context(), store.PutParams{Song: song, Source: "cli"})
	if err != nil {
		return fmt.Errorf("put: %w", err)
	}

	n := playlist.Normalize(*stored)
	n.Mood = playlist.Classify(n, cfg.Profile)
	printJSON(n)
	return nil
}
