package cli

import (
	"fmt"
	"github.com/spf13/cobra"

	"github.com/rcliao/moodlist/internal/playlist"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Show one song and its mood",
		Args:  cobra.ExactArgs(1),
		RunE:  runGet,
	}

	cmd.Flags().Bool("raw", false, "Show the record as stored, without normalizing")

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetBool("raw")

	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	song, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}

	if raw {
		printJSON(song)
		return nil
	}

	n := playlist.Normalize(*song)
	n.Mood = playlist.Classify(n, cfg.Profile)
	printJSON(n)
	return nil
}
