package cli

import (
	"fmt"
	"github.com/spf13/cobra"

	"github.com/rcliao/moodlist/internal/playlist"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show playlist statistics",
		RunE:  runStats,
	}

	cmd.Flags().Bool("library", false, "Show library database statistics instead")

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	library, _ := cmd.Flags().GetBool("library")

	if !library {
		p, err := loadPlaylists(cmd)
		if err != nil {
			return err
		}
		printJSON(playlist.ComputeStats(p))
		return nil
	}

	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), cfg.DBPath)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	printJSON(stats)
	return nil
}
