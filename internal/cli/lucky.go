package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/rcliao/moodlist/internal/playlist"
)

func init() {
	cmd := &cobra.Command{
		Use:   "lucky",
		Short: "Pick a random Hype or Chill song",
		Long:  "Pick one song at random. Mixed songs are never picked.",
		RunE:  runLucky,
	}

	cmd.Flags().StringP("mode", "m", "any", "Pool to pick from: hype, chill or any")
	cmd.Flags().Int64("seed", 0, "Seed for a repeatable pick (0 picks a fresh seed)")

	RootCmd.AddCommand(cmd)
}

func runLucky(cmd *cobra.Command, args []string) error {
	modeFlag, _ := cmd.Flags().GetString("mode")
	seed, _ := cmd.Flags().GetInt64("seed")

	mode, err := playlist.ParseMode(modeFlag)
	if err != nil {
		return fmt.Errorf("lucky: %w", err)
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}

	p, err := loadPlaylists(cmd)
	if err != nil {
		return err
	}

	song, err := playlist.NewPicker(rng).Pick(p, mode)
	if err != nil {
		return fmt.Errorf("lucky: %w", err)
	}
	// An empty pool prints null.
	printJSON(song)
	return nil
}
