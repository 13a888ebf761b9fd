package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/moodlist/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Sort the library into Hype, Chill and Mixed playlists",
		RunE:  runBuild,
	}

	cmd.Flags().StringP("mood", "m", "", "Only print one playlist: hype, chill or mixed")

	RootCmd.AddCommand(cmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	moodFlag, _ := cmd.Flags().GetString("mood")

	p, err := loadPlaylists(cmd)
	if err != nil {
		return err
	}
	if moodFlag == "" {
		printJSON(p)
		return nil
	}

	for _, m := range model.Moods {
		if strings.EqualFold(moodFlag, string(m)) {
			printJSON(p.Get(m))
			return nil
		}
	}
	return fmt.Errorf("build: unknown mood %q (use hype, chill or mixed)", moodFlag)
}
