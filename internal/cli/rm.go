package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/moodlist/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a song",
		Args:  cobra.ExactArgs(1),
		RunE:  runRm,
	}

	cmd.Flags().Bool("hard", false, "Permanent delete (irreversible)")

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	hard, _ := cmd.Flags().GetBool("hard")
	id := args[0]

	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	if err := s.Rm(cmd.Context(), store.RmParams{ID: id, Hard: hard}); err != nil {
		return fmt.Errorf("rm: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%q}`+"\n", id)
	return nil
}
