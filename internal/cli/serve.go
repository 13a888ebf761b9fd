package cli

import (
	"fmt"
	"github.com/spf13/cobra"

	"github.com/rcliao/moodlist/internal/api"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve playlists over HTTP",
		RunE:  runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default: $MOODLIST_ADDR or 127.0.0.1:8080)")

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Addr
	}

	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	srv := api.NewServer(api.ServerConfig{
		Addr:    addr,
		Library: s,
		Profile: cfg.Profile,
		Logger:  log.With("component", "api"),
	})
	if err := srv.Run(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
