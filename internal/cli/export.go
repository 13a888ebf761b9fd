package cli

import (
	"fmt"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the library as JSON",
		Long:  "Export every song in the library as a JSON array, keeping raw field values as imported.",
		RunE:  runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	songs, err := s.ExportAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	printJSON(songs)
	return nil
}
