package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/moodlist/internal/importer"
	"github.com/rcliao/moodlist/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import songs into the library",
		Long: "Import songs from a JSON array (the format produced by export), a CSV file with a " +
			"header row, or the tags of audio files under a directory. Reads stdin when no file is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("csv", false, "Input is CSV instead of JSON")
	cmd.Flags().String("dir", "", "Scan audio files under this directory instead of reading a file")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	isCSV, _ := cmd.Flags().GetBool("csv")
	dir, _ := cmd.Flags().GetString("dir")

	var songs []model.RawSong
	var source string
	var err error

	switch {
	case dir != "":
		source = importer.SourceTags
		songs, err = importer.ScanDir(dir)
	default:
		var r io.Reader = os.Stdin
		if len(args) > 0 {
			f, openErr := os.Open(args[0])
			if openErr != nil {
				return fmt.Errorf("open input: %w", openErr)
			}
			defer f.Close()
			r = f
		}
		if isCSV {
			source = importer.SourceCSV
			songs, err = importer.DecodeCSV(r)
		} else {
			source = importer.SourceJSON
			songs, err = importer.DecodeJSON(r)
		}
	}
	if err != nil {
		return fmt.Errorf("read songs: %w", err)
	}

	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	imported, err := s.Import(cmd.Context(), songs, source)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	log.Info("imported songs", slog.Int("count", imported), slog.String("source", source))
	fmt.Printf(`{"ok":true,"imported":%d}`+"\n", imported)
	return nil
}
