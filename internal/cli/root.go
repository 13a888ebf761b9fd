// Package cli implements the moodlist CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rcliao/moodlist/internal/config"
	"github.com/rcliao/moodlist/internal/logger"
	"github.com/rcliao/moodlist/internal/model"
	"github.com/rcliao/moodlist/internal/playlist"
	"github.com/rcliao/moodlist/internal/store"
)

var (
	dbPath        string
	favoriteGenre string
	hypeMin       int
	chillMax      int

	cfg *config.Config
	log = logger.Discard()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "moodlist",
	Short: "Sort a song library into mood playlists",
	Long: "Classify songs into Hype, Chill and Mixed playlists, search them, summarize them " +
		"and pick one at random. Songs live in a local SQLite library.",
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	defaults := model.DefaultProfile()
	pf := RootCmd.PersistentFlags()
	pf.StringVarP(&dbPath, "db", "d", "", "Library path (default: $MOODLIST_DB or ~/.moodlist/library.db)")
	pf.StringVar(&favoriteGenre, "favorite-genre", defaults.FavoriteGenre, "Genre that always counts as Hype")
	pf.IntVar(&hypeMin, "hype-min", defaults.HypeMinEnergy, "Energy at or above which a song is Hype")
	pf.IntVar(&chillMax, "chill-max", defaults.ChillMaxEnergy, "Energy at or below which a song is Chill")
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	flags := cmd.Flags()
	if dbPath != "" {
		c.DBPath = dbPath
	}
	if flags.Changed("favorite-genre") {
		c.Profile.FavoriteGenre = favoriteGenre
	}
	if flags.Changed("hype-min") {
		c.Profile.HypeMinEnergy = hypeMin
	}
	if flags.Changed("chill-max") {
		c.Profile.ChillMaxEnergy = chillMax
	}

	cfg = c
	log = logger.New(logger.Config{
		Level:  logger.ParseLevel(c.LogLevel),
		Format: c.LogFormat,
	})
	return nil
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.DBPath)
}

// loadPlaylists builds playlists from every song in the library.
func loadPlaylists(cmd *cobra.Command) (playlist.Playlists, error) {
	s, err := openStore()
	if err != nil {
		return playlist.Playlists{}, fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	songs, err := s.List(cmd.Context(), store.ListParams{})
	if err != nil {
		return playlist.Playlists{}, fmt.Errorf("list songs: %w", err)
	}

	p := playlist.Build(songs, cfg.Profile)
	log.Debug("built playlists",
		slog.Int("songs", len(songs)),
		slog.Int("hype", len(p.Hype)),
		slog.Int("chill", len(p.Chill)),
		slog.Int("mixed", len(p.Mixed)),
		slog.String("favorite_genre", cfg.Profile.FavoriteGenre))
	return p, nil
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}
