package store

import (
	"context"

	"github.com/rcliao/moodlist/internal/model"
)

// ExportAll returns every active song in insertion order.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.RawSong, error) {
	return s.List(ctx, ListParams{})
}

// Import stores songs from an export or an importer. IDs in the input are
// ignored; each song gets a fresh one. source labels songs that carry none.
func (s *SQLiteStore) Import(ctx context.Context, songs []model.RawSong, source string) (int, error) {
	imported := 0
	for _, song := range songs {
		src := song.Source
		if src == "" {
			src = source
		}
		song.ID = ""
		if _, err := s.Put(ctx, PutParams{Song: song, Source: src}); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
