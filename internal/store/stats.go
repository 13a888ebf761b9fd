package store

import (
	"context"
	"os"
)

// Stats holds song library statistics.
type Stats struct {
	DBPath      string        `json:"db_path"`
	DBSizeBytes int64         `json:"db_size_bytes"`
	TotalSongs  int           `json:"total_songs"`
	ActiveSongs int           `json:"active_songs"`
	Sources     []SourceStats `json:"sources"`
}

// SourceStats holds per-source counts of active songs.
type SourceStats struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// Stats returns library statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath, Sources: []SourceStats{}}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM songs`).Scan(&st.TotalSongs); err != nil {
		return st, err
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM songs WHERE deleted_at IS NULL`).Scan(&st.ActiveSongs); err != nil {
		return st, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT source, COUNT(*) AS cnt
		FROM songs WHERE deleted_at IS NULL
		GROUP BY source ORDER BY cnt DESC, source`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var src SourceStats
		if err := rows.Scan(&src.Source, &src.Count); err != nil {
			return st, err
		}
		st.Sources = append(st.Sources, src)
	}

	return st, rows.Err()
}
