package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/moodlist/internal/model"
)

// ErrNotFound is returned when a song ID does not name an active song.
var ErrNotFound = errors.New("song not found")

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS songs (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL DEFAULT '',
		artist      TEXT NOT NULL DEFAULT '',
		genre       TEXT NOT NULL DEFAULT '',
		energy      TEXT,
		tags        TEXT,
		source      TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		deleted_at  TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_songs_deleted ON songs(deleted_at);
	CREATE INDEX IF NOT EXISTS idx_songs_source ON songs(source);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Put(ctx context.Context, p PutParams) (*model.RawSong, error) {
	now := time.Now().UTC()
	id := s.newID()

	// Energy and tags keep their source shape so a mistyped value still
	// normalizes the same way after a round trip.
	var energyJSON *string
	if p.Song.Energy != nil {
		b, err := json.Marshal(p.Song.Energy)
		if err != nil {
			return nil, fmt.Errorf("encode energy: %w", err)
		}
		e := string(b)
		energyJSON = &e
	}

	var tagsJSON *string
	if !p.Song.Tags.IsZero() {
		b, err := json.Marshal(p.Song.Tags)
		if err != nil {
			return nil, fmt.Errorf("encode tags: %w", err)
		}
		t := string(b)
		tagsJSON = &t
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO songs (id, title, artist, genre, energy, tags, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Song.Title, p.Song.Artist, p.Song.Genre, energyJSON, tagsJSON, p.Source,
		now.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("insert song: %w", err)
	}

	song := p.Song
	song.ID = id
	song.Source = p.Source
	song.CreatedAt = now
	return &song, nil
}

const songColumns = `id, title, artist, genre, energy, tags, source, created_at`

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.RawSong, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+songColumns+` FROM songs WHERE id = ? AND deleted_at IS NULL`, id)
	song, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.RawSong, error) {
	where := []string{"deleted_at IS NULL"}
	args := []interface{}{}

	if p.Genre != "" {
		where = append(where, "instr(lower(genre), ?) > 0")
		args = append(args, strings.ToLower(p.Genre))
	}
	if p.Artist != "" {
		where = append(where, "instr(lower(artist), ?) > 0")
		args = append(args, strings.ToLower(p.Artist))
	}

	query := `SELECT ` + songColumns + ` FROM songs WHERE ` + strings.Join(where, " AND ") + ` ORDER BY rowid`
	if p.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, p.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := []model.RawSong{}
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

func (s *SQLiteStore) Rm(ctx context.Context, p RmParams) error {
	var res sql.Result
	var err error
	if p.Hard {
		res, err = s.db.ExecContext(ctx, `DELETE FROM songs WHERE id = ?`, p.ID)
	} else {
		now := time.Now().UTC().Format(time.RFC3339Nano)
		res, err = s.db.ExecContext(ctx,
			`UPDATE songs SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, now, p.ID)
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, p.ID)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSong(row scanner) (model.RawSong, error) {
	var song model.RawSong
	var energyJSON, tagsJSON sql.NullString
	var createdAt string

	err := row.Scan(
		&song.ID, &song.Title, &song.Artist, &song.Genre,
		&energyJSON, &tagsJSON, &song.Source, &createdAt,
	)
	if err != nil {
		return song, err
	}

	song.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	if energyJSON.Valid {
		json.Unmarshal([]byte(energyJSON.String), &song.Energy)
	}
	if tagsJSON.Valid {
		json.Unmarshal([]byte(tagsJSON.String), &song.Tags)
	}
	return song, nil
}
