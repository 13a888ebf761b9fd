// Package store provides the song library interface and SQLite implementation.
package store

import (
	"context"

	"github.com/rcliao/moodlist/internal/model"
)

// PutParams holds parameters for storing a song.
type PutParams struct {
	Song   model.RawSong
	Source string // where the record came from: json, csv, tags
}

// ListParams holds parameters for listing songs.
type ListParams struct {
	Genre  string // case-insensitive substring
	Artist string // case-insensitive substring
	Limit  int    // 0 means no limit
}

// RmParams holds parameters for deleting a song.
type RmParams struct {
	ID   string
	Hard bool
}

// Store defines the song library interface.
type Store interface {
	// Put stores a raw song record and returns it with its assigned ID.
	Put(ctx context.Context, p PutParams) (*model.RawSong, error)

	// Get retrieves a song by ID.
	Get(ctx context.Context, id string) (*model.RawSong, error)

	// List lists songs matching the given filters, oldest first.
	List(ctx context.Context, p ListParams) ([]model.RawSong, error)

	// Rm soft-deletes (or hard-deletes) a song.
	Rm(ctx context.Context, p RmParams) error

	// Close closes the store.
	Close() error
}
