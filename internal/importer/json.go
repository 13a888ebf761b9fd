// Package importer decodes song records from JSON, CSV and audio file tags.
package importer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rcliao/moodlist/internal/model"
)

// Source labels stored with imported songs.
const (
	SourceJSON = "json"
	SourceCSV  = "csv"
	SourceTags = "tags"
)

// DecodeJSON reads a JSON array of song records. Field values of the wrong
// type are kept as-is for the normalizer to deal with.
func DecodeJSON(r io.Reader) ([]model.RawSong, error) {
	var songs []model.RawSong
	if err := json.NewDecoder(r).Decode(&songs); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if songs == nil {
		songs = []model.RawSong{}
	}
	return songs, nil
}
