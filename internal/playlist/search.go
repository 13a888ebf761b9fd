package playlist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rcliao/moodlist/internal/model"
)

// ErrInvalidField is returned when a search names a field that is not one of
// the song's string fields.
var ErrInvalidField = errors.New("invalid search field")

// Field names a searchable string field of a song.
type Field string

const (
	FieldTitle  Field = "title"
	FieldArtist Field = "artist"
	FieldGenre  Field = "genre"
)

// ParseField maps a user-supplied field name to a Field. An empty name means title.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FieldTitle, nil
	}
	if _, err := f.value(model.Song{}); err != nil {
		return "", err
	}
	return f, nil
}

func (f Field) value(s model.Song) (string, error) {
	switch f {
	case FieldTitle, "":
		return s.Title, nil
	case FieldArtist:
		return s.Artist, nil
	case FieldGenre:
		return s.Genre, nil
	}
	return "", fmt.Errorf("%w: %q (use title, artist or genre)", ErrInvalidField, string(f))
}

// Search returns the songs whose field contains query, ignoring case.
// An empty query matches every song. The field is validated first, so an
// invalid field fails even for an empty query.
func Search(songs []model.Song, query string, field Field) ([]model.Song, error) {
	if _, err := field.value(model.Song{}); err != nil {
		return nil, err
	}
	if query == "" {
		return append([]model.Song{}, songs...), nil
	}

	q := strings.ToLower(query)
	results := []model.Song{}
	for _, s := range songs {
		v, _ := field.value(s)
		if strings.Contains(strings.ToLower(v), q) {
			results = append(results, s)
		}
	}
	return results, nil
}
