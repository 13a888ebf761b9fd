package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rcliao/moodlist/internal/model"
)

// headerAliases maps accepted CSV header names to song fields.
var headerAliases = map[string]string{
	"title":       "title",
	"track":       "title",
	"track_title": "title",
	"name":        "title",
	"song":        "title",

	"artist":      "artist",
	"artist_name": "artist",
	"performer":   "artist",

	"genre": "genre",
	"style": "genre",

	"energy":    "energy",
	"intensity": "energy",

	"tags":   "tags",
	"tag":    "tags",
	"labels": "tags",
}

func canonicalHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}

// DecodeCSV reads songs from a CSV file with a header row. Unknown columns
// are ignored; rows without a title and artist are skipped. A tags cell
// containing ';' or '|' becomes a tag list, otherwise a single tag.
func DecodeCSV(r io.Reader) ([]model.RawSong, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rawHeaders, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("csv is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columnMap := make(map[int]string)
	for i, h := range rawHeaders {
		if field, ok := headerAliases[canonicalHeader(h)]; ok {
			columnMap[i] = field
		}
	}
	if len(columnMap) == 0 {
		return nil, errors.New("csv has no recognizable columns")
	}

	songs := []model.RawSong{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		var s model.RawSong
		for i, v := range record {
			field, ok := columnMap[i]
			if !ok || strings.TrimSpace(v) == "" {
				continue
			}
			switch field {
			case "title":
				s.Title = v
			case "artist":
				s.Artist = v
			case "genre":
				s.Genre = v
			case "energy":
				s.Energy = v
			case "tags":
				s.Tags = splitTags(v)
			}
		}

		if strings.TrimSpace(s.Title) == "" && strings.TrimSpace(s.Artist) == "" {
			continue
		}
		s.Source = SourceCSV
		songs = append(songs, s)
	}

	return songs, nil
}

func splitTags(v string) model.RawTags {
	if !strings.ContainsAny(v, ";|") {
		return model.SingleTag(strings.TrimSpace(v))
	}
	parts := strings.FieldsFunc(v, func(r rune) bool { return r == ';' || r == '|' })
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return model.TagList(tags...)
}
