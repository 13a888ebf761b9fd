// Package model defines the song, mood and profile data types.
package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Mood is the playlist a song is classified into.
type Mood string

const (
	MoodHype  Mood = "Hype"
	MoodChill Mood = "Chill"
	MoodMixed Mood = "Mixed"
)

// Moods lists every mood in playlist order.
var Moods = []Mood{MoodHype, MoodChill, MoodMixed}

// RawSong is a song record as supplied by a data source.
// Any field may be missing or mistyped; see playlist.Normalize.
type RawSong struct {
	ID     string  `json:"id,omitempty"`
	Title  string  `json:"title"`
	Artist string  `json:"artist"`
	Genre  string  `json:"genre"`
	Energy any     `json:"energy,omitempty"` // int, float, numeric string or junk
	Tags   RawTags `json:"tags"`

	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// UnmarshalJSON decodes a song object, dropping string fields that hold
// something other than a string instead of failing the whole record.
func (s *RawSong) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*s = RawSong{
		ID:     stringField(fields["id"]),
		Title:  stringField(fields["title"]),
		Artist: stringField(fields["artist"]),
		Genre:  stringField(fields["genre"]),
		Source: stringField(fields["source"]),
	}
	if raw, ok := fields["energy"]; ok {
		json.Unmarshal(raw, &s.Energy)
	}
	if raw, ok := fields["tags"]; ok {
		s.Tags.UnmarshalJSON(raw)
	}
	if raw, ok := fields["created_at"]; ok {
		json.Unmarshal(raw, &s.CreatedAt)
	}
	return nil
}

func stringField(raw json.RawMessage) string {
	var v string
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return ""
	}
	return v
}

// Song is a normalized song record.
type Song struct {
	ID     string   `json:"id,omitempty"`
	Title  string   `json:"title"`
	Artist string   `json:"artist"`
	Genre  string   `json:"genre"`
	Energy int      `json:"energy"`
	Tags   []string `json:"tags"`
	Mood   Mood     `json:"mood,omitempty"`
}

// Raw converts a normalized song back into its raw form.
func (s Song) Raw() RawSong {
	return RawSong{
		ID:     s.ID,
		Title:  s.Title,
		Artist: s.Artist,
		Genre:  s.Genre,
		Energy: s.Energy,
		Tags:   TagList(s.Tags...),
	}
}

// RawTags holds either a single tag or a list of tags.
type RawTags struct {
	single string
	list   []string
	isList bool
}

// SingleTag returns tags given as one bare string.
func SingleTag(tag string) RawTags {
	return RawTags{single: tag}
}

// TagList returns tags given as a list.
func TagList(tags ...string) RawTags {
	return RawTags{list: tags, isList: true}
}

// IsList reports whether the tags were given as a list.
func (t RawTags) IsList() bool { return t.isList }

// IsZero reports whether no tags were given at all.
func (t RawTags) IsZero() bool {
	return !t.isList && t.single == ""
}

// Strings returns the tags as a fresh slice. A bare string becomes a
// one-element slice; missing tags become an empty slice.
func (t RawTags) Strings() []string {
	if t.isList {
		out := make([]string, len(t.list))
		copy(out, t.list)
		return out
	}
	if t.single == "" {
		return []string{}
	}
	return []string{t.single}
}

// MarshalJSON writes a list as a JSON array and a single tag as a string.
// Missing tags encode as an empty array.
func (t RawTags) MarshalJSON() ([]byte, error) {
	if t.isList {
		return json.Marshal(t.Strings())
	}
	if t.single == "" {
		return []byte("[]"), nil
	}
	return json.Marshal(t.single)
}

// UnmarshalJSON accepts a string, an array of strings or null. Anything else
// decodes to no tags.
func (t *RawTags) UnmarshalJSON(data []byte) error {
	*t = RawTags{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = SingleTag(s)
		return nil
	}

	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	list := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			list = append(list, s)
		}
	}
	*t = TagList(list...)
	return nil
}

// Profile holds the user preferences that drive classification.
type Profile struct {
	FavoriteGenre  string `json:"favorite_genre"`
	HypeMinEnergy  int    `json:"hype_min_energy"`
	ChillMaxEnergy int    `json:"chill_max_energy"`
}

// DefaultProfile returns the profile used when the caller supplies none.
func DefaultProfile() Profile {
	return Profile{
		FavoriteGenre:  "rock",
		HypeMinEnergy:  7,
		ChillMaxEnergy: 3,
	}
}
