package playlist

import (
	"github.com/rcliao/moodlist/internal/model"
)

// Playlists is the three-way partition of songs by mood.
type Playlists struct {
	Hype  []model.Song `json:"Hype"`
	Chill []model.Song `json:"Chill"`
	Mixed []model.Song `json:"Mixed"`
}

// NewPlaylists returns a collection with all three lists present and empty.
func NewPlaylists() Playlists {
	return Playlists{
		Hype:  []model.Song{},
		Chill: []model.Song{},
		Mixed: []model.Song{},
	}
}

// Get returns the list for a mood, or nil for an unknown mood.
func (p Playlists) Get(m model.Mood) []model.Song {
	switch m {
	case model.MoodHype:
		return p.Hype
	case model.MoodChill:
		return p.Chill
	case model.MoodMixed:
		return p.Mixed
	}
	return nil
}

// All returns every song, Hype first, then Chill, then Mixed.
func (p Playlists) All() []model.Song {
	all := make([]model.Song, 0, len(p.Hype)+len(p.Chill)+len(p.Mixed))
	all = append(all, p.Hype...)
	all = append(all, p.Chill...)
	all = append(all, p.Mixed...)
	return all
}

// Build normalizes and classifies every song, appending each to the list for
// its mood. Input order is preserved within each list and inputs are not
// modified.
func Build(songs []model.RawSong, p model.Profile) Playlists {
	out := NewPlaylists()
	for _, raw := range songs {
		song := Normalize(raw)
		song.Mood = Classify(song, p)

		switch song.Mood {
		case model.MoodHype:
			out.Hype = append(out.Hype, song)
		case model.MoodChill:
			out.Chill = append(out.Chill, song)
		default:
			out.Mixed = append(out.Mixed, song)
		}
	}
	return out
}
