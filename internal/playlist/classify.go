package playlist

import (
	"strings"

	"github.com/rcliao/moodlist/internal/model"
)

// HypeGenreKeywords force Hype when found anywhere in a song's genre.
var HypeGenreKeywords = []string{"rock", "punk", "party"}

// ChillTitleKeywords force Chill when found anywhere in a song's title.
var ChillTitleKeywords = []string{"lofi", "ambient", "sleep"}

// Classify assigns a mood to a normalized song. Hype conditions are checked
// before Chill conditions, so a song satisfying both is Hype.
func Classify(song model.Song, p model.Profile) model.Mood {
	switch {
	case isHype(song, p):
		return model.MoodHype
	case isChill(song, p):
		return model.MoodChill
	default:
		return model.MoodMixed
	}
}

func isHype(song model.Song, p model.Profile) bool {
	if song.Energy >= p.HypeMinEnergy {
		return true
	}
	if song.Genre == p.FavoriteGenre {
		return true
	}
	return containsAny(song.Genre, HypeGenreKeywords)
}

func isChill(song model.Song, p model.Profile) bool {
	if song.Energy <= p.ChillMaxEnergy {
		return true
	}
	return containsAny(song.Title, ChillTitleKeywords)
}

func containsAny(s string, keywords []string) bool {
	s = strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
