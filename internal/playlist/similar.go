package playlist

import (
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/rcliao/moodlist/internal/model"
)

// DefaultSimilarThreshold is the minimum Jaro-Winkler score for a fuzzy match.
const DefaultSimilarThreshold = 0.85

// Match is a song paired with its similarity to a query.
type Match struct {
	model.Song
	Score float64 `json:"score"`
}

// Similar ranks songs by how closely field resembles query, keeping those
// scoring at least threshold. Results are sorted by score, best first; ties
// keep input order.
func Similar(songs []model.Song, query string, field Field, threshold float64) ([]Match, error) {
	if _, err := field.value(model.Song{}); err != nil {
		return nil, err
	}
	matches := []Match{}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return matches, nil
	}

	jw := metrics.NewJaroWinkler()
	for _, s := range songs {
		v, _ := field.value(s)
		score := strutil.Similarity(q, strings.ToLower(v), jw)
		if score >= threshold {
			matches = append(matches, Match{Song: s, Score: score})
		}
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return matches, nil
}
