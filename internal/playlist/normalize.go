// Package playlist classifies songs into mood playlists and answers search,
// stats and lucky-pick queries over them.
package playlist

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/rcliao/moodlist/internal/model"
)

// Normalize sanitizes a raw song into canonical form. It never fails:
// missing or invalid fields fall back to their zero values.
func Normalize(raw model.RawSong) model.Song {
	return model.Song{
		ID:     raw.ID,
		Title:  strings.TrimSpace(raw.Title),
		Artist: strings.TrimSpace(raw.Artist),
		Genre:  strings.ToLower(strings.TrimSpace(raw.Genre)),
		Energy: parseEnergy(raw.Energy),
		Tags:   raw.Tags.Strings(),
	}
}

func parseEnergy(v any) int {
	switch e := v.(type) {
	case int:
		return e
	case int8:
		return int(e)
	case int16:
		return int(e)
	case int32:
		return int(e)
	case int64:
		return int(e)
	case uint8:
		return int(e)
	case uint16:
		return int(e)
	case uint32:
		return unsigned(uint64(e))
	case uint:
		return unsigned(uint64(e))
	case uint64:
		return unsigned(e)
	case uintptr:
		return unsigned(uint64(e))
	case float32:
		return integral(float64(e))
	case float64:
		return integral(e)
	case json.Number:
		if n, err := strconv.Atoi(e.String()); err == nil {
			return n
		}
		f, err := e.Float64()
		if err != nil {
			return 0
		}
		return integral(f)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(e))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// integral keeps whole floats (JSON numbers decode as float64) and drops the rest.
func integral(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0
	}
	if f < math.MinInt || f >= math.MaxInt {
		return 0
	}
	return int(f)
}

// unsigned clamps values past the int range to math.MaxInt.
func unsigned(u uint64) int {
	if u > math.MaxInt {
		return math.MaxInt
	}
	return int(u)
}
