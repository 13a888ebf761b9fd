package playlist

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rcliao/moodlist/internal/model"
)

// ErrInvalidMode is returned for a lucky-pick mode other than hype, chill or any.
var ErrInvalidMode = errors.New("invalid lucky mode")

// Mode restricts which playlists a lucky pick draws from.
type Mode string

const (
	ModeHype  Mode = "hype"
	ModeChill Mode = "chill"
	ModeAny   Mode = "any"
)

// ParseMode maps a user-supplied mode name to a Mode, ignoring case and
// surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeHype, ModeChill, ModeAny:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q (use hype, chill or any)", ErrInvalidMode, s)
}

// Picker draws random songs from playlists. It is safe for concurrent use.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker returns a picker drawing from rng. A nil rng is replaced by a
// time-seeded generator.
func NewPicker(rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Picker{rng: rng}
}

// Pick returns a uniformly random song from the pool selected by mode.
// Mixed songs are never eligible; ModeAny draws uniformly over Hype and Chill
// combined. An empty pool yields nil without error.
func (pk *Picker) Pick(p Playlists, mode Mode) (*model.Song, error) {
	var pool []model.Song
	switch mode {
	case ModeHype:
		pool = p.Hype
	case ModeChill:
		pool = p.Chill
	case ModeAny:
		pool = make([]model.Song, 0, len(p.Hype)+len(p.Chill))
		pool = append(pool, p.Hype...)
		pool = append(pool, p.Chill...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, string(mode))
	}

	if len(pool) == 0 {
		return nil, nil
	}

	pk.mu.Lock()
	i := pk.rng.Intn(len(pool))
	pk.mu.Unlock()

	song := pool[i]
	song.Tags = append([]string{}, song.Tags...)
	return &song, nil
}
