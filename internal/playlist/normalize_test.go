package playlist

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/moodlist/internal/model"
)

func makeSong(title, artist, genre string, energy any) model.RawSong {
	return model.RawSong{
		Title:  title,
		Artist: artist,
		Genre:  genre,
		Energy: energy,
		Tags:   model.TagList(),
	}
}

func TestNormalize_Strings(t *testing.T) {
	got := Normalize(makeSong("  Thunderstruck  ", "  AC/DC  ", "  ROCK ", 5))

	assert.Equal(t, "Thunderstruck", got.Title)
	assert.Equal(t, "AC/DC", got.Artist)
	assert.Equal(t, "rock", got.Genre)
	assert.Equal(t, 5, got.Energy)
}

func TestNormalize_MissingFields(t *testing.T) {
	got := Normalize(model.RawSong{})

	assert.Equal(t, "", got.Title)
	assert.Equal(t, "", got.Artist)
	assert.Equal(t, "", got.Genre)
	assert.Equal(t, 0, got.Energy)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
	assert.Empty(t, got.Mood)
}

func TestNormalize_Energy(t *testing.T) {
	tests := []struct {
		name   string
		energy any
		want   int
	}{
		{"int", 8, 8},
		{"int64", int64(4), 4},
		{"large int64", int64(5_000_000_000), 5_000_000_000},
		{"uint", uint(5), 5},
		{"uint64", uint64(6), 6},
		{"uint64 past int range", uint64(math.MaxUint64), math.MaxInt},
		{"uintptr", uintptr(2), 2},
		{"numeric string", "8", 8},
		{"padded numeric string", " 6 ", 6},
		{"negative string", "-2", -2},
		{"word", "loud", 0},
		{"decimal string", "7.5", 0},
		{"empty string", "", 0},
		{"nil", nil, 0},
		{"whole float", float64(9), 9},
		{"fractional float", 7.5, 0},
		{"large whole float", float64(5e9), 5_000_000_000},
		{"float past int range", 1e19, 0},
		{"json number", json.Number("3"), 3},
		{"whole decimal json number", json.Number("7.0"), 7},
		{"fractional json number", json.Number("7.5"), 0},
		{"junk json number", json.Number("x"), 0},
		{"bool", true, 0},
		{"slice", []int{1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(model.RawSong{Energy: tt.energy})
			assert.Equal(t, tt.want, got.Energy)
		})
	}
}

func TestNormalize_Tags(t *testing.T) {
	t.Run("bare string becomes list", func(t *testing.T) {
		got := Normalize(model.RawSong{Tags: model.SingleTag("classic")})
		assert.Equal(t, []string{"classic"}, got.Tags)
	})

	t.Run("list preserved", func(t *testing.T) {
		got := Normalize(model.RawSong{Tags: model.TagList("rock", "classic")})
		assert.Equal(t, []string{"rock", "classic"}, got.Tags)
	})

	t.Run("list is copied", func(t *testing.T) {
		tags := []string{"rock", "classic"}
		got := Normalize(model.RawSong{Tags: model.TagList(tags...)})
		got.Tags[0] = "changed"
		assert.Equal(t, "rock", tags[0])
	})
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []model.RawSong{
		makeSong("  Lofi Beats ", " Someone ", " Chill-Hop ", "2"),
		{Title: "x", Energy: "loud", Tags: model.SingleTag("one")},
		{},
		{ID: "01ABC", Genre: "PUNK", Energy: 10.0, Tags: model.TagList("a", "b")},
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once.Raw())
		assert.Equal(t, once, twice)
	}
}

func TestNormalize_FromJSON(t *testing.T) {
	data := `[
		{"title": " Take Five ", "artist": "Dave Brubeck", "genre": "JAZZ", "energy": 4, "tags": ["classic", "cool"]},
		{"title": "Sleepwalk", "energy": "2", "tags": "instrumental"},
		{"title": "Junk", "energy": {"nested": true}, "tags": 12}
	]`

	var raws []model.RawSong
	require.NoError(t, json.Unmarshal([]byte(data), &raws))
	require.Len(t, raws, 3)

	first := Normalize(raws[0])
	assert.Equal(t, "Take Five", first.Title)
	assert.Equal(t, "jazz", first.Genre)
	assert.Equal(t, 4, first.Energy)
	assert.Equal(t, []string{"classic", "cool"}, first.Tags)

	second := Normalize(raws[1])
	assert.Equal(t, 2, second.Energy)
	assert.Equal(t, []string{"instrumental"}, second.Tags)

	third := Normalize(raws[2])
	assert.Equal(t, 0, third.Energy)
	assert.Equal(t, []string{}, third.Tags)
}
