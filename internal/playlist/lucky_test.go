package playlist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/moodlist/internal/model"
)

func luckyFixture() Playlists {
	return Build([]model.RawSong{
		makeSong("Hype Song", "Hype Artist", "rock", 9),
		makeSong("Chill Song", "Chill Artist", "ambient", 1),
		makeSong("Mixed Song", "Mixed Artist", "pop", 5),
	}, model.DefaultProfile())
}

func seededPicker() *Picker {
	return NewPicker(rand.New(rand.NewSource(42)))
}

func TestPick_HypeOnly(t *testing.T) {
	pk := seededPicker()
	for range 20 {
		got, err := pk.Pick(luckyFixture(), ModeHype)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, model.MoodHype, got.Mood)
	}
}

func TestPick_ChillOnly(t *testing.T) {
	pk := seededPicker()
	for range 20 {
		got, err := pk.Pick(luckyFixture(), ModeChill)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, model.MoodChill, got.Mood)
	}
}

func TestPick_AnySeesBothAndNeverMixed(t *testing.T) {
	pk := seededPicker()
	seen := map[model.Mood]bool{}
	for range 50 {
		got, err := pk.Pick(luckyFixture(), ModeAny)
		require.NoError(t, err)
		require.NotNil(t, got)
		seen[got.Mood] = true
	}
	assert.True(t, seen[model.MoodHype])
	assert.True(t, seen[model.MoodChill])
	assert.False(t, seen[model.MoodMixed])
}

func TestPick_AnyIsUniformOverSongs(t *testing.T) {
	p := Playlists{
		Hype:  []model.Song{{Title: "h", Mood: model.MoodHype}},
		Chill: []model.Song{{Title: "c1", Mood: model.MoodChill}, {Title: "c2", Mood: model.MoodChill}, {Title: "c3", Mood: model.MoodChill}},
	}
	pk := seededPicker()

	const trials = 4000
	hype := 0
	for range trials {
		got, err := pk.Pick(p, ModeAny)
		require.NoError(t, err)
		if got.Mood == model.MoodHype {
			hype++
		}
	}
	// One song in four is Hype; a coin flip between moods would give one in two.
	assert.InDelta(t, 0.25, float64(hype)/trials, 0.05)
}

func TestPick_EmptyPools(t *testing.T) {
	pk := seededPicker()
	for _, mode := range []Mode{ModeHype, ModeChill, ModeAny} {
		got, err := pk.Pick(NewPlaylists(), mode)
		require.NoError(t, err)
		assert.Nil(t, got, "mode %s", mode)
	}

	onlyMixed := Playlists{Mixed: []model.Song{{Title: "m", Mood: model.MoodMixed}}}
	got, err := pk.Pick(onlyMixed, ModeAny)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPick_InvalidMode(t *testing.T) {
	got, err := seededPicker().Pick(luckyFixture(), Mode("party"))
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.Nil(t, got)
}

func TestPick_Deterministic(t *testing.T) {
	p := luckyFixture()
	a, b := seededPicker(), seededPicker()
	for range 10 {
		x, _ := a.Pick(p, ModeAny)
		y, _ := b.Pick(p, ModeAny)
		assert.Equal(t, x, y)
	}
}

func TestPick_ReturnsCopy(t *testing.T) {
	p := luckyFixture()
	got, err := seededPicker().Pick(p, ModeHype)
	require.NoError(t, err)
	got.Title = "changed"
	assert.Equal(t, "Hype Song", p.Hype[0].Title)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" HYPE ")
	require.NoError(t, err)
	assert.Equal(t, ModeHype, m)

	_, err = ParseMode("mixed")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestNewPicker_NilSource(t *testing.T) {
	got, err := NewPicker(nil).Pick(luckyFixture(), ModeChill)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Chill Song", got.Title)
}
