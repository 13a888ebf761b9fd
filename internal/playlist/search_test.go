package playlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/moodlist/internal/model"
)

func searchFixture() []model.Song {
	return []model.Song{
		Normalize(makeSong("Thunderstruck", "AC/DC", "rock", 5)),
		Normalize(makeSong("Bohemian Rhapsody", "Queen", "rock", 5)),
		Normalize(makeSong("Blinding Lights", "The Weeknd", "pop", 5)),
		Normalize(makeSong("Take Five", "Dave Brubeck", "jazz", 5)),
	}
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	songs := searchFixture()
	got, err := Search(songs, "", FieldTitle)
	require.NoError(t, err)
	assert.Equal(t, songs, got)
}

func TestSearch_Matches(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field Field
		want  []string
	}{
		{"partial", "DC", FieldArtist, []string{"Thunderstruck"}},
		{"uppercase query", "AC", FieldArtist, []string{"Thunderstruck"}},
		{"lowercase query", "ac/dc", FieldArtist, []string{"Thunderstruck"}},
		{"exact", "queen", FieldArtist, []string{"Bohemian Rhapsody"}},
		{"title", "thunder", FieldTitle, []string{"Thunderstruck"}},
		{"default field is title", "five", "", []string{"Take Five"}},
		{"genre", "ROCK", FieldGenre, []string{"Thunderstruck", "Bohemian Rhapsody"}},
		{"multiple in order", "e", FieldArtist, []string{"Bohemian Rhapsody", "Blinding Lights", "Take Five"}},
		{"no match", "Beyonce", FieldArtist, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Search(searchFixture(), tt.query, tt.field)
			require.NoError(t, err)
			require.NotNil(t, got)

			titles := []string{}
			for _, s := range got {
				titles = append(titles, s.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	lower, err := Search(searchFixture(), "ac", FieldArtist)
	require.NoError(t, err)
	upper, err := Search(searchFixture(), "AC", FieldArtist)
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestSearch_InvalidField(t *testing.T) {
	_, err := Search(searchFixture(), "x", Field("energy"))
	assert.True(t, errors.Is(err, ErrInvalidField))

	_, err = Search(searchFixture(), "", Field("mood"))
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestSearch_EmptyCollection(t *testing.T) {
	got, err := Search(nil, "anything", FieldTitle)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Search(nil, "", FieldTitle)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseField(t *testing.T) {
	f, err := ParseField(" Artist ")
	require.NoError(t, err)
	assert.Equal(t, FieldArtist, f)

	f, err = ParseField("")
	require.NoError(t, err)
	assert.Equal(t, FieldTitle, f)

	_, err = ParseField("tags")
	assert.ErrorIs(t, err, ErrInvalidField)
}
