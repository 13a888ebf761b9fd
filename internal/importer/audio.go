package importer

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"

	"github.com/rcliao/moodlist/internal/model"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".flac": true,
	".ogg":  true,
}

// ScanDir walks dir and reads title, artist and genre from the tags of every
// audio file it finds. Files whose tags cannot be read are still returned,
// titled after their file name. Audio tags carry no energy, so it is left
// unset.
func ScanDir(dir string) ([]model.RawSong, error) {
	songs := []model.RawSong{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !audioExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		songs = append(songs, readAudioFile(path))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return songs, nil
}

func readAudioFile(path string) model.RawSong {
	base := filepath.Base(path)
	song := model.RawSong{
		Title:  strings.TrimSuffix(base, filepath.Ext(base)),
		Source: SourceTags,
	}

	file, err := os.Open(path)
	if err != nil {
		return song
	}
	defer file.Close()

	metadata, err := tag.ReadFrom(file)
	if err != nil || metadata == nil {
		return song
	}

	if title := strings.TrimSpace(metadata.Title()); title != "" {
		song.Title = title
	}
	song.Artist = metadata.Artist()
	song.Genre = metadata.Genre()
	if album := strings.TrimSpace(metadata.Album()); album != "" {
		song.Tags = model.SingleTag(album)
	}
	return song
}
