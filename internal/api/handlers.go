package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rcliao/moodlist/internal/model"
	"github.com/rcliao/moodlist/internal/playlist"
	"github.com/rcliao/moodlist/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// playlists builds a fresh collection from the library for one request.
func (s *Server) playlists(w http.ResponseWriter, r *http.Request) (playlist.Playlists, bool) {
	songs, err := s.library.List(r.Context(), store.ListParams{})
	if err != nil {
		s.log.Error("list songs", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, errors.New("could not read song library"))
		return playlist.Playlists{}, false
	}
	return playlist.Build(songs, s.profile), true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handlePlaylists(w http.ResponseWriter, r *http.Request) {
	p, ok := s.playlists(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePlaylist(w http.ResponseWriter, r *http.Request) {
	mood, ok := parseMood(chi.URLParam(r, "mood"))
	if !ok {
		writeError(w, http.StatusBadRequest, errors.New("unknown mood: use hype, chill or mixed"))
		return
	}
	p, ok := s.playlists(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, p.Get(mood))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	field, err := playlist.ParseField(q.Get("field"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, ok := s.playlists(w, r)
	if !ok {
		return
	}
	results, err := playlist.Search(p.All(), q.Get("q"), field)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	p, ok := s.playlists(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, playlist.ComputeStats(p))
}

func (s *Server) handleLucky(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("mode")
	if raw == "" {
		raw = string(playlist.ModeAny)
	}
	mode, err := playlist.ParseMode(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, ok := s.playlists(w, r)
	if !ok {
		return
	}
	song, err := s.picker.Pick(p, mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if song == nil {
		writeError(w, http.StatusNotFound, errors.New("no eligible songs"))
		return
	}
	writeJSON(w, http.StatusOK, song)
}

func parseMood(s string) (model.Mood, bool) {
	for _, m := range model.Moods {
		if strings.EqualFold(s, string(m)) {
			return m, true
		}
	}
	return "", false
}
