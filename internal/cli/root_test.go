package cli

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rcliao/moodlist/internal/store"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

func TestCommandErrorsReturn(t *testing.T) {
	db := filepath.Join(t.TempDir(), "library.db")

	err := run(t, "--db", db, "get", "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("get missing: err = %v, want ErrNotFound", err)
	}

	err = run(t, "--db", db, "rm", "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("rm missing: err = %v, want ErrNotFound", err)
	}

	err = run(t, "--db", db, "build", "--mood", "sad")
	if err == nil || !strings.Contains(err.Error(), "unknown mood") {
		t.Fatalf("build bad mood: err = %v", err)
	}

	// The store is usable again after the failed commands.
	s, err := store.NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}
}

func TestCommandSucceeds(t *testing.T) {
	db := filepath.Join(t.TempDir(), "library.db")

	if err := run(t, "--db", db, "put", "Thunderstruck", "--genre", "rock", "--energy", "9"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := run(t, "--db", db, "stats"); err != nil {
		t.Fatalf("stats: %v", err)
	}
	if err := run(t, "--db", db, "lucky", "--mode", "hype", "--seed", "7"); err != nil {
		t.Fatalf("lucky: %v", err)
	}
}
