// Package config loads moodlist settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/rcliao/moodlist/internal/model"
)

const (
	// DefaultAddr is the default API listen address.
	DefaultAddr = "127.0.0.1:8080"

	// DefaultEnvFile is read when present. Variables already set in the
	// environment win over values in the file.
	DefaultEnvFile = ".env"
)

// Config holds runtime settings.
type Config struct {
	DBPath    string
	Addr      string
	LogLevel  string
	LogFormat string
	Profile   model.Profile
}

// Load reads DefaultEnvFile (if present) and then the environment.
func Load() (*Config, error) {
	return LoadFrom(DefaultEnvFile)
}

// LoadFrom reads envFile (if present) and then the environment.
func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("load %s: %w", envFile, err)
			}
		}
	}

	cfg := &Config{
		DBPath:    os.Getenv("MOODLIST_DB"),
		Addr:      os.Getenv("MOODLIST_ADDR"),
		LogLevel:  os.Getenv("MOODLIST_LOG_LEVEL"),
		LogFormat: os.Getenv("MOODLIST_LOG_FORMAT"),
		Profile:   model.DefaultProfile(),
	}
	if cfg.DBPath == "" {
		home, _ := os.UserHomeDir()
		cfg.DBPath = filepath.Join(home, ".moodlist", "library.db")
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	if v := os.Getenv("MOODLIST_FAVORITE_GENRE"); v != "" {
		cfg.Profile.FavoriteGenre = v
	}
	if err := intEnv("MOODLIST_HYPE_MIN_ENERGY", &cfg.Profile.HypeMinEnergy); err != nil {
		return nil, err
	}
	if err := intEnv("MOODLIST_CHILL_MAX_ENERGY", &cfg.Profile.ChillMaxEnergy); err != nil {
		return nil, err
	}

	return cfg, nil
}

func intEnv(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %q is not an integer", key, v)
	}
	*dst = n
	return nil
}
