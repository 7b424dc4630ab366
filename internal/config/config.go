package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/kanales/levdle/internal/daily"
	"github.com/kanales/levdle/internal/words"
)

// Marker backends.
const (
	MarkerFile   = "file"
	MarkerSQLite = "sqlite"
)

var ErrUnknownMarker = errors.New("unknown marker backend")

// Config holds the runtime settings, all taken from the environment.
type Config struct {
	LogLevel   zerolog.Level
	WordsFile  string // empty means the embedded list
	Marker     string
	MarkerFile string
	DBPath     string
}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg := &Config{
		LogLevel:   lvl,
		WordsFile:  os.Getenv("LEVDLE_WORDS_FILE"),
		Marker:     strings.ToLower(getEnv("LEVDLE_MARKER", MarkerFile)),
		MarkerFile: getEnv("LEVDLE_MARKER_FILE", "data/last_played"),
		DBPath:     getEnv("LEVDLE_DB", "data/levdle.db"),
	}
	if cfg.Marker != MarkerFile && cfg.Marker != MarkerSQLite {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMarker, cfg.Marker)
	}
	return cfg, nil
}

// Words loads the configured word list.
func (c *Config) Words() (*words.List, error) {
	if c.WordsFile == "" {
		return words.Default()
	}
	return words.Load(c.WordsFile)
}

// OpenMarker opens the configured marker backend. The returned closer must
// be called once the gate has run.
func (c *Config) OpenMarker(ctx context.Context) (daily.MarkerStore, io.Closer, error) {
	switch c.Marker {
	case MarkerSQLite:
		st, err := daily.OpenSQLStore(ctx, c.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return st, st, nil
	case MarkerFile:
		return daily.NewFileStore(c.MarkerFile), nopCloser{}, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownMarker, c.Marker)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
