package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanales/levdle/internal/config"
	"github.com/kanales/levdle/internal/tui"
)

func setupEnv(t *testing.T, marker string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LEVDLE_WORDS_FILE", "")
	t.Setenv("LEVDLE_MARKER", marker)
	t.Setenv("LEVDLE_MARKER_FILE", filepath.Join(dir, "last_played"))
	t.Setenv("LEVDLE_DB", filepath.Join(dir, "levdle.db"))
}

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time { return time.Date(y, m, d, 9, 30, 0, 0, time.Local) }
}

func execute(t *testing.T, input string, now func() time.Time) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(input), &out, now)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestRootCmdOneSessionPerDay(t *testing.T) {
	for _, marker := range []string{config.MarkerFile, config.MarkerSQLite} {
		t.Run(marker, func(t *testing.T) {
			setupEnv(t, marker)
			day := fixedClock(2024, time.January, 1)

			out := execute(t, "royal\r", day)
			assert.Contains(t, out, "🎉 You win! [1/6]")

			out = execute(t, "royal\r", day)
			assert.Equal(t, "You already played today. Come back tomorrow!\n", out)

			out = execute(t, "", fixedClock(2024, time.January, 2))
			assert.Contains(t, out, "You lost")
		})
	}
}

func TestRootCmdRejectsArgs(t *testing.T) {
	setupEnv(t, config.MarkerFile)
	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{}, time.Now)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestRootCmdBadConfig(t *testing.T) {
	setupEnv(t, "carrier-pigeon")
	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{}, time.Now)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	assert.ErrorIs(t, cmd.Execute(), config.ErrUnknownMarker)
}

func TestRawModeFor(t *testing.T) {
	assert.Equal(t, tui.NoRawMode{}, rawModeFor(strings.NewReader("")))

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, tui.NoRawMode{}, rawModeFor(f), "regular files are not terminals")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestCloseMarkerLogsFailure(t *testing.T) {
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	closeMarker(closerFunc(func() error { return nil }))
	assert.Empty(t, buf.String())

	closeMarker(closerFunc(func() error { return errors.New("database is locked") }))
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "database is locked")
}
