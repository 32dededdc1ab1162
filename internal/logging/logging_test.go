package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestSetup_ConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := Setup(Options{Level: "warn", Console: &buf})
	require.NoError(t, err)
	defer closer.Close()

	log.Info().Msg("hidden")
	log.Warn().Str("player", "Alexis").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "Alexis")
}

func TestSetup_WritesSessionFile(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	var buf bytes.Buffer
	log, closer, err := Setup(Options{Dir: dir, Console: &buf, Now: func() time.Time { return start }})
	require.NoError(t, err)

	log.Info().Msg("match saved")
	require.NoError(t, closer.Close())

	path := LogFilePath(dir, start)
	assert.Equal(t, filepath.Join(dir, "ligres.20261018_093000.log"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "match saved")
}
