package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Garsondee/Ligres-Lineup/internal/app"
	"github.com/Garsondee/Ligres-Lineup/internal/config"
	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"github.com/Garsondee/Ligres-Lineup/internal/setup"
	"github.com/Garsondee/Ligres-Lineup/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// workspace writes a config pointing storage and exports into a temp dir.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg, err := json.Marshal(map[string]any{
		"storage": map[string]any{"backend": "sqlite", "path": filepath.Join(dir, "ligres.db")},
		"export":  map[string]any{"dir": dir},
		"match":   map[string]any{"feePerPlayer": 5000},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), cfg, 0o600))
	return dir
}

// seed stores a default match as the active one and returns it.
func seed(t *testing.T, dir string, info lineup.MatchInfo) *lineup.Match {
	t.Helper()
	a, err := app.Open(dir, io.Discard)
	require.NoError(t, err)
	defer a.Close()
	f := setup.Default()
	f.Match.Location = info.Location
	f.Match.Date = info.Date
	m, err := a.NewMatch(f)
	require.NoError(t, err)
	require.NoError(t, a.Save(m))
	return m
}

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runCLI(t, dir, args...)
	return out, err
}

func runCLI(t *testing.T, dir string, args ...string) (string, *cli, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	c := &cli{}
	cmd := newRootCmd(c)
	cmd.SetArgs(append([]string{"--config", dir}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := c.execute(cmd)
	return out.String(), c, err
}

func TestTemplate(t *testing.T) {
	out, err := run(t, t.TempDir(), "template", "--size", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Defensa Central")
	assert.NotContains(t, out, "Mediocampista 2")

	_, err = run(t, t.TempDir(), "template", "--size", "11")
	assert.Error(t, err)
}

func TestExportText(t *testing.T) {
	dir := workspace(t)
	seed(t, dir, lineup.MatchInfo{Location: "Cancha Los Leones"})

	out, err := run(t, dir, "export", "text")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Partido en Cancha Los Leones"))
	assert.Contains(t, out, "Equipo Azul")
	assert.Contains(t, out, "Equipo Rojo")
}

func TestExportWithoutActiveMatch(t *testing.T) {
	_, err := run(t, workspace(t), "export", "text")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFailedCommandClosesStore(t *testing.T) {
	_, c, err := runCLI(t, workspace(t), "export", "text")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.NotNil(t, c.app)

	_, err = c.app.Store.History()
	assert.Error(t, err, "store should be closed after a failed command")
}

func TestExportJSONAndImport(t *testing.T) {
	dir := workspace(t)
	seed(t, dir, lineup.MatchInfo{Location: "Cancha 3"})

	out, err := run(t, dir, "export", "json")
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(dir, "pagos-Cancha-3.json"), path)

	out, err = run(t, dir, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 14 players")
}

func TestExportPNG(t *testing.T) {
	dir := workspace(t)
	seed(t, dir, lineup.MatchInfo{})

	target := filepath.Join(dir, "field.png")
	_, err := run(t, dir, "export", "png", "-o", target, "--scale", "1")
	require.NoError(t, err)
	fi, err := os.Stat(target)
	require.NoError(t, err)
	assert.Positive(t, fi.Size())
}

func TestPayments(t *testing.T) {
	dir := workspace(t)
	seed(t, dir, lineup.MatchInfo{})

	out, err := run(t, dir, "payments", "--paid", "100,101")
	require.NoError(t, err)
	assert.Contains(t, out, "Pagados: 2/14")

	out, err = run(t, dir, "payments", "--unpaid", "101")
	require.NoError(t, err)
	assert.Contains(t, out, "Pagados: 1/14")

	_, err = run(t, dir, "payments", "--paid", "999")
	assert.Error(t, err)
}

func TestHistory(t *testing.T) {
	dir := workspace(t)
	seed(t, dir, lineup.MatchInfo{Location: "Cancha 1"})

	a, err := app.Open(dir, io.Discard)
	require.NoError(t, err)
	m, ok := a.ActiveMatch()
	require.True(t, ok)
	id, err := a.Finish(m)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	out, err := run(t, dir, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "Cancha 1")

	out, err = run(t, dir, "history", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Partido en Cancha 1")

	out, err = run(t, dir, "history", "locations")
	require.NoError(t, err)
	assert.Equal(t, "Cancha 1\n", out)

	_, err = run(t, dir, "history", "restore", id)
	require.NoError(t, err)
	out, err = run(t, dir, "export", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancha 1")

	_, err = run(t, dir, "history", "clear")
	require.NoError(t, err)
	out, err = run(t, dir, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No hay partidos guardados.")
}

func TestRoster(t *testing.T) {
	dir := workspace(t)

	out, err := run(t, dir, "roster", "save", "Jueves", "Alexis", "Arturo", "Elías")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)

	out, err = run(t, dir, "roster", "find", "elias")
	require.NoError(t, err)
	assert.Contains(t, out, "Jueves (Elías)")

	out, err = run(t, dir, "roster", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Jueves (3): Alexis, Arturo, Elías")

	_, err = run(t, dir, "roster", "delete", id)
	require.NoError(t, err)
	_, err = run(t, dir, "roster", "delete", id)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
