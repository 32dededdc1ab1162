package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/Garsondee/Ligres-Lineup/internal/store"
	"github.com/Garsondee/Ligres-Lineup/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T, path string) *Backend {
	t.Helper()
	b := New(path)
	require.NoError(t, b.Init())
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestBackend(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Backend {
		return openTemp(t, filepath.Join(t.TempDir(), "ligres.db"))
	})
}

func TestBackend_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ligres.db")

	b := New(path)
	require.NoError(t, b.Init())
	m := storetest.Match(t, "Cancha Los Leones")
	require.NoError(t, b.SaveActive(m.Snapshot()))
	id, err := b.Archive(m.Snapshot())
	require.NoError(t, err)
	require.NoError(t, b.Close())

	reopened := openTemp(t, path)
	got, err := reopened.LoadActive()
	require.NoError(t, err)
	assert.Len(t, got.Players, 12)
	assert.Equal(t, []string{"Gary"}, []string{got.Bench[0].Name})

	h, err := reopened.History()
	require.NoError(t, err)
	require.Len(t, h, 1)
	assert.Equal(t, id, h[0].ID)
	assert.Equal(t, "Cancha Los Leones", h[0].Location)
}
