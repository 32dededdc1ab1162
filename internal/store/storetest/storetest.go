// Package storetest holds the behaviour every store.Backend must share.
// Backend packages call Run from their own tests.
package storetest

import (
	"testing"
	"time"

	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"github.com/Garsondee/Ligres-Lineup/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises a fresh, initialised backend returned by open.
func Run(t *testing.T, open func(t *testing.T) store.Backend) {
	t.Run("active round trip", func(t *testing.T) { testActive(t, open(t)) })
	t.Run("history newest first", func(t *testing.T) { testHistory(t, open(t)) })
	t.Run("rosters", func(t *testing.T) { testRosters(t, open(t)) })
}

// Match builds a small six-a-side match at location.
func Match(t *testing.T, location string) *lineup.Match {
	t.Helper()
	home := lineup.TeamSetup{Color: lineup.Blue, Size: 6, Names: map[lineup.Position]string{lineup.Goalkeeper: "Claudio"}, Bench: []string{"Gary"}}
	away := lineup.TeamSetup{Color: lineup.Red, Size: 6}
	m, err := lineup.NewMatch(home, away,
		lineup.WithInfo(lineup.MatchInfo{Location: location, Date: time.Date(2026, 10, 24, 20, 0, 0, 0, time.UTC)}),
		lineup.WithFee(4000),
	)
	require.NoError(t, err)
	return m
}

func testActive(t *testing.T, b store.Backend) {
	_, err := b.LoadActive()
	assert.ErrorIs(t, err, store.ErrNotFound)

	m := Match(t, "Cancha 1")
	m.Reposition(100, 30, 70)
	m.SetPaid(100, true)
	require.NoError(t, b.SaveActive(m.Snapshot()))

	m.Rename(101, "Elías")
	require.NoError(t, b.SaveActive(m.Snapshot()))

	got, err := b.LoadActive()
	require.NoError(t, err)
	restored, err := lineup.Restore(got)
	require.NoError(t, err)

	p, ok := restored.Player(100)
	require.True(t, ok)
	assert.InDelta(t, 30, p.X, 1e-9)
	assert.InDelta(t, 70, p.Y, 1e-9)
	assert.True(t, restored.Paid(100))
	renamed, _ := restored.Player(101)
	assert.Equal(t, "Elías", renamed.Name)
	assert.Equal(t, "Cancha 1", got.Info.Location)

	require.NoError(t, b.ClearActive())
	_, err = b.LoadActive()
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testHistory(t *testing.T, b store.Backend) {
	first, err := b.Archive(Match(t, "Cancha 1").Snapshot())
	require.NoError(t, err)
	second, err := b.Archive(Match(t, "Cancha 2").Snapshot())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	h, err := b.History()
	require.NoError(t, err)
	require.Len(t, h, 2)
	assert.Equal(t, second, h[0].ID)
	assert.Equal(t, "Cancha 2", h[0].Location)
	assert.Equal(t, first, h[1].ID)

	e, err := b.LoadMatch(first)
	require.NoError(t, err)
	assert.Equal(t, "Cancha 1", e.Snapshot.Info.Location)
	assert.Len(t, e.Snapshot.Players, 12)

	m, err := store.Restore(b, second)
	require.NoError(t, err)
	assert.Len(t, m.Players(), 12)

	_, err = b.LoadMatch("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, b.ClearHistory())
	h, err = b.History()
	require.NoError(t, err)
	assert.Empty(t, h)
}

func testRosters(t *testing.T, b store.Backend) {
	_, err := b.SaveRoster(store.Roster{Name: "  "})
	assert.ErrorIs(t, err, store.ErrInvalidRoster)

	jueves, err := b.SaveRoster(store.Roster{Name: " Jueves ", PlayerNames: []string{" Alexis", "", "Arturo"}})
	require.NoError(t, err)
	assert.NotEmpty(t, jueves.ID)
	assert.Equal(t, "Jueves", jueves.Name)
	assert.Equal(t, []string{"Alexis", "Arturo"}, jueves.PlayerNames)

	_, err = b.SaveRoster(store.Roster{Name: "Sábado", PlayerNames: []string{"Gary"}})
	require.NoError(t, err)

	jueves.PlayerNames = append(jueves.PlayerNames, "Claudio")
	_, err = b.SaveRoster(jueves)
	require.NoError(t, err)

	all, err := b.Rosters()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Jueves", all[0].Name)
	assert.Equal(t, []string{"Alexis", "Arturo", "Claudio"}, all[0].PlayerNames)

	require.NoError(t, b.DeleteRoster(jueves.ID))
	assert.ErrorIs(t, b.DeleteRoster(jueves.ID), store.ErrNotFound)
	all, err = b.Rosters()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Sábado", all[0].Name)
}
