// Package app wires configuration, logging and storage together for the
// lineup commands.
package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/Garsondee/Ligres-Lineup/internal/config"
	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"github.com/Garsondee/Ligres-Lineup/internal/logging"
	"github.com/Garsondee/Ligres-Lineup/internal/setup"
	"github.com/Garsondee/Ligres-Lineup/internal/store"
	"github.com/Garsondee/Ligres-Lineup/internal/store/memory"
	"github.com/Garsondee/Ligres-Lineup/internal/store/sqlite"
	"github.com/rs/zerolog"
)

// App holds the shared services of one process.
type App struct {
	Settings *config.Settings
	Log      zerolog.Logger
	Store    store.Backend

	logCloser io.Closer
}

// Open loads settings from configDir, starts logging to console and opens
// the configured store.
func Open(configDir string, console io.Writer) (*App, error) {
	s, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}
	log, closer, err := logging.Setup(logging.Options{Level: s.LogLevel, Dir: s.LogsDir, Console: console})
	if err != nil {
		return nil, err
	}
	b, err := OpenStore(s.Storage)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	log.Debug().Str("backend", s.Storage.Backend).Str("path", s.Storage.Path).Msg("store opened")
	return &App{Settings: s, Log: log, Store: b, logCloser: closer}, nil
}

// OpenStore creates and initialises the backend named by cfg.
func OpenStore(cfg config.StorageConfig) (store.Backend, error) {
	var b store.Backend
	switch cfg.Backend {
	case "memory":
		b = memory.New()
	case "sqlite":
		b = sqlite.New(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
	if err := b.Init(); err != nil {
		return nil, fmt.Errorf("init %s store: %w", cfg.Backend, err)
	}
	return b, nil
}

// Close closes the store and the log file.
func (a *App) Close() error {
	return errors.Join(a.Store.Close(), a.logCloser.Close())
}

// NewMatch builds a fresh match from a setup file using the configured
// padding, id base and default fee.
func (a *App) NewMatch(f *setup.File) (*lineup.Match, error) {
	home, away, err := f.Teams()
	if err != nil {
		return nil, err
	}
	fee := f.Match.FeePerPlayer
	if fee == 0 {
		fee = a.Settings.Match.FeePerPlayer
	}
	m, err := lineup.NewMatch(home, away,
		lineup.WithIDBase(a.Settings.Layout.IDBase),
		lineup.WithEdgePadding(a.Settings.Layout.EdgePadding),
		lineup.WithInfo(f.Info()),
		lineup.WithFee(fee),
	)
	if err != nil {
		return nil, err
	}
	a.Log.Info().
		Str("home", string(home.Color)).
		Str("away", string(away.Color)).
		Int("size", home.Size).
		Int("players", len(m.Players())).
		Int("bench", len(m.Bench())).
		Msg("match created")
	return m, nil
}

// ActiveMatch restores the saved in-progress match. It reports false when
// none is saved; a corrupt save is logged and skipped.
func (a *App) ActiveMatch() (*lineup.Match, bool) {
	s, err := a.Store.LoadActive()
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			a.Log.Warn().Err(err).Msg("could not load active match")
		}
		return nil, false
	}
	m, err := lineup.Restore(s)
	if err != nil {
		a.Log.Warn().Err(err).Msg("discarding unreadable active match")
		return nil, false
	}
	return m, true
}

// Save stores m as the active match.
func (a *App) Save(m *lineup.Match) error {
	if err := a.Store.SaveActive(m.Snapshot()); err != nil {
		return fmt.Errorf("save active match: %w", err)
	}
	return nil
}

// Finish archives m into history, when it has players, and clears the
// active slot.
func (a *App) Finish(m *lineup.Match) (string, error) {
	var id string
	if m != nil && !m.Empty() {
		var err error
		if id, err = a.Store.Archive(m.Snapshot()); err != nil {
			return "", fmt.Errorf("archive match: %w", err)
		}
		a.Log.Info().Str("id", id).Str("location", m.Info.Location).Msg("match archived")
	}
	return id, a.Store.ClearActive()
}
