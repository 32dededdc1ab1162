// Package memory keeps match state in process memory. Nothing survives a
// restart; it backs tests and the storage.backend=memory setting.
package memory

import (
	"sync"
	"time"

	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"github.com/Garsondee/Ligres-Lineup/internal/store"
)

// Backend is an in-memory store.Backend.
type Backend struct {
	mu      sync.RWMutex
	active  *lineup.Snapshot
	history []store.HistoryEntry // oldest first
	rosters []store.Roster
	now     func() time.Time
}

var _ store.Backend = (*Backend)(nil)

// New returns an empty backend.
func New() *Backend {
	return &Backend{now: time.Now}
}

func (b *Backend) Init() error  { return nil }
func (b *Backend) Close() error { return nil }

func (b *Backend) SaveActive(s lineup.Snapshot) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.active = &s
	return nil
}

func (b *Backend) LoadActive() (lineup.Snapshot, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.active == nil {
		return lineup.Snapshot{}, store.ErrNotFound
	}
	return *b.active, nil
}

func (b *Backend) ClearActive() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.active = nil
	return nil
}

func (b *Backend) Archive(s lineup.Snapshot) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	h := store.NewHistoryEntry(s, b.now())
	b.history = append(b.history, h)
	return h.ID, nil
}

func (b *Backend) History() ([]store.HistoryEntry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]store.HistoryEntry, 0, len(b.history))
	for i := len(b.history) - 1; i >= 0; i-- {
		out = append(out, b.history[i])
	}
	return out, nil
}

func (b *Backend) LoadMatch(id string) (store.HistoryEntry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, h := range b.history {
		if h.ID == id {
			return h, nil
		}
	}
	return store.HistoryEntry{}, store.ErrNotFound
}

func (b *Backend) ClearHistory() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history = nil
	return nil
}

func (b *Backend) SaveRoster(r store.Roster) (store.Roster, error) {
	r, err := store.NormalizeRoster(r)
	if err != nil {
		return store.Roster{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.rosters {
		if b.rosters[i].ID == r.ID {
			b.rosters[i] = r
			return r, nil
		}
	}
	b.rosters = append(b.rosters, r)
	return r, nil
}

func (b *Backend) Rosters() ([]store.Roster, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]store.Roster(nil), b.rosters...), nil
}

func (b *Backend) DeleteRoster(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.rosters {
		if b.rosters[i].ID == id {
			b.rosters = append(b.rosters[:i], b.rosters[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
