// Package sqlite implements store.Backend on a single SQLite file through
// GORM. Snapshots and roster names are kept as JSON columns.
package sqlite

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"github.com/Garsondee/Ligres-Lineup/internal/store"
	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	kindActive  = "active"
	kindHistory = "history"
	activeID    = "active"
)

type matchRow struct {
	ID        string `gorm:"primaryKey"`
	Kind      string `gorm:"index"`
	Location  string
	Date      time.Time
	State     datatypes.JSON
	CreatedAt time.Time
}

func (matchRow) TableName() string { return "matches" }

type rosterRow struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"index"`
	PlayerNames datatypes.JSON
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (rosterRow) TableName() string { return "rosters" }

// Backend stores everything in one SQLite database file.
type Backend struct {
	path string
	db   *gorm.DB
	now  func() time.Time
}

var _ store.Backend = (*Backend)(nil)

// New returns a backend for the database at path. Init opens it.
func New(path string) *Backend {
	return &Backend{path: path, now: time.Now}
}

// Init opens the database, creating its directory, and migrates the schema.
func (b *Backend) Init() error {
	if dir := filepath.Dir(b.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(b.path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", b.path, err)
	}
	if err := db.AutoMigrate(&matchRow{}, &rosterRow{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	b.db = db
	return nil
}

// Close releases the underlying connection.
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (b *Backend) SaveActive(s lineup.Snapshot) error {
	row, err := newMatchRow(activeID, kindActive, s, b.now())
	if err != nil {
		return err
	}
	return b.db.Save(&row).Error
}

func (b *Backend) LoadActive() (lineup.Snapshot, error) {
	var row matchRow
	if err := b.first(&row, "id = ? AND kind = ?", activeID, kindActive); err != nil {
		return lineup.Snapshot{}, err
	}
	return decodeSnapshot(row.State)
}

func (b *Backend) ClearActive() error {
	return b.db.Where("kind = ?", kindActive).Delete(&matchRow{}).Error
}

func (b *Backend) Archive(s lineup.Snapshot) (string, error) {
	h := store.NewHistoryEntry(s, b.now())
	row, err := newMatchRow(h.ID, kindHistory, s, h.ArchivedAt)
	if err != nil {
		return "", err
	}
	if err := b.db.Create(&row).Error; err != nil {
		return "", fmt.Errorf("archive match: %w", err)
	}
	return h.ID, nil
}

func (b *Backend) History() ([]store.HistoryEntry, error) {
	var rows []matchRow
	err := b.db.Where("kind = ?", kindHistory).
		Order("rowid desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]store.HistoryEntry, 0, len(rows))
	for _, r := range rows {
		h, err := r.entry()
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func (b *Backend) LoadMatch(id string) (store.HistoryEntry, error) {
	var row matchRow
	if err := b.first(&row, "id = ? AND kind = ?", id, kindHistory); err != nil {
		return store.HistoryEntry{}, err
	}
	return row.entry()
}

func (b *Backend) ClearHistory() error {
	return b.db.Where("kind = ?", kindHistory).Delete(&matchRow{}).Error
}

func (b *Backend) SaveRoster(r store.Roster) (store.Roster, error) {
	r, err := store.NormalizeRoster(r)
	if err != nil {
		return store.Roster{}, err
	}
	names, err := json.Marshal(r.PlayerNames)
	if err != nil {
		return store.Roster{}, err
	}
	row := rosterRow{ID: r.ID, Name: r.Name, PlayerNames: datatypes.JSON(names)}
	var existing rosterRow
	switch err := b.first(&existing, "id = ?", r.ID); {
	case err == nil:
		row.CreatedAt = existing.CreatedAt
	case !errors.Is(err, store.ErrNotFound):
		return store.Roster{}, err
	}
	if err := b.db.Save(&row).Error; err != nil {
		return store.Roster{}, fmt.Errorf("save roster: %w", err)
	}
	return r, nil
}

func (b *Backend) Rosters() ([]store.Roster, error) {
	var rows []rosterRow
	if err := b.db.Order("rowid asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]store.Roster, 0, len(rows))
	for _, row := range rows {
		r := store.Roster{ID: row.ID, Name: row.Name}
		if err := json.Unmarshal(row.PlayerNames, &r.PlayerNames); err != nil {
			return nil, fmt.Errorf("decode roster %s: %w", row.ID, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (b *Backend) DeleteRoster(id string) error {
	res := b.db.Delete(&rosterRow{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (b *Backend) first(dest any, query string, args ...any) error {
	err := b.db.Where(query, args...).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}

func newMatchRow(id, kind string, s lineup.Snapshot, at time.Time) (matchRow, error) {
	state, err := json.Marshal(s)
	if err != nil {
		return matchRow{}, fmt.Errorf("encode snapshot: %w", err)
	}
	return matchRow{
		ID:        id,
		Kind:      kind,
		Location:  s.Info.Location,
		Date:      s.Info.Date,
		State:     datatypes.JSON(state),
		CreatedAt: at,
	}, nil
}

func (r matchRow) entry() (store.HistoryEntry, error) {
	s, err := decodeSnapshot(r.State)
	if err != nil {
		return store.HistoryEntry{}, fmt.Errorf("match %s: %w", r.ID, err)
	}
	return store.HistoryEntry{
		ID:         r.ID,
		Location:   r.Location,
		Date:       r.Date,
		ArchivedAt: r.CreatedAt,
		Snapshot:   s,
	}, nil
}

func decodeSnapshot(data []byte) (lineup.Snapshot, error) {
	var s lineup.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}
