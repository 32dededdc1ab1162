// Package store defines the persistence contract for the active match,
// the match history and saved rosters. Implementations live in the
// memory and sqlite subpackages.
package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	// ErrNotFound is returned when a match, roster or active state is missing.
	ErrNotFound = errors.New("store: not found")
	// ErrInvalidRoster is returned for rosters without a name.
	ErrInvalidRoster = errors.New("store: roster needs a name")
)

// Backend is the interface all storage implementations must satisfy.
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Active match
	SaveActive(s lineup.Snapshot) error
	LoadActive() (lineup.Snapshot, error)
	ClearActive() error

	// History, newest first
	Archive(s lineup.Snapshot) (string, error)
	History() ([]HistoryEntry, error)
	LoadMatch(id string) (HistoryEntry, error)
	ClearHistory() error

	// Saved rosters
	SaveRoster(r Roster) (Roster, error)
	Rosters() ([]Roster, error)
	DeleteRoster(id string) error
}

// HistoryEntry is an archived match.
type HistoryEntry struct {
	ID         string          `json:"id"`
	Location   string          `json:"location"`
	Date       time.Time       `json:"date"`
	ArchivedAt time.Time       `json:"archivedAt"`
	Snapshot   lineup.Snapshot `json:"snapshot"`
}

// NewHistoryEntry stamps a snapshot with a fresh id.
func NewHistoryEntry(s lineup.Snapshot, now time.Time) HistoryEntry {
	return HistoryEntry{
		ID:         uuid.NewString(),
		Location:   s.Info.Location,
		Date:       s.Info.Date,
		ArchivedAt: now,
		Snapshot:   s,
	}
}

// Roster is a reusable list of player names.
type Roster struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	PlayerNames []string `json:"playerNames"`
}

// NormalizeRoster trims the roster name and player names, drops blank
// players and assigns an id to new rosters.
func NormalizeRoster(r Roster) (Roster, error) {
	out := Roster{ID: strings.TrimSpace(r.ID), Name: strings.TrimSpace(r.Name)}
	if out.Name == "" {
		return Roster{}, ErrInvalidRoster
	}
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	out.PlayerNames = []string{}
	for _, p := range r.PlayerNames {
		if n := strings.TrimSpace(p); n != "" {
			out.PlayerNames = append(out.PlayerNames, n)
		}
	}
	return out, nil
}

// RosterHit is one fuzzy search result.
type RosterHit struct {
	Roster   Roster
	Player   string // matched player, empty when the roster name matched
	Distance int
}

// FindRosters ranks rosters whose name or players fuzzily match query,
// closest first. Accents and case are ignored.
func FindRosters(rosters []Roster, query string) []RosterHit {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	var hits []RosterHit
	for _, r := range rosters {
		best, player := fuzzy.RankMatchNormalizedFold(q, r.Name), ""
		for _, p := range r.PlayerNames {
			d := fuzzy.RankMatchNormalizedFold(q, p)
			if d >= 0 && (best < 0 || d < best) {
				best, player = d, p
			}
		}
		if best >= 0 {
			hits = append(hits, RosterHit{Roster: r, Player: player, Distance: best})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// RecentLocations returns up to n distinct locations from history in the
// order given (newest first for Backend.History).
func RecentLocations(history []HistoryEntry, n int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, h := range history {
		loc := strings.TrimSpace(h.Location)
		key := strings.ToLower(loc)
		if loc == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, loc)
		if len(out) == n {
			break
		}
	}
	return out
}

// Restore loads an archived match back into a live session.
func Restore(b Backend, id string) (*lineup.Match, error) {
	h, err := b.LoadMatch(id)
	if err != nil {
		return nil, err
	}
	m, err := lineup.Restore(h.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("restore match %s: %w", id, err)
	}
	return m, nil
}
