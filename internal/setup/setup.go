// Package setup reads the team-setup files that stand in for the match
// form: colours, team size, formation, names and benches for both teams.
package setup

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSetup wraps every validation failure of a setup file.
var ErrInvalidSetup = errors.New("invalid setup")

// File is the on-disk YAML document.
type File struct {
	Match     Match  `yaml:"match"`
	TeamSize  int    `yaml:"teamSize"`
	Formation string `yaml:"formation,omitempty"`
	Bench     bool   `yaml:"bench"`
	Home      Team   `yaml:"home"`
	Away      Team   `yaml:"away"`
}

// Match holds where, when and how much.
type Match struct {
	Location     string    `yaml:"location"`
	Date         time.Time `yaml:"date,omitempty"`
	FeePerPlayer int64     `yaml:"feePerPlayer,omitempty"`
}

// Team is one side of the setup.
type Team struct {
	Color     string            `yaml:"color"`
	Formation string            `yaml:"formation,omitempty"`
	Players   map[string]string `yaml:"players"`
	Bench     []string          `yaml:"bench,omitempty"`
}

// Load reads and parses a setup file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read setup %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML setup document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSetup, err)
	}
	return &f, nil
}

// Default returns a blue-versus-red 7-a-side setup with every name blank.
func Default() *File {
	return &File{
		TeamSize:  7,
		Formation: lineup.DefaultFormation.String(),
		Home:      Team{Color: string(lineup.Blue)},
		Away:      Team{Color: string(lineup.Red)},
	}
}

// Template returns a setup document listing every position of size with
// empty names, ready to be filled in.
func Template(size int) ([]byte, error) {
	roles, err := lineup.PositionsFor(size)
	if err != nil {
		return nil, err
	}
	f := Default()
	f.TeamSize = size
	f.Home.Players = make(map[string]string, len(roles))
	f.Away.Players = make(map[string]string, len(roles))
	for _, p := range roles {
		f.Home.Players[p.String()] = ""
		f.Away.Players[p.String()] = ""
	}
	return yaml.Marshal(f)
}

// Info returns the match metadata.
func (f *File) Info() lineup.MatchInfo {
	return lineup.MatchInfo{Location: f.Match.Location, Date: f.Match.Date}
}

// Teams validates the file and converts it into the pair of setups the
// layout engine consumes. Bench names are dropped when benches are off.
func (f *File) Teams() (home, away lineup.TeamSetup, err error) {
	home, err = f.team(f.Home, "home")
	if err != nil {
		return home, away, err
	}
	away, err = f.team(f.Away, "away")
	if err != nil {
		return home, away, err
	}
	if err := lineup.ValidatePair(home, away); err != nil {
		return home, away, fmt.Errorf("%w: %w", ErrInvalidSetup, err)
	}
	return home, away, nil
}

func (f *File) team(t Team, side string) (lineup.TeamSetup, error) {
	var ts lineup.TeamSetup
	color, err := lineup.ParseColor(t.Color)
	if err != nil {
		return ts, fmt.Errorf("%w: %s: %w", ErrInvalidSetup, side, err)
	}
	roles, err := lineup.PositionsFor(f.TeamSize)
	if err != nil {
		return ts, fmt.Errorf("%w: %w", ErrInvalidSetup, err)
	}
	formation := t.Formation
	if formation == "" {
		formation = f.Formation
	}
	ft, err := lineup.ParseFormation(formation)
	if err != nil {
		return ts, fmt.Errorf("%w: %s: %w", ErrInvalidSetup, side, err)
	}

	names := make(map[lineup.Position]string, len(t.Players))
	for label, name := range t.Players {
		pos, err := lineup.ParsePosition(label)
		if err != nil {
			return ts, fmt.Errorf("%w: %s: %w", ErrInvalidSetup, side, err)
		}
		if !hasRole(roles, pos) {
			return ts, fmt.Errorf("%w: %s: %q is not a %d-a-side position", ErrInvalidSetup, side, label, f.TeamSize)
		}
		if _, dup := names[pos]; dup {
			return ts, fmt.Errorf("%w: %s: %s is named more than once", ErrInvalidSetup, side, pos)
		}
		names[pos] = name
	}

	ts = lineup.TeamSetup{
		Color:     color,
		Size:      f.TeamSize,
		Formation: ft,
		Names:     names,
	}
	if f.Bench {
		ts.Bench = append([]string(nil), t.Bench...)
	}
	return ts, nil
}

func hasRole(roles []lineup.Position, p lineup.Position) bool {
	for _, r := range roles {
		if r == p {
			return true
		}
	}
	return false
}
