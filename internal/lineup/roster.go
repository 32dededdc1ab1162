package lineup

import (
	"fmt"
	"image/color"
	"strings"
)

// DefaultIDBase is the first id handed out in a match.
const DefaultIDBase = 100

// TeamColor is the shirt colour of a team. It doubles as the team's id.
type TeamColor string

const (
	Red   TeamColor = "red"
	Blue  TeamColor = "blue"
	Black TeamColor = "black"
	White TeamColor = "white"
)

// Colors lists the palette in display order.
func Colors() []TeamColor { return []TeamColor{Red, Blue, Black, White} }

// Valid reports whether c is part of the palette.
func (c TeamColor) Valid() bool {
	switch c {
	case Red, Blue, Black, White:
		return true
	}
	return false
}

// ParseColor resolves a colour name (case-insensitive).
func ParseColor(s string) (TeamColor, error) {
	c := TeamColor(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return c, nil
}

// Label returns the Spanish colour name used in team titles.
func (c TeamColor) Label() string {
	switch c {
	case Red:
		return "Rojo"
	case Blue:
		return "Azul"
	case Black:
		return "Negro"
	case White:
		return "Blanco"
	}
	return string(c)
}

// TeamName returns the display title of the team, e.g. "Equipo Azul".
func (c TeamColor) TeamName() string { return "Equipo " + c.Label() }

// RGBA returns the jersey fill colour.
func (c TeamColor) RGBA() color.RGBA {
	switch c {
	case Red:
		return color.RGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF}
	case Blue:
		return color.RGBA{R: 0x3A, G: 0x7B, B: 0xFF, A: 0xFF}
	case Black:
		return color.RGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xFF}
	case White:
		return color.RGBA{R: 0xF9, G: 0xFA, B: 0xFB, A: 0xFF}
	}
	return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
}

// Stroke returns the jersey outline colour, dark on white shirts.
func (c TeamColor) Stroke() color.RGBA {
	if c == White {
		return color.RGBA{R: 0x11, G: 0x1A, B: 0x2E, A: 0xFF}
	}
	return color.RGBA{R: 0xE5, G: 0xE9, B: 0xF0, A: 0xFF}
}

// Player is an on-field marker.
type Player struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Position Position  `json:"position"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Team     TeamColor `json:"teamId"`
}

// BenchPlayer is a substitute with no field coordinates.
type BenchPlayer struct {
	ID   int       `json:"id"`
	Name string    `json:"name"`
	Team TeamColor `json:"teamId"`
}

// TeamSetup is the input configuration of one team.
type TeamSetup struct {
	Color     TeamColor
	Size      int
	Formation FormationType
	Names     map[Position]string
	Bench     []string
}

// ValidatePair checks the invariants a pair of setups must hold before
// players are assigned.
func ValidatePair(home, away TeamSetup) error {
	for _, ts := range []TeamSetup{home, away} {
		if !ts.Color.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownColor, string(ts.Color))
		}
		roles, err := PositionsFor(ts.Size)
		if err != nil {
			return err
		}
		for pos := range ts.Names {
			if !containsPosition(roles, pos) {
				return fmt.Errorf("%w: %s is not part of a %d-a-side team", ErrUnknownPosition, pos, ts.Size)
			}
		}
	}
	if home.Color == away.Color {
		return fmt.Errorf("%w: both %s", ErrSameColors, home.Color)
	}
	return nil
}

func containsPosition(list []Position, p Position) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}

// IDGen hands out monotonically increasing ids within one match.
type IDGen struct {
	next int
}

// NewIDGen returns a generator whose first id is base.
func NewIDGen(base int) *IDGen {
	return &IDGen{next: base}
}

// Next consumes and returns the next id.
func (g *IDGen) Next() int {
	id := g.next
	g.next++
	return id
}

// Peek returns the id Next would return, without consuming it.
func (g *IDGen) Peek() int {
	return g.next
}

// Lineup is the result of roster assignment.
type Lineup struct {
	Players []Player
	Bench   []BenchPlayer
}

// PlaceholderName is the name given to a field player left blank.
func PlaceholderName(id int) string {
	return fmt.Sprintf("Jugador %d", id)
}

// Assign resolves both teams onto the field and binds their names. The home
// team takes the bottom half and the away team the top half. Ids come from
// ids in assignment order: home field players, away field players, home
// bench, away bench.
func Assign(home, away TeamSetup, ids *IDGen, padding float64) (Lineup, error) {
	if err := ValidatePair(home, away); err != nil {
		return Lineup{}, err
	}
	var lu Lineup
	for _, side := range []struct {
		setup TeamSetup
		half  Half
	}{{home, Bottom}, {away, Top}} {
		f, err := FormationFor(side.setup.Size, side.setup.Formation)
		if err != nil {
			return Lineup{}, err
		}
		slots, err := Resolve(f, side.half, padding)
		if err != nil {
			return Lineup{}, err
		}
		for _, s := range slots {
			id := ids.Next()
			name := strings.TrimSpace(side.setup.Names[s.Position])
			if name == "" {
				name = PlaceholderName(id)
			}
			lu.Players = append(lu.Players, Player{
				ID:       id,
				Name:     name,
				Position: s.Position,
				X:        s.X,
				Y:        s.Y,
				Team:     side.setup.Color,
			})
		}
	}
	for _, ts := range []TeamSetup{home, away} {
		for _, raw := range ts.Bench {
			name := strings.TrimSpace(raw)
			if name == "" {
				continue
			}
			lu.Bench = append(lu.Bench, BenchPlayer{ID: ids.Next(), Name: name, Team: ts.Color})
		}
	}
	return lu, nil
}
