package lineup

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// MatchInfo describes where and when a match is played.
type MatchInfo struct {
	Location string    `json:"location"`
	Date     time.Time `json:"date"`
}

// Match is the active-match session: it owns the field players, the bench,
// the payment ledger and the id counter. Nothing in it is shared between
// matches.
type Match struct {
	Info    MatchInfo
	home    TeamColor
	away    TeamColor
	players []Player
	bench   []BenchPlayer
	ledger  *Ledger
	ids     *IDGen
}

type matchConfig struct {
	idBase  int
	padding float64
	info    MatchInfo
	fee     int64
}

// MatchOption configures NewMatch.
type MatchOption func(*matchConfig)

// WithIDBase sets the first id handed out in the match.
func WithIDBase(base int) MatchOption {
	return func(c *matchConfig) { c.idBase = base }
}

// WithEdgePadding overrides DefaultEdgePadding for the initial layout.
func WithEdgePadding(p float64) MatchOption {
	return func(c *matchConfig) { c.padding = p }
}

// WithInfo sets location and date.
func WithInfo(info MatchInfo) MatchOption {
	return func(c *matchConfig) { c.info = info }
}

// WithFee sets the per-player fee tracked by the ledger.
func WithFee(fee int64) MatchOption {
	return func(c *matchConfig) { c.fee = fee }
}

// NewMatch lays out both teams and returns a fresh session. Home plays the
// bottom half, away the top half.
func NewMatch(home, away TeamSetup, opts ...MatchOption) (*Match, error) {
	cfg := matchConfig{idBase: DefaultIDBase, padding: DefaultEdgePadding}
	for _, o := range opts {
		o(&cfg)
	}
	ids := NewIDGen(cfg.idBase)
	lu, err := Assign(home, away, ids, cfg.padding)
	if err != nil {
		return nil, err
	}
	return &Match{
		Info:    cfg.info,
		home:    home.Color,
		away:    away.Color,
		players: lu.Players,
		bench:   lu.Bench,
		ledger:  NewLedger(cfg.fee),
		ids:     ids,
	}, nil
}

// TeamColors returns the colours of the bottom (home) and top (away) teams.
func (m *Match) TeamColors() (home, away TeamColor) {
	return m.home, m.away
}

// Players returns a copy of the field players in assignment order.
func (m *Match) Players() []Player {
	return append([]Player(nil), m.players...)
}

// Bench returns a copy of the bench in assignment order.
func (m *Match) Bench() []BenchPlayer {
	return append([]BenchPlayer(nil), m.bench...)
}

// Player looks up a field player by id.
func (m *Match) Player(id int) (Player, bool) {
	if i := m.playerIndex(id); i >= 0 {
		return m.players[i], true
	}
	return Player{}, false
}

// Position returns the current coordinates of a field player.
func (m *Match) Position(id int) (x, y float64, ok bool) {
	if i := m.playerIndex(id); i >= 0 {
		return m.players[i].X, m.players[i].Y, true
	}
	return 0, 0, false
}

// Reposition moves a field player, clamping both axes to [0, 100]. Unknown
// ids and NaN coordinates are a no-op and report false.
func (m *Match) Reposition(id int, x, y float64) bool {
	i := m.playerIndex(id)
	if i < 0 || math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	m.players[i].X = ClampPercent(x)
	m.players[i].Y = ClampPercent(y)
	return true
}

// Rename changes the name of a field or bench player. Blank names and
// unknown ids are a no-op and report false.
func (m *Match) Rename(id int, name string) bool {
	n := strings.TrimSpace(name)
	if n == "" {
		return false
	}
	if i := m.playerIndex(id); i >= 0 {
		m.players[i].Name = n
		return true
	}
	for i := range m.bench {
		if m.bench[i].ID == id {
			m.bench[i].Name = n
			return true
		}
	}
	return false
}

// Reset discards every player, bench entry and payment flag.
func (m *Match) Reset() {
	m.players = nil
	m.bench = nil
	m.ledger = NewLedger(m.ledger.Fee)
}

// Empty reports whether the match has no players left.
func (m *Match) Empty() bool {
	return len(m.players) == 0 && len(m.bench) == 0
}

func (m *Match) playerIndex(id int) int {
	for i := range m.players {
		if m.players[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *Match) hasMember(id int) bool {
	if m.playerIndex(id) >= 0 {
		return true
	}
	for _, b := range m.bench {
		if b.ID == id {
			return true
		}
	}
	return false
}

// Fee returns the per-player fee.
func (m *Match) Fee() int64 { return m.ledger.Fee }

// SetPaid records whether a field or bench player has paid. Unknown ids
// are a no-op and report false.
func (m *Match) SetPaid(id int, paid bool) bool {
	if !m.hasMember(id) {
		return false
	}
	m.ledger.set(id, paid)
	return true
}

// TogglePaid flips the paid flag of a member and returns the new state.
func (m *Match) TogglePaid(id int) (paid, ok bool) {
	if !m.hasMember(id) {
		return false, false
	}
	paid = !m.ledger.isPaid(id)
	m.ledger.set(id, paid)
	return paid, true
}

// Paid reports whether a member has paid.
func (m *Match) Paid(id int) bool { return m.ledger.isPaid(id) }

// Payments summarizes the ledger over every current member.
func (m *Match) Payments() PaymentSummary {
	ids := make([]int, 0, len(m.players)+len(m.bench))
	for _, p := range m.players {
		ids = append(ids, p.ID)
	}
	for _, b := range m.bench {
		ids = append(ids, b.ID)
	}
	return m.ledger.summarize(ids)
}

// TeamMember is a field or bench player of one team.
type TeamMember struct {
	ID      int
	Name    string
	OnBench bool
}

// TeamRoster lists field players then bench players wearing color.
func (m *Match) TeamRoster(color TeamColor) []TeamMember {
	var out []TeamMember
	for _, p := range m.players {
		if p.Team == color {
			out = append(out, TeamMember{ID: p.ID, Name: p.Name})
		}
	}
	for _, b := range m.bench {
		if b.Team == color {
			out = append(out, TeamMember{ID: b.ID, Name: b.Name, OnBench: true})
		}
	}
	return out
}

// Snapshot is the serialisable state of a match. Its field names follow
// the share/import payload.
type Snapshot struct {
	Players      []Player      `json:"players"`
	Bench        []BenchPlayer `json:"benchPlayers"`
	Info         MatchInfo     `json:"matchInfo"`
	FeePerPlayer int64         `json:"feePerPlayer"`
	Payments     map[int]bool  `json:"playerPayments"`
	Home         TeamColor     `json:"home,omitempty"`
	Away         TeamColor     `json:"away,omitempty"`
	NextID       int           `json:"nextId,omitempty"`
}

// Snapshot captures the current state.
func (m *Match) Snapshot() Snapshot {
	players := m.Players()
	if players == nil {
		players = []Player{}
	}
	bench := m.Bench()
	if bench == nil {
		bench = []BenchPlayer{}
	}
	return Snapshot{
		Players:      players,
		Bench:        bench,
		Info:         m.Info,
		FeePerPlayer: m.ledger.Fee,
		Payments:     m.ledger.snapshot(),
		Home:         m.home,
		Away:         m.away,
		NextID:       m.ids.Peek(),
	}
}

// Restore rebuilds a match from a snapshot. Ids must be unique, colours
// valid and coordinates finite within [0, 100]. The id counter resumes
// past the highest id seen.
func Restore(s Snapshot) (*Match, error) {
	seen := make(map[int]bool, len(s.Players)+len(s.Bench))
	maxID := DefaultIDBase - 1
	check := func(id int, team TeamColor) error {
		if seen[id] {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidSnapshot, id)
		}
		if !team.Valid() {
			return fmt.Errorf("%w: player %d has colour %q", ErrInvalidSnapshot, id, string(team))
		}
		seen[id] = true
		if id > maxID {
			maxID = id
		}
		return nil
	}
	for _, p := range s.Players {
		if err := check(p.ID, p.Team); err != nil {
			return nil, err
		}
		if !inField(p.X) || !inField(p.Y) {
			return nil, fmt.Errorf("%w: player %d at (%g, %g)", ErrInvalidSnapshot, p.ID, p.X, p.Y)
		}
	}
	for _, b := range s.Bench {
		if err := check(b.ID, b.Team); err != nil {
			return nil, err
		}
	}
	if s.FeePerPlayer < 0 {
		return nil, fmt.Errorf("%w: negative fee", ErrInvalidSnapshot)
	}

	home, away := s.Home, s.Away
	if home.Valid() && home == away {
		return nil, fmt.Errorf("%w: both teams wear %s", ErrInvalidSnapshot, home)
	}
	if !home.Valid() || !away.Valid() {
		home, away = inferSides(s.Players)
	}
	next := maxID + 1
	if s.NextID > next {
		next = s.NextID
	}
	m := &Match{
		Info:    s.Info,
		home:    home,
		away:    away,
		players: append([]Player(nil), s.Players...),
		bench:   append([]BenchPlayer(nil), s.Bench...),
		ledger:  NewLedger(s.FeePerPlayer),
		ids:     NewIDGen(next),
	}
	for id, paid := range s.Payments {
		if paid && seen[id] {
			m.ledger.set(id, true)
		}
	}
	return m, nil
}

func inField(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 100
}

// inferSides guesses the home colour from the first player in the bottom
// half and the away colour from the first player in the top half.
func inferSides(players []Player) (home, away TeamColor) {
	for _, p := range players {
		if home == "" && p.Y > 50 {
			home = p.Team
		}
		if away == "" && p.Y <= 50 {
			away = p.Team
		}
	}
	if home == away {
		away = ""
		for _, p := range players {
			if p.Team != home {
				away = p.Team
				break
			}
		}
	}
	return home, away
}
