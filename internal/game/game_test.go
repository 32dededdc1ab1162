package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type fakeSession struct {
	saves    int
	finishes int
	archived []*lineup.Match
	err      error
}

func (s *fakeSession) Save(*lineup.Match) error {
	s.saves++
	return s.err
}

func (s *fakeSession) Finish(m *lineup.Match) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.finishes++
	s.archived = append(s.archived, m)
	return "id", nil
}

func sixASide(t *testing.T) *lineup.Match {
	t.Helper()
	home := lineup.TeamSetup{Color: lineup.Blue, Size: 6, Bench: []string{"Gary", "Arturo"}}
	away := lineup.TeamSetup{Color: lineup.Red, Size: 6, Bench: []string{"Mauricio"}}
	m, err := lineup.NewMatch(home, away, lineup.WithFee(4000))
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	return m
}

func newTestGame(t *testing.T) (*Game, *fakeSession) {
	t.Helper()
	s := &fakeSession{}
	g := New(Options{
		Match:     sixASide(t),
		NewMatch:  func() (*lineup.Match, error) { return sixASide(t), nil },
		Session:   s,
		Log:       zerolog.Nop(),
		ExportDir: t.TempDir(),
	})
	return g, s
}

func centerOf(t *testing.T, g *Game, id int) lineup.Point {
	t.Helper()
	p, ok := g.match.Player(id)
	if !ok {
		t.Fatalf("player %d missing", id)
	}
	return markerCenter(g.field, p)
}

func labelOf(t *testing.T, g *Game, id int) lineup.Point {
	t.Helper()
	p, _ := g.match.Player(id)
	r := labelRect(g.field, p)
	return lineup.Point{X: float64(r.Min.X+r.Max.X) / 2, Y: float64(r.Min.Y+r.Max.Y) / 2}
}

func TestPointerSource_Mouse(t *testing.T) {
	s := newPointerSource()
	at := func(x, y float64) lineup.Point { return lineup.Point{X: x, Y: y} }

	if got := s.step(pointerFrame{mouse: at(5, 5)}); len(got) != 0 {
		t.Fatalf("idle hover should emit nothing, got %v", got)
	}
	got := s.step(pointerFrame{mouseDown: true, mouse: at(10, 10)})
	if len(got) != 1 || got[0].kind != lineup.PointerDown {
		t.Fatalf("expected down, got %v", got)
	}
	if got := s.step(pointerFrame{mouseDown: true, mouse: at(10, 10)}); len(got) != 0 {
		t.Fatalf("held still should emit nothing, got %v", got)
	}
	got = s.step(pointerFrame{mouseDown: true, mouse: at(20, 12)})
	if len(got) != 1 || got[0].kind != lineup.PointerMove || got[0].pos != at(20, 12) {
		t.Fatalf("expected move to (20,12), got %v", got)
	}
	got = s.step(pointerFrame{mouse: at(20, 12)})
	if len(got) != 1 || got[0].kind != lineup.PointerUp {
		t.Fatalf("expected up, got %v", got)
	}
}

func TestPointerSource_TouchOwnsPointer(t *testing.T) {
	s := newPointerSource()
	const id ebiten.TouchID = 3
	touch := func(x, y float64) pointerFrame {
		return pointerFrame{
			touches:  []ebiten.TouchID{id},
			touchPos: map[ebiten.TouchID]lineup.Point{id: {X: x, Y: y}},
		}
	}

	got := s.step(touch(40, 40))
	if len(got) != 1 || got[0].kind != lineup.PointerDown {
		t.Fatalf("expected touch down, got %v", got)
	}
	f := touch(50, 45)
	f.mouseDown = true // synthesized mouse must not interfere
	got = s.step(f)
	if len(got) != 1 || got[0].kind != lineup.PointerMove || got[0].pos.X != 50 {
		t.Fatalf("expected touch move, got %v", got)
	}
	got = s.step(pointerFrame{})
	if len(got) != 1 || got[0].kind != lineup.PointerUp || got[0].pos.X != 50 {
		t.Fatalf("expected touch up at last position, got %v", got)
	}
	if s.cancel() {
		t.Fatalf("nothing should be held after touch up")
	}
}

func TestHitTest(t *testing.T) {
	g, _ := newTestGame(t)
	players := g.match.Players()

	if id, kind := hitTest(g.field, players, centerOf(t, g, 100)); kind != hitMarker || id != 100 {
		t.Fatalf("centre of 100: got id=%d kind=%d", id, kind)
	}
	if id, kind := hitTest(g.field, players, labelOf(t, g, 103)); kind != hitLabel || id != 103 {
		t.Fatalf("label of 103: got id=%d kind=%d", id, kind)
	}
	if _, kind := hitTest(g.field, players, lineup.Point{X: 1, Y: 1}); kind != hitNone {
		t.Fatalf("window corner should miss, got kind=%d", kind)
	}

	// Stack two markers; the later one is drawn on top.
	g.match.Reposition(101, 50, 50)
	g.match.Reposition(108, 50, 50)
	p := centerOf(t, g, 101)
	if id, _ := hitTest(g.field, g.match.Players(), p); id != 108 {
		t.Fatalf("expected topmost 108, got %d", id)
	}
}

func TestDragMovesAndAutosaves(t *testing.T) {
	g, s := newTestGame(t)
	start := centerOf(t, g, 101)

	g.pointerEvent(lineup.PointerDown, start)
	if id, ok := g.dragger.Active(); !ok || id != 101 {
		t.Fatalf("expected drag of 101, got %d %v", id, ok)
	}
	g.pointerEvent(lineup.PointerMove, lineup.Point{X: start.X + 48, Y: start.Y - 60})
	g.pointerEvent(lineup.PointerUp, lineup.Point{})

	p, _ := g.match.Player(101)
	before := sixASide(t)
	orig, _ := before.Player(101)
	if d := p.X - (orig.X + 10); d > 1e-9 || d < -1e-9 {
		t.Fatalf("x: want %.2f got %.2f", orig.X+10, p.X)
	}
	if d := p.Y - (orig.Y - 10); d > 1e-9 || d < -1e-9 {
		t.Fatalf("y: want %.2f got %.2f", orig.Y-10, p.Y)
	}
	if s.saves != 1 {
		t.Fatalf("expected one autosave, got %d", s.saves)
	}
}

func TestClickWithoutMoveDoesNotSave(t *testing.T) {
	g, s := newTestGame(t)
	c := centerOf(t, g, 100)
	g.pointerEvent(lineup.PointerDown, c)
	g.pointerEvent(lineup.PointerUp, c)
	if s.saves != 0 {
		t.Fatalf("expected no save, got %d", s.saves)
	}
}

func TestRenameFlow(t *testing.T) {
	g, s := newTestGame(t)

	g.pointerEvent(lineup.PointerDown, labelOf(t, g, 105))
	if !g.editor.Editing(105) {
		t.Fatalf("label click should open the editor")
	}
	// The marker under edit cannot be dragged.
	g.pointerEvent(lineup.PointerDown, centerOf(t, g, 105))
	if _, ok := g.dragger.Active(); ok {
		t.Fatalf("drag started on a marker being renamed")
	}

	for range []rune(g.editor.Text()) {
		g.editKeys(editKeys{backspace: true})
	}
	g.editKeys(editKeys{runes: []rune("  Alexis ")})
	g.editKeys(editKeys{commit: true})

	p, _ := g.match.Player(105)
	if p.Name != "Alexis" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
	if s.saves != 1 {
		t.Fatalf("expected autosave after rename, got %d", s.saves)
	}
}

func TestRename_EscapeAndBlankKeepName(t *testing.T) {
	g, s := newTestGame(t)
	orig, _ := g.match.Player(100)

	g.pointerEvent(lineup.PointerDown, labelOf(t, g, 100))
	g.editKeys(editKeys{runes: []rune("xyz")})
	g.editKeys(editKeys{cancel: true})

	g.pointerEvent(lineup.PointerDown, labelOf(t, g, 100))
	for range []rune(orig.Name) {
		g.editKeys(editKeys{backspace: true})
	}
	g.editKeys(editKeys{runes: []rune("   ")})
	g.editKeys(editKeys{commit: true})

	p, _ := g.match.Player(100)
	if p.Name != orig.Name || s.saves != 0 {
		t.Fatalf("name %q saves %d; want %q and 0", p.Name, s.saves, orig.Name)
	}
}

func TestClickElsewhereCommitsEdit(t *testing.T) {
	g, _ := newTestGame(t)
	g.pointerEvent(lineup.PointerDown, labelOf(t, g, 100))
	g.editKeys(editKeys{runes: []rune("!")})
	g.pointerEvent(lineup.PointerDown, lineup.Point{X: 2, Y: 2})

	if _, editing := g.editor.Active(); editing {
		t.Fatalf("editor should be closed")
	}
	p, _ := g.match.Player(100)
	if p.Name != "Jugador 100!" {
		t.Fatalf("expected committed name, got %q", p.Name)
	}
}

func TestSecondaryClickTogglesPaid(t *testing.T) {
	g, s := newTestGame(t)

	g.secondaryClick(centerOf(t, g, 104))
	if !g.match.Paid(104) {
		t.Fatalf("expected 104 paid")
	}
	g.secondaryClick(centerOf(t, g, 104))
	if g.match.Paid(104) {
		t.Fatalf("expected 104 unpaid again")
	}

	home, away := g.match.TeamColors()
	rows, _ := benchRows(g.panelX, panelTitleH, home, away, g.match.Bench())
	if len(rows) != 3 {
		t.Fatalf("expected 3 bench rows, got %d", len(rows))
	}
	r := rows[2].rect
	g.secondaryClick(lineup.Point{X: float64(r.Min.X + 4), Y: float64(r.Min.Y + 4)})
	if !g.match.Paid(rows[2].id) {
		t.Fatalf("expected bench player %d paid", rows[2].id)
	}
	if s.saves != 3 {
		t.Fatalf("expected 3 autosaves, got %d", s.saves)
	}
}

func TestReset(t *testing.T) {
	g, s := newTestGame(t)
	old := g.match
	g.pointerEvent(lineup.PointerDown, labelOf(t, g, 100))

	g.do(actionReset)
	if s.finishes != 1 || s.archived[0] != old {
		t.Fatalf("expected the old match archived")
	}
	if g.match == old {
		t.Fatalf("expected a fresh match")
	}
	if _, editing := g.editor.Active(); editing {
		t.Fatalf("reset should drop the open edit")
	}

	g.newMatch = func() (*lineup.Match, error) { return nil, errors.New("bad setup") }
	cur := g.match
	g.do(actionReset)
	if g.match != cur || s.finishes != 1 {
		t.Fatalf("failed rebuild must keep the current match")
	}
}

func TestExportJSONWritesFile(t *testing.T) {
	g, _ := newTestGame(t)
	g.do(actionExportJSON)

	data, err := os.ReadFile(filepath.Join(g.exportDir, "pagos-partido.json"))
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("empty export")
	}
}

func TestSaveFailureIsLogged(t *testing.T) {
	g, s := newTestGame(t)
	s.err = errors.New("disk full")
	g.do(actionSave)

	entries := g.events.Recent()
	last := entries[len(entries)-1]
	if last.Message != "Error: save" {
		t.Fatalf("expected error entry, got %q", last.Message)
	}
}
