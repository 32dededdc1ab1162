// Package game is the desktop lineup board: the pitch with draggable
// player markers, a side panel with benches, payments and an event log,
// and keyboard shortcuts for export and persistence.
package game

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Garsondee/Ligres-Lineup/internal/export"
	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Session persists the match shown by the board.
type Session interface {
	Save(m *lineup.Match) error
	Finish(m *lineup.Match) (string, error)
}

// Options configures a Game.
type Options struct {
	Match    *lineup.Match
	NewMatch func() (*lineup.Match, error) // builds the lineup used after a reset
	Session  Session
	Log      zerolog.Logger

	ExportDir   string
	ExportScale int
}

type Game struct {
	width  int
	height int
	field  lineup.Rect
	panelX int

	match    *lineup.Match
	newMatch func() (*lineup.Match, error)
	session  Session
	log      zerolog.Logger
	events   *EventLog
	now      func() time.Time

	dragger *lineup.Dragger
	editor  lineup.NameEditor
	pointer *pointerSource
	moved   bool // the current drag changed a position

	exportDir   string
	exportScale int

	showHelp bool
	focused  bool
	runeBuf  []rune

	// Offscreen buffer for the help legend, allocated on first draw.
	hudBuf *ebiten.Image
}

// New builds a board for opts.Match.
func New(opts Options) *Game {
	g := &Game{
		width:       borderWidth + fieldW + borderWidth + logPanelWidth,
		height:      borderWidth + fieldH + borderWidth,
		field:       screenField,
		panelX:      borderWidth + fieldW + borderWidth,
		match:       opts.Match,
		newMatch:    opts.NewMatch,
		session:     opts.Session,
		log:         opts.Log,
		events:      NewEventLog(),
		now:         time.Now,
		pointer:     newPointerSource(),
		exportDir:   opts.ExportDir,
		exportScale: opts.ExportScale,
		showHelp:    true,
		focused:     true,
	}
	if g.exportDir == "" {
		g.exportDir = "."
	}
	g.dragger = lineup.NewDragger(g.match, &g.editor)
	home, away := g.match.TeamColors()
	g.note("", fmt.Sprintf("%s vs %s", home.TeamName(), away.TeamName()))
	return g
}

// Match returns the match on the board.
func (g *Game) Match() *lineup.Match { return g.match }

func (g *Game) Update() error {
	if !ebiten.IsFocused() {
		if g.focused && g.pointer.cancel() {
			g.pointerEvent(lineup.PointerCancel, lineup.Point{})
		}
		g.focused = false
		return nil
	}
	g.focused = true

	for _, s := range g.pointer.step(readPointerFrame()) {
		g.pointerEvent(s.kind, s.pos)
	}
	if p, ok := rightClick(); ok {
		g.secondaryClick(p)
	}

	if _, editing := g.editor.Active(); editing {
		keys := readEditKeys(g.runeBuf)
		g.runeBuf = keys.runes
		if keys.paste {
			if s, err := clipboard.ReadAll(); err == nil {
				keys.runes = append(keys.runes, []rune(s)...)
			}
		}
		g.editKeys(keys)
		return nil
	}
	for _, a := range pressedActions() {
		g.do(a)
	}
	return nil
}

// pointerEvent routes a pointer transition: name plates open an edit,
// markers start a drag, anything else closes the open edit.
func (g *Game) pointerEvent(kind lineup.PointerKind, pos lineup.Point) {
	ev := lineup.PointerEvent{Kind: kind, Pos: pos, Field: g.field}
	if kind == lineup.PointerDown {
		id, hit := hitTest(g.field, g.match.Players(), pos)
		if editID, editing := g.editor.Active(); editing && (hit == hitNone || id != editID) {
			g.commitEdit()
		}
		switch hit {
		case hitLabel:
			if !g.editor.Editing(id) {
				p, _ := g.match.Player(id)
				g.editor.Begin(id, p.Name)
			}
			return
		case hitMarker:
			ev.Target, ev.OnMarker = id, true
		}
	}

	_, wasActive := g.dragger.Active()
	if g.dragger.Handle(ev) {
		g.moved = true
	}
	if _, active := g.dragger.Active(); wasActive && !active {
		g.dragEnded()
	}
}

func (g *Game) dragEnded() {
	if !g.moved {
		return
	}
	g.moved = false
	g.autosave()
}

// secondaryClick toggles the paid flag of the marker or bench row under p.
func (g *Game) secondaryClick(p lineup.Point) {
	id, hit := hitTest(g.field, g.match.Players(), p)
	if hit == hitNone {
		home, away := g.match.TeamColors()
		rows, _ := benchRows(g.panelX, panelTitleH, home, away, g.match.Bench())
		var ok bool
		if id, ok = rowAt(rows, p); !ok {
			return
		}
	}
	paid, ok := g.match.TogglePaid(id)
	if !ok {
		return
	}
	name, team := g.memberName(id)
	if paid {
		g.note(team, name+" pagó")
	} else {
		g.note(team, name+" no ha pagado")
	}
	g.autosave()
}

func (g *Game) editKeys(k editKeys) {
	switch {
	case k.cancel:
		g.editor.Cancel()
	case k.commit:
		g.commitEdit()
	default:
		g.editor.Insert(k.runes)
		if k.backspace {
			g.editor.Backspace()
		}
	}
}

func (g *Game) commitEdit() {
	id, name, changed := g.editor.Commit()
	if !changed {
		return
	}
	old, team := g.memberName(id)
	if !g.match.Rename(id, name) {
		return
	}
	g.note(team, fmt.Sprintf("%s ahora es %s", old, name))
	g.autosave()
}

// do runs a keyboard command.
func (g *Game) do(a action) {
	switch a {
	case actionExportPNG:
		g.exportPNG()
	case actionExportJSON:
		g.exportJSON()
	case actionCopyText:
		if err := export.CopyText(g.match); err != nil {
			g.fail("copy text", err)
			return
		}
		g.note("", "Resumen copiado")
	case actionSave:
		if err := g.session.Save(g.match); err != nil {
			g.fail("save", err)
			return
		}
		g.note("", "Partido guardado")
	case actionReset:
		g.reset()
	case actionToggleHelp:
		g.showHelp = !g.showHelp
	}
}

func (g *Game) exportPNG() {
	path := filepath.Join(g.exportDir, export.PNGFileName)
	f, err := os.Create(path)
	if err != nil {
		g.fail("export png", err)
		return
	}
	err = export.PNG(f, g.match, export.Options{Scale: g.exportScale})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		g.fail("export png", err)
		return
	}
	g.log.Info().Str("path", path).Msg("image exported")
	g.note("", "Imagen: "+filepath.Base(path))
}

func (g *Game) exportJSON() {
	data, err := export.JSON(g.match)
	if err != nil {
		g.fail("export json", err)
		return
	}
	path := filepath.Join(g.exportDir, export.JSONFileName(g.match.Info))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		g.fail("export json", err)
		return
	}
	g.log.Info().Str("path", path).Msg("payments exported")
	g.note("", "Lista: "+filepath.Base(path))
}

// reset archives the current match and replaces it with a fresh lineup.
// On failure the current match stays on the board.
func (g *Game) reset() {
	next, err := g.newMatch()
	if err != nil {
		g.fail("new match", err)
		return
	}
	if _, err := g.session.Finish(g.match); err != nil {
		g.fail("archive", err)
		return
	}
	g.editor.Cancel()
	g.dragger.End()
	g.pointer.cancel()
	g.moved = false
	g.match = next
	g.dragger = lineup.NewDragger(g.match, &g.editor)
	g.note("", "Nuevo partido")
}

func (g *Game) autosave() {
	if err := g.session.Save(g.match); err != nil {
		g.fail("autosave", err)
	}
}

func (g *Game) memberName(id int) (string, lineup.TeamColor) {
	if p, ok := g.match.Player(id); ok {
		return p.Name, p.Team
	}
	for _, b := range g.match.Bench() {
		if b.ID == id {
			return b.Name, b.Team
		}
	}
	return "", ""
}

func (g *Game) note(team lineup.TeamColor, msg string) {
	g.events.Add(g.now(), team, msg)
	g.log.Debug().Str("team", string(team)).Msg(msg)
}

func (g *Game) fail(op string, err error) {
	g.log.Error().Err(err).Str("op", op).Msg("action failed")
	g.events.Add(g.now(), "", "Error: "+op)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
