package game

import (
	"image/color"
	"time"

	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 320
	logMaxEntries = 60
	logLineHeight = 12
)

// EventEntry is a single line in the event log.
type EventEntry struct {
	At      time.Time
	Team    lineup.TeamColor // empty for match-wide events
	Message string
}

// EventLog is a ring buffer of recent match events rendered in the panel.
type EventLog struct {
	entries []EventEntry
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{
		entries: make([]EventEntry, logMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (l *EventLog) Add(at time.Time, team lineup.TeamColor, msg string) {
	l.entries[l.head] = EventEntry{At: at, Team: team, Message: msg}
	l.head = (l.head + 1) % logMaxEntries
	if l.count < logMaxEntries {
		l.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (l *EventLog) Recent() []EventEntry {
	result := make([]EventEntry, l.count)
	for i := 0; i < l.count; i++ {
		idx := (l.head - l.count + i + logMaxEntries) % logMaxEntries
		result[i] = l.entries[idx]
	}
	return result
}

// Draw renders the newest entries that fit between top and bottom.
func (l *EventLog) Draw(screen *ebiten.Image, panelX, top, bottom int) {
	vector.FillRect(screen, float32(panelX), float32(top), float32(logPanelWidth), 16, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "REGISTRO", panelX+8, top+1)
	vector.StrokeLine(screen, float32(panelX), float32(top+16), float32(panelX+logPanelWidth), float32(top+16), 1.0, color.RGBA{R: 50, G: 80, B: 50, A: 200}, false)

	entries := l.Recent()
	maxVisible := (bottom - top - 20) / logLineHeight
	if maxVisible <= 0 {
		return
	}
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := top + 20
	for i, e := range entries {
		if i >= len(entries)-3 {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
		}
		if e.Team != "" {
			vector.FillRect(screen, float32(panelX+5), float32(y+3), 3, 5, e.Team.RGBA(), false)
		}
		ebitenutil.DebugPrintAt(screen, e.At.Format("15:04")+" "+e.Message, panelX+12, y-2)
		y += logLineHeight
	}
}
