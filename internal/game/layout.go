package game

import (
	"image"
	"unicode/utf8"

	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
)

// Screen geometry. The pitch keeps the 4:5 portrait ratio of the export.
const (
	borderWidth  = 24
	fieldW       = 480
	fieldH       = 600
	markerRadius = 14

	glyphW      = 7 // basicfont.Face7x13 advance
	glyphH      = 13
	labelGap    = 3
	labelPadX   = 3
	panelRowH   = 14
	panelTitleH = 18
)

// screenField is the pixel rect of the pitch inside the window.
var screenField = lineup.Rect{X: borderWidth, Y: borderWidth, W: fieldW, H: fieldH}

// markerCenter returns the screen position of a player's marker.
func markerCenter(field lineup.Rect, p lineup.Player) lineup.Point {
	c := field.PixelOf(p.X, p.Y)
	return lineup.Point{X: field.X + c.X, Y: field.Y + c.Y}
}

// labelRect is the name plate drawn under a marker.
func labelRect(field lineup.Rect, p lineup.Player) image.Rectangle {
	c := markerCenter(field, p)
	w := utf8.RuneCountInString(p.Name)*glyphW + 2*labelPadX
	x0 := int(c.X) - w/2
	y0 := int(c.Y) + markerRadius + labelGap
	return image.Rect(x0, y0, x0+w, y0+glyphH+2)
}

// hitKind says which part of a marker the pointer is over.
type hitKind int

const (
	hitNone hitKind = iota
	hitMarker
	hitLabel
)

// hitTest finds the topmost marker or name plate under p. Later players
// are drawn on top, so they win.
func hitTest(field lineup.Rect, players []lineup.Player, p lineup.Point) (id int, kind hitKind) {
	pt := image.Pt(int(p.X), int(p.Y))
	for i := len(players) - 1; i >= 0; i-- {
		pl := players[i]
		c := markerCenter(field, pl)
		dx, dy := p.X-c.X, p.Y-c.Y
		if dx*dx+dy*dy <= markerRadius*markerRadius {
			return pl.ID, hitMarker
		}
		if pt.In(labelRect(field, pl)) {
			return pl.ID, hitLabel
		}
	}
	return 0, hitNone
}

// panelRow is one clickable line in the side panel.
type panelRow struct {
	id   int
	rect image.Rectangle
}

// benchRows lays out the bench list of both teams starting at top.
// Each team gets a heading line followed by its bench players.
func benchRows(panelX, top int, home, away lineup.TeamColor, bench []lineup.BenchPlayer) (rows []panelRow, bottom int) {
	y := top
	for _, team := range []lineup.TeamColor{home, away} {
		y += panelRowH
		for _, b := range bench {
			if b.Team != team {
				continue
			}
			rows = append(rows, panelRow{id: b.ID, rect: image.Rect(panelX+8, y, panelX+logPanelWidth-8, y+panelRowH)})
			y += panelRowH
		}
	}
	return rows, y
}

// rowAt returns the id of the row containing p.
func rowAt(rows []panelRow, p lineup.Point) (int, bool) {
	pt := image.Pt(int(p.X), int(p.Y))
	for _, r := range rows {
		if pt.In(r.rect) {
			return r.id, true
		}
	}
	return 0, false
}
